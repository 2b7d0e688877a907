package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sorinslavic/graide-api/internal/schema"
	"github.com/sorinslavic/graide-api/internal/sheetdb"
)

// ErrNotFound indicates the targeted id is absent from its table. Raised
// locally, before any write call.
var ErrNotFound = errors.New("record not found")

// NewID generates an entity id: creation time in unix milliseconds plus a
// short random suffix. Unique enough for a single-teacher dataset, not
// cryptographically guaranteed.
func NewID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:7]
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), suffix)
}

// nowISO timestamps created_at/corrected_at fields.
func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// table bundles the scan-then-positional access pattern shared by every
// entity repository: the id is always the first column, and row positions
// are re-resolved by a full read immediately before each update or delete.
type table struct {
	store sheetdb.Store
	name  string
}

func (t table) headers() []string {
	return schema.Headers(t.name)
}

// readRecords decodes every data row of the table.
func (t table) readRecords(ctx context.Context) ([]map[string]string, error) {
	rows, err := t.store.ReadAll(ctx, t.name)
	if err != nil {
		return nil, err
	}

	headers := t.headers()
	records := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, schema.Decode(headers, row))
	}
	return records, nil
}

// findRow scans for the row whose id column matches and returns its 1-based
// data-row position along with the decoded record.
func (t table) findRow(ctx context.Context, id string) (int, map[string]string, error) {
	rows, err := t.store.ReadAll(ctx, t.name)
	if err != nil {
		return 0, nil, err
	}

	for i, row := range rows {
		if len(row) > 0 && row[0] == id {
			return i + 1, schema.Decode(t.headers(), row), nil
		}
	}
	return 0, nil, fmt.Errorf("%w: %s %q", ErrNotFound, t.name, id)
}

func (t table) appendRecord(ctx context.Context, rec map[string]string) error {
	return t.store.Append(ctx, t.name, [][]string{schema.Encode(t.headers(), rec)})
}

func (t table) appendRecords(ctx context.Context, recs []map[string]string) error {
	rows := make([][]string, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, schema.Encode(t.headers(), rec))
	}
	return t.store.Append(ctx, t.name, rows)
}

// updateByID re-resolves the row position, then overwrites it in place.
func (t table) updateByID(ctx context.Context, id string, rec map[string]string) error {
	rowIndex, _, err := t.findRow(ctx, id)
	if err != nil {
		return err
	}
	return t.store.UpdateRow(ctx, t.name, rowIndex, schema.Encode(t.headers(), rec))
}

// deleteByID re-resolves the row position, then removes the row.
func (t table) deleteByID(ctx context.Context, id string) error {
	rowIndex, _, err := t.findRow(ctx, id)
	if err != nil {
		return err
	}
	return t.store.DeleteRow(ctx, t.name, rowIndex)
}
