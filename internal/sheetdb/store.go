package sheetdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/sorinslavic/graide-api/pkg/googleapi"
)

// ErrTableNotFound indicates the named tab does not exist in the backing
// spreadsheet. Schema reconciliation should have created it.
var ErrTableNotFound = errors.New("table not found in spreadsheet")

// Backend is the minimal spreadsheet API surface the store depends on.
// *googleapi.Sheets satisfies it.
type Backend interface {
	Get(ctx context.Context, spreadsheetID string) (googleapi.Spreadsheet, error)
	ValuesGet(ctx context.Context, spreadsheetID, valueRange string) ([][]string, error)
	ValuesAppend(ctx context.Context, spreadsheetID, valueRange string, rows [][]string) error
	ValuesUpdate(ctx context.Context, spreadsheetID, valueRange string, rows [][]string) error
	BatchUpdate(ctx context.Context, spreadsheetID string, requests []googleapi.Request) error
}

// SpreadsheetRef resolves the backing spreadsheet id. The workspace context
// implements it; the indirection keeps the store usable across
// re-initialisation.
type SpreadsheetRef interface {
	SpreadsheetID() string
}

// Store exposes the row primitives repositories are built on. Row indexes
// are 1-based positions among data rows (the header row is not counted) and
// are transient: any delete shifts later rows up, so callers re-resolve
// positions by scanning immediately before every update or delete.
type Store interface {
	ReadAll(ctx context.Context, table string) ([][]string, error)
	Append(ctx context.Context, table string, rows [][]string) error
	UpdateRow(ctx context.Context, table string, rowIndex int, cells []string) error
	DeleteRow(ctx context.Context, table string, rowIndex int) error
}

type tableStore struct {
	backend Backend
	ref     SpreadsheetRef
	logger  zerolog.Logger
}

// New constructs the spreadsheet-backed table store.
func New(backend Backend, ref SpreadsheetRef, logger zerolog.Logger) Store {
	return &tableStore{
		backend: backend,
		ref:     ref,
		logger:  logger.With().Str("component", "sheetdb").Logger(),
	}
}

// ReadAll fetches every data row of the table, skipping the header row. An
// empty table yields an empty slice.
func (s *tableStore) ReadAll(ctx context.Context, table string) ([][]string, error) {
	values, err := s.backend.ValuesGet(ctx, s.ref.SpreadsheetID(), fmt.Sprintf("%s!A2:ZZ", table))
	if err != nil {
		return nil, err
	}
	return values, nil
}

// Append adds rows after the table's last data row, leaving existing rows
// untouched.
func (s *tableStore) Append(ctx context.Context, table string, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}
	return s.backend.ValuesAppend(ctx, s.ref.SpreadsheetID(), fmt.Sprintf("%s!A:A", table), rows)
}

// UpdateRow overwrites one data row in place by its 1-based data-row
// position.
func (s *tableStore) UpdateRow(ctx context.Context, table string, rowIndex int, cells []string) error {
	if rowIndex < 1 {
		return fmt.Errorf("row index %d out of range", rowIndex)
	}

	// +1 to skip the header row.
	sheetRow := rowIndex + 1
	valueRange := fmt.Sprintf("%s!A%d:ZZ%d", table, sheetRow, sheetRow)
	return s.backend.ValuesUpdate(ctx, s.ref.SpreadsheetID(), valueRange, [][]string{cells})
}

// DeleteRow removes exactly one data row; rows below shift up by one.
func (s *tableStore) DeleteRow(ctx context.Context, table string, rowIndex int) error {
	if rowIndex < 1 {
		return fmt.Errorf("row index %d out of range", rowIndex)
	}

	spreadsheetID := s.ref.SpreadsheetID()
	spreadsheet, err := s.backend.Get(ctx, spreadsheetID)
	if err != nil {
		return err
	}

	sheet, ok := spreadsheet.SheetByTitle(table)
	if !ok {
		return fmt.Errorf("%w: %s", ErrTableNotFound, table)
	}

	// Data row n lives at 0-based sheet row n (row 0 is the header).
	return s.backend.BatchUpdate(ctx, spreadsheetID, []googleapi.Request{
		{
			DeleteDimension: &googleapi.DeleteDimensionRequest{
				Range: googleapi.DimensionRange{
					SheetID:    sheet.Properties.SheetID,
					Dimension:  "ROWS",
					StartIndex: int64(rowIndex),
					EndIndex:   int64(rowIndex) + 1,
				},
			},
		},
	})
}
