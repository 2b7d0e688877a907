package workspace

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/sorinslavic/graide-api/internal/observability"
	"github.com/sorinslavic/graide-api/internal/repository"
	"github.com/sorinslavic/graide-api/internal/schema"
	"github.com/sorinslavic/graide-api/pkg/googleapi"
)

// Reconciler brings a previously provisioned spreadsheet into conformance
// with the current schema registry. It only ever adds: missing tabs are
// created with their headers and the README is regenerated, but no existing
// tab, column or row is removed or reordered.
type Reconciler struct {
	sheets SheetsBackend
	wctx   *Context
	config repository.ConfigRepository
	logger zerolog.Logger
	now    func() time.Time
}

// ReconcileResult describes what a reconciliation run did.
type ReconcileResult struct {
	Upgraded    bool     `json:"upgraded"`
	FromVersion int      `json:"from_version"`
	ToVersion   int      `json:"to_version"`
	TablesAdded []string `json:"tables_added,omitempty"`
}

// NewReconciler constructs the schema reconciler.
func NewReconciler(sheets SheetsBackend, wctx *Context, config repository.ConfigRepository, logger zerolog.Logger) *Reconciler {
	return &Reconciler{
		sheets: sheets,
		wctx:   wctx,
		config: config,
		logger: logger.With().Str("component", "reconciler").Logger(),
		now:    time.Now,
	}
}

// Run executes one reconciliation attempt. The version marker is written
// only after every other step succeeded, so a partial failure leaves the
// stored version untouched and the whole run is retried next time. Steps
// are safe to repeat, which makes the retry idempotent.
func (r *Reconciler) Run(ctx context.Context) (ReconcileResult, error) {
	stored, err := r.storedVersion(ctx)
	if err != nil {
		observability.Reconciliations().WithLabelValues("failed").Inc()
		return ReconcileResult{}, err
	}

	result := ReconcileResult{FromVersion: stored, ToVersion: schema.Version}
	if stored >= schema.Version {
		observability.Reconciliations().WithLabelValues("up_to_date").Inc()
		return result, nil
	}

	spreadsheetID := r.wctx.SpreadsheetID()
	spreadsheet, err := r.sheets.Get(ctx, spreadsheetID)
	if err != nil {
		observability.Reconciliations().WithLabelValues("failed").Inc()
		return ReconcileResult{}, fmt.Errorf("enumerate tabs: %w", err)
	}

	added, err := r.addMissingTables(ctx, spreadsheetID, spreadsheet)
	if err != nil {
		observability.Reconciliations().WithLabelValues("failed").Inc()
		return ReconcileResult{}, err
	}
	result.TablesAdded = added

	if err := r.regenerateReadme(ctx, spreadsheetID); err != nil {
		observability.Reconciliations().WithLabelValues("failed").Inc()
		return ReconcileResult{}, err
	}

	if err := r.config.Set(ctx, schema.VersionKey, strconv.Itoa(schema.Version)); err != nil {
		observability.Reconciliations().WithLabelValues("failed").Inc()
		return ReconcileResult{}, fmt.Errorf("write schema version: %w", err)
	}

	result.Upgraded = true
	observability.Reconciliations().WithLabelValues("upgraded").Inc()
	r.logger.Info().
		Int("from_version", stored).
		Int("to_version", schema.Version).
		Strs("tables_added", added).
		Msg("schema reconciled")
	return result, nil
}

// storedVersion reads the provisioned schema version; absence means 0.
func (r *Reconciler) storedVersion(ctx context.Context) (int, error) {
	value, ok, err := r.config.Get(ctx, schema.VersionKey)
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	if !ok {
		return 0, nil
	}

	version, err := strconv.Atoi(value)
	if err != nil {
		// A mangled marker is treated as unprovisioned; the upgrade
		// path is additive, so re-running it is safe.
		r.logger.Warn().Str("value", value).Msg("unparseable schema version, assuming 0")
		return 0, nil
	}
	return version, nil
}

// addMissingTables creates every registry table absent from the live
// spreadsheet and writes its header row. Existing tabs are left alone.
func (r *Reconciler) addMissingTables(ctx context.Context, spreadsheetID string, spreadsheet googleapi.Spreadsheet) ([]string, error) {
	var missing []string
	for _, tableName := range schema.DataTables() {
		if _, ok := spreadsheet.SheetByTitle(tableName); !ok {
			missing = append(missing, tableName)
		}
	}
	if len(missing) == 0 {
		return nil, nil
	}

	addRequests := make([]googleapi.Request, 0, len(missing))
	for _, tableName := range missing {
		addRequests = append(addRequests, googleapi.Request{
			AddSheet: &googleapi.AddSheetRequest{
				Properties: googleapi.SheetProperties{Title: tableName},
			},
		})
	}
	if err := r.sheets.BatchUpdate(ctx, spreadsheetID, addRequests); err != nil {
		return nil, fmt.Errorf("add missing tables: %w", err)
	}

	// Re-read to learn the sheet ids Google assigned to the new tabs.
	refreshed, err := r.sheets.Get(ctx, spreadsheetID)
	if err != nil {
		return nil, fmt.Errorf("refresh tab list: %w", err)
	}

	headerRequests := make([]googleapi.Request, 0, len(missing))
	for _, tableName := range missing {
		sheet, ok := refreshed.SheetByTitle(tableName)
		if !ok {
			return nil, fmt.Errorf("table %s missing after creation", tableName)
		}
		headerRequests = append(headerRequests, headerRequest(sheet.Properties.SheetID, schema.Headers(tableName)))
	}
	if err := r.sheets.BatchUpdate(ctx, spreadsheetID, headerRequests); err != nil {
		return nil, fmt.Errorf("write headers for new tables: %w", err)
	}

	return missing, nil
}

// regenerateReadme overwrites the documentation tab from the registry
// template, creating the tab first if an older spreadsheet lacks it.
func (r *Reconciler) regenerateReadme(ctx context.Context, spreadsheetID string) error {
	spreadsheet, err := r.sheets.Get(ctx, spreadsheetID)
	if err != nil {
		return fmt.Errorf("locate readme tab: %w", err)
	}

	readme, ok := spreadsheet.SheetByTitle(schema.TableReadme)
	if !ok {
		add := []googleapi.Request{{
			AddSheet: &googleapi.AddSheetRequest{
				Properties: googleapi.SheetProperties{Title: schema.TableReadme},
			},
		}}
		if err := r.sheets.BatchUpdate(ctx, spreadsheetID, add); err != nil {
			return fmt.Errorf("create readme tab: %w", err)
		}
		spreadsheet, err = r.sheets.Get(ctx, spreadsheetID)
		if err != nil {
			return fmt.Errorf("refresh readme tab: %w", err)
		}
		if readme, ok = spreadsheet.SheetByTitle(schema.TableReadme); !ok {
			return fmt.Errorf("readme tab missing after creation")
		}
	}

	if err := r.sheets.BatchUpdate(ctx, spreadsheetID, readmeRequests(readme.Properties.SheetID, r.now())); err != nil {
		return fmt.Errorf("regenerate readme: %w", err)
	}
	return nil
}
