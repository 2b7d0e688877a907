package workspace

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/sorinslavic/graide-api/internal/schema"
	"github.com/sorinslavic/graide-api/pkg/googleapi"
)

// OrganizedFolderName is the subfolder that holds organised submission
// photos inside the workspace folder.
const OrganizedFolderName = "organized"

// ErrNoFolder indicates no workspace folder has been configured yet.
var ErrNoFolder = errors.New("no drive folder configured")

// SheetsBackend is the spreadsheet surface the bootstrapper and reconciler
// need. *googleapi.Sheets satisfies it.
type SheetsBackend interface {
	Get(ctx context.Context, spreadsheetID string) (googleapi.Spreadsheet, error)
	Create(ctx context.Context, title string, sheetTitles []string) (googleapi.Spreadsheet, error)
	BatchUpdate(ctx context.Context, spreadsheetID string, requests []googleapi.Request) error
}

// DriveBackend is the folder surface the bootstrapper needs.
// *googleapi.Drive satisfies it.
type DriveBackend interface {
	FindInFolder(ctx context.Context, folderID, name, mimeType string) (googleapi.File, bool, error)
	CreateFolder(ctx context.Context, parentID, name string) (googleapi.File, error)
	MoveToFolder(ctx context.Context, fileID, folderID string) error
	IsTrashed(ctx context.Context, fileID string) (bool, error)
}

// Bootstrapper locates or creates the single backing spreadsheet inside the
// workspace folder. It is the only component allowed to create the
// spreadsheet itself; the reconciler only upgrades an existing one.
type Bootstrapper struct {
	sheets          SheetsBackend
	drive           DriveBackend
	wctx            *Context
	spreadsheetName string
	logger          zerolog.Logger
	now             func() time.Time
}

// NewBootstrapper constructs the workspace bootstrapper.
func NewBootstrapper(sheets SheetsBackend, drive DriveBackend, wctx *Context, spreadsheetName string, logger zerolog.Logger) *Bootstrapper {
	return &Bootstrapper{
		sheets:          sheets,
		drive:           drive,
		wctx:            wctx,
		spreadsheetName: spreadsheetName,
		logger:          logger.With().Str("component", "workspace").Logger(),
		now:             time.Now,
	}
}

// Initialize configures the workspace from a pasted share link: stores the
// folder id, ensures the organized/ subfolder, then locates or creates the
// backing spreadsheet.
func (b *Bootstrapper) Initialize(ctx context.Context, shareLink string) (State, error) {
	folderID, err := googleapi.ExtractFolderID(shareLink)
	if err != nil {
		return State{}, err
	}

	if err := b.wctx.Update(func(s *State) { s.FolderID = folderID }); err != nil {
		return State{}, err
	}

	if err := b.ensureOrganizedFolder(ctx, folderID); err != nil {
		return State{}, err
	}

	if _, err := b.EnsureSpreadsheet(ctx); err != nil {
		return State{}, err
	}

	state := b.wctx.State()
	b.logger.Info().
		Str("folder_id", state.FolderID).
		Str("spreadsheet_id", state.SpreadsheetID).
		Msg("workspace initialized")
	return state, nil
}

// EnsureSpreadsheet resolves the backing spreadsheet id: cached id if it
// still resolves, a folder search otherwise, and a fresh fully provisioned
// spreadsheet as the last resort.
func (b *Bootstrapper) EnsureSpreadsheet(ctx context.Context) (string, error) {
	state := b.wctx.State()
	if state.FolderID == "" {
		return "", ErrNoFolder
	}

	if state.SpreadsheetID != "" {
		if _, err := b.sheets.Get(ctx, state.SpreadsheetID); err == nil {
			return state.SpreadsheetID, nil
		} else if !isStaleSpreadsheet(err) {
			return "", err
		}

		// Cached spreadsheet no longer resolves, discard the id.
		b.logger.Warn().Str("spreadsheet_id", state.SpreadsheetID).Msg("cached spreadsheet is gone, clearing")
		if err := b.wctx.Update(func(s *State) { s.SpreadsheetID = "" }); err != nil {
			return "", err
		}
	}

	found, ok, err := b.drive.FindInFolder(ctx, state.FolderID, b.spreadsheetName, googleapi.MimeTypeSpreadsheet)
	if err != nil {
		return "", err
	}
	if ok {
		b.logger.Info().Str("spreadsheet_id", found.ID).Msg("adopted existing spreadsheet")
		return found.ID, b.wctx.Update(func(s *State) { s.SpreadsheetID = found.ID })
	}

	return b.createSpreadsheet(ctx, state.FolderID)
}

// createSpreadsheet provisions a new spreadsheet with every registry table,
// moves it into the workspace folder, and writes headers plus the README.
// The id is cached immediately: a just-created file may not be indexed for
// folder search yet.
func (b *Bootstrapper) createSpreadsheet(ctx context.Context, folderID string) (string, error) {
	spreadsheet, err := b.sheets.Create(ctx, b.spreadsheetName, schema.Tables())
	if err != nil {
		return "", fmt.Errorf("create spreadsheet: %w", err)
	}

	id := spreadsheet.SpreadsheetID
	if err := b.wctx.Update(func(s *State) { s.SpreadsheetID = id }); err != nil {
		return "", err
	}

	if err := b.drive.MoveToFolder(ctx, id, folderID); err != nil {
		return "", fmt.Errorf("move spreadsheet into folder: %w", err)
	}

	var requests []googleapi.Request
	for _, tableName := range schema.DataTables() {
		sheet, ok := spreadsheet.SheetByTitle(tableName)
		if !ok {
			return "", fmt.Errorf("created spreadsheet is missing tab %s", tableName)
		}
		requests = append(requests, headerRequest(sheet.Properties.SheetID, schema.Headers(tableName)))
	}
	if readme, ok := spreadsheet.SheetByTitle(schema.TableReadme); ok {
		requests = append(requests, readmeRequests(readme.Properties.SheetID, b.now())...)
	}

	if err := b.sheets.BatchUpdate(ctx, id, requests); err != nil {
		return "", fmt.Errorf("write headers: %w", err)
	}

	b.logger.Info().Str("spreadsheet_id", id).Msg("created new spreadsheet")
	return id, nil
}

// ensureOrganizedFolder finds or creates the organized/ subfolder.
func (b *Bootstrapper) ensureOrganizedFolder(ctx context.Context, folderID string) error {
	found, ok, err := b.drive.FindInFolder(ctx, folderID, OrganizedFolderName, googleapi.MimeTypeFolder)
	if err != nil {
		return err
	}

	if !ok {
		found, err = b.drive.CreateFolder(ctx, folderID, OrganizedFolderName)
		if err != nil {
			return fmt.Errorf("create organized folder: %w", err)
		}
		b.logger.Info().Str("folder_id", found.ID).Msg("created organized folder")
	}

	return b.wctx.Update(func(s *State) { s.OrganizedFolderID = found.ID })
}

// Verify checks the cached identifiers against Drive and discards any that
// point at trashed files. Returns the cleaned state.
func (b *Bootstrapper) Verify(ctx context.Context) (State, error) {
	state := b.wctx.State()
	if state.FolderID == "" {
		return state, ErrNoFolder
	}

	if state.SpreadsheetID != "" {
		trashed, err := b.drive.IsTrashed(ctx, state.SpreadsheetID)
		if err != nil {
			return state, err
		}
		if trashed {
			b.logger.Warn().Str("spreadsheet_id", state.SpreadsheetID).Msg("cached spreadsheet is trashed, clearing")
			if err := b.wctx.Update(func(s *State) { s.SpreadsheetID = "" }); err != nil {
				return state, err
			}
		}
	}

	if state.OrganizedFolderID != "" {
		trashed, err := b.drive.IsTrashed(ctx, state.OrganizedFolderID)
		if err != nil {
			return state, err
		}
		if trashed {
			b.logger.Warn().Str("folder_id", state.OrganizedFolderID).Msg("cached organized folder is trashed, clearing")
			if err := b.wctx.Update(func(s *State) { s.OrganizedFolderID = "" }); err != nil {
				return state, err
			}
		}
	}

	return b.wctx.State(), nil
}

// isStaleSpreadsheet reports whether the error means the cached id no
// longer resolves. A transient server error must not clear a valid cache,
// so only statuses that rule the file out count.
func isStaleSpreadsheet(err error) bool {
	var status *googleapi.StatusError
	if !errors.As(err, &status) {
		return false
	}

	switch status.StatusCode {
	case 403, 404, 410:
		return true
	}
	return false
}
