package sheetdb

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/sorinslavic/graide-api/pkg/googleapi"
)

type fakeBackend struct {
	spreadsheet googleapi.Spreadsheet

	gotRanges   []string
	appended    [][]string
	updated     map[string][][]string
	batchedReqs []googleapi.Request

	values [][]string
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		spreadsheet: googleapi.Spreadsheet{
			SpreadsheetID: "sheet-1",
			Sheets: []googleapi.Sheet{
				{Properties: googleapi.SheetProperties{SheetID: 77, Title: "Classes"}},
			},
		},
		updated: make(map[string][][]string),
	}
}

func (f *fakeBackend) Get(ctx context.Context, spreadsheetID string) (googleapi.Spreadsheet, error) {
	return f.spreadsheet, nil
}

func (f *fakeBackend) ValuesGet(ctx context.Context, spreadsheetID, valueRange string) ([][]string, error) {
	f.gotRanges = append(f.gotRanges, valueRange)
	return f.values, nil
}

func (f *fakeBackend) ValuesAppend(ctx context.Context, spreadsheetID, valueRange string, rows [][]string) error {
	f.gotRanges = append(f.gotRanges, valueRange)
	f.appended = append(f.appended, rows...)
	return nil
}

func (f *fakeBackend) ValuesUpdate(ctx context.Context, spreadsheetID, valueRange string, rows [][]string) error {
	f.updated[valueRange] = rows
	return nil
}

func (f *fakeBackend) BatchUpdate(ctx context.Context, spreadsheetID string, requests []googleapi.Request) error {
	f.batchedReqs = append(f.batchedReqs, requests...)
	return nil
}

type staticRef string

func (r staticRef) SpreadsheetID() string { return string(r) }

func newTestStore(backend Backend) Store {
	return New(backend, staticRef("sheet-1"), zerolog.Nop())
}

func TestReadAllSkipsHeaderRow(t *testing.T) {
	backend := newFakeBackend()
	backend.values = [][]string{{"c1", "Math"}}
	store := newTestStore(backend)

	rows, err := store.ReadAll(context.Background(), "Classes")
	require.NoError(t, err)
	require.Equal(t, [][]string{{"c1", "Math"}}, rows)
	require.Equal(t, []string{"Classes!A2:ZZ"}, backend.gotRanges)
}

func TestAppendTargetsWholeTable(t *testing.T) {
	backend := newFakeBackend()
	store := newTestStore(backend)

	err := store.Append(context.Background(), "Classes", [][]string{{"c1"}, {"c2"}})
	require.NoError(t, err)
	require.Equal(t, []string{"Classes!A:A"}, backend.gotRanges)
	require.Len(t, backend.appended, 2)
}

func TestAppendNoRowsIsNoop(t *testing.T) {
	backend := newFakeBackend()
	store := newTestStore(backend)

	require.NoError(t, store.Append(context.Background(), "Classes", nil))
	require.Empty(t, backend.gotRanges)
}

func TestUpdateRowAddressesPastHeader(t *testing.T) {
	backend := newFakeBackend()
	store := newTestStore(backend)

	err := store.UpdateRow(context.Background(), "Classes", 3, []string{"c3", "Physics"})
	require.NoError(t, err)

	// Data row 3 lives at sheet row 4.
	rows, ok := backend.updated["Classes!A4:ZZ4"]
	require.True(t, ok)
	require.Equal(t, [][]string{{"c3", "Physics"}}, rows)
}

func TestUpdateRowRejectsBadIndex(t *testing.T) {
	store := newTestStore(newFakeBackend())
	require.Error(t, store.UpdateRow(context.Background(), "Classes", 0, nil))
}

func TestDeleteRowIssuesDimensionDelete(t *testing.T) {
	backend := newFakeBackend()
	store := newTestStore(backend)

	err := store.DeleteRow(context.Background(), "Classes", 2)
	require.NoError(t, err)
	require.Len(t, backend.batchedReqs, 1)

	del := backend.batchedReqs[0].DeleteDimension
	require.NotNil(t, del)
	require.Equal(t, int64(77), del.Range.SheetID)
	require.Equal(t, "ROWS", del.Range.Dimension)
	require.Equal(t, int64(2), del.Range.StartIndex)
	require.Equal(t, int64(3), del.Range.EndIndex)
}

func TestDeleteRowUnknownTable(t *testing.T) {
	store := newTestStore(newFakeBackend())

	err := store.DeleteRow(context.Background(), "Nope", 1)
	require.ErrorIs(t, err, ErrTableNotFound)
}
