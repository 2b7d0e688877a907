package workspace

import (
	"context"
	"strconv"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/sorinslavic/graide-api/internal/models"
	"github.com/sorinslavic/graide-api/internal/schema"
)

type memoryConfigRepo struct {
	entries map[string]string
}

func newMemoryConfigRepo() *memoryConfigRepo {
	return &memoryConfigRepo{entries: make(map[string]string)}
}

func (m *memoryConfigRepo) Get(ctx context.Context, key string) (string, bool, error) {
	value, ok := m.entries[key]
	return value, ok, nil
}

func (m *memoryConfigRepo) Set(ctx context.Context, key, value string) error {
	m.entries[key] = value
	return nil
}

func (m *memoryConfigRepo) All(ctx context.Context) ([]models.ConfigEntry, error) {
	out := make([]models.ConfigEntry, 0, len(m.entries))
	for key, value := range m.entries {
		out = append(out, models.ConfigEntry{Key: key, Value: value})
	}
	return out, nil
}

func reconcilerFixture(t *testing.T, tabs []string, storedVersion string) (*Reconciler, *fakeSheets, *memoryConfigRepo) {
	t.Helper()

	sheets := newFakeSheets()
	sheets.addSpreadsheet("sheet1", tabs...)

	wctx := newTestContext(t)
	require.NoError(t, wctx.Update(func(s *State) {
		s.FolderID = "folder1"
		s.SpreadsheetID = "sheet1"
	}))

	config := newMemoryConfigRepo()
	if storedVersion != "" {
		config.entries[schema.VersionKey] = storedVersion
	}

	return NewReconciler(sheets, wctx, config, zerolog.Nop()), sheets, config
}

func TestReconcilerUpToDateIsNoop(t *testing.T) {
	reconciler, sheets, _ := reconcilerFixture(t, schema.Tables(), strconv.Itoa(schema.Version))

	result, err := reconciler.Run(context.Background())
	require.NoError(t, err)
	require.False(t, result.Upgraded)
	require.Equal(t, schema.Version, result.FromVersion)
	require.Empty(t, sheets.batches)
}

func TestReconcilerAddsMissingTables(t *testing.T) {
	// A spreadsheet provisioned before SubmissionDetails existed.
	olderTabs := []string{
		schema.TableReadme, schema.TableClasses, schema.TableStudents,
		schema.TableTests, schema.TableSubmissions, schema.TableRubrics, schema.TableConfig,
	}
	reconciler, sheets, config := reconcilerFixture(t, olderTabs, "2")

	result, err := reconciler.Run(context.Background())
	require.NoError(t, err)
	require.True(t, result.Upgraded)
	require.Equal(t, 2, result.FromVersion)
	require.Equal(t, schema.Version, result.ToVersion)
	require.Equal(t, []string{schema.TableSubmissionDetails}, result.TablesAdded)

	// The new tab exists in the live spreadsheet now.
	_, ok := sheets.spreadsheets["sheet1"].SheetByTitle(schema.TableSubmissionDetails)
	require.True(t, ok)

	// The version marker was advanced.
	require.Equal(t, strconv.Itoa(schema.Version), config.entries[schema.VersionKey])
}

func TestReconcilerTreatsMissingVersionAsZero(t *testing.T) {
	reconciler, _, config := reconcilerFixture(t, schema.Tables(), "")

	result, err := reconciler.Run(context.Background())
	require.NoError(t, err)
	require.True(t, result.Upgraded)
	require.Equal(t, 0, result.FromVersion)
	require.Empty(t, result.TablesAdded)
	require.Equal(t, strconv.Itoa(schema.Version), config.entries[schema.VersionKey])
}

func TestReconcilerTreatsMangledVersionAsZero(t *testing.T) {
	reconciler, _, config := reconcilerFixture(t, schema.Tables(), "banana")

	result, err := reconciler.Run(context.Background())
	require.NoError(t, err)
	require.True(t, result.Upgraded)
	require.Equal(t, 0, result.FromVersion)
	require.Equal(t, strconv.Itoa(schema.Version), config.entries[schema.VersionKey])
}

func TestReconcilerCreatesReadmeWhenAbsent(t *testing.T) {
	tabs := schema.DataTables() // no README tab
	reconciler, sheets, _ := reconcilerFixture(t, tabs, "1")

	result, err := reconciler.Run(context.Background())
	require.NoError(t, err)
	require.True(t, result.Upgraded)

	_, ok := sheets.spreadsheets["sheet1"].SheetByTitle(schema.TableReadme)
	require.True(t, ok)
}

func TestReconcilerSecondRunIsUpToDate(t *testing.T) {
	reconciler, _, _ := reconcilerFixture(t, schema.Tables(), "1")

	first, err := reconciler.Run(context.Background())
	require.NoError(t, err)
	require.True(t, first.Upgraded)

	second, err := reconciler.Run(context.Background())
	require.NoError(t, err)
	require.False(t, second.Upgraded)
	require.Equal(t, schema.Version, second.FromVersion)
}
