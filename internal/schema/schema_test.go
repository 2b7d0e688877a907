package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEncodeFollowsHeaderOrder(t *testing.T) {
	headers := Headers(TableClasses)
	cells := Encode(headers, map[string]string{
		"id":          "c1",
		"subject":     "Mathematics",
		"class_name":  "5A",
		"grade_level": "5",
		"school_year": "2025-2026",
		"created_at":  "2025-09-01T08:00:00Z",
	})

	require.Equal(t, []string{"c1", "Mathematics", "5A", "5", "2025-2026", "2025-09-01T08:00:00Z"}, cells)
}

func TestEncodeFillsMissingFieldsWithEmptyCells(t *testing.T) {
	headers := Headers(TableStudents)
	cells := Encode(headers, map[string]string{"id": "s1", "name": "Ana"})

	require.Equal(t, []string{"s1", "", "", "Ana", ""}, cells)
}

func TestDecodeToleratesTrimmedTrailingCells(t *testing.T) {
	headers := Headers(TableSubmissions)
	record := Decode(headers, []string{"sub1", "t1", "s1", "c1", "new"})

	require.Equal(t, "sub1", record["id"])
	require.Equal(t, "new", record["status"])
	require.Equal(t, "", record["grade"])
	require.Equal(t, "", record["created_at"])
	require.Len(t, record, len(headers))
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	headers := Headers(TableRubrics)
	cells := []string{"r1", "t1", "3", "x = 4", "half credit for method", "2.5"}

	require.Equal(t, cells, Encode(headers, Decode(headers, cells)))
}

func TestTablesStartWithReadme(t *testing.T) {
	tables := Tables()
	require.Equal(t, TableReadme, tables[0])
	require.Len(t, tables, len(DataTables())+1)
}

func TestEveryDataTableDeclaresHeaders(t *testing.T) {
	for _, table := range DataTables() {
		headers := Headers(table)
		require.NotEmpty(t, headers, table)
		if table != TableConfig {
			require.Equal(t, "id", headers[0], table)
		}
	}
	require.Nil(t, Headers(TableReadme))
	require.Nil(t, Headers("NoSuchTable"))
}

func TestBuildReadmeMentionsEveryTable(t *testing.T) {
	rows := BuildReadme(time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC))

	var flat string
	for _, row := range rows {
		for _, cell := range row {
			flat += cell + "\n"
		}
	}

	for _, table := range DataTables() {
		require.Contains(t, flat, table)
	}
	require.Contains(t, flat, "2026-02-01")
}
