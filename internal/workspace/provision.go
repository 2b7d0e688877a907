package workspace

import (
	"time"

	"github.com/sorinslavic/graide-api/internal/schema"
	"github.com/sorinslavic/graide-api/pkg/googleapi"
)

var (
	headerBackground = googleapi.Color{Red: 0.9, Green: 0.9, Blue: 0.9}
	titleBackground  = googleapi.Color{Red: 0.2, Green: 0.4, Blue: 0.7}
	titleForeground  = googleapi.Color{Red: 1, Green: 1, Blue: 1}
)

// headerRequest writes a table's bold, grey-backed header row.
func headerRequest(sheetID int64, headers []string) googleapi.Request {
	cells := make([]googleapi.CellData, 0, len(headers))
	for _, header := range headers {
		cell := googleapi.StringCell(header)
		cell.UserEnteredFormat = &googleapi.CellFormat{
			TextFormat:      &googleapi.TextFormat{Bold: true},
			BackgroundColor: &headerBackground,
		}
		cells = append(cells, cell)
	}

	return googleapi.Request{
		UpdateCells: &googleapi.UpdateCellsRequest{
			Range: googleapi.GridRange{
				SheetID:        sheetID,
				StartRowIndex:  0,
				EndRowIndex:    1,
				EndColumnIndex: int64(len(headers)),
			},
			Rows:   []googleapi.RowData{{Values: cells}},
			Fields: "userEnteredValue,userEnteredFormat",
		},
	}
}

// readmeRequests renders the full README tab content: a wholesale overwrite
// of the documentation, plus readable column widths.
func readmeRequests(sheetID int64, now time.Time) []googleapi.Request {
	content := schema.BuildReadme(now)
	headingRows := map[int]bool{}
	for _, idx := range schema.ReadmeHeaderRows(content) {
		headingRows[idx] = true
	}

	rows := make([]googleapi.RowData, 0, len(content))
	for i, line := range content {
		cells := make([]googleapi.CellData, 0, len(line))
		for _, value := range line {
			cell := googleapi.StringCell(value)
			format := &googleapi.CellFormat{WrapStrategy: "WRAP"}
			switch {
			case i == 0:
				format.TextFormat = &googleapi.TextFormat{Bold: true, FontSize: 16, ForegroundColor: &titleForeground}
				format.BackgroundColor = &titleBackground
			case headingRows[i]:
				format.TextFormat = &googleapi.TextFormat{Bold: true, FontSize: 12}
				format.BackgroundColor = &headerBackground
			}
			cell.UserEnteredFormat = format
			cells = append(cells, cell)
		}
		rows = append(rows, googleapi.RowData{Values: cells})
	}

	return []googleapi.Request{
		{
			UpdateCells: &googleapi.UpdateCellsRequest{
				Range: googleapi.GridRange{
					SheetID:        sheetID,
					StartRowIndex:  0,
					EndRowIndex:    int64(len(rows)),
					EndColumnIndex: 4,
				},
				Rows:   rows,
				Fields: "userEnteredValue,userEnteredFormat",
			},
		},
		{
			UpdateDimensionProperties: &googleapi.UpdateDimensionPropertiesRequest{
				Range: googleapi.DimensionRange{
					SheetID:   sheetID,
					Dimension: "COLUMNS",
					EndIndex:  1,
				},
				Properties: googleapi.DimensionProperties{PixelSize: 240},
				Fields:     "pixelSize",
			},
		},
		{
			UpdateDimensionProperties: &googleapi.UpdateDimensionPropertiesRequest{
				Range: googleapi.DimensionRange{
					SheetID:    sheetID,
					Dimension:  "COLUMNS",
					StartIndex: 1,
					EndIndex:   4,
				},
				Properties: googleapi.DimensionProperties{PixelSize: 280},
				Fields:     "pixelSize",
			},
		},
	}
}
