package googleapi

import (
	"context"
	"fmt"
	"net/url"
)

// DefaultSheetsBaseURL is the production Sheets API endpoint.
const DefaultSheetsBaseURL = "https://sheets.googleapis.com/v4/spreadsheets"

// Sheets exposes the narrow Sheets API surface the application needs:
// spreadsheet introspection/creation, value reads and writes, and batch
// structural updates.
type Sheets struct {
	client  *Client
	baseURL string
}

// NewSheets constructs the Sheets backend. An empty baseURL selects the
// production endpoint; tests point it at a local server.
func NewSheets(client *Client, baseURL string) *Sheets {
	if baseURL == "" {
		baseURL = DefaultSheetsBaseURL
	}
	return &Sheets{client: client, baseURL: baseURL}
}

// Spreadsheet is the subset of spreadsheet metadata the application reads.
type Spreadsheet struct {
	SpreadsheetID string                `json:"spreadsheetId,omitempty"`
	Properties    SpreadsheetProperties `json:"properties,omitempty"`
	Sheets        []Sheet               `json:"sheets,omitempty"`
}

// SpreadsheetProperties holds top-level spreadsheet attributes.
type SpreadsheetProperties struct {
	Title string `json:"title,omitempty"`
}

// Sheet is one tab inside a spreadsheet.
type Sheet struct {
	Properties SheetProperties `json:"properties"`
}

// SheetProperties identifies a tab by numeric id and title.
type SheetProperties struct {
	SheetID int64  `json:"sheetId,omitempty"`
	Title   string `json:"title,omitempty"`
}

// SheetByTitle returns the tab with the given title, if present.
func (s Spreadsheet) SheetByTitle(title string) (Sheet, bool) {
	for _, sheet := range s.Sheets {
		if sheet.Properties.Title == title {
			return sheet, true
		}
	}
	return Sheet{}, false
}

// Get fetches spreadsheet metadata, including the tab list.
func (s *Sheets) Get(ctx context.Context, spreadsheetID string) (Spreadsheet, error) {
	var out Spreadsheet
	endpoint := fmt.Sprintf("%s/%s", s.baseURL, spreadsheetID)
	if err := s.client.doJSON(ctx, "GET", endpoint, nil, &out, "sheets", "get"); err != nil {
		return Spreadsheet{}, err
	}
	return out, nil
}

// Create provisions a new spreadsheet with the given title and one empty tab
// per entry in sheetTitles, in order.
func (s *Sheets) Create(ctx context.Context, title string, sheetTitles []string) (Spreadsheet, error) {
	sheets := make([]Sheet, 0, len(sheetTitles))
	for _, name := range sheetTitles {
		sheets = append(sheets, Sheet{Properties: SheetProperties{Title: name}})
	}

	in := Spreadsheet{
		Properties: SpreadsheetProperties{Title: title},
		Sheets:     sheets,
	}

	var out Spreadsheet
	if err := s.client.doJSON(ctx, "POST", s.baseURL, in, &out, "sheets", "create"); err != nil {
		return Spreadsheet{}, err
	}
	return out, nil
}

// ValuesGet reads all cell values in the given A1 range. An empty range
// yields an empty slice, not an error.
func (s *Sheets) ValuesGet(ctx context.Context, spreadsheetID, valueRange string) ([][]string, error) {
	var out struct {
		Values [][]string `json:"values"`
	}

	endpoint := fmt.Sprintf("%s/%s/values/%s", s.baseURL, spreadsheetID, url.PathEscape(valueRange))
	if err := s.client.doJSON(ctx, "GET", endpoint, nil, &out, "sheets", "values.get"); err != nil {
		return nil, err
	}
	return out.Values, nil
}

// ValuesAppend appends rows after the last data row of the range's table.
// Values are written RAW so cell contents round-trip byte for byte.
func (s *Sheets) ValuesAppend(ctx context.Context, spreadsheetID, valueRange string, rows [][]string) error {
	in := map[string][][]string{"values": rows}
	endpoint := fmt.Sprintf("%s/%s/values/%s:append?valueInputOption=RAW", s.baseURL, spreadsheetID, url.PathEscape(valueRange))
	return s.client.doJSON(ctx, "POST", endpoint, in, nil, "sheets", "values.append")
}

// ValuesUpdate overwrites the cells of the given range in place.
func (s *Sheets) ValuesUpdate(ctx context.Context, spreadsheetID, valueRange string, rows [][]string) error {
	in := map[string][][]string{"values": rows}
	endpoint := fmt.Sprintf("%s/%s/values/%s?valueInputOption=RAW", s.baseURL, spreadsheetID, url.PathEscape(valueRange))
	return s.client.doJSON(ctx, "PUT", endpoint, in, nil, "sheets", "values.update")
}

// BatchUpdate applies structural requests (add tab, delete row, format cells)
// in one call.
func (s *Sheets) BatchUpdate(ctx context.Context, spreadsheetID string, requests []Request) error {
	in := map[string][]Request{"requests": requests}
	endpoint := fmt.Sprintf("%s/%s:batchUpdate", s.baseURL, spreadsheetID)
	return s.client.doJSON(ctx, "POST", endpoint, in, nil, "sheets", "batch_update")
}

// Request is the union of batchUpdate request kinds the application issues.
type Request struct {
	AddSheet                  *AddSheetRequest                  `json:"addSheet,omitempty"`
	DeleteDimension           *DeleteDimensionRequest           `json:"deleteDimension,omitempty"`
	UpdateCells               *UpdateCellsRequest               `json:"updateCells,omitempty"`
	UpdateDimensionProperties *UpdateDimensionPropertiesRequest `json:"updateDimensionProperties,omitempty"`
}

// AddSheetRequest creates a new tab.
type AddSheetRequest struct {
	Properties SheetProperties `json:"properties"`
}

// DeleteDimensionRequest removes a run of rows or columns.
type DeleteDimensionRequest struct {
	Range DimensionRange `json:"range"`
}

// DimensionRange addresses rows or columns [StartIndex, EndIndex) on a tab.
type DimensionRange struct {
	SheetID    int64  `json:"sheetId"`
	Dimension  string `json:"dimension"`
	StartIndex int64  `json:"startIndex"`
	EndIndex   int64  `json:"endIndex"`
}

// UpdateCellsRequest writes values and formatting to a grid range.
type UpdateCellsRequest struct {
	Range  GridRange `json:"range"`
	Rows   []RowData `json:"rows"`
	Fields string    `json:"fields"`
}

// GridRange addresses a rectangle of cells on a tab. End indexes are
// exclusive.
type GridRange struct {
	SheetID          int64 `json:"sheetId"`
	StartRowIndex    int64 `json:"startRowIndex"`
	EndRowIndex      int64 `json:"endRowIndex"`
	StartColumnIndex int64 `json:"startColumnIndex"`
	EndColumnIndex   int64 `json:"endColumnIndex"`
}

// RowData is one row of cell payloads in an UpdateCells request.
type RowData struct {
	Values []CellData `json:"values"`
}

// CellData carries a cell's value and optional formatting.
type CellData struct {
	UserEnteredValue  *ExtendedValue `json:"userEnteredValue,omitempty"`
	UserEnteredFormat *CellFormat    `json:"userEnteredFormat,omitempty"`
}

// ExtendedValue holds a typed cell value; only strings are written.
type ExtendedValue struct {
	StringValue *string `json:"stringValue,omitempty"`
}

// CellFormat carries the formatting subset used for headers and the README.
type CellFormat struct {
	TextFormat      *TextFormat `json:"textFormat,omitempty"`
	BackgroundColor *Color      `json:"backgroundColor,omitempty"`
	WrapStrategy    string      `json:"wrapStrategy,omitempty"`
}

// TextFormat styles cell text.
type TextFormat struct {
	Bold            bool   `json:"bold,omitempty"`
	FontSize        int64  `json:"fontSize,omitempty"`
	ForegroundColor *Color `json:"foregroundColor,omitempty"`
}

// Color is an RGB triple in the 0-1 range.
type Color struct {
	Red   float64 `json:"red,omitempty"`
	Green float64 `json:"green,omitempty"`
	Blue  float64 `json:"blue,omitempty"`
}

// UpdateDimensionPropertiesRequest sets row/column properties such as width.
type UpdateDimensionPropertiesRequest struct {
	Range      DimensionRange      `json:"range"`
	Properties DimensionProperties `json:"properties"`
	Fields     string              `json:"fields"`
}

// DimensionProperties holds the dimension attributes the application sets.
type DimensionProperties struct {
	PixelSize int64 `json:"pixelSize,omitempty"`
}

// StringCell builds a plain string cell.
func StringCell(value string) CellData {
	v := value
	return CellData{UserEnteredValue: &ExtendedValue{StringValue: &v}}
}
