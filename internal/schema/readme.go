package schema

import (
	"strconv"
	"strings"
	"time"
)

// tablePurposes feeds the README overview section.
var tablePurposes = map[string]string{
	TableClasses:           "Subject-class combinations (Math-5A, etc.), one row per subject and class",
	TableStudents:          "Student roster, shared across subjects via class_name + school_year",
	TableTests:             "Test and homework metadata, linked to Classes via class_ids",
	TableSubmissions:       "One student's work on one test; the unit of grading",
	TableSubmissionDetails: "Per-question mistakes flagged on a submission",
	TableRubrics:           "Answer keys per test question",
	TableConfig:            "App settings (key-value), including schema_version",
}

// BuildReadme renders the full README tab content from the registry. The tab
// is regenerated wholesale on every reconciliation and is never hand-edited.
func BuildReadme(now time.Time) [][]string {
	rows := [][]string{
		{"grAIde Data - README", "", "", ""},
		{"", "", "", ""},
		{"This spreadsheet holds all your grading data. You can view and edit it directly in Google Sheets.", "", "", ""},
		{"", "", "", ""},
		{"SHEETS OVERVIEW", "", "", ""},
		{"", "", "", ""},
		{"Sheet", "Purpose", "Columns", ""},
	}

	for _, table := range DataTables() {
		rows = append(rows, []string{
			table,
			tablePurposes[table],
			strings.Join(Headers(table), ", "),
			"",
		})
	}

	rows = append(rows,
		[]string{"", "", "", ""},
		[]string{"RELATIONSHIPS", "", "", ""},
		[]string{"", "", "", ""},
		[]string{"Classes -> Students", "Students join a class by class_name + school_year, shared across subjects", "", ""},
		[]string{"Classes -> Tests", "Tests list their classes in class_ids (comma-separated Classes.id values)", "", ""},
		[]string{"Tests + Students -> Submissions", "One submission per student per test (test_id, student_id)", "", ""},
		[]string{"Submissions -> SubmissionDetails", "Each submission can have many flagged mistakes (submission_id)", "", ""},
		[]string{"Tests -> Rubrics", "One rubric row per test question (test_id, question_num)", "", ""},
		[]string{"", "", "", ""},
		[]string{"EDITING", "", "", ""},
		[]string{"", "", "", ""},
		[]string{"You can edit:", "names, test metadata, grades, notes", "", ""},
		[]string{"Be careful:", "do not delete or change id columns, they carry the relationships", "", ""},
		[]string{"Do not edit:", "drive_folder_id, drive_file_ids (managed by grAIde)", "", ""},
		[]string{"", "", "", ""},
		[]string{"Schema version: " + strconv.Itoa(Version), "", "", ""},
		[]string{"Last updated: " + now.UTC().Format("2006-01-02"), "", "", ""},
	)

	return rows
}

// ReadmeHeaderRows reports which rows of the rendered README are section
// headings, for bold formatting when the tab is written.
func ReadmeHeaderRows(rows [][]string) []int {
	headers := []int{0}
	for i, row := range rows {
		if i == 0 || len(row) == 0 {
			continue
		}
		switch row[0] {
		case "SHEETS OVERVIEW", "RELATIONSHIPS", "EDITING", "Sheet":
			headers = append(headers, i)
		}
	}
	return headers
}
