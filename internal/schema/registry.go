package schema

// Version is the current schema version of the backing spreadsheet. Every
// change to a table's shape (new column, new table, rename) must increment
// it; the reconciler compares it against the version stored in Config.
//
// History:
//
//	1 - initial layout (Classes, Students, Tests, Submissions, Rubrics, Config)
//	2 - Tests gained grading_system/max_score/drive_folder_id
//	3 - SubmissionDetails table added
const Version = 3

// VersionKey is the Config row under which the provisioned version is stored.
const VersionKey = "schema_version"

// Table (tab) names in the backing spreadsheet.
const (
	TableReadme            = "README"
	TableClasses           = "Classes"
	TableStudents          = "Students"
	TableTests             = "Tests"
	TableSubmissions       = "Submissions"
	TableSubmissionDetails = "SubmissionDetails"
	TableRubrics           = "Rubrics"
	TableConfig            = "Config"
)

// tableOrder fixes the tab order for a freshly provisioned spreadsheet.
var tableOrder = []string{
	TableReadme,
	TableClasses,
	TableStudents,
	TableTests,
	TableSubmissions,
	TableSubmissionDetails,
	TableRubrics,
	TableConfig,
}

// tableHeaders declares every data table's ordered column list. Header lists
// are append-only once a table is live: reordering or removing a column
// would silently corrupt every existing row.
var tableHeaders = map[string][]string{
	TableClasses: {
		"id", "subject", "class_name", "grade_level", "school_year", "created_at",
	},
	TableStudents: {
		"id", "class_name", "school_year", "name", "student_num",
	},
	TableTests: {
		"id", "name", "type", "class_ids", "given_at", "deadline",
		"grading_system", "max_score", "status", "drive_folder_id", "created_at",
	},
	TableSubmissions: {
		"id", "test_id", "student_id", "class_id", "status", "grade", "ai_grade",
		"drive_file_ids", "notes", "corrected_at", "created_at",
	},
	TableSubmissionDetails: {
		"id", "submission_id", "file_id", "question_num", "mistake_type",
		"description", "points_deducted", "ai_notes", "teacher_notes", "ai_confidence",
	},
	TableRubrics: {
		"id", "test_id", "question_num", "answer_key", "partial_credit", "max_points",
	},
	TableConfig: {
		"key", "value",
	},
}

// Tables returns every declared tab name in provisioning order, README
// included.
func Tables() []string {
	out := make([]string, len(tableOrder))
	copy(out, tableOrder)
	return out
}

// DataTables returns the tables that carry entity rows, in order.
func DataTables() []string {
	out := make([]string, 0, len(tableOrder)-1)
	for _, name := range tableOrder {
		if name != TableReadme {
			out = append(out, name)
		}
	}
	return out
}

// Headers returns the ordered column list for a data table, or nil for
// README and unknown tables. Callers must not mutate the result.
func Headers(table string) []string {
	return tableHeaders[table]
}
