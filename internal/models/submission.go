package models

// SubmissionStatus is the grading state of one student's work on one test.
type SubmissionStatus string

// Grading states.
const (
	SubmissionStatusNew        SubmissionStatus = "new"
	SubmissionStatusCorrecting SubmissionStatus = "correcting"
	SubmissionStatusCorrected  SubmissionStatus = "corrected"
	SubmissionStatusAbsent     SubmissionStatus = "absent"
)

// Valid reports whether the status is supported.
func (s SubmissionStatus) Valid() bool {
	switch s {
	case SubmissionStatusNew, SubmissionStatusCorrecting, SubmissionStatusCorrected, SubmissionStatusAbsent:
		return true
	}
	return false
}

// submissionTransitions is the full transition table. Every change of
// status is an explicit teacher action; nothing expires on its own.
var submissionTransitions = map[SubmissionStatus][]SubmissionStatus{
	SubmissionStatusNew:        {SubmissionStatusCorrecting, SubmissionStatusAbsent},
	SubmissionStatusCorrecting: {SubmissionStatusCorrected},
	SubmissionStatusCorrected:  {SubmissionStatusCorrecting},
	SubmissionStatusAbsent:     {SubmissionStatusNew},
}

// CanTransition reports whether moving from s to next is a legal step.
func (s SubmissionStatus) CanTransition(next SubmissionStatus) bool {
	for _, allowed := range submissionTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Submission is one student's attempt at one test.
type Submission struct {
	ID           string           `json:"id"`
	TestID       string           `json:"test_id"`
	StudentID    string           `json:"student_id"`
	ClassID      string           `json:"class_id"`
	Status       SubmissionStatus `json:"status"`
	Grade        *float64         `json:"grade,omitempty"`
	AIGrade      *float64         `json:"ai_grade,omitempty"`
	DriveFileIDs []string         `json:"drive_file_ids,omitempty"`
	Notes        string           `json:"notes,omitempty"`
	CorrectedAt  string           `json:"corrected_at,omitempty"`
	CreatedAt    string           `json:"created_at"`
}

// Record flattens the submission into its sheet row form.
func (s Submission) Record() map[string]string {
	return map[string]string{
		"id":             s.ID,
		"test_id":        s.TestID,
		"student_id":     s.StudentID,
		"class_id":       s.ClassID,
		"status":         string(s.Status),
		"grade":          formatOptFloat(s.Grade),
		"ai_grade":       formatOptFloat(s.AIGrade),
		"drive_file_ids": JoinCSV(s.DriveFileIDs),
		"notes":          s.Notes,
		"corrected_at":   s.CorrectedAt,
		"created_at":     s.CreatedAt,
	}
}

// SubmissionFromRecord builds a typed submission from a decoded sheet row.
func SubmissionFromRecord(rec map[string]string) Submission {
	return Submission{
		ID:           rec["id"],
		TestID:       rec["test_id"],
		StudentID:    rec["student_id"],
		ClassID:      rec["class_id"],
		Status:       SubmissionStatus(rec["status"]),
		Grade:        parseOptFloat(rec["grade"]),
		AIGrade:      parseOptFloat(rec["ai_grade"]),
		DriveFileIDs: SplitCSV(rec["drive_file_ids"]),
		Notes:        rec["notes"],
		CorrectedAt:  rec["corrected_at"],
		CreatedAt:    rec["created_at"],
	}
}
