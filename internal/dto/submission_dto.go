package dto

// SubmissionCreateRequest describes the payload for recording a single
// submission by hand. The usual path is bulk creation per test and class.
type SubmissionCreateRequest struct {
	TestID       string   `json:"test_id" validate:"required"`
	StudentID    string   `json:"student_id" validate:"required"`
	ClassID      string   `json:"class_id" validate:"required"`
	DriveFileIDs []string `json:"drive_file_ids" validate:"omitempty,dive,required"`
	Notes        string   `json:"notes" validate:"omitempty"`
}

// SubmissionUpdateRequest describes a partial submission update. Status is
// deliberately absent: state changes go through the transition endpoints.
type SubmissionUpdateRequest struct {
	Grade        *float64  `json:"grade" validate:"omitempty,gte=0"`
	AIGrade      *float64  `json:"ai_grade" validate:"omitempty,gte=0"`
	DriveFileIDs *[]string `json:"drive_file_ids" validate:"omitempty,dive,required"`
	Notes        *string   `json:"notes" validate:"omitempty"`
}

// SubmissionFinalizeRequest carries the grading outcome when a submission
// moves to corrected.
type SubmissionFinalizeRequest struct {
	Grade *float64 `json:"grade" validate:"omitempty,gte=0"`
	Notes *string  `json:"notes" validate:"omitempty"`
}

// BulkCreateSubmissionsRequest names the class whose enrolled students get
// a submission row for the test in the URL.
type BulkCreateSubmissionsRequest struct {
	ClassID string `json:"class_id" validate:"required"`
}

// SubmissionDetailCreateRequest describes one flagged mistake.
type SubmissionDetailCreateRequest struct {
	SubmissionID   string   `json:"submission_id" validate:"required"`
	FileID         string   `json:"file_id" validate:"omitempty"`
	QuestionNum    int      `json:"question_num" validate:"required,gte=1"`
	MistakeType    string   `json:"mistake_type" validate:"required,oneof=wrong_formula calculation_error concept_error transcription_error incomplete other"`
	Description    string   `json:"description" validate:"required"`
	PointsDeducted float64  `json:"points_deducted" validate:"gte=0"`
	AINotes        string   `json:"ai_notes" validate:"omitempty"`
	TeacherNotes   string   `json:"teacher_notes" validate:"omitempty"`
	AIConfidence   *float64 `json:"ai_confidence" validate:"omitempty,gte=0,lte=1"`
}

// SubmissionDetailUpdateRequest describes a partial mistake update.
type SubmissionDetailUpdateRequest struct {
	QuestionNum    *int     `json:"question_num" validate:"omitempty,gte=1"`
	MistakeType    *string  `json:"mistake_type" validate:"omitempty,oneof=wrong_formula calculation_error concept_error transcription_error incomplete other"`
	Description    *string  `json:"description" validate:"omitempty"`
	PointsDeducted *float64 `json:"points_deducted" validate:"omitempty,gte=0"`
	TeacherNotes   *string  `json:"teacher_notes" validate:"omitempty"`
}
