package models

// MistakeType categorises a flagged error.
type MistakeType string

// Mistake categories.
const (
	MistakeWrongFormula       MistakeType = "wrong_formula"
	MistakeCalculationError   MistakeType = "calculation_error"
	MistakeConceptError       MistakeType = "concept_error"
	MistakeTranscriptionError MistakeType = "transcription_error"
	MistakeIncomplete         MistakeType = "incomplete"
	MistakeOther              MistakeType = "other"
)

// Valid reports whether the mistake type is supported.
func (m MistakeType) Valid() bool {
	switch m {
	case MistakeWrongFormula, MistakeCalculationError, MistakeConceptError,
		MistakeTranscriptionError, MistakeIncomplete, MistakeOther:
		return true
	}
	return false
}

// SubmissionDetail is one flagged mistake on one submission.
type SubmissionDetail struct {
	ID             string      `json:"id"`
	SubmissionID   string      `json:"submission_id"`
	FileID         string      `json:"file_id,omitempty"`
	QuestionNum    int         `json:"question_num"`
	MistakeType    MistakeType `json:"mistake_type"`
	Description    string      `json:"description"`
	PointsDeducted float64     `json:"points_deducted"`
	AINotes        string      `json:"ai_notes,omitempty"`
	TeacherNotes   string      `json:"teacher_notes,omitempty"`
	AIConfidence   *float64    `json:"ai_confidence,omitempty"`
}

// Record flattens the detail into its sheet row form.
func (d SubmissionDetail) Record() map[string]string {
	return map[string]string{
		"id":              d.ID,
		"submission_id":   d.SubmissionID,
		"file_id":         d.FileID,
		"question_num":    formatInt(d.QuestionNum),
		"mistake_type":    string(d.MistakeType),
		"description":     d.Description,
		"points_deducted": formatFloat(d.PointsDeducted),
		"ai_notes":        d.AINotes,
		"teacher_notes":   d.TeacherNotes,
		"ai_confidence":   formatOptFloat(d.AIConfidence),
	}
}

// SubmissionDetailFromRecord builds a typed detail from a decoded sheet row.
func SubmissionDetailFromRecord(rec map[string]string) SubmissionDetail {
	return SubmissionDetail{
		ID:             rec["id"],
		SubmissionID:   rec["submission_id"],
		FileID:         rec["file_id"],
		QuestionNum:    parseInt(rec["question_num"]),
		MistakeType:    MistakeType(rec["mistake_type"]),
		Description:    rec["description"],
		PointsDeducted: parseFloat(rec["points_deducted"]),
		AINotes:        rec["ai_notes"],
		TeacherNotes:   rec["teacher_notes"],
		AIConfidence:   parseOptFloat(rec["ai_confidence"]),
	}
}
