package models

// Rubric is the answer key for one question of one test.
type Rubric struct {
	ID            string  `json:"id"`
	TestID        string  `json:"test_id"`
	QuestionNum   int     `json:"question_num"`
	AnswerKey     string  `json:"answer_key"`
	PartialCredit string  `json:"partial_credit,omitempty"`
	MaxPoints     float64 `json:"max_points"`
}

// Record flattens the rubric into its sheet row form.
func (r Rubric) Record() map[string]string {
	return map[string]string{
		"id":             r.ID,
		"test_id":        r.TestID,
		"question_num":   formatInt(r.QuestionNum),
		"answer_key":     r.AnswerKey,
		"partial_credit": r.PartialCredit,
		"max_points":     formatFloat(r.MaxPoints),
	}
}

// RubricFromRecord builds a typed rubric from a decoded sheet row.
func RubricFromRecord(rec map[string]string) Rubric {
	return Rubric{
		ID:            rec["id"],
		TestID:        rec["test_id"],
		QuestionNum:   parseInt(rec["question_num"]),
		AnswerKey:     rec["answer_key"],
		PartialCredit: rec["partial_credit"],
		MaxPoints:     parseFloat(rec["max_points"]),
	}
}
