package dto

// RubricCreateRequest describes the answer key for one test question.
type RubricCreateRequest struct {
	TestID        string  `json:"test_id" validate:"required"`
	QuestionNum   int     `json:"question_num" validate:"required,gte=1"`
	AnswerKey     string  `json:"answer_key" validate:"required"`
	PartialCredit string  `json:"partial_credit" validate:"omitempty"`
	MaxPoints     float64 `json:"max_points" validate:"required,gt=0"`
}

// RubricUpdateRequest describes a partial rubric update.
type RubricUpdateRequest struct {
	QuestionNum   *int     `json:"question_num" validate:"omitempty,gte=1"`
	AnswerKey     *string  `json:"answer_key" validate:"omitempty"`
	PartialCredit *string  `json:"partial_credit" validate:"omitempty"`
	MaxPoints     *float64 `json:"max_points" validate:"omitempty,gt=0"`
}
