package dto

// StudentCreateRequest describes the payload for adding a student to the
// roster.
type StudentCreateRequest struct {
	ClassName  string `json:"class_name" validate:"required,min=1,max=10"`
	SchoolYear string `json:"school_year" validate:"required,min=4"`
	Name       string `json:"name" validate:"required,min=2"`
	StudentNum string `json:"student_num" validate:"omitempty,max=20"`
}

// StudentUpdateRequest describes a partial student update.
type StudentUpdateRequest struct {
	ClassName  *string `json:"class_name" validate:"omitempty,min=1,max=10"`
	SchoolYear *string `json:"school_year" validate:"omitempty,min=4"`
	Name       *string `json:"name" validate:"omitempty,min=2"`
	StudentNum *string `json:"student_num" validate:"omitempty,max=20"`
}
