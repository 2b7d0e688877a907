package dto

// ClassCreateRequest describes the payload for creating a class.
type ClassCreateRequest struct {
	Subject    string `json:"subject" validate:"required,min=2"`
	ClassName  string `json:"class_name" validate:"required,min=1,max=10"`
	GradeLevel int    `json:"grade_level" validate:"required,gte=5,lte=8"`
	SchoolYear string `json:"school_year" validate:"required,min=4"`
}

// ClassUpdateRequest describes a partial class update.
type ClassUpdateRequest struct {
	Subject    *string `json:"subject" validate:"omitempty,min=2"`
	ClassName  *string `json:"class_name" validate:"omitempty,min=1,max=10"`
	GradeLevel *int    `json:"grade_level" validate:"omitempty,gte=5,lte=8"`
	SchoolYear *string `json:"school_year" validate:"omitempty,min=4"`
}
