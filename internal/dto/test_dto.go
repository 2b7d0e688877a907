package dto

// TestCreateRequest describes the payload for creating an assessment.
type TestCreateRequest struct {
	Name          string   `json:"name" validate:"required,min=2"`
	Type          string   `json:"type" validate:"required,oneof=test homework project quiz"`
	ClassIDs      []string `json:"class_ids" validate:"required,min=1,dive,required"`
	GivenAt       string   `json:"given_at" validate:"required,datetime=2006-01-02"`
	Deadline      string   `json:"deadline" validate:"omitempty,datetime=2006-01-02"`
	GradingSystem string   `json:"grading_system" validate:"required,oneof=1-10 1-100 percentage points"`
	MaxScore      float64  `json:"max_score" validate:"required,gt=0"`
	DriveFolderID string   `json:"drive_folder_id" validate:"omitempty"`
}

// TestUpdateRequest describes a partial test update.
type TestUpdateRequest struct {
	Name          *string   `json:"name" validate:"omitempty,min=2"`
	Type          *string   `json:"type" validate:"omitempty,oneof=test homework project quiz"`
	ClassIDs      *[]string `json:"class_ids" validate:"omitempty,min=1,dive,required"`
	GivenAt       *string   `json:"given_at" validate:"omitempty,datetime=2006-01-02"`
	Deadline      *string   `json:"deadline" validate:"omitempty,datetime=2006-01-02"`
	GradingSystem *string   `json:"grading_system" validate:"omitempty,oneof=1-10 1-100 percentage points"`
	MaxScore      *float64  `json:"max_score" validate:"omitempty,gt=0"`
	Status        *string   `json:"status" validate:"omitempty,oneof=active archived"`
	DriveFolderID *string   `json:"drive_folder_id" validate:"omitempty"`
}
