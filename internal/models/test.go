package models

// TestType categorises an assessment.
type TestType string

// Supported assessment types.
const (
	TestTypeTest     TestType = "test"
	TestTypeHomework TestType = "homework"
	TestTypeProject  TestType = "project"
	TestTypeQuiz     TestType = "quiz"
)

// Valid reports whether the type is one of the supported values.
func (t TestType) Valid() bool {
	switch t {
	case TestTypeTest, TestTypeHomework, TestTypeProject, TestTypeQuiz:
		return true
	}
	return false
}

// SameDay reports whether the type must be handed in the day it is given.
// Tests and quizzes happen in class, so their deadline equals given_at.
func (t TestType) SameDay() bool {
	return t == TestTypeTest || t == TestTypeQuiz
}

// GradingSystem names the scale grades are recorded on.
type GradingSystem string

// Supported grading systems.
const (
	GradingSystemOneToTen     GradingSystem = "1-10"
	GradingSystemOneToHundred GradingSystem = "1-100"
	GradingSystemPercentage   GradingSystem = "percentage"
	GradingSystemPoints       GradingSystem = "points"
)

// Valid reports whether the grading system is supported.
func (g GradingSystem) Valid() bool {
	switch g {
	case GradingSystemOneToTen, GradingSystemOneToHundred, GradingSystemPercentage, GradingSystemPoints:
		return true
	}
	return false
}

// TestStatus is the lifecycle state of an assessment.
type TestStatus string

// Assessment lifecycle states.
const (
	TestStatusActive   TestStatus = "active"
	TestStatusArchived TestStatus = "archived"
)

// Valid reports whether the status is supported.
func (s TestStatus) Valid() bool {
	return s == TestStatusActive || s == TestStatusArchived
}

// Test is one assessment, assigned to one or more classes.
type Test struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Type          TestType      `json:"type"`
	ClassIDs      []string      `json:"class_ids"`
	GivenAt       string        `json:"given_at"`
	Deadline      string        `json:"deadline"`
	GradingSystem GradingSystem `json:"grading_system"`
	MaxScore      float64       `json:"max_score"`
	Status        TestStatus    `json:"status"`
	DriveFolderID string        `json:"drive_folder_id,omitempty"`
	CreatedAt     string        `json:"created_at"`
}

// Record flattens the test into its sheet row form. The class reference
// list is stored comma-joined.
func (t Test) Record() map[string]string {
	return map[string]string{
		"id":              t.ID,
		"name":            t.Name,
		"type":            string(t.Type),
		"class_ids":       JoinCSV(t.ClassIDs),
		"given_at":        t.GivenAt,
		"deadline":        t.Deadline,
		"grading_system":  string(t.GradingSystem),
		"max_score":       formatFloat(t.MaxScore),
		"status":          string(t.Status),
		"drive_folder_id": t.DriveFolderID,
		"created_at":      t.CreatedAt,
	}
}

// TestFromRecord builds a typed test from a decoded sheet row.
func TestFromRecord(rec map[string]string) Test {
	return Test{
		ID:            rec["id"],
		Name:          rec["name"],
		Type:          TestType(rec["type"]),
		ClassIDs:      SplitCSV(rec["class_ids"]),
		GivenAt:       rec["given_at"],
		Deadline:      rec["deadline"],
		GradingSystem: GradingSystem(rec["grading_system"]),
		MaxScore:      parseFloat(rec["max_score"]),
		Status:        TestStatus(rec["status"]),
		DriveFolderID: rec["drive_folder_id"],
		CreatedAt:     rec["created_at"],
	}
}

// AssignedTo reports whether the test is assigned to the given class.
func (t Test) AssignedTo(classID string) bool {
	for _, id := range t.ClassIDs {
		if id == classID {
			return true
		}
	}
	return false
}
