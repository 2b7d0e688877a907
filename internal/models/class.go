package models

// Class is one subject taught to one class group in one school year
// (e.g. Mathematics for 5A in 2025-2026).
type Class struct {
	ID         string `json:"id"`
	Subject    string `json:"subject"`
	ClassName  string `json:"class_name"`
	GradeLevel int    `json:"grade_level"`
	SchoolYear string `json:"school_year"`
	CreatedAt  string `json:"created_at"`
}

// MinGradeLevel and MaxGradeLevel bound the supported grade range.
const (
	MinGradeLevel = 5
	MaxGradeLevel = 8
)

// Record flattens the class into its sheet row form.
func (c Class) Record() map[string]string {
	return map[string]string{
		"id":          c.ID,
		"subject":     c.Subject,
		"class_name":  c.ClassName,
		"grade_level": formatInt(c.GradeLevel),
		"school_year": c.SchoolYear,
		"created_at":  c.CreatedAt,
	}
}

// ClassFromRecord builds a typed class from a decoded sheet row.
func ClassFromRecord(rec map[string]string) Class {
	return Class{
		ID:         rec["id"],
		Subject:    rec["subject"],
		ClassName:  rec["class_name"],
		GradeLevel: parseInt(rec["grade_level"]),
		SchoolYear: rec["school_year"],
		CreatedAt:  rec["created_at"],
	}
}
