package models

// Student is one roster entry. Students join their class by the
// (class_name, school_year) pair rather than a Class id, so a single row
// serves every subject taught to that class group.
type Student struct {
	ID         string `json:"id"`
	ClassName  string `json:"class_name"`
	SchoolYear string `json:"school_year"`
	Name       string `json:"name"`
	StudentNum string `json:"student_num,omitempty"`
}

// Record flattens the student into its sheet row form.
func (s Student) Record() map[string]string {
	return map[string]string{
		"id":          s.ID,
		"class_name":  s.ClassName,
		"school_year": s.SchoolYear,
		"name":        s.Name,
		"student_num": s.StudentNum,
	}
}

// StudentFromRecord builds a typed student from a decoded sheet row.
func StudentFromRecord(rec map[string]string) Student {
	return Student{
		ID:         rec["id"],
		ClassName:  rec["class_name"],
		SchoolYear: rec["school_year"],
		Name:       rec["name"],
		StudentNum: rec["student_num"],
	}
}
