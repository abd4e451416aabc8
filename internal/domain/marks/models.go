package marks

type Record struct {
	MarksID       int64    `json:"marksId"`
	StudentID     int64    `json:"studentId"`
	CourseID      int64    `json:"courseId"`
	CourseName    string   `json:"courseName,omitempty"`
	StudentName   string   `json:"studentName,omitempty"`
	Internal1     *float64 `json:"internal1"`
	Internal2     *float64 `json:"internal2"`
	Internal3     *float64 `json:"internal3"`
	SemesterMarks *float64 `json:"semesterMarks"`
	CGPA          *float64 `json:"cgpa"`
}

// ReportRow is a mark record with the derived total and letter grade the
// student-facing screens show.
type ReportRow struct {
	Record
	Total *float64 `json:"total"`
	Grade string   `json:"grade"`
}

// InternalAverages holds the per-course class means a teacher sees. Each
// internal is averaged independently over the students who have a value.
type InternalAverages struct {
	Internal1 float64 `json:"internal1"`
	Internal2 float64 `json:"internal2"`
	Internal3 float64 `json:"internal3"`
	Students  int     `json:"students"`
}
