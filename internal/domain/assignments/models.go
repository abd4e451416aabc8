package assignments

import "time"

type Assignment struct {
	AssignmentID int64     `json:"assignmentId"`
	CourseID     int64     `json:"courseId"`
	CourseName   string    `json:"courseName,omitempty"`
	FacultyName  string    `json:"facultyName,omitempty"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	DueDate      time.Time `json:"dueDate"`
	CreatedBy    int64     `json:"createdBy"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Partitioned groups assignments relative to the current day. The split is
// computed at query time, never stored.
type Partitioned struct {
	Upcoming []Assignment `json:"upcoming"`
	Past     []Assignment `json:"past"`
}
