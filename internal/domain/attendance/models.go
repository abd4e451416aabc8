package attendance

import "time"

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
	StatusLate    = "Late"
	StatusExcused = "Excused"
)

var Statuses = []string{StatusPresent, StatusAbsent, StatusLate, StatusExcused}

type Record struct {
	AttendanceID int64     `json:"attendanceId"`
	StudentID    int64     `json:"studentId"`
	CourseID     int64     `json:"courseId"`
	CourseName   string    `json:"courseName,omitempty"`
	Date         time.Time `json:"date"`
	Status       string    `json:"status"`
}

type CourseSummary struct {
	CourseID   int64  `json:"courseId"`
	CourseName string `json:"courseName,omitempty"`
	Present    int    `json:"present"`
	Absent     int    `json:"absent"`
	Total      int    `json:"total"`
	Percentage int    `json:"percentage"`
}

type OverallSummary struct {
	Present    int `json:"present"`
	Absent     int `json:"absent"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

type Summary struct {
	Overall OverallSummary  `json:"overall"`
	Courses []CourseSummary `json:"courses"`
}
