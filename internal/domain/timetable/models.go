package timetable

const PeriodsPerDay = 8

// Weekdays in display order; day_of_week values match these exactly.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

type Slot struct {
	TimetableID int64  `json:"timetableId"`
	CourseID    int64  `json:"courseId"`
	CourseName  string `json:"courseName,omitempty"`
	SectionID   int64  `json:"sectionId"`
	SectionName string `json:"sectionName,omitempty"`
	DayOfWeek   string `json:"dayOfWeek"`
	Period      int    `json:"period"`
	TimeSlot    string `json:"timeSlot"`
}

// Grid is the 8 period x 5 weekday view. Cells[p][d] holds every slot in
// period p+1 on weekday d; co-scheduled slots share a cell.
type Grid struct {
	Cells [PeriodsPerDay][5][]Slot `json:"cells"`
}
