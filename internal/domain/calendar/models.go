package calendar

import "time"

const (
	CategoryHoliday = "holiday"
	CategoryExam    = "exam"
	CategoryEvent   = "event"
)

type Event struct {
	EventID     int64     `json:"eventId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Category    string    `json:"category"`
}
