package calendar

import (
	"strings"
	"time"
)

// Covers reports whether day falls inside the event's range, inclusive on
// both ends, comparing calendar days rather than timestamps.
func Covers(event Event, day time.Time) bool {
	d := dayOf(day)
	return !d.Before(dayOf(event.StartDate)) && !d.After(dayOf(event.EndDate))
}

// EventsOn lists the events covering the given day, for the detail pane.
func EventsOn(events []Event, day time.Time) []Event {
	var out []Event
	for _, event := range events {
		if Covers(event, day) {
			out = append(out, event)
		}
	}
	return out
}

// Covered is the highlight test: any event on the day.
func Covered(events []Event, day time.Time) bool {
	for _, event := range events {
		if Covers(event, day) {
			return true
		}
	}
	return false
}

// MonthHighlights returns the days of the month covered by any event.
func MonthHighlights(events []Event, year int, month time.Month) []int {
	var days []int
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	for day := first; day.Month() == month; day = day.AddDate(0, 0, 1) {
		if Covered(events, day) {
			days = append(days, day.Day())
		}
	}
	return days
}

// Classify buckets an event by title keywords. First match wins, checked in
// the order holiday, exam, event.
func Classify(title string) string {
	lowered := strings.ToLower(title)
	switch {
	case strings.Contains(lowered, "holiday") || strings.Contains(lowered, "vacation"):
		return CategoryHoliday
	case strings.Contains(lowered, "exam") || strings.Contains(lowered, "test"):
		return CategoryExam
	default:
		return CategoryEvent
	}
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
