package assignments

import "time"

// Partition splits assignments into upcoming and past by comparing due dates
// at calendar-day granularity. Due today still counts as upcoming.
func Partition(items []Assignment, now time.Time) Partitioned {
	today := dayOf(now)
	var out Partitioned
	for _, item := range items {
		if dayOf(item.DueDate).Before(today) {
			out.Past = append(out.Past, item)
		} else {
			out.Upcoming = append(out.Upcoming, item)
		}
	}
	return out
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
