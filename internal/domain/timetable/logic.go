package timetable

import (
	"sort"
	"time"
)

// DayIndex maps a weekday name to its grid column, -1 for weekends or junk.
func DayIndex(day string) int {
	for i, name := range Weekdays {
		if name == day {
			return i
		}
	}
	return -1
}

// BuildGrid places every slot at its (period, weekday) cell. Slots landing
// on the same cell are appended, never overwritten; rows outside the 8x5
// frame are dropped.
func BuildGrid(slots []Slot) Grid {
	var grid Grid
	for _, slot := range slots {
		day := DayIndex(slot.DayOfWeek)
		if day < 0 || slot.Period < 1 || slot.Period > PeriodsPerDay {
			continue
		}
		grid.Cells[slot.Period-1][day] = append(grid.Cells[slot.Period-1][day], slot)
	}
	return grid
}

// ClassesOn lists the slots falling on the given weekday sorted by period,
// for the "today's classes" dashboard card. Weekends yield nothing.
func ClassesOn(slots []Slot, weekday time.Weekday) []Slot {
	name := weekday.String()
	var out []Slot
	for _, slot := range slots {
		if slot.DayOfWeek == name {
			out = append(out, slot)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Period < out[j].Period })
	return out
}
