package timetable

import (
	"testing"
	"time"
)

func TestBuildGridSharedCell(t *testing.T) {
	slots := []Slot{
		{TimetableID: 1, CourseID: 10, DayOfWeek: "Monday", Period: 3},
		{TimetableID: 2, CourseID: 20, DayOfWeek: "Monday", Period: 3},
		{TimetableID: 3, CourseID: 30, DayOfWeek: "Friday", Period: 8},
	}

	grid := BuildGrid(slots)

	cell := grid.Cells[2][0]
	if len(cell) != 2 {
		t.Fatalf("expected both Monday period-3 slots, got %d", len(cell))
	}
	if cell[0].CourseID != 10 || cell[1].CourseID != 20 {
		t.Fatalf("slots must coexist in the cell, got %+v", cell)
	}

	if len(grid.Cells[7][4]) != 1 {
		t.Fatalf("expected Friday period-8 slot, got %+v", grid.Cells[7][4])
	}
}

func TestBuildGridDropsOutOfRange(t *testing.T) {
	slots := []Slot{
		{DayOfWeek: "Saturday", Period: 1},
		{DayOfWeek: "Monday", Period: 0},
		{DayOfWeek: "Monday", Period: 9},
	}
	grid := BuildGrid(slots)
	for p := 0; p < PeriodsPerDay; p++ {
		for d := 0; d < 5; d++ {
			if len(grid.Cells[p][d]) != 0 {
				t.Fatalf("expected empty grid, found slot at period %d day %d", p+1, d)
			}
		}
	}
}

func TestClassesOn(t *testing.T) {
	slots := []Slot{
		{CourseID: 1, DayOfWeek: "Wednesday", Period: 5},
		{CourseID: 2, DayOfWeek: "Wednesday", Period: 1},
		{CourseID: 3, DayOfWeek: "Thursday", Period: 2},
	}

	got := ClassesOn(slots, time.Wednesday)
	if len(got) != 2 {
		t.Fatalf("expected 2 classes on Wednesday, got %d", len(got))
	}
	if got[0].Period != 1 || got[1].Period != 5 {
		t.Fatalf("classes must be ordered by period, got %+v", got)
	}

	if sunday := ClassesOn(slots, time.Sunday); len(sunday) != 0 {
		t.Fatalf("expected no classes on Sunday, got %+v", sunday)
	}
}

func TestDayIndex(t *testing.T) {
	if DayIndex("Monday") != 0 || DayIndex("Friday") != 4 {
		t.Fatal("weekday order broken")
	}
	if DayIndex("Sunday") != -1 || DayIndex("monday") != -1 {
		t.Fatal("unknown or miscased days must map to -1")
	}
}
