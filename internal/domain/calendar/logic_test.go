package calendar

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCoversInclusiveRange(t *testing.T) {
	event := Event{StartDate: date(2024, 5, 1), EndDate: date(2024, 5, 3)}

	for day := 1; day <= 3; day++ {
		if !Covers(event, date(2024, 5, day)) {
			t.Fatalf("expected 2024-05-%02d to be covered", day)
		}
	}
	if Covers(event, date(2024, 4, 30)) {
		t.Fatal("2024-04-30 must not be covered")
	}
	if Covers(event, date(2024, 5, 4)) {
		t.Fatal("2024-05-04 must not be covered")
	}
}

func TestCoversIgnoresTimeOfDay(t *testing.T) {
	event := Event{
		StartDate: time.Date(2024, 5, 1, 23, 30, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 5, 1, 23, 45, 0, 0, time.UTC),
	}
	morning := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	if !Covers(event, morning) {
		t.Fatal("coverage must compare calendar days, not timestamps")
	}
}

func TestEventsOn(t *testing.T) {
	events := []Event{
		{EventID: 1, StartDate: date(2024, 5, 1), EndDate: date(2024, 5, 3)},
		{EventID: 2, StartDate: date(2024, 5, 2), EndDate: date(2024, 5, 2)},
		{EventID: 3, StartDate: date(2024, 6, 1), EndDate: date(2024, 6, 1)},
	}

	got := EventsOn(events, date(2024, 5, 2))
	if len(got) != 2 {
		t.Fatalf("expected 2 events on 2024-05-02, got %d", len(got))
	}

	if Covered(events, date(2024, 5, 4)) {
		t.Fatal("2024-05-04 has no events")
	}
	if !Covered(events, date(2024, 6, 1)) {
		t.Fatal("2024-06-01 has an event")
	}
}

func TestMonthHighlights(t *testing.T) {
	events := []Event{
		{StartDate: date(2024, 5, 1), EndDate: date(2024, 5, 3)},
		{StartDate: date(2024, 5, 3), EndDate: date(2024, 5, 4)},
	}
	got := MonthHighlights(events, 2024, time.May)
	want := []int{1, 2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}

	if days := MonthHighlights(events, 2024, time.July); len(days) != 0 {
		t.Fatalf("expected no highlights in July, got %v", days)
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Summer Vacation", CategoryHoliday},
		{"Diwali Holiday", CategoryHoliday},
		{"Mid-term Exam", CategoryExam},
		{"Class Test 2", CategoryExam},
		{"Holiday before exam week", CategoryHoliday},
		{"Sports Day", CategoryEvent},
		{"", CategoryEvent},
	}
	for _, tc := range cases {
		if got := Classify(tc.title); got != tc.want {
			t.Fatalf("Classify(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}
