package attendance

import (
	"testing"
	"time"
)

func rec(courseID int64, status string) Record {
	return Record{CourseID: courseID, Status: status, Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)}
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)
	if summary.Overall.Percentage != 0 || summary.Overall.Total != 0 {
		t.Fatalf("expected all-zero summary, got %+v", summary.Overall)
	}
	if len(summary.Courses) != 0 {
		t.Fatalf("expected no course summaries, got %d", len(summary.Courses))
	}
}

func TestSummarizePerCourse(t *testing.T) {
	records := []Record{
		rec(1, StatusPresent),
		rec(1, StatusPresent),
		rec(1, StatusAbsent),
		rec(2, StatusPresent),
		rec(2, StatusAbsent),
		rec(2, StatusAbsent),
		rec(2, StatusAbsent),
	}

	summary := Summarize(records)
	if len(summary.Courses) != 2 {
		t.Fatalf("expected 2 course summaries, got %d", len(summary.Courses))
	}

	first := summary.Courses[0]
	if first.CourseID != 1 || first.Present != 2 || first.Absent != 1 || first.Total != 3 {
		t.Fatalf("unexpected course 1 summary: %+v", first)
	}
	if first.Percentage != 67 {
		t.Fatalf("expected 67%% for course 1, got %d", first.Percentage)
	}

	second := summary.Courses[1]
	if second.Percentage != 25 {
		t.Fatalf("expected 25%% for course 2, got %d", second.Percentage)
	}

	if summary.Overall.Present != 3 || summary.Overall.Absent != 4 || summary.Overall.Total != 7 {
		t.Fatalf("unexpected overall summary: %+v", summary.Overall)
	}
	if summary.Overall.Percentage != 43 {
		t.Fatalf("expected overall 43%%, got %d", summary.Overall.Percentage)
	}
}

func TestSummarizeLateAndExcusedCountTotalOnly(t *testing.T) {
	records := []Record{
		rec(1, StatusPresent),
		rec(1, StatusLate),
		rec(1, StatusExcused),
	}

	summary := Summarize(records)
	course := summary.Courses[0]
	if course.Total != 3 {
		t.Fatalf("expected total 3, got %d", course.Total)
	}
	if course.Present != 1 || course.Absent != 0 {
		t.Fatalf("late/excused must not hit the tallies: %+v", course)
	}
	if course.Percentage != 100 {
		t.Fatalf("expected 100%% from the lone present row, got %d", course.Percentage)
	}
}

func TestSummarizeNoPresentOrAbsent(t *testing.T) {
	records := []Record{rec(1, StatusLate), rec(1, StatusExcused)}
	summary := Summarize(records)
	if summary.Overall.Percentage != 0 {
		t.Fatalf("expected 0%% when only late/excused rows exist, got %d", summary.Overall.Percentage)
	}
	if summary.Overall.Total != 2 {
		t.Fatalf("expected total 2, got %d", summary.Overall.Total)
	}
}

func TestSummarizePercentageBounds(t *testing.T) {
	records := []Record{rec(1, StatusPresent), rec(1, StatusAbsent)}
	for i := 0; i < 50; i++ {
		records = append(records, rec(1, Statuses[i%len(Statuses)]))
	}
	summary := Summarize(records)
	if summary.Overall.Percentage < 0 || summary.Overall.Percentage > 100 {
		t.Fatalf("percentage out of range: %d", summary.Overall.Percentage)
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range Statuses {
		if !ValidStatus(s) {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	if ValidStatus("present") {
		t.Fatal("status values are case sensitive")
	}
	if ValidStatus("Sick") {
		t.Fatal("unknown status must be rejected")
	}
}
