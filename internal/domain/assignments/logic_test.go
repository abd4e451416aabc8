package assignments

import (
	"testing"
	"time"
)

func TestPartitionBoundary(t *testing.T) {
	now := time.Date(2024, 6, 10, 15, 30, 0, 0, time.UTC)
	items := []Assignment{
		{AssignmentID: 1, DueDate: time.Date(2024, 6, 9, 23, 59, 0, 0, time.UTC)},
		{AssignmentID: 2, DueDate: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)},
		{AssignmentID: 3, DueDate: time.Date(2024, 6, 11, 9, 0, 0, 0, time.UTC)},
	}

	got := Partition(items, now)
	if len(got.Past) != 1 || got.Past[0].AssignmentID != 1 {
		t.Fatalf("expected assignment 1 in past, got %+v", got.Past)
	}
	if len(got.Upcoming) != 2 {
		t.Fatalf("expected 2 upcoming, got %d", len(got.Upcoming))
	}
	if got.Upcoming[0].AssignmentID != 2 || got.Upcoming[1].AssignmentID != 3 {
		t.Fatalf("due today must stay upcoming: %+v", got.Upcoming)
	}
}

func TestPartitionEmpty(t *testing.T) {
	got := Partition(nil, time.Now())
	if len(got.Upcoming) != 0 || len(got.Past) != 0 {
		t.Fatalf("expected empty partition, got %+v", got)
	}
}
