package attendance

import (
	"context"
	"fmt"
	"time"
)

type Service struct {
	Store *Store
}

func NewService(store *Store) *Service {
	return &Service{Store: store}
}

func (s *Service) RecordsForStudent(ctx context.Context, studentID, courseID int64, limit, offset int) ([]Record, error) {
	return s.Store.ListForStudent(ctx, studentID, courseID, limit, offset)
}

// SummaryForStudent fetches the student's rows and aggregates them. An
// unknown student simply produces the all-zero summary. The summary always
// reads the full history, never a page of it.
func (s *Service) SummaryForStudent(ctx context.Context, studentID, courseID int64) (Summary, error) {
	records, err := s.Store.ListForStudent(ctx, studentID, courseID, 0, 0)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(records), nil
}

func (s *Service) SessionForCourse(ctx context.Context, courseID int64, date time.Time) ([]Record, error) {
	return s.Store.ListForCourseOnDate(ctx, courseID, date)
}

func (s *Service) MarkSession(ctx context.Context, courseID int64, date time.Time, entries []Entry) error {
	for _, entry := range entries {
		if !ValidStatus(entry.Status) {
			return fmt.Errorf("invalid attendance status %q", entry.Status)
		}
	}
	return s.Store.SaveSession(ctx, courseID, date, entries)
}
