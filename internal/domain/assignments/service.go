package assignments

import (
	"context"
	"time"
)

type Service struct {
	Store *Store
}

func NewService(store *Store) *Service {
	return &Service{Store: store}
}

func (s *Service) ForSection(ctx context.Context, sectionID int64, now time.Time) (Partitioned, error) {
	items, err := s.Store.ListForSection(ctx, sectionID)
	if err != nil {
		return Partitioned{}, err
	}
	return Partition(items, now), nil
}

func (s *Service) ForFaculty(ctx context.Context, facultyID int64, now time.Time) (Partitioned, error) {
	items, err := s.Store.ListForFaculty(ctx, facultyID)
	if err != nil {
		return Partitioned{}, err
	}
	return Partition(items, now), nil
}

func (s *Service) Create(ctx context.Context, a Assignment) (int64, error) {
	return s.Store.Create(ctx, a)
}

func (s *Service) Update(ctx context.Context, a Assignment) error {
	return s.Store.Update(ctx, a)
}

func (s *Service) Delete(ctx context.Context, assignmentID, facultyID int64) error {
	return s.Store.Delete(ctx, assignmentID, facultyID)
}
