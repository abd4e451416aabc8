package timetable

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

type WeekView struct {
	Grid  Grid   `json:"grid"`
	Today []Slot `json:"today"`
}

func (s *Service) WeekForSection(ctx context.Context, sectionID int64, now time.Time) (WeekView, error) {
	slots, err := s.Store.ForSection(ctx, sectionID)
	if err != nil {
		return WeekView{}, err
	}
	return WeekView{Grid: BuildGrid(slots), Today: ClassesOn(slots, now.Weekday())}, nil
}

func (s *Service) WeekForFaculty(ctx context.Context, facultyID int64, now time.Time) (WeekView, error) {
	slots, err := s.Store.ForFaculty(ctx, facultyID)
	if err != nil {
		return WeekView{}, err
	}
	return WeekView{Grid: BuildGrid(slots), Today: ClassesOn(slots, now.Weekday())}, nil
}
