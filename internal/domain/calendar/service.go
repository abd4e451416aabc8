package calendar

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

func (s *Service) Events(ctx context.Context) ([]Event, error) {
	return s.Store.List(ctx)
}

type DayView struct {
	Date    string  `json:"date"`
	Covered bool    `json:"covered"`
	Events  []Event `json:"events"`
}

func (s *Service) Day(ctx context.Context, day time.Time) (DayView, error) {
	events, err := s.Store.List(ctx)
	if err != nil {
		return DayView{}, err
	}
	onDay := EventsOn(events, day)
	return DayView{
		Date:    day.Format("2006-01-02"),
		Covered: len(onDay) > 0,
		Events:  onDay,
	}, nil
}

func (s *Service) Highlights(ctx context.Context, year int, month time.Month) ([]int, error) {
	events, err := s.Store.List(ctx)
	if err != nil {
		return nil, err
	}
	return MonthHighlights(events, year, month), nil
}

func (s *Service) Create(ctx context.Context, event Event) (int64, error) {
	return s.Store.Create(ctx, event)
}

func (s *Service) Update(ctx context.Context, event Event) error {
	return s.Store.Update(ctx, event)
}

func (s *Service) Delete(ctx context.Context, eventID int64) error {
	return s.Store.Delete(ctx, eventID)
}
