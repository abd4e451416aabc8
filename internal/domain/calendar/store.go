package calendar

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("calendar event not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) List(ctx context.Context) ([]Event, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT event_id, title, COALESCE(description, ''), start_date, end_date
    FROM academiccalendar
    ORDER BY start_date, event_id
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var event Event
		if err := rows.Scan(&event.EventID, &event.Title, &event.Description, &event.StartDate, &event.EndDate); err != nil {
			return nil, err
		}
		event.Category = Classify(event.Title)
		events = append(events, event)
	}
	return events, nil
}

func (s *Store) Create(ctx context.Context, event Event) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO academiccalendar (title, description, start_date, end_date)
    VALUES ($1, $2, $3, $4)
    RETURNING event_id
  `, event.Title, event.Description, event.StartDate, event.EndDate).Scan(&id)
	return id, err
}

func (s *Store) Update(ctx context.Context, event Event) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE academiccalendar
    SET title = $1, description = $2, start_date = $3, end_date = $4
    WHERE event_id = $5
  `, event.Title, event.Description, event.StartDate, event.EndDate, event.EventID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, eventID int64) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM academiccalendar WHERE event_id = $1", eventID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
