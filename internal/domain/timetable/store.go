package timetable

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const selectColumns = `
    t.timetable_id, t.course_id, c.course_name, t.section_id, s.name,
    t.day_of_week, t.period, COALESCE(t.time_slot, '')`

func (s *Store) ForSection(ctx context.Context, sectionID int64) ([]Slot, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+selectColumns+`
    FROM timetable t
    JOIN courses c ON t.course_id = c.course_id
    JOIN sections s ON t.section_id = s.section_id
    WHERE t.section_id = $1
    ORDER BY t.period
  `, sectionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSlots(rows)
}

func (s *Store) ForFaculty(ctx context.Context, facultyID int64) ([]Slot, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+selectColumns+`
    FROM timetable t
    JOIN courses c ON t.course_id = c.course_id
    JOIN sections s ON t.section_id = s.section_id
    WHERE c.faculty_id = $1
    ORDER BY t.period
  `, facultyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSlots(rows)
}

func scanSlots(rows pgx.Rows) ([]Slot, error) {
	var slots []Slot
	for rows.Next() {
		var slot Slot
		if err := rows.Scan(&slot.TimetableID, &slot.CourseID, &slot.CourseName,
			&slot.SectionID, &slot.SectionName, &slot.DayOfWeek, &slot.Period, &slot.TimeSlot); err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, rows.Err()
}
