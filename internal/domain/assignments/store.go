package assignments

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("assignment not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const selectColumns = `
    a.assignment_id, a.course_id, c.course_name, f.name, a.title,
    COALESCE(a.description, ''), a.due_date, a.created_by, a.created_at`

// ListForSection returns every assignment for the section's courses with the
// course and faculty names embedded in the same call.
func (s *Store) ListForSection(ctx context.Context, sectionID int64) ([]Assignment, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+selectColumns+`
    FROM assignments a
    JOIN courses c ON a.course_id = c.course_id
    JOIN faculty f ON a.created_by = f.faculty_id
    WHERE c.section_id = $1
    ORDER BY a.due_date
  `, sectionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAssignments(rows)
}

func (s *Store) ListForFaculty(ctx context.Context, facultyID int64) ([]Assignment, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+selectColumns+`
    FROM assignments a
    JOIN courses c ON a.course_id = c.course_id
    JOIN faculty f ON a.created_by = f.faculty_id
    WHERE c.faculty_id = $1
    ORDER BY a.due_date
  `, facultyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAssignments(rows)
}

func scanAssignments(rows pgx.Rows) ([]Assignment, error) {
	var items []Assignment
	for rows.Next() {
		var a Assignment
		if err := rows.Scan(&a.AssignmentID, &a.CourseID, &a.CourseName, &a.FacultyName,
			&a.Title, &a.Description, &a.DueDate, &a.CreatedBy, &a.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

func (s *Store) Create(ctx context.Context, a Assignment) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO assignments (course_id, title, description, due_date, created_by)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING assignment_id
  `, a.CourseID, a.Title, a.Description, a.DueDate, a.CreatedBy).Scan(&id)
	return id, err
}

func (s *Store) Update(ctx context.Context, a Assignment) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE assignments
    SET title = $1, description = $2, due_date = $3
    WHERE assignment_id = $4 AND created_by = $5
  `, a.Title, a.Description, a.DueDate, a.AssignmentID, a.CreatedBy)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, assignmentID, facultyID int64) error {
	tag, err := s.DB.Exec(ctx, `
    DELETE FROM assignments
    WHERE assignment_id = $1 AND created_by = $2
  `, assignmentID, facultyID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
