package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

// ListForStudent returns a student's attendance rows with the course name
// embedded, oldest first. courseID narrows to one course when non-zero; a
// zero limit returns every row.
func (s *Store) ListForStudent(ctx context.Context, studentID, courseID int64, limit, offset int) ([]Record, error) {
	query := `
    SELECT a.attendance_id, a.student_id, a.course_id, c.course_name, a.date, a.status
    FROM attendance a
    JOIN courses c ON a.course_id = c.course_id
    WHERE a.student_id = $1
  `
	args := []any{studentID}
	if courseID != 0 {
		query += fmt.Sprintf(" AND a.course_id = $%d", len(args)+1)
		args = append(args, courseID)
	}
	query += " ORDER BY a.date, a.attendance_id"
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", len(args)+1)
		args = append(args, limit)
		if offset > 0 {
			query += fmt.Sprintf(" OFFSET $%d", len(args)+1)
			args = append(args, offset)
		}
	}

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.AttendanceID, &rec.StudentID, &rec.CourseID, &rec.CourseName, &rec.Date, &rec.Status); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func (s *Store) ListForCourseOnDate(ctx context.Context, courseID int64, date time.Time) ([]Record, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT a.attendance_id, a.student_id, a.course_id, c.course_name, a.date, a.status
    FROM attendance a
    JOIN courses c ON a.course_id = c.course_id
    WHERE a.course_id = $1 AND a.date = $2
    ORDER BY a.student_id
  `, courseID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.AttendanceID, &rec.StudentID, &rec.CourseID, &rec.CourseName, &rec.Date, &rec.Status); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

type Entry struct {
	StudentID int64  `json:"studentId"`
	Status    string `json:"status"`
}

// SaveSession upserts one row per student for a (course, date) roll call, so
// re-submitting the same register corrects it instead of duplicating rows.
func (s *Store) SaveSession(ctx context.Context, courseID int64, date time.Time, entries []Entry) error {
	for _, entry := range entries {
		if _, err := s.DB.Exec(ctx, `
      INSERT INTO attendance (student_id, course_id, date, status)
      VALUES ($1, $2, $3, $4)
      ON CONFLICT (student_id, course_id, date) DO UPDATE SET status = EXCLUDED.status
    `, entry.StudentID, courseID, date, entry.Status); err != nil {
			return err
		}
	}
	return nil
}
