package marks

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) ListForStudent(ctx context.Context, studentID int64) ([]Record, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT m.marks_id, m.student_id, m.course_id, c.course_name,
           m.internal1, m.internal2, m.internal3, m.semester_marks, m.cgpa
    FROM marks m
    JOIN courses c ON m.course_id = c.course_id
    WHERE m.student_id = $1
    ORDER BY c.course_name
  `, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.MarksID, &rec.StudentID, &rec.CourseID, &rec.CourseName,
			&rec.Internal1, &rec.Internal2, &rec.Internal3, &rec.SemesterMarks, &rec.CGPA); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func (s *Store) ListForCourse(ctx context.Context, courseID int64) ([]Record, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT m.marks_id, m.student_id, st.name, m.course_id,
           m.internal1, m.internal2, m.internal3, m.semester_marks, m.cgpa
    FROM marks m
    JOIN students st ON m.student_id = st.student_id
    WHERE m.course_id = $1
    ORDER BY st.name
  `, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.MarksID, &rec.StudentID, &rec.StudentName, &rec.CourseID,
			&rec.Internal1, &rec.Internal2, &rec.Internal3, &rec.SemesterMarks, &rec.CGPA); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// Upsert writes one mark row per (student, course). Nil fields overwrite to
// NULL, matching the teacher-entry form which always submits every column.
func (s *Store) Upsert(ctx context.Context, rec Record) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO marks (student_id, course_id, internal1, internal2, internal3, semester_marks, cgpa)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    ON CONFLICT (student_id, course_id) DO UPDATE SET
      internal1 = EXCLUDED.internal1,
      internal2 = EXCLUDED.internal2,
      internal3 = EXCLUDED.internal3,
      semester_marks = EXCLUDED.semester_marks,
      cgpa = EXCLUDED.cgpa
  `, rec.StudentID, rec.CourseID, rec.Internal1, rec.Internal2, rec.Internal3, rec.SemesterMarks, rec.CGPA)
	return err
}
