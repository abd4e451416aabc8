package core

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a profile lookup matches no row. Callers
// generally degrade to empty results instead of failing the whole screen.
var ErrNotFound = errors.New("not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) StudentByUserID(ctx context.Context, userID int64) (Student, error) {
	var out Student
	err := s.DB.QueryRow(ctx, `
    SELECT student_id, user_id, name, section_id, current_semester, year_of_admission
    FROM students
    WHERE user_id = $1
  `, userID).Scan(&out.StudentID, &out.UserID, &out.Name, &out.SectionID, &out.CurrentSemester, &out.YearOfAdmission)
	if errors.Is(err, pgx.ErrNoRows) {
		return Student{}, ErrNotFound
	}
	return out, err
}

func (s *Store) StudentByID(ctx context.Context, studentID int64) (Student, error) {
	var out Student
	err := s.DB.QueryRow(ctx, `
    SELECT student_id, user_id, name, section_id, current_semester, year_of_admission
    FROM students
    WHERE student_id = $1
  `, studentID).Scan(&out.StudentID, &out.UserID, &out.Name, &out.SectionID, &out.CurrentSemester, &out.YearOfAdmission)
	if errors.Is(err, pgx.ErrNoRows) {
		return Student{}, ErrNotFound
	}
	return out, err
}

func (s *Store) FacultyByUserID(ctx context.Context, userID int64) (Faculty, error) {
	var out Faculty
	err := s.DB.QueryRow(ctx, `
    SELECT faculty_id, user_id, name, department, designation
    FROM faculty
    WHERE user_id = $1
  `, userID).Scan(&out.FacultyID, &out.UserID, &out.Name, &out.Department, &out.Designation)
	if errors.Is(err, pgx.ErrNoRows) {
		return Faculty{}, ErrNotFound
	}
	return out, err
}

func (s *Store) ListSections(ctx context.Context) ([]Section, error) {
	rows, err := s.DB.Query(ctx, "SELECT section_id, name FROM sections ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []Section
	for rows.Next() {
		var sec Section
		if err := rows.Scan(&sec.SectionID, &sec.Name); err != nil {
			return nil, err
		}
		sections = append(sections, sec)
	}
	return sections, nil
}

func (s *Store) StudentsBySection(ctx context.Context, sectionID int64) ([]Student, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT student_id, user_id, name, section_id, current_semester, year_of_admission
    FROM students
    WHERE section_id = $1
    ORDER BY name
  `, sectionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []Student
	for rows.Next() {
		var st Student
		if err := rows.Scan(&st.StudentID, &st.UserID, &st.Name, &st.SectionID, &st.CurrentSemester, &st.YearOfAdmission); err != nil {
			return nil, err
		}
		students = append(students, st)
	}
	return students, nil
}

func (s *Store) CoursesByFaculty(ctx context.Context, facultyID int64) ([]Course, error) {
	return s.listCourses(ctx, "faculty_id", facultyID)
}

func (s *Store) CoursesBySection(ctx context.Context, sectionID int64) ([]Course, error) {
	return s.listCourses(ctx, "section_id", sectionID)
}

func (s *Store) listCourses(ctx context.Context, column string, id int64) ([]Course, error) {
	query := `
    SELECT course_id, course_name, faculty_id, section_id, semester, is_lab
    FROM courses
    WHERE ` + column + ` = $1
    ORDER BY course_name`
	rows, err := s.DB.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []Course
	for rows.Next() {
		var c Course
		if err := rows.Scan(&c.CourseID, &c.CourseName, &c.FacultyID, &c.SectionID, &c.Semester, &c.IsLab); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, nil
}

// TeachesSection reports whether the faculty member has at least one course
// in the section. Leave review visibility hangs off this check.
func (s *Store) TeachesSection(ctx context.Context, facultyID, sectionID int64) (bool, error) {
	var count int
	if err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1)
    FROM courses
    WHERE faculty_id = $1 AND section_id = $2
  `, facultyID, sectionID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
