package leave

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("leave application not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) Get(ctx context.Context, leaveID int64) (Application, error) {
	var app Application
	err := s.DB.QueryRow(ctx, `
    SELECT leave_id, student_id, from_date, to_date, reason, COALESCE(proof_url, ''), status, reviewed_by
    FROM leaveapplications
    WHERE leave_id = $1
  `, leaveID).Scan(&app.LeaveID, &app.StudentID, &app.FromDate, &app.ToDate,
		&app.Reason, &app.ProofURL, &app.Status, &app.ReviewedBy)
	if errors.Is(err, pgx.ErrNoRows) {
		return Application{}, ErrNotFound
	}
	return app, err
}

func (s *Store) Create(ctx context.Context, app Application) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO leaveapplications (student_id, from_date, to_date, reason, proof_url, status)
    VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
    RETURNING leave_id
  `, app.StudentID, app.FromDate, app.ToDate, app.Reason, app.ProofURL, StatusPending).Scan(&id)
	return id, err
}

func (s *Store) Update(ctx context.Context, app Application) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE leaveapplications
    SET from_date = $1, to_date = $2, reason = $3, proof_url = NULLIF($4, '')
    WHERE leave_id = $5
  `, app.FromDate, app.ToDate, app.Reason, app.ProofURL, app.LeaveID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SetStatus stamps the reviewer on every transition, including a reset back
// to Pending. Prior reviewers are not kept anywhere.
func (s *Store) SetStatus(ctx context.Context, leaveID int64, status string, reviewerID int64) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE leaveapplications
    SET status = $1, reviewed_by = $2
    WHERE leave_id = $3
  `, status, reviewerID, leaveID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) ListForStudent(ctx context.Context, studentID int64) ([]Application, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT leave_id, student_id, from_date, to_date, reason, COALESCE(proof_url, ''), status, reviewed_by
    FROM leaveapplications
    WHERE student_id = $1
    ORDER BY from_date DESC, leave_id DESC
  `, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []Application
	for rows.Next() {
		var app Application
		if err := rows.Scan(&app.LeaveID, &app.StudentID, &app.FromDate, &app.ToDate,
			&app.Reason, &app.ProofURL, &app.Status, &app.ReviewedBy); err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, nil
}

// ListForReviewer returns applications from students in any section where the
// reviewer teaches at least one course, optionally narrowed to one section.
func (s *Store) ListForReviewer(ctx context.Context, facultyID, sectionID int64) ([]Application, error) {
	query := `
    SELECT l.leave_id, l.student_id, st.name, st.section_id,
           l.from_date, l.to_date, l.reason, COALESCE(l.proof_url, ''), l.status, l.reviewed_by
    FROM leaveapplications l
    JOIN students st ON l.student_id = st.student_id
    WHERE st.section_id IN (
      SELECT DISTINCT section_id FROM courses WHERE faculty_id = $1
    )
  `
	args := []any{facultyID}
	if sectionID != 0 {
		query += " AND st.section_id = $2"
		args = append(args, sectionID)
	}
	query += " ORDER BY l.from_date DESC, l.leave_id DESC"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []Application
	for rows.Next() {
		var app Application
		if err := rows.Scan(&app.LeaveID, &app.StudentID, &app.StudentName, &app.SectionID,
			&app.FromDate, &app.ToDate, &app.Reason, &app.ProofURL, &app.Status, &app.ReviewedBy); err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, nil
}
