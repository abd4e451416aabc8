package fees

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

func (s *Store) ListForStudent(ctx context.Context, studentID int64) ([]Fee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT fee_id, student_id, semester, total_amount, paid_amount, payment_date
    FROM fee
    WHERE student_id = $1
    ORDER BY semester
  `, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Fee
	for rows.Next() {
		var f Fee
		if err := rows.Scan(&f.FeeID, &f.StudentID, &f.Semester,
			&f.TotalAmount, &f.PaidAmount, &f.PaymentDate); err != nil {
			return nil, err
		}
		items = append(items, f)
	}
	return items, rows.Err()
}
