package leave

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

// Create validates and files a new application; it always starts Pending
// with no reviewer.
func (s *Service) Create(ctx context.Context, studentID int64, reason string, from, to time.Time, proofURL string) (int64, error) {
	if err := ValidateReason(reason); err != nil {
		return 0, err
	}
	if from.IsZero() || to.IsZero() {
		return 0, ErrMissingDates
	}
	return s.Store.Create(ctx, Application{
		StudentID: studentID,
		FromDate:  from,
		ToDate:    to,
		Reason:    reason,
		ProofURL:  proofURL,
	})
}

// Edit rewrites an application's fields. Only the owner may edit and only
// while the application is still Pending.
func (s *Service) Edit(ctx context.Context, leaveID, studentID int64, reason string, from, to time.Time, proofURL string) error {
	if err := ValidateReason(reason); err != nil {
		return err
	}
	if from.IsZero() || to.IsZero() {
		return ErrMissingDates
	}

	app, err := s.Store.Get(ctx, leaveID)
	if err != nil {
		return err
	}
	if err := CanEdit(app, studentID); err != nil {
		return err
	}

	app.FromDate = from
	app.ToDate = to
	app.Reason = reason
	app.ProofURL = proofURL
	return s.Store.Update(ctx, app)
}

// Transition moves an application to any of the three statuses. Every
// transition is legal, including resets back to Pending, and the acting
// reviewer is stamped unconditionally.
func (s *Service) Transition(ctx context.Context, leaveID int64, status string, reviewerID int64) error {
	if !ValidStatus(status) {
		return ErrInvalidStatus
	}
	return s.Store.SetStatus(ctx, leaveID, status, reviewerID)
}

func (s *Service) ForStudent(ctx context.Context, studentID int64) ([]Application, error) {
	return s.Store.ListForStudent(ctx, studentID)
}

func (s *Service) ForReviewer(ctx context.Context, facultyID, sectionID int64) ([]Application, error) {
	return s.Store.ListForReviewer(ctx, facultyID, sectionID)
}
