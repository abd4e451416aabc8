package leave

import (
	"errors"
	"strings"
)

const minReasonLength = 10

var (
	ErrReasonTooShort = errors.New("reason must be at least 10 characters")
	ErrMissingDates   = errors.New("from and to dates are required")
	ErrInvalidStatus  = errors.New("invalid leave status")
	ErrForbidden      = errors.New("forbidden")
	ErrNotEditable    = errors.New("only pending applications can be edited")
)

func ValidateReason(reason string) error {
	if len(strings.TrimSpace(reason)) < minReasonLength {
		return ErrReasonTooShort
	}
	return nil
}

func ValidStatus(status string) bool {
	for _, s := range Statuses {
		if s == status {
			return true
		}
	}
	return false
}

// CanEdit gates edits to the owner while the application is still Pending.
// The legacy UI only hid the edit button; here it is a hard precondition.
func CanEdit(app Application, studentID int64) error {
	if app.StudentID != studentID {
		return ErrForbidden
	}
	if app.Status != StatusPending {
		return ErrNotEditable
	}
	return nil
}
