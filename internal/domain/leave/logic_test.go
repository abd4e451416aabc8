package leave

import (
	"errors"
	"testing"
)

func TestValidateReason(t *testing.T) {
	if err := ValidateReason("too short"); !errors.Is(err, ErrReasonTooShort) {
		t.Fatalf("expected ErrReasonTooShort for 9 chars, got %v", err)
	}
	if err := ValidateReason("long enough"); err != nil {
		t.Fatalf("expected 11-char reason to pass, got %v", err)
	}
	if err := ValidateReason("exactly10!"); err != nil {
		t.Fatalf("expected exactly 10 chars to pass, got %v", err)
	}
	if err := ValidateReason("   padded   "); !errors.Is(err, ErrReasonTooShort) {
		t.Fatalf("surrounding whitespace must not count, got %v", err)
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range Statuses {
		if !ValidStatus(s) {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	if ValidStatus("pending") {
		t.Fatal("status values are case sensitive")
	}
	if ValidStatus("Cancelled") {
		t.Fatal("unknown status must be rejected")
	}
}

func TestCanEdit(t *testing.T) {
	app := Application{LeaveID: 1, StudentID: 7, Status: StatusPending}

	if err := CanEdit(app, 7); err != nil {
		t.Fatalf("owner must edit a pending application: %v", err)
	}
	if err := CanEdit(app, 8); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}

	app.Status = StatusApproved
	if err := CanEdit(app, 7); !errors.Is(err, ErrNotEditable) {
		t.Fatalf("expected ErrNotEditable once reviewed, got %v", err)
	}
}
