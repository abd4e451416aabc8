package leave

import "time"

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

var Statuses = []string{StatusPending, StatusApproved, StatusRejected}

type Application struct {
	LeaveID     int64     `json:"leaveId"`
	StudentID   int64     `json:"studentId"`
	StudentName string    `json:"studentName,omitempty"`
	SectionID   int64     `json:"sectionId,omitempty"`
	FromDate    time.Time `json:"fromDate"`
	ToDate      time.Time `json:"toDate"`
	Reason      string    `json:"reason"`
	ProofURL    string    `json:"proofUrl,omitempty"`
	Status      string    `json:"status"`
	ReviewedBy  *int64    `json:"reviewedBy"`
}
