package fees

import "time"

type Fee struct {
	FeeID       int64      `json:"feeId"`
	StudentID   int64      `json:"studentId"`
	Semester    int        `json:"semester"`
	TotalAmount float64    `json:"totalAmount"`
	PaidAmount  float64    `json:"paidAmount"`
	PaymentDate *time.Time `json:"paymentDate,omitempty"`
}

type Summary struct {
	TotalBilled float64 `json:"totalBilled"`
	TotalPaid   float64 `json:"totalPaid"`
	Balance     float64 `json:"balance"`
}
