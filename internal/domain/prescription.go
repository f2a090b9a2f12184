package domain

import "time"

// Prescription is the billable record gated by payment verification. OrderID
// is set when a payment order is created for it; Paid flips only after the
// gateway signature for that order verifies.
type Prescription struct {
	ID           int64
	PatientName  string
	DoctorName   string
	PatientEmail string
	Date         time.Time
	Issued       bool
	Paid         bool
	Instructions string
	Medicines    []string
	Fees         int
	OrderID      string
}
