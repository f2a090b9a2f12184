package dto

import (
	"time"

	"github.com/spec-kit/hospital-service/internal/domain"
)

// PrescriptionRequest payload for issuing a prescription.
type PrescriptionRequest struct {
	PatientName  string   `json:"patientName" validate:"required"`
	PatientEmail string   `json:"patientEmail" validate:"required,email"`
	DoctorName   string   `json:"doctorName" validate:"required"`
	Instructions string   `json:"instructions"`
	Medicines    []string `json:"medicines"`
	Fees         int      `json:"fees" validate:"gte=0"`
}

// PrescriptionResponse is the outward prescription representation.
type PrescriptionResponse struct {
	ID           int64     `json:"id"`
	PatientName  string    `json:"patientName"`
	DoctorName   string    `json:"doctorName"`
	PatientEmail string    `json:"patientEmail"`
	Date         time.Time `json:"date"`
	Issued       bool      `json:"issued"`
	Paid         bool      `json:"paid"`
	Instructions string    `json:"instructions"`
	Medicines    []string  `json:"medicines"`
	Fees         int       `json:"fees"`
	OrderID      string    `json:"orderId,omitempty"`
}

// NewPrescriptionResponse maps the domain model.
func NewPrescriptionResponse(p *domain.Prescription) PrescriptionResponse {
	return PrescriptionResponse{
		ID:           p.ID,
		PatientName:  p.PatientName,
		DoctorName:   p.DoctorName,
		PatientEmail: p.PatientEmail,
		Date:         p.Date,
		Issued:       p.Issued,
		Paid:         p.Paid,
		Instructions: p.Instructions,
		Medicines:    p.Medicines,
		Fees:         p.Fees,
		OrderID:      p.OrderID,
	}
}

// NewPrescriptionResponses maps a slice.
func NewPrescriptionResponses(items []domain.Prescription) []PrescriptionResponse {
	out := make([]PrescriptionResponse, 0, len(items))
	for i := range items {
		out = append(out, NewPrescriptionResponse(&items[i]))
	}
	return out
}
