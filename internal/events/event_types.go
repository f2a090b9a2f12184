package events

import (
	"time"

	"github.com/spec-kit/hospital-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventAppointmentBooked  EventType = "appointment_booked"
	EventAppointmentUpdated EventType = "appointment_updated"
	EventPrescriptionIssued EventType = "prescription_issued"
	EventPaymentVerified    EventType = "payment_verified"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Subject   string      `json:"subject"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// AppointmentBookedPayload payload.
type AppointmentBookedPayload struct {
	AppointmentID int64  `json:"appointment_id"`
	DoctorName    string `json:"doctor_name"`
	Date          string `json:"date"`
	Time          string `json:"time"`
}

// AppointmentUpdatedPayload payload.
type AppointmentUpdatedPayload struct {
	AppointmentID int64                    `json:"appointment_id"`
	OldStatus     domain.AppointmentStatus `json:"old_status"`
	NewStatus     domain.AppointmentStatus `json:"new_status"`
}

// PrescriptionIssuedPayload payload.
type PrescriptionIssuedPayload struct {
	PrescriptionID int64  `json:"prescription_id"`
	DoctorName     string `json:"doctor_name"`
	Fees           int    `json:"fees"`
}

// PaymentVerifiedPayload payload.
type PaymentVerifiedPayload struct {
	PrescriptionID int64  `json:"prescription_id"`
	OrderID        string `json:"order_id"`
}
