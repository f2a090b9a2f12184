package domain

// AppointmentStatus represents lifecycle states for an appointment.
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "PENDING"
	AppointmentStatusConfirmed AppointmentStatus = "CONFIRMED"
	AppointmentStatusCancelled AppointmentStatus = "CANCELLED"
	AppointmentStatusCompleted AppointmentStatus = "COMPLETED"
)

// Valid reports whether the status is a known state.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed,
		AppointmentStatusCancelled, AppointmentStatusCompleted:
		return true
	}
	return false
}

// Appointment is a booking between a patient and a doctor. Date and Time are
// kept as the display strings the frontend submits.
type Appointment struct {
	ID           int64
	PatientName  string
	DoctorName   string
	Date         string
	Time         string
	PatientEmail string
	Status       AppointmentStatus
}
