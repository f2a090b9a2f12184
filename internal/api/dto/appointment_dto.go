package dto

import "github.com/spec-kit/hospital-service/internal/domain"

// AppointmentRequest payload for booking an appointment.
type AppointmentRequest struct {
	PatientName  string `json:"patientName" validate:"required"`
	DoctorName   string `json:"doctorName" validate:"required"`
	Date         string `json:"date" validate:"required"`
	Time         string `json:"time" validate:"required"`
	PatientEmail string `json:"patientEmail" validate:"required,email"`
}

// AppointmentResponse is the outward appointment representation.
type AppointmentResponse struct {
	ID           int64  `json:"id"`
	PatientName  string `json:"patientName"`
	DoctorName   string `json:"doctorName"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	PatientEmail string `json:"patientEmail"`
	Status       string `json:"status"`
}

// NewAppointmentResponse maps the domain model.
func NewAppointmentResponse(a *domain.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:           a.ID,
		PatientName:  a.PatientName,
		DoctorName:   a.DoctorName,
		Date:         a.Date,
		Time:         a.Time,
		PatientEmail: a.PatientEmail,
		Status:       string(a.Status),
	}
}

// NewAppointmentResponses maps a slice.
func NewAppointmentResponses(items []domain.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(items))
	for i := range items {
		out = append(out, NewAppointmentResponse(&items[i]))
	}
	return out
}
