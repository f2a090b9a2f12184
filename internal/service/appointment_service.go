package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/hospital-service/internal/domain"
	"github.com/spec-kit/hospital-service/internal/events"
	"github.com/spec-kit/hospital-service/internal/repository"
	"github.com/spec-kit/hospital-service/pkg/util"
)

// AppointmentService manages bookings between patients and doctors.
type AppointmentService struct {
	appointments repository.AppointmentRepository
	doctors      repository.DoctorRepository
	dispatcher   events.Dispatcher
}

// NewAppointmentService builds the service.
func NewAppointmentService(appointments repository.AppointmentRepository, doctors repository.DoctorRepository, dispatcher events.Dispatcher) *AppointmentService {
	return &AppointmentService{appointments: appointments, doctors: doctors, dispatcher: dispatcher}
}

// Book creates a pending appointment and announces it.
func (s *AppointmentService) Book(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	appointment.Status = domain.AppointmentStatusPending
	if err := s.appointments.Create(ctx, appointment); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventAppointmentBooked,
			Subject:   appointment.PatientEmail,
			Timestamp: time.Now(),
			Payload: events.AppointmentBookedPayload{
				AppointmentID: appointment.ID,
				DoctorName:    appointment.DoctorName,
				Date:          appointment.Date,
				Time:          appointment.Time,
			},
		})
	}
	return appointment, nil
}

// ForPatient lists a patient's own appointments.
func (s *AppointmentService) ForPatient(ctx context.Context, email string) ([]domain.Appointment, error) {
	return s.appointments.ListByPatientEmail(ctx, email)
}

// ForDoctor lists appointments booked with the doctor identified by email.
func (s *AppointmentService) ForDoctor(ctx context.Context, doctorEmail string) ([]domain.Appointment, error) {
	doctor, err := s.doctors.GetByEmail(ctx, doctorEmail)
	if err != nil {
		return nil, err
	}
	return s.appointments.ListByDoctorName(ctx, doctor.DisplayName())
}

// All lists every appointment.
func (s *AppointmentService) All(ctx context.Context) ([]domain.Appointment, error) {
	return s.appointments.List(ctx)
}

// UpdateStatus transitions an appointment and announces the change.
func (s *AppointmentService) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) (*domain.Appointment, error) {
	if !status.Valid() {
		return nil, util.NewValidationError("unknown appointment status", map[string]any{"status": string(status)})
	}

	current, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.appointments.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventAppointmentUpdated,
			Subject:   updated.PatientEmail,
			Timestamp: time.Now(),
			Payload: events.AppointmentUpdatedPayload{
				AppointmentID: updated.ID,
				OldStatus:     current.Status,
				NewStatus:     updated.Status,
			},
		})
	}
	return updated, nil
}
