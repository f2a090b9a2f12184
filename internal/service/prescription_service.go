package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/hospital-service/internal/domain"
	"github.com/spec-kit/hospital-service/internal/events"
	"github.com/spec-kit/hospital-service/internal/repository"
)

// PrescriptionService manages issuing and listing prescriptions.
type PrescriptionService struct {
	prescriptions repository.PrescriptionRepository
	dispatcher    events.Dispatcher
}

// NewPrescriptionService builds the service.
func NewPrescriptionService(prescriptions repository.PrescriptionRepository, dispatcher events.Dispatcher) *PrescriptionService {
	return &PrescriptionService{prescriptions: prescriptions, dispatcher: dispatcher}
}

// Issue records a new prescription for a patient.
func (s *PrescriptionService) Issue(ctx context.Context, prescription *domain.Prescription) (*domain.Prescription, error) {
	prescription.Issued = true
	if err := s.prescriptions.Create(ctx, prescription); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventPrescriptionIssued,
			Subject:   prescription.PatientEmail,
			Timestamp: time.Now(),
			Payload: events.PrescriptionIssuedPayload{
				PrescriptionID: prescription.ID,
				DoctorName:     prescription.DoctorName,
				Fees:           prescription.Fees,
			},
		})
	}
	return prescription, nil
}

// ForPatient lists the logged-in patient's prescriptions.
func (s *PrescriptionService) ForPatient(ctx context.Context, email string) ([]domain.Prescription, error) {
	return s.prescriptions.ListByPatientEmail(ctx, email)
}
