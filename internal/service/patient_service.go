package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/hospital-service/internal/auth"
	"github.com/spec-kit/hospital-service/internal/domain"
	"github.com/spec-kit/hospital-service/internal/repository"
)

// ErrEmailAlreadyRegistered is returned when a registration reuses an email.
var ErrEmailAlreadyRegistered = errors.New("email already registered")

// PatientRegistration carries the fields needed to create a patient account.
type PatientRegistration struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	PhoneNumber string
	Gender      string
	DateOfBirth string
	Address     string
	City        string
	State       string
	Country     string
}

// PatientService manages patient accounts and profiles.
type PatientService struct {
	users      repository.UserRepository
	patients   repository.PatientRepository
	bcryptCost int
}

// NewPatientService builds the service.
func NewPatientService(users repository.UserRepository, patients repository.PatientRepository, bcryptCost int) *PatientService {
	return &PatientService{users: users, patients: patients, bcryptCost: bcryptCost}
}

// Register creates the credential record and the patient profile. The
// credential row carries role PATIENT; the role lands in tokens on login.
func (s *PatientService) Register(ctx context.Context, reg PatientRegistration) (*domain.Patient, error) {
	email := strings.ToLower(reg.Email)
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailAlreadyRegistered
	} else if err != pgx.ErrNoRows {
		return nil, err
	}

	hash, err := auth.HashPassword(reg.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{Email: email, PasswordHash: hash, Role: domain.RolePatient}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	patient := &domain.Patient{
		UserID:      user.ID,
		FirstName:   reg.FirstName,
		LastName:    reg.LastName,
		Email:       email,
		PhoneNumber: reg.PhoneNumber,
		Gender:      reg.Gender,
		DateOfBirth: reg.DateOfBirth,
		Address:     reg.Address,
		City:        reg.City,
		State:       reg.State,
		Country:     reg.Country,
		Active:      true,
	}
	if err := s.patients.Create(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

// FetchAll returns every registered patient.
func (s *PatientService) FetchAll(ctx context.Context) ([]domain.Patient, error) {
	return s.patients.List(ctx)
}

// FetchByEmail returns a single patient profile.
func (s *PatientService) FetchByEmail(ctx context.Context, email string) (*domain.Patient, error) {
	return s.patients.GetByEmail(ctx, email)
}

// Update applies profile changes for the given email.
func (s *PatientService) Update(ctx context.Context, patient *domain.Patient) error {
	return s.patients.Update(ctx, patient)
}

// Delete removes the patient profile and its credential record.
func (s *PatientService) Delete(ctx context.Context, email string) error {
	if err := s.patients.DeleteByEmail(ctx, email); err != nil {
		return err
	}
	return s.users.DeleteByEmail(ctx, email)
}
