package dto

import (
	"time"

	"github.com/spec-kit/hospital-service/internal/domain"
)

// PatientRegistrationRequest payload for public patient registration.
type PatientRegistrationRequest struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Gender      string `json:"gender"`
	DateOfBirth string `json:"dateOfBirth"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Country     string `json:"country"`
}

// PatientUpdateRequest payload for profile updates.
type PatientUpdateRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Gender      string `json:"gender"`
	DateOfBirth string `json:"dateOfBirth"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Country     string `json:"country"`
}

// PatientResponse is the outward patient profile; the password hash never
// leaves the service.
type PatientResponse struct {
	PatientID        int64     `json:"patientId"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	Email            string    `json:"email"`
	PhoneNumber      string    `json:"phoneNumber"`
	Gender           string    `json:"gender"`
	DateOfBirth      string    `json:"dateOfBirth"`
	Address          string    `json:"address"`
	City             string    `json:"city"`
	State            string    `json:"state"`
	Country          string    `json:"country"`
	RegistrationDate time.Time `json:"registrationDate"`
	Active           bool      `json:"active"`
}

// NewPatientResponse maps the domain model.
func NewPatientResponse(p *domain.Patient) PatientResponse {
	return PatientResponse{
		PatientID:        p.PatientID,
		FirstName:        p.FirstName,
		LastName:         p.LastName,
		Email:            p.Email,
		PhoneNumber:      p.PhoneNumber,
		Gender:           p.Gender,
		DateOfBirth:      p.DateOfBirth,
		Address:          p.Address,
		City:             p.City,
		State:            p.State,
		Country:          p.Country,
		RegistrationDate: p.RegistrationDate,
		Active:           p.Active,
	}
}
