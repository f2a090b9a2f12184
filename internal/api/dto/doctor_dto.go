package dto

import (
	"time"

	"github.com/spec-kit/hospital-service/internal/domain"
)

// DoctorRequest payload for doctor registration.
type DoctorRequest struct {
	FirstName      string `json:"firstName" validate:"required"`
	LastName       string `json:"lastName" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	PhoneNumber    string `json:"phoneNumber" validate:"required"`
	Gender         string `json:"gender"`
	DateOfBirth    string `json:"dateOfBirth"`
	City           string `json:"city"`
	State          string `json:"state"`
	Country        string `json:"country"`
	Specialization string `json:"specialization" validate:"required"`
	BloodGroup     string `json:"bloodGroup"`
}

// DoctorUpdateRequest payload for profile updates.
type DoctorUpdateRequest struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	PhoneNumber    string `json:"phoneNumber"`
	Gender         string `json:"gender"`
	DateOfBirth    string `json:"dateOfBirth"`
	City           string `json:"city"`
	State          string `json:"state"`
	Country        string `json:"country"`
	Specialization string `json:"specialization"`
	BloodGroup     string `json:"bloodGroup"`
}

// DoctorResponse is the outward doctor profile.
type DoctorResponse struct {
	ID             int64     `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"email"`
	PhoneNumber    string    `json:"phoneNumber"`
	Gender         string    `json:"gender"`
	DateOfBirth    string    `json:"dateOfBirth"`
	City           string    `json:"city"`
	State          string    `json:"state"`
	Country        string    `json:"country"`
	JoiningDate    time.Time `json:"joiningDate"`
	Specialization string    `json:"specialization"`
	BloodGroup     string    `json:"bloodGroup"`
}

// NewDoctorResponse maps the domain model.
func NewDoctorResponse(d *domain.Doctor) DoctorResponse {
	return DoctorResponse{
		ID:             d.ID,
		FirstName:      d.FirstName,
		LastName:       d.LastName,
		Email:          d.Email,
		PhoneNumber:    d.PhoneNumber,
		Gender:         d.Gender,
		DateOfBirth:    d.DateOfBirth,
		City:           d.City,
		State:          d.State,
		Country:        d.Country,
		JoiningDate:    d.JoiningDate,
		Specialization: d.Specialization,
		BloodGroup:     d.BloodGroup,
	}
}
