package domain

import "time"

// Doctor is the domain model for practicing doctors.
type Doctor struct {
	ID             int64
	UserID         int64
	FirstName      string
	LastName       string
	Email          string
	PhoneNumber    string
	Gender         string
	DateOfBirth    string
	City           string
	State          string
	Country        string
	JoiningDate    time.Time
	Specialization string
	BloodGroup     string
}

// DisplayName is the honorific form shown to patients.
func (d *Doctor) DisplayName() string {
	return "Dr. " + d.FirstName + " " + d.LastName
}
