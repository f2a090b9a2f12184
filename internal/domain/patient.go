package domain

import "time"

// Patient is the domain model for registered patients.
type Patient struct {
	PatientID        int64
	UserID           int64
	FirstName        string
	LastName         string
	Email            string
	PhoneNumber      string
	Gender           string
	DateOfBirth      string
	Address          string
	City             string
	State            string
	Country          string
	RegistrationDate time.Time
	Active           bool
}
