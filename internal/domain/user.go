package domain

import "time"

// Role is the single role tag carried by a credential record and, after
// login, by the issued token.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleDoctor  Role = "DOCTOR"
	RoleNurse   Role = "NURSE"
	RoleStaff   Role = "STAFF"
	RolePatient Role = "PATIENT"
)

// Valid reports whether the role is one of the known tags.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RoleNurse, RoleStaff, RolePatient:
		return true
	}
	return false
}

// User is the credential record behind every principal. Email is the
// identity key and is stored lowercased.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
