package dto

// LoginRequest payload for POST /api/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued bearer token plus display fields.
type LoginResponse struct {
	Email      string `json:"email"`
	Role       string `json:"role"`
	Token      string `json:"token"`
	DoctorName string `json:"doctorName,omitempty"`
}
