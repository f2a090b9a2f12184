package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/hospital-service/internal/auth"
	"github.com/spec-kit/hospital-service/internal/domain"
	"github.com/spec-kit/hospital-service/internal/repository"
)

// ErrInvalidCredentials covers both unknown email and wrong password so the
// login response never reveals which.
var ErrInvalidCredentials = errors.New("invalid email or password")

// LoginResult is what a successful login returns.
type LoginResult struct {
	Email      string
	Role       domain.Role
	Authority  string
	Token      string
	ExpiresAt  time.Time
	DoctorName string
}

// AuthService coordinates credential checks and token issuance. The role
// baked into the token is the role at login time; it is trusted until the
// token expires.
type AuthService struct {
	users   repository.UserRepository
	doctors repository.DoctorRepository
	tokens  *auth.TokenManager
}

// NewAuthService builds the service.
func NewAuthService(users repository.UserRepository, doctors repository.DoctorRepository, tokens *auth.TokenManager) *AuthService {
	return &AuthService{users: users, doctors: doctors, tokens: tokens}
}

// Login verifies credentials against the credential store and issues a
// role-bearing token. For doctors the display name is included so the
// frontend can greet them.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	result := &LoginResult{
		Email:     user.Email,
		Role:      user.Role,
		Authority: auth.RoleAuthority(user.Role),
		Token:     token,
		ExpiresAt: expiresAt,
	}

	if user.Role == domain.RoleDoctor {
		if doctor, err := s.doctors.GetByEmail(ctx, user.Email); err == nil {
			result.DoctorName = doctor.DisplayName()
		}
	}
	return result, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}
