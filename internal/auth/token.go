package auth

import (
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/hospital-service/internal/domain"
)

// Validation failure kinds. Expired and ErrInvalidSignature are distinct
// internally but must surface externally as the same unauthorized outcome.
var (
	ErrMalformed        = errors.New("token malformed")
	ErrInvalidSignature = errors.New("token signature invalid")
	ErrExpired          = errors.New("token expired")
)

// TokenManager issues and validates self-contained signed tokens. A single
// symmetric key serves both directions; there is exactly one issuer and one
// verifier, so no rotation or per-tenant keys exist.
type TokenManager struct {
	key []byte
	ttl time.Duration
}

// NewTokenManager decodes the base64 signing key and builds a manager.
// A missing or undecodable key is unrecoverable at startup.
func NewTokenManager(base64Secret string, ttlHours int) (*TokenManager, error) {
	if base64Secret == "" {
		return nil, errors.New("jwt signing key is required")
	}
	key, err := base64.StdEncoding.DecodeString(base64Secret)
	if err != nil {
		return nil, fmt.Errorf("decode jwt signing key: %w", err)
	}
	if ttlHours <= 0 {
		ttlHours = 24
	}
	return &TokenManager{key: key, ttl: time.Duration(ttlHours) * time.Hour}, nil
}

// Claims describes the JWT payload: subject email plus a single role claim.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Issue builds and signs a token for the principal. The payload carries the
// email as subject and the role as a string claim; expiry is issuance time
// plus the configured window.
func (tm *TokenManager) Issue(email string, role domain.Role) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(tm.ttl)
	claims := &Claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	tokenString, err := token.SignedString(tm.key)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Validate verifies the signature and expiry and returns the subject with
// the role claim wrapped as a one-element list. Failures are classified as
// ErrMalformed, ErrInvalidSignature or ErrExpired.
func (tm *TokenManager) Validate(tokenStr string) (string, []string, error) {
	claims, err := tm.parseVerified(tokenStr)
	if err != nil {
		return "", nil, err
	}
	return claims.Subject, []string{claims.Role}, nil
}

// ExtractSubject returns the subject claim. The signature is re-verified on
// every call; a claim is never read from an unverified token.
func (tm *TokenManager) ExtractSubject(tokenStr string) (string, error) {
	claims, err := tm.parseVerified(tokenStr)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// ExtractRoles returns the role claim as a one-element list, re-verifying
// the signature first.
func (tm *TokenManager) ExtractRoles(tokenStr string) ([]string, error) {
	claims, err := tm.parseVerified(tokenStr)
	if err != nil {
		return nil, err
	}
	return []string{claims.Role}, nil
}

func (tm *TokenManager) parseVerified(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS512 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.key, nil
	})
	if err != nil {
		return nil, classifyTokenError(err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrMalformed
	}
	return claims, nil
}

func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %v", ErrExpired, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	default:
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
}
