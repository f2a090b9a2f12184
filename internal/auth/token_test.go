package auth

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/hospital-service/internal/domain"
)

var testSecret = base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0x5a}, 64))

func newTestTokenManager(t *testing.T) *TokenManager {
	t.Helper()
	tm, err := NewTokenManager(testSecret, 24)
	require.NoError(t, err)
	return tm
}

func TestNewTokenManagerRejectsBadKey(t *testing.T) {
	_, err := NewTokenManager("", 24)
	assert.Error(t, err)

	_, err = NewTokenManager("not-base64!!!", 24)
	assert.Error(t, err)
}

func TestIssueValidateRoundTrip(t *testing.T) {
	tm := newTestTokenManager(t)

	for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleDoctor, domain.RoleNurse, domain.RoleStaff, domain.RolePatient} {
		token, expiresAt, err := tm.Issue("doc@h.com", role)
		require.NoError(t, err)
		assert.True(t, expiresAt.After(time.Now().Add(23*time.Hour)))

		subject, roles, err := tm.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, "doc@h.com", subject)
		assert.Equal(t, []string{string(role)}, roles)
	}
}

func TestValidateRejectsTamperedSignature(t *testing.T) {
	tm := newTestTokenManager(t)

	token, _, err := tm.Issue("doc@h.com", domain.RoleDoctor)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, _, err = tm.Validate(tampered)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestValidateRejectsTamperedPayload(t *testing.T) {
	tm := newTestTokenManager(t)

	token, _, err := tm.Issue("doc@h.com", domain.RoleDoctor)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// Re-encode the payload with an escalated role; the signature no
	// longer matches.
	forged := base64.RawURLEncoding.EncodeToString([]byte(`{"role":"ADMIN","sub":"doc@h.com"}`))
	_, _, err = tm.Validate(parts[0] + "." + forged + "." + parts[2])
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestValidateRejectsMalformedToken(t *testing.T) {
	tm := newTestTokenManager(t)

	for _, tok := range []string{"", "garbage", "a.b", "a.b.c.d", "!!!.???.###"} {
		_, _, err := tm.Validate(tok)
		assert.ErrorIs(t, err, ErrMalformed, "token %q", tok)
	}
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	tm := newTestTokenManager(t)

	expired := issueExpired(t, tm, "doc@h.com", domain.RoleDoctor)

	_, _, err := tm.Validate(expired)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestValidateRejectsWrongSigningMethod(t *testing.T) {
	tm := newTestTokenManager(t)

	claims := &Claims{
		Role: string(domain.RoleDoctor),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "doc@h.com",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	hs256, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tm.key)
	require.NoError(t, err)

	_, _, err = tm.Validate(hs256)
	assert.Error(t, err)
}

func TestExtractorsReverifySignature(t *testing.T) {
	tm := newTestTokenManager(t)

	token, _, err := tm.Issue("doc@h.com", domain.RoleDoctor)
	require.NoError(t, err)

	subject, err := tm.ExtractSubject(token)
	require.NoError(t, err)
	assert.Equal(t, "doc@h.com", subject)

	roles, err := tm.ExtractRoles(token)
	require.NoError(t, err)
	assert.Equal(t, []string{"DOCTOR"}, roles)

	// A token signed under a different key must not yield claims.
	otherSecret := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0x1f}, 64))
	other, err := NewTokenManager(otherSecret, 24)
	require.NoError(t, err)
	foreign, _, err := other.Issue("doc@h.com", domain.RoleAdmin)
	require.NoError(t, err)

	_, err = tm.ExtractSubject(foreign)
	assert.ErrorIs(t, err, ErrInvalidSignature)
	_, err = tm.ExtractRoles(foreign)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}
