package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/hospital-service/internal/auth"
	"github.com/spec-kit/hospital-service/internal/domain"
)

type fakeUserRepo struct {
	byEmail map[string]*domain.User
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	r.byEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

func (r *fakeUserRepo) DeleteByEmail(ctx context.Context, email string) error {
	delete(r.byEmail, email)
	return nil
}

type fakeDoctorRepo struct {
	byEmail map[string]*domain.Doctor
}

func (r *fakeDoctorRepo) Create(ctx context.Context, doctor *domain.Doctor) error {
	r.byEmail[doctor.Email] = doctor
	return nil
}

func (r *fakeDoctorRepo) GetByEmail(ctx context.Context, email string) (*domain.Doctor, error) {
	doctor, ok := r.byEmail[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return doctor, nil
}

func (r *fakeDoctorRepo) List(ctx context.Context) ([]domain.Doctor, error) {
	var out []domain.Doctor
	for _, d := range r.byEmail {
		out = append(out, *d)
	}
	return out, nil
}

func (r *fakeDoctorRepo) ListNames(ctx context.Context) ([]string, error) {
	var names []string
	for _, d := range r.byEmail {
		names = append(names, d.DisplayName())
	}
	return names, nil
}

func (r *fakeDoctorRepo) Update(ctx context.Context, doctor *domain.Doctor) error {
	r.byEmail[doctor.Email] = doctor
	return nil
}

func (r *fakeDoctorRepo) DeleteByEmail(ctx context.Context, email string) error {
	delete(r.byEmail, email)
	return nil
}

func newLoginFixture(t *testing.T) (*AuthService, *fakeUserRepo, *fakeDoctorRepo) {
	t.Helper()

	secret := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0x11}, 64))
	tokens, err := auth.NewTokenManager(secret, 24)
	require.NoError(t, err)

	users := &fakeUserRepo{byEmail: make(map[string]*domain.User)}
	doctors := &fakeDoctorRepo{byEmail: make(map[string]*domain.Doctor)}
	return NewAuthService(users, doctors, tokens), users, doctors
}

func seedUser(t *testing.T, users *fakeUserRepo, email, password string, role domain.Role) {
	t.Helper()
	hash, err := auth.HashPassword(password, 4)
	require.NoError(t, err)
	users.byEmail[email] = &domain.User{Email: email, PasswordHash: hash, Role: role}
}

func TestLoginIssuesRoleBearingToken(t *testing.T) {
	svc, users, _ := newLoginFixture(t)
	seedUser(t, users, "admin@h.com", "s3cret", domain.RoleAdmin)

	result, err := svc.Login(context.Background(), "admin@h.com", "s3cret")
	require.NoError(t, err)

	assert.Equal(t, "admin@h.com", result.Email)
	assert.Equal(t, domain.RoleAdmin, result.Role)
	assert.Equal(t, "ROLE_ADMIN", result.Authority)
	assert.Empty(t, result.DoctorName)

	subject, roles, err := svc.TokenManager().Validate(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin@h.com", subject)
	assert.Equal(t, []string{"ADMIN"}, roles)
}

func TestLoginNormalizesEmailCase(t *testing.T) {
	svc, users, _ := newLoginFixture(t)
	seedUser(t, users, "admin@h.com", "s3cret", domain.RoleAdmin)

	result, err := svc.Login(context.Background(), "Admin@H.Com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "admin@h.com", result.Email)
}

func TestLoginDoctorIncludesDisplayName(t *testing.T) {
	svc, users, doctors := newLoginFixture(t)
	seedUser(t, users, "jane@h.com", "s3cret", domain.RoleDoctor)
	doctors.byEmail["jane@h.com"] = &domain.Doctor{FirstName: "Jane", LastName: "Roe", Email: "jane@h.com"}

	result, err := svc.Login(context.Background(), "jane@h.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Jane Roe", result.DoctorName)
	assert.Equal(t, "ROLE_DOCTOR", result.Authority)
}

func TestLoginRejectsWrongPasswordAndUnknownEmailAlike(t *testing.T) {
	svc, users, _ := newLoginFixture(t)
	seedUser(t, users, "admin@h.com", "s3cret", domain.RoleAdmin)

	_, err := svc.Login(context.Background(), "admin@h.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody@h.com", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
