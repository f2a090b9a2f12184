package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/hospital-service/internal/auth"
	"github.com/spec-kit/hospital-service/internal/domain"
	"github.com/spec-kit/hospital-service/internal/repository"
)

const (
	doctorNamesCacheKey = "doctors:names"
	doctorNamesCacheTTL = 5 * time.Minute
)

// DoctorRegistration carries the fields needed to create a doctor account.
type DoctorRegistration struct {
	FirstName      string
	LastName       string
	Email          string
	Password       string
	PhoneNumber    string
	Gender         string
	DateOfBirth    string
	City           string
	State          string
	Country        string
	Specialization string
	BloodGroup     string
}

// DoctorService manages doctor accounts and the public doctor directory.
type DoctorService struct {
	users      repository.UserRepository
	doctors    repository.DoctorRepository
	cache      *redis.Client
	logger     *zap.Logger
	bcryptCost int
}

// NewDoctorService builds the service. The cache client may be nil; the
// directory then always hits the database.
func NewDoctorService(users repository.UserRepository, doctors repository.DoctorRepository, cache *redis.Client, logger *zap.Logger, bcryptCost int) *DoctorService {
	return &DoctorService{users: users, doctors: doctors, cache: cache, logger: logger, bcryptCost: bcryptCost}
}

// Register creates the credential record and the doctor profile.
func (s *DoctorService) Register(ctx context.Context, reg DoctorRegistration) (*domain.Doctor, error) {
	email := strings.ToLower(reg.Email)
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailAlreadyRegistered
	} else if err != pgx.ErrNoRows {
		return nil, err
	}

	hash, err := auth.HashPassword(reg.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{Email: email, PasswordHash: hash, Role: domain.RoleDoctor}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	doctor := &domain.Doctor{
		UserID:         user.ID,
		FirstName:      reg.FirstName,
		LastName:       reg.LastName,
		Email:          email,
		PhoneNumber:    reg.PhoneNumber,
		Gender:         reg.Gender,
		DateOfBirth:    reg.DateOfBirth,
		City:           reg.City,
		State:          reg.State,
		Country:        reg.Country,
		JoiningDate:    time.Now(),
		Specialization: reg.Specialization,
		BloodGroup:     reg.BloodGroup,
	}
	if err := s.doctors.Create(ctx, doctor); err != nil {
		return nil, err
	}
	s.invalidateNames(ctx)
	return doctor, nil
}

// FetchAll returns every doctor profile.
func (s *DoctorService) FetchAll(ctx context.Context) ([]domain.Doctor, error) {
	return s.doctors.List(ctx)
}

// FetchByEmail returns a single doctor profile.
func (s *DoctorService) FetchByEmail(ctx context.Context, email string) (*domain.Doctor, error) {
	return s.doctors.GetByEmail(ctx, email)
}

// FetchAllNames returns the public doctor directory. The list is cached in
// redis for a short window; cache failures degrade to the database.
func (s *DoctorService) FetchAllNames(ctx context.Context) ([]string, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, doctorNamesCacheKey).Result(); err == nil {
			var names []string
			if err := json.Unmarshal([]byte(cached), &names); err == nil {
				return names, nil
			}
		}
	}

	names, err := s.doctors.ListNames(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if payload, err := json.Marshal(names); err == nil {
			if err := s.cache.Set(ctx, doctorNamesCacheKey, payload, doctorNamesCacheTTL).Err(); err != nil {
				s.logger.Debug("doctor directory cache write failed", zap.Error(err))
			}
		}
	}
	return names, nil
}

// Update applies profile changes for the given email.
func (s *DoctorService) Update(ctx context.Context, doctor *domain.Doctor) error {
	if err := s.doctors.Update(ctx, doctor); err != nil {
		return err
	}
	s.invalidateNames(ctx)
	return nil
}

// Delete removes the doctor profile and its credential record.
func (s *DoctorService) Delete(ctx context.Context, email string) error {
	if err := s.doctors.DeleteByEmail(ctx, email); err != nil {
		return err
	}
	if err := s.users.DeleteByEmail(ctx, email); err != nil {
		return err
	}
	s.invalidateNames(ctx)
	return nil
}

func (s *DoctorService) invalidateNames(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, doctorNamesCacheKey).Err(); err != nil {
		s.logger.Debug("doctor directory cache invalidation failed", zap.Error(err))
	}
}
