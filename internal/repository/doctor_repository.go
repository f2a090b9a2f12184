package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hospital-service/internal/domain"
)

// DoctorRepository defines persistence access for doctors.
type DoctorRepository interface {
	Create(ctx context.Context, doctor *domain.Doctor) error
	GetByEmail(ctx context.Context, email string) (*domain.Doctor, error)
	List(ctx context.Context) ([]domain.Doctor, error)
	ListNames(ctx context.Context) ([]string, error)
	Update(ctx context.Context, doctor *domain.Doctor) error
	DeleteByEmail(ctx context.Context, email string) error
}

type doctorRepository struct {
	pool *pgxpool.Pool
}

// NewDoctorRepository returns a Postgres-backed implementation.
func NewDoctorRepository(pool *pgxpool.Pool) DoctorRepository {
	return &doctorRepository{pool: pool}
}

const doctorColumns = `id, user_id, first_name, last_name, email, phone_number, gender,
        date_of_birth, city, state, country, joining_date, specialization, blood_group`

func (r *doctorRepository) Create(ctx context.Context, doctor *domain.Doctor) error {
	const query = `
        INSERT INTO doctors (user_id, first_name, last_name, email, phone_number, gender,
            date_of_birth, city, state, country, joining_date, specialization, blood_group)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		doctor.UserID,
		doctor.FirstName,
		doctor.LastName,
		strings.ToLower(doctor.Email),
		doctor.PhoneNumber,
		doctor.Gender,
		doctor.DateOfBirth,
		doctor.City,
		doctor.State,
		doctor.Country,
		doctor.JoiningDate,
		doctor.Specialization,
		doctor.BloodGroup,
	).Scan(&doctor.ID)
}

func (r *doctorRepository) GetByEmail(ctx context.Context, email string) (*domain.Doctor, error) {
	query := `SELECT ` + doctorColumns + ` FROM doctors WHERE email=$1`

	var d domain.Doctor
	if err := r.pool.QueryRow(ctx, query, strings.ToLower(email)).Scan(
		&d.ID, &d.UserID, &d.FirstName, &d.LastName, &d.Email, &d.PhoneNumber, &d.Gender,
		&d.DateOfBirth, &d.City, &d.State, &d.Country, &d.JoiningDate, &d.Specialization,
		&d.BloodGroup,
	); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *doctorRepository) List(ctx context.Context) ([]domain.Doctor, error) {
	query := `SELECT ` + doctorColumns + ` FROM doctors ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var doctors []domain.Doctor
	for rows.Next() {
		var d domain.Doctor
		if err := rows.Scan(
			&d.ID, &d.UserID, &d.FirstName, &d.LastName, &d.Email, &d.PhoneNumber, &d.Gender,
			&d.DateOfBirth, &d.City, &d.State, &d.Country, &d.JoiningDate, &d.Specialization,
			&d.BloodGroup,
		); err != nil {
			return nil, err
		}
		doctors = append(doctors, d)
	}
	return doctors, rows.Err()
}

func (r *doctorRepository) ListNames(ctx context.Context) ([]string, error) {
	const query = `SELECT first_name, last_name FROM doctors ORDER BY last_name, first_name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var first, last string
		if err := rows.Scan(&first, &last); err != nil {
			return nil, err
		}
		names = append(names, "Dr. "+first+" "+last)
	}
	return names, rows.Err()
}

func (r *doctorRepository) Update(ctx context.Context, doctor *domain.Doctor) error {
	const query = `
        UPDATE doctors SET first_name=$1, last_name=$2, phone_number=$3, gender=$4,
            date_of_birth=$5, city=$6, state=$7, country=$8, specialization=$9, blood_group=$10
        WHERE email=$11`

	cmd, err := r.pool.Exec(ctx, query,
		doctor.FirstName,
		doctor.LastName,
		doctor.PhoneNumber,
		doctor.Gender,
		doctor.DateOfBirth,
		doctor.City,
		doctor.State,
		doctor.Country,
		doctor.Specialization,
		doctor.BloodGroup,
		strings.ToLower(doctor.Email),
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *doctorRepository) DeleteByEmail(ctx context.Context, email string) error {
	const query = `DELETE FROM doctors WHERE email=$1`

	cmd, err := r.pool.Exec(ctx, query, strings.ToLower(email))
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
