package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hospital-service/internal/domain"
)

// PatientRepository defines persistence access for patients.
type PatientRepository interface {
	Create(ctx context.Context, patient *domain.Patient) error
	GetByEmail(ctx context.Context, email string) (*domain.Patient, error)
	List(ctx context.Context) ([]domain.Patient, error)
	Update(ctx context.Context, patient *domain.Patient) error
	DeleteByEmail(ctx context.Context, email string) error
}

type patientRepository struct {
	pool *pgxpool.Pool
}

// NewPatientRepository returns a Postgres-backed implementation.
func NewPatientRepository(pool *pgxpool.Pool) PatientRepository {
	return &patientRepository{pool: pool}
}

const patientColumns = `patient_id, user_id, first_name, last_name, email, phone_number,
        gender, date_of_birth, address, city, state, country, registration_date, active`

func (r *patientRepository) Create(ctx context.Context, patient *domain.Patient) error {
	const query = `
        INSERT INTO patients (user_id, first_name, last_name, email, phone_number,
            gender, date_of_birth, address, city, state, country, active)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING patient_id, registration_date`

	return r.pool.QueryRow(ctx, query,
		patient.UserID,
		patient.FirstName,
		patient.LastName,
		strings.ToLower(patient.Email),
		patient.PhoneNumber,
		patient.Gender,
		patient.DateOfBirth,
		patient.Address,
		patient.City,
		patient.State,
		patient.Country,
		patient.Active,
	).Scan(&patient.PatientID, &patient.RegistrationDate)
}

func (r *patientRepository) GetByEmail(ctx context.Context, email string) (*domain.Patient, error) {
	query := `SELECT ` + patientColumns + ` FROM patients WHERE email=$1`

	var p domain.Patient
	if err := r.pool.QueryRow(ctx, query, strings.ToLower(email)).Scan(
		&p.PatientID, &p.UserID, &p.FirstName, &p.LastName, &p.Email, &p.PhoneNumber,
		&p.Gender, &p.DateOfBirth, &p.Address, &p.City, &p.State, &p.Country,
		&p.RegistrationDate, &p.Active,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *patientRepository) List(ctx context.Context) ([]domain.Patient, error) {
	query := `SELECT ` + patientColumns + ` FROM patients ORDER BY patient_id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var patients []domain.Patient
	for rows.Next() {
		var p domain.Patient
		if err := rows.Scan(
			&p.PatientID, &p.UserID, &p.FirstName, &p.LastName, &p.Email, &p.PhoneNumber,
			&p.Gender, &p.DateOfBirth, &p.Address, &p.City, &p.State, &p.Country,
			&p.RegistrationDate, &p.Active,
		); err != nil {
			return nil, err
		}
		patients = append(patients, p)
	}
	return patients, rows.Err()
}

func (r *patientRepository) Update(ctx context.Context, patient *domain.Patient) error {
	const query = `
        UPDATE patients SET first_name=$1, last_name=$2, phone_number=$3, gender=$4,
            date_of_birth=$5, address=$6, city=$7, state=$8, country=$9, active=$10
        WHERE email=$11`

	cmd, err := r.pool.Exec(ctx, query,
		patient.FirstName,
		patient.LastName,
		patient.PhoneNumber,
		patient.Gender,
		patient.DateOfBirth,
		patient.Address,
		patient.City,
		patient.State,
		patient.Country,
		patient.Active,
		strings.ToLower(patient.Email),
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *patientRepository) DeleteByEmail(ctx context.Context, email string) error {
	const query = `DELETE FROM patients WHERE email=$1`

	cmd, err := r.pool.Exec(ctx, query, strings.ToLower(email))
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
