package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hospital-service/internal/domain"
)

// AppointmentRepository defines persistence access for appointments.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) error
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	List(ctx context.Context) ([]domain.Appointment, error)
	ListByPatientEmail(ctx context.Context, email string) ([]domain.Appointment, error)
	ListByDoctorName(ctx context.Context, doctorName string) ([]domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) (*domain.Appointment, error)
}

type appointmentRepository struct {
	pool *pgxpool.Pool
}

// NewAppointmentRepository returns a Postgres-backed implementation.
func NewAppointmentRepository(pool *pgxpool.Pool) AppointmentRepository {
	return &appointmentRepository{pool: pool}
}

const appointmentColumns = `id, patient_name, doctor_name, date, time, patient_email, status`

func (r *appointmentRepository) Create(ctx context.Context, appointment *domain.Appointment) error {
	const query = `
        INSERT INTO appointments (patient_name, doctor_name, date, time, patient_email, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		appointment.PatientName,
		appointment.DoctorName,
		appointment.Date,
		appointment.Time,
		strings.ToLower(appointment.PatientEmail),
		appointment.Status,
	).Scan(&appointment.ID)
}

func (r *appointmentRepository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id=$1`

	var a domain.Appointment
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.PatientName, &a.DoctorName, &a.Date, &a.Time, &a.PatientEmail, &a.Status,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *appointmentRepository) List(ctx context.Context) ([]domain.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments ORDER BY id DESC`
	return r.queryMany(ctx, query)
}

func (r *appointmentRepository) ListByPatientEmail(ctx context.Context, email string) ([]domain.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE patient_email=$1 ORDER BY id DESC`
	return r.queryMany(ctx, query, strings.ToLower(email))
}

func (r *appointmentRepository) ListByDoctorName(ctx context.Context, doctorName string) ([]domain.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE doctor_name=$1 ORDER BY id DESC`
	return r.queryMany(ctx, query, doctorName)
}

func (r *appointmentRepository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) (*domain.Appointment, error) {
	query := `UPDATE appointments SET status=$1 WHERE id=$2 RETURNING ` + appointmentColumns

	var a domain.Appointment
	if err := r.pool.QueryRow(ctx, query, status, id).Scan(
		&a.ID, &a.PatientName, &a.DoctorName, &a.Date, &a.Time, &a.PatientEmail, &a.Status,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *appointmentRepository) queryMany(ctx context.Context, query string, args ...any) ([]domain.Appointment, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var appointments []domain.Appointment
	for rows.Next() {
		var a domain.Appointment
		if err := rows.Scan(
			&a.ID, &a.PatientName, &a.DoctorName, &a.Date, &a.Time, &a.PatientEmail, &a.Status,
		); err != nil {
			return nil, err
		}
		appointments = append(appointments, a)
	}
	return appointments, rows.Err()
}
