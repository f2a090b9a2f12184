package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hospital-service/internal/domain"
)

// PrescriptionRepository defines persistence access for prescriptions, the
// billable records whose paid flag is gated by payment verification.
type PrescriptionRepository interface {
	Create(ctx context.Context, prescription *domain.Prescription) error
	GetByID(ctx context.Context, id int64) (*domain.Prescription, error)
	ListByPatientEmail(ctx context.Context, email string) ([]domain.Prescription, error)
	SetOrderID(ctx context.Context, id int64, orderID string) error
	MarkPaid(ctx context.Context, id int64, orderID string) error
}

type prescriptionRepository struct {
	pool *pgxpool.Pool
}

// NewPrescriptionRepository returns a Postgres-backed implementation.
func NewPrescriptionRepository(pool *pgxpool.Pool) PrescriptionRepository {
	return &prescriptionRepository{pool: pool}
}

const prescriptionColumns = `id, patient_name, doctor_name, patient_email, date, issued,
        paid, instructions, medicines, fees, order_id`

func (r *prescriptionRepository) Create(ctx context.Context, prescription *domain.Prescription) error {
	const query = `
        INSERT INTO prescriptions (patient_name, doctor_name, patient_email, issued,
            instructions, medicines, fees)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, date`

	return r.pool.QueryRow(ctx, query,
		prescription.PatientName,
		prescription.DoctorName,
		strings.ToLower(prescription.PatientEmail),
		prescription.Issued,
		prescription.Instructions,
		prescription.Medicines,
		prescription.Fees,
	).Scan(&prescription.ID, &prescription.Date)
}

func (r *prescriptionRepository) GetByID(ctx context.Context, id int64) (*domain.Prescription, error) {
	query := `SELECT ` + prescriptionColumns + ` FROM prescriptions WHERE id=$1`

	var p domain.Prescription
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.PatientName, &p.DoctorName, &p.PatientEmail, &p.Date, &p.Issued,
		&p.Paid, &p.Instructions, &p.Medicines, &p.Fees, &p.OrderID,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *prescriptionRepository) ListByPatientEmail(ctx context.Context, email string) ([]domain.Prescription, error) {
	query := `SELECT ` + prescriptionColumns + ` FROM prescriptions WHERE patient_email=$1 ORDER BY id DESC`

	rows, err := r.pool.Query(ctx, query, strings.ToLower(email))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var prescriptions []domain.Prescription
	for rows.Next() {
		var p domain.Prescription
		if err := rows.Scan(
			&p.ID, &p.PatientName, &p.DoctorName, &p.PatientEmail, &p.Date, &p.Issued,
			&p.Paid, &p.Instructions, &p.Medicines, &p.Fees, &p.OrderID,
		); err != nil {
			return nil, err
		}
		prescriptions = append(prescriptions, p)
	}
	return prescriptions, rows.Err()
}

func (r *prescriptionRepository) SetOrderID(ctx context.Context, id int64, orderID string) error {
	const query = `UPDATE prescriptions SET order_id=$1 WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, orderID, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *prescriptionRepository) MarkPaid(ctx context.Context, id int64, orderID string) error {
	const query = `UPDATE prescriptions SET paid=TRUE WHERE id=$1 AND order_id=$2`

	cmd, err := r.pool.Exec(ctx, query, id, orderID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
