package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hospital-service/internal/domain"
)

// FeedbackRepository defines persistence access for visitor feedback.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *domain.Feedback) error
	List(ctx context.Context) ([]domain.Feedback, error)
}

type feedbackRepository struct {
	pool *pgxpool.Pool
}

// NewFeedbackRepository returns a Postgres-backed implementation.
func NewFeedbackRepository(pool *pgxpool.Pool) FeedbackRepository {
	return &feedbackRepository{pool: pool}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *domain.Feedback) error {
	const query = `
        INSERT INTO feedback (name, email, phone, doctor, rating, comments)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		feedback.Name,
		feedback.Email,
		feedback.Phone,
		feedback.Doctor,
		feedback.Rating,
		feedback.Comments,
	).Scan(&feedback.ID)
}

func (r *feedbackRepository) List(ctx context.Context) ([]domain.Feedback, error) {
	const query = `SELECT id, name, email, phone, doctor, rating, comments FROM feedback ORDER BY id DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Feedback
	for rows.Next() {
		var f domain.Feedback
		if err := rows.Scan(&f.ID, &f.Name, &f.Email, &f.Phone, &f.Doctor, &f.Rating, &f.Comments); err != nil {
			return nil, err
		}
		items = append(items, f)
	}
	return items, rows.Err()
}
