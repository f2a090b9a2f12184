package dto

import "github.com/spec-kit/hospital-service/internal/domain"

// FeedbackRequest payload for submitting feedback.
type FeedbackRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Doctor   string `json:"doctor"`
	Rating   int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comments string `json:"comments"`
}

// FeedbackResponse is the outward feedback representation.
type FeedbackResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Doctor   string `json:"doctor"`
	Rating   int    `json:"rating"`
	Comments string `json:"comments"`
}

// NewFeedbackResponse maps the domain model.
func NewFeedbackResponse(f *domain.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:       f.ID,
		Name:     f.Name,
		Email:    f.Email,
		Phone:    f.Phone,
		Doctor:   f.Doctor,
		Rating:   f.Rating,
		Comments: f.Comments,
	}
}
