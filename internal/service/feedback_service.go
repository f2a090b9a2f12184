package service

import (
	"context"

	"github.com/spec-kit/hospital-service/internal/domain"
	"github.com/spec-kit/hospital-service/internal/repository"
	"github.com/spec-kit/hospital-service/pkg/util"
)

// FeedbackService records and lists visitor feedback.
type FeedbackService struct {
	feedback repository.FeedbackRepository
}

// NewFeedbackService builds the service.
func NewFeedbackService(feedback repository.FeedbackRepository) *FeedbackService {
	return &FeedbackService{feedback: feedback}
}

// Submit stores a feedback entry.
func (s *FeedbackService) Submit(ctx context.Context, feedback *domain.Feedback) (*domain.Feedback, error) {
	if feedback.Rating < 1 || feedback.Rating > 5 {
		return nil, util.NewValidationError("rating must be between 1 and 5", nil)
	}
	if err := s.feedback.Create(ctx, feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}

// All returns every feedback entry.
func (s *FeedbackService) All(ctx context.Context) ([]domain.Feedback, error) {
	return s.feedback.List(ctx)
}
