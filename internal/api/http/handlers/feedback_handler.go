package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hospital-service/internal/api/dto"
	"github.com/spec-kit/hospital-service/internal/domain"
	"github.com/spec-kit/hospital-service/internal/service"
	apperrors "github.com/spec-kit/hospital-service/pkg/util"
)

// FeedbackHandler exposes feedback endpoints.
type FeedbackHandler struct {
	feedback *service.FeedbackService
}

// NewFeedbackHandler constructs handler.
func NewFeedbackHandler(feedback *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback}
}

// Submit handles POST /api/feedback.
func (h *FeedbackHandler) Submit(c *fiber.Ctx) error {
	var req dto.FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := dto.Check(req); err != nil {
		return err
	}

	feedback, err := h.feedback.Submit(c.Context(), &domain.Feedback{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Doctor:   req.Doctor,
		Rating:   req.Rating,
		Comments: req.Comments,
	})
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(dto.NewFeedbackResponse(feedback))
}

// All handles GET /api/feedback.
func (h *FeedbackHandler) All(c *fiber.Ctx) error {
	items, err := h.feedback.All(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}

	out := make([]dto.FeedbackResponse, 0, len(items))
	for i := range items {
		out = append(out, dto.NewFeedbackResponse(&items[i]))
	}
	return c.JSON(out)
}
