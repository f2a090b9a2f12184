package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hospital-service/internal/api/dto"
	"github.com/spec-kit/hospital-service/internal/auth"
	"github.com/spec-kit/hospital-service/internal/service"
	apperrors "github.com/spec-kit/hospital-service/pkg/util"
)

// PaymentsHandler exposes order creation and proof verification.
type PaymentsHandler struct {
	payments *service.PaymentService
}

// NewPaymentsHandler constructs handler.
func NewPaymentsHandler(payments *service.PaymentService) *PaymentsHandler {
	return &PaymentsHandler{payments: payments}
}

// CreateOrder handles POST /api/payments/create-order. Only patients may
// open orders here.
func (h *PaymentsHandler) CreateOrder(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || !principal.HasAuthority(auth.RoleAuthority("PATIENT")) {
		return apperrors.NewForbidden("patient role required")
	}

	var req dto.PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := dto.Check(req); err != nil {
		return err
	}

	details, err := h.payments.CreateOrder(c.Context(), req.Amount)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewRazorpayOrderResponse(details))
}

// Verify handles POST /api/payments/verify: checks the client-submitted
// proof and reports {success, message}, never the underlying cause.
func (h *PaymentsHandler) Verify(c *fiber.Ctx) error {
	var req dto.PaymentVerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := dto.Check(req); err != nil {
		return err
	}

	result := h.payments.Verify(c.Context(),
		req.RazorpayOrderID,
		req.RazorpayPaymentID,
		req.RazorpaySignature,
		req.PrescriptionID,
	)
	return c.JSON(dto.PaymentVerifyResponse{Success: result.Success, Message: result.Message})
}
