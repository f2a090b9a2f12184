package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/hospital-service/internal/api/dto"
	"github.com/spec-kit/hospital-service/internal/auth"
	"github.com/spec-kit/hospital-service/internal/domain"
	"github.com/spec-kit/hospital-service/internal/service"
	apperrors "github.com/spec-kit/hospital-service/pkg/util"
)

// PrescriptionsHandler exposes prescription endpoints.
type PrescriptionsHandler struct {
	prescriptions *service.PrescriptionService
	payments      *service.PaymentService
}

// NewPrescriptionsHandler constructs handler.
func NewPrescriptionsHandler(prescriptions *service.PrescriptionService, payments *service.PaymentService) *PrescriptionsHandler {
	return &PrescriptionsHandler{prescriptions: prescriptions, payments: payments}
}

// Issue handles POST /api/doctor/issue-prescription.
func (h *PrescriptionsHandler) Issue(c *fiber.Ctx) error {
	var req dto.PrescriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := dto.Check(req); err != nil {
		return err
	}

	prescription, err := h.prescriptions.Issue(c.Context(), &domain.Prescription{
		PatientName:  req.PatientName,
		PatientEmail: req.PatientEmail,
		DoctorName:   req.DoctorName,
		Instructions: req.Instructions,
		Medicines:    req.Medicines,
		Fees:         req.Fees,
	})
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(dto.NewPrescriptionResponse(prescription))
}

// MyPrescriptions handles GET /api/prescriptions/my-prescriptions for the
// logged-in patient.
func (h *PrescriptionsHandler) MyPrescriptions(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	items, err := h.prescriptions.ForPatient(c.Context(), principal.Email)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewPrescriptionResponses(items))
}

// Pay handles POST /api/prescriptions/pay: mints a gateway order covering
// the prescription fees.
func (h *PrescriptionsHandler) Pay(c *fiber.Ctx) error {
	var req dto.PrescriptionPayRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := dto.Check(req); err != nil {
		return err
	}

	details, err := h.payments.CreateOrderForPrescription(c.Context(), req.PrescriptionID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("prescription", map[string]any{"id": req.PrescriptionID})
		}
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewRazorpayOrderResponse(details))
}
