package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/hospital-service/internal/api/dto"
	"github.com/spec-kit/hospital-service/internal/auth"
	"github.com/spec-kit/hospital-service/internal/domain"
	"github.com/spec-kit/hospital-service/internal/service"
	apperrors "github.com/spec-kit/hospital-service/pkg/util"
)

// AppointmentsHandler exposes booking endpoints.
type AppointmentsHandler struct {
	appointments *service.AppointmentService
}

// NewAppointmentsHandler constructs handler.
func NewAppointmentsHandler(appointments *service.AppointmentService) *AppointmentsHandler {
	return &AppointmentsHandler{appointments: appointments}
}

// Book handles POST /api/appointments (public booking form).
func (h *AppointmentsHandler) Book(c *fiber.Ctx) error {
	var req dto.AppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := dto.Check(req); err != nil {
		return err
	}

	appointment, err := h.appointments.Book(c.Context(), &domain.Appointment{
		PatientName:  req.PatientName,
		DoctorName:   req.DoctorName,
		Date:         req.Date,
		Time:         req.Time,
		PatientEmail: req.PatientEmail,
	})
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(dto.NewAppointmentResponse(appointment))
}

// MyAppointments handles GET /api/appointments/my-appointments for the
// logged-in patient.
func (h *AppointmentsHandler) MyAppointments(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	items, err := h.appointments.ForPatient(c.Context(), principal.Email)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewAppointmentResponses(items))
}

// DoctorAppointments handles GET /api/doctor/appointments for the logged-in
// doctor.
func (h *AppointmentsHandler) DoctorAppointments(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	items, err := h.appointments.ForDoctor(c.Context(), principal.Email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("doctor", map[string]any{"email": principal.Email})
		}
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewAppointmentResponses(items))
}

// All handles GET /api/appointments/all.
func (h *AppointmentsHandler) All(c *fiber.Ctx) error {
	items, err := h.appointments.All(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewAppointmentResponses(items))
}

// UpdateStatus handles PUT /api/appointments/:id/status.
func (h *AppointmentsHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperrors.NewValidationError("invalid appointment id", nil)
	}

	status := domain.AppointmentStatus(c.Query("status"))
	updated, err := h.appointments.UpdateStatus(c.Context(), id, status)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("appointment", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewAppointmentResponse(updated))
}
