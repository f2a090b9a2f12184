package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/hospital-service/internal/api/dto"
	"github.com/spec-kit/hospital-service/internal/auth"
	"github.com/spec-kit/hospital-service/internal/service"
	apperrors "github.com/spec-kit/hospital-service/pkg/util"
)

// PatientsHandler exposes patient registration and profile endpoints.
type PatientsHandler struct {
	patients *service.PatientService
}

// NewPatientsHandler constructs handler.
func NewPatientsHandler(patients *service.PatientService) *PatientsHandler {
	return &PatientsHandler{patients: patients}
}

// Register handles POST /api/patients/register.
func (h *PatientsHandler) Register(c *fiber.Ctx) error {
	var req dto.PatientRegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := dto.Check(req); err != nil {
		return err
	}

	patient, err := h.patients.Register(c.Context(), service.PatientRegistration{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		Gender:      req.Gender,
		DateOfBirth: req.DateOfBirth,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Country:     req.Country,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyRegistered) {
			return apperrors.NewConflict("email already registered", nil)
		}
		return apperrors.MapError(err)
	}

	return c.Status(http.StatusCreated).JSON(dto.NewPatientResponse(patient))
}

// FetchAll handles GET /api/patients/fetchAllPatients.
func (h *PatientsHandler) FetchAll(c *fiber.Ctx) error {
	patients, err := h.patients.FetchAll(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}

	out := make([]dto.PatientResponse, 0, len(patients))
	for i := range patients {
		out = append(out, dto.NewPatientResponse(&patients[i]))
	}
	return c.JSON(out)
}

// Details handles GET /api/patients/details/:email.
func (h *PatientsHandler) Details(c *fiber.Ctx) error {
	return h.respondWithPatient(c, c.Params("email"))
}

// MyDetails handles GET /api/patients/mydetails for the logged-in patient.
func (h *PatientsHandler) MyDetails(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	return h.respondWithPatient(c, principal.Email)
}

// Update handles PUT /api/patients/update/:email.
func (h *PatientsHandler) Update(c *fiber.Ctx) error {
	email := c.Params("email")

	var req dto.PatientUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	patient, err := h.patients.FetchByEmail(c.Context(), email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("patient", map[string]any{"email": email})
		}
		return apperrors.MapError(err)
	}

	patient.FirstName = req.FirstName
	patient.LastName = req.LastName
	patient.PhoneNumber = req.PhoneNumber
	patient.Gender = req.Gender
	patient.DateOfBirth = req.DateOfBirth
	patient.Address = req.Address
	patient.City = req.City
	patient.State = req.State
	patient.Country = req.Country

	if err := h.patients.Update(c.Context(), patient); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewPatientResponse(patient))
}

// Delete handles DELETE /api/patients/delete/:email.
func (h *PatientsHandler) Delete(c *fiber.Ctx) error {
	email := c.Params("email")
	if err := h.patients.Delete(c.Context(), email); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("patient", map[string]any{"email": email})
		}
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"message": "patient deleted"})
}

func (h *PatientsHandler) respondWithPatient(c *fiber.Ctx, email string) error {
	patient, err := h.patients.FetchByEmail(c.Context(), email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("patient", map[string]any{"email": email})
		}
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewPatientResponse(patient))
}
