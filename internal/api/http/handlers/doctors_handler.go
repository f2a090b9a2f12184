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

// DoctorsHandler exposes doctor registration and directory endpoints.
type DoctorsHandler struct {
	doctors *service.DoctorService
}

// NewDoctorsHandler constructs handler.
func NewDoctorsHandler(doctors *service.DoctorService) *DoctorsHandler {
	return &DoctorsHandler{doctors: doctors}
}

// Register handles POST /api/doctors/registerDoctor.
func (h *DoctorsHandler) Register(c *fiber.Ctx) error {
	var req dto.DoctorRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := dto.Check(req); err != nil {
		return err
	}

	doctor, err := h.doctors.Register(c.Context(), service.DoctorRegistration{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Password:       req.Password,
		PhoneNumber:    req.PhoneNumber,
		Gender:         req.Gender,
		DateOfBirth:    req.DateOfBirth,
		City:           req.City,
		State:          req.State,
		Country:        req.Country,
		Specialization: req.Specialization,
		BloodGroup:     req.BloodGroup,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyRegistered) {
			return apperrors.NewConflict("email already registered", nil)
		}
		return apperrors.MapError(err)
	}

	return c.Status(http.StatusCreated).JSON(dto.NewDoctorResponse(doctor))
}

// FetchAll handles GET /api/doctors/fetchAllDoctors.
func (h *DoctorsHandler) FetchAll(c *fiber.Ctx) error {
	doctors, err := h.doctors.FetchAll(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}

	out := make([]dto.DoctorResponse, 0, len(doctors))
	for i := range doctors {
		out = append(out, dto.NewDoctorResponse(&doctors[i]))
	}
	return c.JSON(out)
}

// FetchAllNames handles GET /api/doctors/fetchAllDoctorNames, the public
// directory used on the booking form.
func (h *DoctorsHandler) FetchAllNames(c *fiber.Ctx) error {
	names, err := h.doctors.FetchAllNames(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	if names == nil {
		names = []string{}
	}
	return c.JSON(names)
}

// Details handles GET /api/doctors/details/:email.
func (h *DoctorsHandler) Details(c *fiber.Ctx) error {
	return h.respondWithDoctor(c, c.Params("email"))
}

// MyDetails handles GET /api/doctors/mydetails for the logged-in doctor.
func (h *DoctorsHandler) MyDetails(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	return h.respondWithDoctor(c, principal.Email)
}

// Update handles PUT /api/doctors/update/:email.
func (h *DoctorsHandler) Update(c *fiber.Ctx) error {
	email := c.Params("email")

	var req dto.DoctorUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	doctor, err := h.doctors.FetchByEmail(c.Context(), email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("doctor", map[string]any{"email": email})
		}
		return apperrors.MapError(err)
	}

	doctor.FirstName = req.FirstName
	doctor.LastName = req.LastName
	doctor.PhoneNumber = req.PhoneNumber
	doctor.Gender = req.Gender
	doctor.DateOfBirth = req.DateOfBirth
	doctor.City = req.City
	doctor.State = req.State
	doctor.Country = req.Country
	doctor.Specialization = req.Specialization
	doctor.BloodGroup = req.BloodGroup

	if err := h.doctors.Update(c.Context(), doctor); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewDoctorResponse(doctor))
}

// Delete handles DELETE /api/doctors/delete/:email.
func (h *DoctorsHandler) Delete(c *fiber.Ctx) error {
	email := c.Params("email")
	if err := h.doctors.Delete(c.Context(), email); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("doctor", map[string]any{"email": email})
		}
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"message": "doctor deleted"})
}

func (h *DoctorsHandler) respondWithDoctor(c *fiber.Ctx, email string) error {
	doctor, err := h.doctors.FetchByEmail(c.Context(), email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("doctor", map[string]any{"email": email})
		}
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewDoctorResponse(doctor))
}
