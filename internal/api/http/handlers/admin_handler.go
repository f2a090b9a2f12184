package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hospital-service/internal/auth"
	apperrors "github.com/spec-kit/hospital-service/pkg/util"
)

// AdminHandler exposes the admin console endpoints.
type AdminHandler struct{}

// NewAdminHandler constructs handler.
func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

// Dashboard handles GET /api/admin/dashboard.
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	return c.SendString("Welcome to the Admin Dashboard")
}

// Details handles GET /api/admin/details for the logged-in admin.
func (h *AdminHandler) Details(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	return c.JSON(fiber.Map{
		"email":       principal.Email,
		"authorities": principal.Authorities,
	})
}
