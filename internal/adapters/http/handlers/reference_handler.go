package handlers

import (
	"github.com/megaxsolutions/syncorp-sub002/internal/core/services"
	"github.com/megaxsolutions/syncorp-sub002/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ReferenceHandler serves the cached lookup tables backing the admin
// UI's filters and selects
type ReferenceHandler struct {
	referenceService *services.ReferenceService
}

// NewReferenceHandler creates a new reference handler
func NewReferenceHandler(referenceService *services.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{referenceService: referenceService}
}

// Employees returns the employee directory
// GET /api/v1/reference/employees
func (h *ReferenceHandler) Employees(c *fiber.Ctx) error {
	return response.Success(c, "", h.referenceService.Employees())
}

// Dropdowns returns the cutoff periods and type catalogs
// GET /api/v1/reference/dropdowns
func (h *ReferenceHandler) Dropdowns(c *fiber.Ctx) error {
	return response.Success(c, "", h.referenceService.Dropdowns())
}
