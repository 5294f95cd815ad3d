package handlers

import (
	"github.com/megaxsolutions/syncorp-sub002/internal/core/services"
	"github.com/megaxsolutions/syncorp-sub002/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ComplexityHandler handles the complexity allowance admin endpoints
type ComplexityHandler struct {
	complexityService *services.ComplexityService
}

// NewComplexityHandler creates a new complexity handler
func NewComplexityHandler(complexityService *services.ComplexityService) *ComplexityHandler {
	return &ComplexityHandler{complexityService: complexityService}
}

// List returns one page of the complexity allowance listing
// GET /api/v1/complexity-allowances
func (h *ComplexityHandler) List(c *fiber.Ctx) error {
	q := getListQuery(c, "date_filed")
	result, err := h.complexityService.List(c.Context(), q)
	if err != nil {
		return serviceError(c, err, "Failed to load complexity allowances")
	}
	return response.Paginated(c, result.Items, result.Meta)
}

// Approve approves a complexity allowance
// PUT /api/v1/complexity-allowances/:id/approve
func (h *ComplexityHandler) Approve(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return response.BadRequest(c, "record id is required")
	}
	if err := h.complexityService.Approve(c.Context(), id); err != nil {
		return serviceError(c, err, "Failed to approve complexity allowance")
	}
	return response.Success(c, "Complexity allowance approved", nil)
}

// Reject rejects a complexity allowance
// PUT /api/v1/complexity-allowances/:id/reject
func (h *ComplexityHandler) Reject(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return response.BadRequest(c, "record id is required")
	}
	var req rejectRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return response.BadRequest(c, "invalid request body")
	}
	if err := h.complexityService.Reject(c.Context(), id, req.Reason); err != nil {
		return serviceError(c, err, "Failed to reject complexity allowance")
	}
	return response.Success(c, "Complexity allowance rejected", nil)
}
