package handlers

import (
	"github.com/megaxsolutions/syncorp-sub002/internal/core/services"
	"github.com/megaxsolutions/syncorp-sub002/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AdjustmentHandler handles the time adjustment admin endpoints
type AdjustmentHandler struct {
	adjustmentService *services.AdjustmentService
}

// NewAdjustmentHandler creates a new adjustment handler
func NewAdjustmentHandler(adjustmentService *services.AdjustmentService) *AdjustmentHandler {
	return &AdjustmentHandler{adjustmentService: adjustmentService}
}

// List returns one page of the time adjustment listing
// GET /api/v1/adjustments
func (h *AdjustmentHandler) List(c *fiber.Ctx) error {
	q := getListQuery(c, "date_filed")
	result, err := h.adjustmentService.List(c.Context(), q)
	if err != nil {
		return serviceError(c, err, "Failed to load time adjustments")
	}
	return response.Paginated(c, result.Items, result.Meta)
}

// Approve approves a time adjustment
// PUT /api/v1/adjustments/:id/approve
func (h *AdjustmentHandler) Approve(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return response.BadRequest(c, "record id is required")
	}
	if err := h.adjustmentService.Approve(c.Context(), id); err != nil {
		return serviceError(c, err, "Failed to approve time adjustment")
	}
	return response.Success(c, "Time adjustment approved", nil)
}

// Reject rejects a time adjustment; a reason is required
// PUT /api/v1/adjustments/:id/reject
func (h *AdjustmentHandler) Reject(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return response.BadRequest(c, "record id is required")
	}
	var req rejectRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return response.BadRequest(c, "invalid request body")
	}
	if err := h.adjustmentService.Reject(c.Context(), id, req.Reason); err != nil {
		return serviceError(c, err, "Failed to reject time adjustment")
	}
	return response.Success(c, "Time adjustment rejected", nil)
}
