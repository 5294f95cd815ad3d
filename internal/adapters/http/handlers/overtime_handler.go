package handlers

import (
	"github.com/megaxsolutions/syncorp-sub002/internal/core/services"
	"github.com/megaxsolutions/syncorp-sub002/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// OvertimeHandler handles the overtime request admin endpoints
type OvertimeHandler struct {
	overtimeService *services.OvertimeService
}

// NewOvertimeHandler creates a new overtime handler
func NewOvertimeHandler(overtimeService *services.OvertimeService) *OvertimeHandler {
	return &OvertimeHandler{overtimeService: overtimeService}
}

// List returns one page of the overtime request listing
// GET /api/v1/overtime-requests
func (h *OvertimeHandler) List(c *fiber.Ctx) error {
	q := getListQuery(c, "date_filed")
	result, err := h.overtimeService.List(c.Context(), q)
	if err != nil {
		return serviceError(c, err, "Failed to load overtime requests")
	}
	return response.Paginated(c, result.Items, result.Meta)
}

// Approve approves an overtime request
// PUT /api/v1/overtime-requests/:id/approve
func (h *OvertimeHandler) Approve(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return response.BadRequest(c, "record id is required")
	}
	if err := h.overtimeService.Approve(c.Context(), id); err != nil {
		return serviceError(c, err, "Failed to approve overtime request")
	}
	return response.Success(c, "Overtime request approved", nil)
}

// Reject rejects an overtime request
// PUT /api/v1/overtime-requests/:id/reject
func (h *OvertimeHandler) Reject(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return response.BadRequest(c, "record id is required")
	}
	var req rejectRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return response.BadRequest(c, "invalid request body")
	}
	if err := h.overtimeService.Reject(c.Context(), id, req.Reason); err != nil {
		return serviceError(c, err, "Failed to reject overtime request")
	}
	return response.Success(c, "Overtime request rejected", nil)
}
