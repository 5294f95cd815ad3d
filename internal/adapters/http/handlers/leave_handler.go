package handlers

import (
	"github.com/megaxsolutions/syncorp-sub002/internal/core/services"
	"github.com/megaxsolutions/syncorp-sub002/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// LeaveHandler handles the leave request admin endpoints
type LeaveHandler struct {
	leaveService *services.LeaveService
}

// NewLeaveHandler creates a new leave handler
func NewLeaveHandler(leaveService *services.LeaveService) *LeaveHandler {
	return &LeaveHandler{leaveService: leaveService}
}

// List returns one page of the leave request listing
// GET /api/v1/leave-requests
func (h *LeaveHandler) List(c *fiber.Ctx) error {
	q := getListQuery(c, "date_filed")
	result, err := h.leaveService.List(c.Context(), q)
	if err != nil {
		return serviceError(c, err, "Failed to load leave requests")
	}
	return response.Paginated(c, result.Items, result.Meta)
}

// Approve approves a leave request
// PUT /api/v1/leave-requests/:id/approve
func (h *LeaveHandler) Approve(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return response.BadRequest(c, "record id is required")
	}
	if err := h.leaveService.Approve(c.Context(), id); err != nil {
		return serviceError(c, err, "Failed to approve leave request")
	}
	return response.Success(c, "Leave request approved", nil)
}

// Reject rejects a leave request
// PUT /api/v1/leave-requests/:id/reject
func (h *LeaveHandler) Reject(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return response.BadRequest(c, "record id is required")
	}
	var req rejectRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return response.BadRequest(c, "invalid request body")
	}
	if err := h.leaveService.Reject(c.Context(), id, req.Reason); err != nil {
		return serviceError(c, err, "Failed to reject leave request")
	}
	return response.Success(c, "Leave request rejected", nil)
}
