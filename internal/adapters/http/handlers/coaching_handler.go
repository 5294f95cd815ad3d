package handlers

import (
	"github.com/megaxsolutions/syncorp-sub002/internal/adapters/syncorp"
	"github.com/megaxsolutions/syncorp-sub002/internal/core/services"
	"github.com/megaxsolutions/syncorp-sub002/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CoachingHandler handles the coaching session endpoints
type CoachingHandler struct {
	coachingService *services.CoachingService
}

// NewCoachingHandler creates a new coaching handler
func NewCoachingHandler(coachingService *services.CoachingService) *CoachingHandler {
	return &CoachingHandler{coachingService: coachingService}
}

// ListBySupervisor returns one page of a supervisor's coaching sessions
// GET /api/v1/coaching/supervisor/:supervisorId
func (h *CoachingHandler) ListBySupervisor(c *fiber.Ctx) error {
	supervisorID := c.Params("supervisorId")
	q := getListQuery(c, "session_date")
	result, err := h.coachingService.ListBySupervisor(c.Context(), supervisorID, q)
	if err != nil {
		return serviceError(c, err, "Failed to load coaching sessions")
	}
	return response.Paginated(c, result.Items, result.Meta)
}

// Add creates a coaching session
// POST /api/v1/coaching
func (h *CoachingHandler) Add(c *fiber.Ctx) error {
	var payload syncorp.CoachingPayload
	if err := c.BodyParser(&payload); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	if err := h.coachingService.Add(c.Context(), payload); err != nil {
		return serviceError(c, err, "Failed to add coaching session")
	}
	return response.Created(c, "Coaching session added", nil)
}

// Update edits a coaching session
// PUT /api/v1/coaching/:id
func (h *CoachingHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var payload syncorp.CoachingPayload
	if err := c.BodyParser(&payload); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	if err := h.coachingService.Update(c.Context(), id, payload); err != nil {
		return serviceError(c, err, "Failed to update coaching session")
	}
	return response.Success(c, "Coaching session updated", nil)
}

// Delete removes a coaching session
// DELETE /api/v1/coaching/:id
func (h *CoachingHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.coachingService.Delete(c.Context(), id); err != nil {
		return serviceError(c, err, "Failed to delete coaching session")
	}
	return response.Success(c, "Coaching session deleted", nil)
}
