package handlers

import (
	"github.com/megaxsolutions/syncorp-sub002/internal/core/services"
	"github.com/megaxsolutions/syncorp-sub002/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// IncidentHandler handles the incident report admin endpoints
type IncidentHandler struct {
	incidentService *services.IncidentService
}

// NewIncidentHandler creates a new incident handler
func NewIncidentHandler(incidentService *services.IncidentService) *IncidentHandler {
	return &IncidentHandler{incidentService: incidentService}
}

// List returns one page of the incident report listing
// GET /api/v1/incident-reports
func (h *IncidentHandler) List(c *fiber.Ctx) error {
	q := getListQuery(c, "date_filed")
	result, err := h.incidentService.List(c.Context(), q)
	if err != nil {
		return serviceError(c, err, "Failed to load incident reports")
	}
	return response.Paginated(c, result.Items, result.Meta)
}
