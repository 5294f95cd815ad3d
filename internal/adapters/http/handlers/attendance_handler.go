package handlers

import (
	"github.com/megaxsolutions/syncorp-sub002/internal/core/services"
	"github.com/megaxsolutions/syncorp-sub002/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AttendanceHandler handles the attendance admin endpoints, served
// from the live poller's snapshot
type AttendanceHandler struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceHandler creates a new attendance handler
func NewAttendanceHandler(attendanceService *services.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// List returns one page of the attendance listing
// GET /api/v1/attendance
func (h *AttendanceHandler) List(c *fiber.Ctx) error {
	q := getListQuery(c, "date")
	// Attendance status values come from the HRIS (present/late/absent),
	// not the approval state machine.
	q.Status = c.Query("status")
	result := h.attendanceService.List(q)
	return response.Paginated(c, result.Items, result.Meta)
}

// Live returns the full current snapshot with its fetch timestamp
// GET /api/v1/attendance/live
func (h *AttendanceHandler) Live(c *fiber.Ctx) error {
	entries, fetchedAt := h.attendanceService.Snapshot()
	return response.Success(c, "", fiber.Map{
		"entries":    entries,
		"fetched_at": fetchedAt,
	})
}
