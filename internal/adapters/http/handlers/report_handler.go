package handlers

import (
	"time"

	"github.com/megaxsolutions/syncorp-sub002/internal/core/services"
	"github.com/megaxsolutions/syncorp-sub002/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ReportHandler serves downloadable workbook exports
type ReportHandler struct {
	attendanceService *services.AttendanceService
	reportService     *services.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(attendanceService *services.AttendanceService, reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{
		attendanceService: attendanceService,
		reportService:     reportService,
	}
}

// ExportAttendance streams the filtered attendance snapshot as XLSX;
// it honors the same query parameters as the attendance listing.
// GET /api/v1/reports/attendance/export
func (h *ReportHandler) ExportAttendance(c *fiber.Ctx) error {
	q := getListQuery(c, "date")
	q.Status = c.Query("status")

	entries := h.attendanceService.Filtered(q)
	buf, err := h.reportService.AttendanceWorkbook(entries)
	if err != nil {
		return response.InternalServerError(c, "Failed to build attendance export")
	}

	filename := h.reportService.AttendanceFilename(time.Now())
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}
