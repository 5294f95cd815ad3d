package routes

import (
	"github.com/megaxsolutions/syncorp-sub002/internal/adapters/http/handlers"
	"github.com/megaxsolutions/syncorp-sub002/internal/adapters/http/middleware"
	"github.com/megaxsolutions/syncorp-sub002/internal/adapters/syncorp"
	"github.com/megaxsolutions/syncorp-sub002/internal/config"
	"github.com/megaxsolutions/syncorp-sub002/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

// Deps bundles the shared client and services built in main, whose
// lifecycles (polling, cron refresh) outlive any one request
type Deps struct {
	Client     *syncorp.Client
	Session    syncorp.Session
	Auth       *services.AuthService
	Reference  *services.ReferenceService
	Leave      *services.LeaveService
	Overtime   *services.OvertimeService
	Complexity *services.ComplexityService
	Adjustment *services.AdjustmentService
	Incident   *services.IncidentService
	Attendance *services.AttendanceService
	Coaching   *services.CoachingService
	Report     *services.ReportService
}

// Setup configures all routes for the application
func Setup(app *fiber.App, cfg *config.Config, deps *Deps) {
	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(deps.Auth)
	referenceHandler := handlers.NewReferenceHandler(deps.Reference)
	leaveHandler := handlers.NewLeaveHandler(deps.Leave)
	overtimeHandler := handlers.NewOvertimeHandler(deps.Overtime)
	complexityHandler := handlers.NewComplexityHandler(deps.Complexity)
	adjustmentHandler := handlers.NewAdjustmentHandler(deps.Adjustment)
	incidentHandler := handlers.NewIncidentHandler(deps.Incident)
	attendanceHandler := handlers.NewAttendanceHandler(deps.Attendance)
	coachingHandler := handlers.NewCoachingHandler(deps.Coaching)
	reportHandler := handlers.NewReportHandler(deps.Attendance, deps.Report)
	uploadHandler := handlers.NewUploadHandler(deps.Client, deps.Session)

	// Public routes
	app.Get("/health", healthHandler.Check)

	api := app.Group("/api/v1")
	api.Post("/auth/login", authHandler.Login)

	// Everything else requires a gateway session
	auth := api.Group("", middleware.AuthMiddleware(cfg))
	auth.Post("/auth/logout", authHandler.Logout)

	// Reference data
	auth.Get("/reference/employees", referenceHandler.Employees)
	auth.Get("/reference/dropdowns", referenceHandler.Dropdowns)

	// Approval-workflow listings and actions (admin only)
	admin := auth.Group("", middleware.AdminOnly())
	admin.Get("/leave-requests", leaveHandler.List)
	admin.Put("/leave-requests/:id/approve", leaveHandler.Approve)
	admin.Put("/leave-requests/:id/reject", leaveHandler.Reject)

	admin.Get("/overtime-requests", overtimeHandler.List)
	admin.Put("/overtime-requests/:id/approve", overtimeHandler.Approve)
	admin.Put("/overtime-requests/:id/reject", overtimeHandler.Reject)

	admin.Get("/complexity-allowances", complexityHandler.List)
	admin.Put("/complexity-allowances/:id/approve", complexityHandler.Approve)
	admin.Put("/complexity-allowances/:id/reject", complexityHandler.Reject)

	admin.Get("/adjustments", adjustmentHandler.List)
	admin.Put("/adjustments/:id/approve", adjustmentHandler.Approve)
	admin.Put("/adjustments/:id/reject", adjustmentHandler.Reject)

	admin.Get("/incident-reports", incidentHandler.List)

	// Attendance: listing plus live snapshot
	admin.Get("/attendance", attendanceHandler.List)
	admin.Get("/attendance/live", attendanceHandler.Live)

	// Coaching sessions
	auth.Get("/coaching/supervisor/:supervisorId", coachingHandler.ListBySupervisor)
	auth.Post("/coaching", coachingHandler.Add)
	auth.Put("/coaching/:id", coachingHandler.Update)
	auth.Delete("/coaching/:id", coachingHandler.Delete)

	// Reports
	admin.Get("/reports/attendance/export", reportHandler.ExportAttendance)

	// Uploaded files (medical certificates, signatures)
	auth.Get("/uploads/*", uploadHandler.Get)
}
