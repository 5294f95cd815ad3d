package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/megaxsolutions/syncorp-sub002/internal/adapters/http/middleware"
	"github.com/megaxsolutions/syncorp-sub002/internal/adapters/http/routes"
	"github.com/megaxsolutions/syncorp-sub002/internal/adapters/syncorp"
	"github.com/megaxsolutions/syncorp-sub002/internal/config"
	"github.com/megaxsolutions/syncorp-sub002/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Upstream HRIS client; one service session attached to every call
	client := syncorp.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)
	sess := syncorp.Session{
		Token: cfg.Upstream.Token,
		EmpID: cfg.Upstream.ActorEmpID,
	}

	startCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Reference data must load before record services join against it
	referenceService := services.NewReferenceService(client, sess, cfg.Cache.ReferenceTTL)
	if err := referenceService.Start(startCtx); err != nil {
		log.Fatalf("❌ Failed to start reference service: %v", err)
	}
	defer referenceService.Stop()

	// Live attendance poller
	attendanceService := services.NewAttendanceService(client, sess, referenceService, cfg.Cache.PollInterval)
	attendanceService.Start(startCtx)
	defer attendanceService.Stop()

	deps := &routes.Deps{
		Client:     client,
		Session:    sess,
		Auth:       services.NewAuthService(cfg),
		Reference:  referenceService,
		Leave:      services.NewLeaveService(client, sess, referenceService, cfg.Cache.SnapshotTTL),
		Overtime:   services.NewOvertimeService(client, sess, referenceService, cfg.Cache.SnapshotTTL),
		Complexity: services.NewComplexityService(client, sess, referenceService, cfg.Cache.SnapshotTTL),
		Adjustment: services.NewAdjustmentService(client, sess, referenceService, cfg.Cache.SnapshotTTL),
		Incident:   services.NewIncidentService(client, sess, referenceService, cfg.Cache.SnapshotTTL),
		Attendance: attendanceService,
		Coaching:   services.NewCoachingService(client, sess, referenceService),
		Report:     services.NewReportService(),
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Syncorp Admin Gateway v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes
	routes.Setup(app, cfg, deps)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
