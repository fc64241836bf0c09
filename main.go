package main

import (
	"context"
	"log"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"

	"github.com/roymoj06-cmd/repairshop-sub001/modules/api"
	"github.com/roymoj06-cmd/repairshop-sub001/modules/calendar"
	"github.com/roymoj06-cmd/repairshop-sub001/modules/gridcache"
	"github.com/roymoj06-cmd/repairshop-sub001/modules/notification"
	"github.com/roymoj06-cmd/repairshop-sub001/modules/roster"
	"github.com/roymoj06-cmd/repairshop-sub001/modules/schedule"
)

const shutdownTimeout = 30 * time.Second

func main() {
	log.Println("=== Repair Shop Scheduler ===")

	// Create modules
	rosterModule := roster.NewModule()
	calendarModule := calendar.NewModule()
	cacheModule := gridcache.NewModule()
	notificationModule := notification.NewModule()
	scheduleModule := schedule.NewModule()
	apiModule := api.NewModule()

	// Create mono application
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Register modules with the framework.
	// Order: independent modules first, then modules with dependencies.
	app.Register(rosterModule)       // Reference data (no dependencies)
	app.Register(calendarModule)     // Holidays and leaves (no dependencies)
	app.Register(cacheModule)        // Week-grid cache (no dependencies)
	app.Register(notificationModule) // Event consumer (subscribes to schedule events)
	app.Register(scheduleModule)     // Core domain (depends on roster, calendar)
	app.Register(apiModule)          // Driving adapter (depends on schedule, roster, calendar)

	// Start application
	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	// Wire up the cache after start; Cache() is nil when Redis is
	// unavailable and both consumers treat nil as cache-off.
	scheduleModule.SetCache(cacheModule.Cache())
	calendarModule.SetCache(cacheModule.Cache())

	printStartupInfo()

	// Graceful shutdown
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo() {
	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Println("Demo Mechanics Available:")
	log.Println("  - mech-1: Dana Cole (engine)")
	log.Println("  - mech-2: Sam Ortiz (transmission)")
	log.Println("  - mech-3: Lee Tanaka (electrical)")
	log.Println("")
	log.Println("REST API Endpoints (http://localhost:3000):")
	log.Println("  GET    /api/v1/schedule/grid?week=YYYY-MM-DD - Classified week grid")
	log.Println("  POST   /api/v1/schedule/tasks                - Place a task")
	log.Println("  PUT    /api/v1/schedule/tasks/:id            - Edit a task")
	log.Println("  POST   /api/v1/schedule/tasks/:id/move       - Drag-and-drop move")
	log.Println("  DELETE /api/v1/schedule/tasks/:id            - Delete a task")
	log.Println("  GET    /api/v1/mechanics                     - List mechanics")
	log.Println("  GET    /api/v1/calendar/holidays             - List holidays")
	log.Println("  POST   /api/v1/calendar/holidays             - Add a holiday")
	log.Println("  DELETE /api/v1/calendar/holidays/:id         - Remove a holiday")
	log.Println("  GET    /api/v1/calendar/leaves               - List leave days")
	log.Println("  POST   /api/v1/calendar/leaves               - Record a leave day")
	log.Println("  DELETE /api/v1/calendar/leaves/:id           - Remove a leave day")
	log.Println("  GET    /health                               - Health check")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}
