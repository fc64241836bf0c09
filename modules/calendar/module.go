package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/roymoj06-cmd/repairshop-sub001/modules/gridcache"
)

// CalendarModule owns the holiday list and the mechanic leave index. The
// scheduling core consumes them strictly as read-only snapshots via the
// snapshot service; nothing outside this module writes these tables.
type CalendarModule struct {
	db     *gorm.DB
	repo   *Repository
	dbPath string
	cache  *gridcache.Cache
}

// Compile-time interface checks.
var _ mono.Module = (*CalendarModule)(nil)
var _ mono.ServiceProviderModule = (*CalendarModule)(nil)
var _ mono.HealthCheckableModule = (*CalendarModule)(nil)

// NewModule creates a new CalendarModule.
func NewModule() *CalendarModule {
	dbPath := os.Getenv("CALENDAR_DB_PATH")
	if dbPath == "" {
		dbPath = "calendar.db"
	}
	return &CalendarModule{dbPath: dbPath}
}

// Name returns the module name.
func (m *CalendarModule) Name() string {
	return "calendar"
}

// SetCache wires the week-grid cache. Holiday and leave changes reshape
// the classification of every cached week, so calendar mutations drop
// the whole cache. A nil cache disables invalidation.
func (m *CalendarModule) SetCache(c *gridcache.Cache) {
	m.cache = c
}

// Health performs a health check on the calendar module.
func (m *CalendarModule) Health(ctx context.Context) mono.HealthStatus {
	if m.db == nil {
		return mono.HealthStatus{Healthy: false, Message: "database not initialized"}
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return mono.HealthStatus{Healthy: false, Message: fmt.Sprintf("failed to get sql.DB: %v", err)}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return mono.HealthStatus{Healthy: false, Message: fmt.Sprintf("database ping failed: %v", err)}
	}

	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"driver": "sqlite",
			"path":   m.dbPath,
		},
	}
}

// RegisterServices registers request-reply services in the service container.
func (m *CalendarModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "add-holiday", json.Unmarshal, json.Marshal, m.addHoliday,
	); err != nil {
		return fmt.Errorf("failed to register add-holiday service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "remove-holiday", json.Unmarshal, json.Marshal, m.removeHoliday,
	); err != nil {
		return fmt.Errorf("failed to register remove-holiday service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "list-holidays", json.Unmarshal, json.Marshal, m.listHolidays,
	); err != nil {
		return fmt.Errorf("failed to register list-holidays service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "add-leave", json.Unmarshal, json.Marshal, m.addLeave,
	); err != nil {
		return fmt.Errorf("failed to register add-leave service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "remove-leave", json.Unmarshal, json.Marshal, m.removeLeave,
	); err != nil {
		return fmt.Errorf("failed to register remove-leave service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "list-leaves", json.Unmarshal, json.Marshal, m.listLeaves,
	); err != nil {
		return fmt.Errorf("failed to register list-leaves service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "snapshot", json.Unmarshal, json.Marshal, m.snapshot,
	); err != nil {
		return fmt.Errorf("failed to register snapshot service: %w", err)
	}

	log.Printf("[calendar] Registered services: add-holiday, remove-holiday, list-holidays, add-leave, remove-leave, list-leaves, snapshot")
	return nil
}

// Start initializes the database connection and runs migrations.
func (m *CalendarModule) Start(_ context.Context) error {
	log.Printf("[calendar] Connecting to SQLite database: %s", m.dbPath)

	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "true" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(m.dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	m.db = db
	m.repo = NewRepository(db)

	if err := m.repo.Migrate(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("[calendar] Module started")
	return nil
}

// Stop gracefully closes the database connection.
func (m *CalendarModule) Stop(_ context.Context) error {
	if m.db == nil {
		return nil
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	log.Println("[calendar] Module stopped")
	return nil
}
