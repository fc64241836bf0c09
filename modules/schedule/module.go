package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	domain "github.com/roymoj06-cmd/repairshop-sub001/domain/schedule"
	"github.com/roymoj06-cmd/repairshop-sub001/events"
	"github.com/roymoj06-cmd/repairshop-sub001/modules/calendar"
	"github.com/roymoj06-cmd/repairshop-sub001/modules/gridcache"
	"github.com/roymoj06-cmd/repairshop-sub001/modules/roster"
)

// ScheduleModule is the core domain module: it owns task storage, applies
// the mutation rules, and assembles the classified week grid from the
// roster and calendar snapshots.
type ScheduleModule struct {
	db       *gorm.DB
	repo     *Repository
	cfg      domain.Config
	dbPath   string
	roster   roster.RosterPort
	calendar calendar.CalendarPort
	cache    *gridcache.Cache
	eventBus mono.EventBus
}

// Compile-time interface checks.
var _ mono.Module = (*ScheduleModule)(nil)
var _ mono.ServiceProviderModule = (*ScheduleModule)(nil)
var _ mono.DependentModule = (*ScheduleModule)(nil)
var _ mono.EventEmitterModule = (*ScheduleModule)(nil)
var _ mono.HealthCheckableModule = (*ScheduleModule)(nil)

// NewModule creates a new ScheduleModule configured from the environment.
func NewModule() *ScheduleModule {
	dbPath := os.Getenv("SCHEDULE_DB_PATH")
	if dbPath == "" {
		dbPath = "schedule.db"
	}
	return &ScheduleModule{
		dbPath: dbPath,
		cfg:    configFromEnv(),
	}
}

// configFromEnv builds the shop schedule configuration, falling back to
// the defaults for anything unset or unparsable.
func configFromEnv() domain.Config {
	cfg := domain.DefaultConfig()
	if v := os.Getenv("SHOP_OPEN_HOUR"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 && n < 24 {
			cfg.OpenHour = n
		}
	}
	if v := os.Getenv("SHOP_DAY_SLOTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Slots = n
		}
	}
	if wd, ok := parseWeekday(os.Getenv("SHOP_DAY_OFF")); ok {
		cfg.WeeklyDayOff = wd
	}
	if wd, ok := parseWeekday(os.Getenv("SHOP_WEEK_START")); ok {
		cfg.WeekStart = wd
	}
	return cfg
}

// parseWeekday matches a weekday by its English name, case-insensitive.
func parseWeekday(s string) (time.Weekday, bool) {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if strings.EqualFold(s, wd.String()) {
			return wd, true
		}
	}
	return time.Sunday, false
}

// Name returns the module name.
func (m *ScheduleModule) Name() string {
	return "schedule"
}

// Dependencies returns the list of module dependencies.
func (m *ScheduleModule) Dependencies() []string {
	return []string{"roster", "calendar"}
}

// SetDependencyServiceContainer receives service containers from
// dependencies.
func (m *ScheduleModule) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	switch dependency {
	case "roster":
		m.roster = roster.NewRosterAdapter(container)
	case "calendar":
		m.calendar = calendar.NewCalendarAdapter(container)
	}
}

// SetEventBus receives the application event bus.
func (m *ScheduleModule) SetEventBus(bus mono.EventBus) {
	m.eventBus = bus
}

// SetCache wires the week-grid cache. A nil cache disables caching and
// every grid query recomputes.
func (m *ScheduleModule) SetCache(c *gridcache.Cache) {
	m.cache = c
}

// EmitEvents declares the events this module publishes.
func (m *ScheduleModule) EmitEvents() []mono.BaseEventDefinition {
	return []mono.BaseEventDefinition{
		events.TaskScheduledV1.ToBase(),
		events.TaskUpdatedV1.ToBase(),
		events.TaskMovedV1.ToBase(),
		events.TaskCanceledV1.ToBase(),
	}
}

// RegisterServices registers request-reply services in the service container.
func (m *ScheduleModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "create-task", json.Unmarshal, json.Marshal, m.createTask,
	); err != nil {
		return fmt.Errorf("failed to register create-task service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "edit-task", json.Unmarshal, json.Marshal, m.editTask,
	); err != nil {
		return fmt.Errorf("failed to register edit-task service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "move-task", json.Unmarshal, json.Marshal, m.moveTask,
	); err != nil {
		return fmt.Errorf("failed to register move-task service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "delete-task", json.Unmarshal, json.Marshal, m.deleteTask,
	); err != nil {
		return fmt.Errorf("failed to register delete-task service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "week-grid", json.Unmarshal, json.Marshal, m.weekGrid,
	); err != nil {
		return fmt.Errorf("failed to register week-grid service: %w", err)
	}

	log.Printf("[schedule] Registered services: create-task, edit-task, move-task, delete-task, week-grid")
	return nil
}

// Health performs a health check on the schedule module.
func (m *ScheduleModule) Health(ctx context.Context) mono.HealthStatus {
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
			"driver":       "sqlite",
			"path":         m.dbPath,
			"slots":        m.cfg.Slots,
			"open_hour":    m.cfg.OpenHour,
			"weekly_off":   m.cfg.WeeklyDayOff.String(),
			"cache_in_use": m.cache != nil,
		},
	}
}

// Start initializes the database connection and runs migrations.
func (m *ScheduleModule) Start(_ context.Context) error {
	if m.roster == nil {
		return fmt.Errorf("roster dependency not set")
	}
	if m.calendar == nil {
		return fmt.Errorf("calendar dependency not set")
	}
	if m.eventBus == nil {
		log.Println("[schedule] Warning: eventBus not set, events will not be published")
	}

	log.Printf("[schedule] Connecting to SQLite database: %s", m.dbPath)

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

	log.Printf("[schedule] Module started (%d slots from %02d:00, %s off)",
		m.cfg.Slots, m.cfg.OpenHour, m.cfg.WeeklyDayOff)
	return nil
}

// Stop gracefully closes the database connection.
func (m *ScheduleModule) Stop(_ context.Context) error {
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

	log.Println("[schedule] Module stopped")
	return nil
}
