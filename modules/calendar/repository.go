package calendar

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/roymoj06-cmd/repairshop-sub001/domain/schedule"
)

// ErrNotFound is returned when a holiday or leave row is not found.
var ErrNotFound = errors.New("calendar entry not found")

// Repository provides access to holiday and leave storage. All days are
// normalized to their day start on write, so lookups by day are exact.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new calendar repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate runs the schema migrations for the calendar tables.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(&Holiday{}, &Leave{})
}

// AddHoliday saves a new holiday.
func (r *Repository) AddHoliday(h *Holiday) error {
	h.Day = schedule.DayStart(h.Day)
	if err := r.db.Create(h).Error; err != nil {
		return fmt.Errorf("failed to create holiday: %w", err)
	}
	return nil
}

// DeleteHoliday removes a holiday by ID.
func (r *Repository) DeleteHoliday(id string) error {
	result := r.db.Delete(&Holiday{}, "id = ?", id)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListHolidays retrieves all holidays ordered by day.
func (r *Repository) ListHolidays() ([]*Holiday, error) {
	var holidays []*Holiday
	if err := r.db.Order("day").Find(&holidays).Error; err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	return holidays, nil
}

// HolidaysBetween retrieves the holidays whose day falls in [from, to],
// bounds inclusive and normalized to day starts.
func (r *Repository) HolidaysBetween(from, to time.Time) ([]*Holiday, error) {
	var holidays []*Holiday
	err := r.db.
		Where("day >= ? AND day <= ?", schedule.DayStart(from), schedule.DayStart(to)).
		Order("day").
		Find(&holidays).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query holidays: %w", err)
	}
	return holidays, nil
}

// AddLeave saves a new leave entry.
func (r *Repository) AddLeave(l *Leave) error {
	l.Day = schedule.DayStart(l.Day)
	if err := r.db.Create(l).Error; err != nil {
		return fmt.Errorf("failed to create leave: %w", err)
	}
	return nil
}

// DeleteLeave removes a leave entry by ID.
func (r *Repository) DeleteLeave(id string) error {
	result := r.db.Delete(&Leave{}, "id = ?", id)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to delete leave: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListLeaves retrieves all leave entries ordered by day.
func (r *Repository) ListLeaves() ([]*Leave, error) {
	var leaves []*Leave
	if err := r.db.Order("day").Find(&leaves).Error; err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}
	return leaves, nil
}

// LeavesBetween retrieves the leave entries whose day falls in [from, to].
func (r *Repository) LeavesBetween(from, to time.Time) ([]*Leave, error) {
	var leaves []*Leave
	err := r.db.
		Where("day >= ? AND day <= ?", schedule.DayStart(from), schedule.DayStart(to)).
		Order("day").
		Find(&leaves).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query leaves: %w", err)
	}
	return leaves, nil
}
