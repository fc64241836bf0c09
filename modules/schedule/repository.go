package schedule

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a task is not found.
var ErrNotFound = errors.New("task not found")

// Repository provides access to task storage.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new task repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate runs the schema migration for the tasks table.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(&TaskRecord{})
}

// Create saves a new task to the database.
func (r *Repository) Create(task *TaskRecord) error {
	if err := r.db.Create(task).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// FindByID retrieves a task by its ID.
func (r *Repository) FindByID(id string) (*TaskRecord, error) {
	var task TaskRecord
	if err := r.db.First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return &task, nil
}

// FindByWeek retrieves all tasks anchored to the given week start, in
// stable grid order.
func (r *Repository) FindByWeek(weekStart time.Time) ([]*TaskRecord, error) {
	var tasks []*TaskRecord
	err := r.db.
		Where("week_start = ?", weekStart).
		Order("mechanic_id, start_day, start_hour").
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find tasks for week: %w", err)
	}
	return tasks, nil
}

// Update rewrites an existing task. Zero-valued grid indices are legal
// field values here, so the update selects all columns explicitly rather
// than relying on GORM's non-zero field detection.
func (r *Repository) Update(task *TaskRecord) error {
	result := r.db.Model(&TaskRecord{}).
		Where("id = ?", task.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(task)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a task by ID.
func (r *Repository) Delete(id string) error {
	result := r.db.Delete(&TaskRecord{}, "id = ?", id)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
