package schedule

import (
	"time"

	domain "github.com/roymoj06-cmd/repairshop-sub001/domain/schedule"
)

// TaskRecord is the persisted form of a task: the in-week grid indices
// plus the aligned week-start date that anchors them to the calendar.
// EndDay and EndHour mirror the derived cache on the domain task and are
// rewritten on every mutation.
type TaskRecord struct {
	ID         string    `gorm:"primarykey;size:36" json:"id"`
	WeekStart  time.Time `gorm:"not null;index" json:"week_start"`
	MechanicID string    `gorm:"size:64;not null;index" json:"mechanic_id"`
	Title      string    `gorm:"size:200" json:"title"`
	StartDay   int       `gorm:"not null" json:"start_day"`
	StartHour  int       `gorm:"not null" json:"start_hour"`
	Duration   int       `gorm:"not null" json:"duration"`
	EndDay     int       `gorm:"not null" json:"end_day"`
	EndHour    int       `gorm:"not null" json:"end_hour"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName returns the table name for the TaskRecord model.
func (TaskRecord) TableName() string {
	return "tasks"
}

// toDomain converts the record to the domain task shape.
func (r *TaskRecord) toDomain() domain.Task {
	return domain.Task{
		ID:         r.ID,
		MechanicID: r.MechanicID,
		Title:      r.Title,
		StartDay:   r.StartDay,
		StartHour:  r.StartHour,
		Duration:   r.Duration,
		EndDay:     r.EndDay,
		EndHour:    r.EndHour,
	}
}

// applyDomain copies the task's grid placement back onto the record.
func (r *TaskRecord) applyDomain(t domain.Task) {
	r.MechanicID = t.MechanicID
	r.Title = t.Title
	r.StartDay = t.StartDay
	r.StartHour = t.StartHour
	r.Duration = t.Duration
	r.EndDay = t.EndDay
	r.EndHour = t.EndHour
}
