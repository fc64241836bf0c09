package schedule

import (
	"context"
	"time"

	domain "github.com/roymoj06-cmd/repairshop-sub001/domain/schedule"
)

// CreateTaskRequest is the request for placing a new task on the grid.
// Week is any date inside the target week; it is aligned to the week
// start before the task is anchored.
type CreateTaskRequest struct {
	Week       time.Time `json:"week"`
	MechanicID string    `json:"mechanic_id"`
	Title      string    `json:"title"`
	StartDay   int       `json:"start_day"`
	StartHour  int       `json:"start_hour"`
	Duration   int       `json:"duration"`
}

// TaskResponse is the response for a single task.
type TaskResponse struct {
	ID         string    `json:"id"`
	WeekStart  time.Time `json:"week_start"`
	MechanicID string    `json:"mechanic_id"`
	Title      string    `json:"title"`
	StartDay   int       `json:"start_day"`
	StartHour  int       `json:"start_hour"`
	Duration   int       `json:"duration"`
	EndDay     int       `json:"end_day"`
	EndHour    int       `json:"end_hour"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// EditTaskRequest is the request for editing a task. Nil fields are left
// unchanged; the resulting start day is re-validated against holidays.
type EditTaskRequest struct {
	TaskID    string  `json:"task_id"`
	Title     *string `json:"title,omitempty"`
	StartDay  *int    `json:"start_day,omitempty"`
	StartHour *int    `json:"start_hour,omitempty"`
	Duration  *int    `json:"duration,omitempty"`
}

// MoveTaskRequest is the request for a drag-and-drop reassignment: the
// task is re-anchored at the new mechanic, day and hour with no holiday
// or leave validation.
type MoveTaskRequest struct {
	TaskID     string `json:"task_id"`
	MechanicID string `json:"mechanic_id"`
	StartDay   int    `json:"start_day"`
	StartHour  int    `json:"start_hour"`
}

// DeleteTaskRequest is the request for deleting a task.
type DeleteTaskRequest struct {
	TaskID string `json:"task_id"`
}

// DeleteTaskResponse is the response for deleting a task.
type DeleteTaskResponse struct {
	Deleted bool `json:"deleted"`
}

// WeekGridRequest asks for the fully classified grid of the week
// containing Anchor.
type WeekGridRequest struct {
	Anchor time.Time `json:"anchor"`
}

// WeekGridResponse is the classified mechanic x day x hour matrix for
// one week, ready for rendering.
type WeekGridResponse struct {
	WeekStart time.Time            `json:"week_start"`
	Days      []time.Time          `json:"days"`
	HourSlots []int                `json:"hour_slots"`
	OpenHour  int                  `json:"open_hour"`
	Rows      []domain.MechanicRow `json:"rows"`
}

// SchedulePort defines the interface for scheduling operations used by
// driving adapters.
type SchedulePort interface {
	CreateTask(ctx context.Context, req *CreateTaskRequest) (*TaskResponse, error)
	EditTask(ctx context.Context, req *EditTaskRequest) (*TaskResponse, error)
	MoveTask(ctx context.Context, req *MoveTaskRequest) (*TaskResponse, error)
	DeleteTask(ctx context.Context, taskID string) error
	WeekGrid(ctx context.Context, anchor time.Time) (*WeekGridResponse, error)
}
