package events

import (
	"time"

	"github.com/go-monolith/mono/pkg/helper"
)

// TaskScheduledEvent is emitted when a new task is placed on the grid.
type TaskScheduledEvent struct {
	TaskID     string    `json:"task_id"`
	MechanicID string    `json:"mechanic_id"`
	Title      string    `json:"title"`
	WeekStart  time.Time `json:"week_start"`
	StartDay   int       `json:"start_day"`
	StartHour  int       `json:"start_hour"`
	Duration   int       `json:"duration"`
	CreatedAt  time.Time `json:"created_at"`
}

// TaskScheduledV1 is the typed event definition for task placement.
// Subject: events.schedule.v1.task-scheduled
var TaskScheduledV1 = helper.EventDefinition[TaskScheduledEvent](
	"schedule", "TaskScheduled", "v1",
)

// TaskUpdatedEvent is emitted when a task's fields are edited.
type TaskUpdatedEvent struct {
	TaskID     string    `json:"task_id"`
	MechanicID string    `json:"mechanic_id"`
	StartDay   int       `json:"start_day"`
	StartHour  int       `json:"start_hour"`
	Duration   int       `json:"duration"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TaskUpdatedV1 is the typed event definition for task edits.
// Subject: events.schedule.v1.task-updated
var TaskUpdatedV1 = helper.EventDefinition[TaskUpdatedEvent](
	"schedule", "TaskUpdated", "v1",
)

// TaskMovedEvent is emitted when a task is dragged to a new mechanic,
// day or hour.
type TaskMovedEvent struct {
	TaskID       string    `json:"task_id"`
	FromMechanic string    `json:"from_mechanic"`
	ToMechanic   string    `json:"to_mechanic"`
	StartDay     int       `json:"start_day"`
	StartHour    int       `json:"start_hour"`
	MovedAt      time.Time `json:"moved_at"`
}

// TaskMovedV1 is the typed event definition for drag-and-drop moves.
// Subject: events.schedule.v1.task-moved
var TaskMovedV1 = helper.EventDefinition[TaskMovedEvent](
	"schedule", "TaskMoved", "v1",
)

// TaskCanceledEvent is emitted when a task is deleted from the grid.
type TaskCanceledEvent struct {
	TaskID     string    `json:"task_id"`
	MechanicID string    `json:"mechanic_id"`
	CanceledAt time.Time `json:"canceled_at"`
}

// TaskCanceledV1 is the typed event definition for task deletion.
// Subject: events.schedule.v1.task-canceled
var TaskCanceledV1 = helper.EventDefinition[TaskCanceledEvent](
	"schedule", "TaskCanceled", "v1",
)
