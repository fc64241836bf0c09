package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// scheduleAdapter wraps ServiceContainer for type-safe cross-module
// communication.
type scheduleAdapter struct {
	container mono.ServiceContainer
}

// NewScheduleAdapter creates a new adapter for schedule services.
// container is the ServiceContainer from the schedule module received via
// SetDependencyServiceContainer.
func NewScheduleAdapter(container mono.ServiceContainer) SchedulePort {
	if container == nil {
		panic("schedule adapter requires non-nil ServiceContainer")
	}
	return &scheduleAdapter{container: container}
}

// CreateTask places a new task via the create-task service.
func (a *scheduleAdapter) CreateTask(ctx context.Context, req *CreateTaskRequest) (*TaskResponse, error) {
	var resp TaskResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "create-task", json.Marshal, json.Unmarshal, req, &resp,
	); err != nil {
		return nil, fmt.Errorf("create-task service call failed: %w", err)
	}
	return &resp, nil
}

// EditTask patches a task via the edit-task service.
func (a *scheduleAdapter) EditTask(ctx context.Context, req *EditTaskRequest) (*TaskResponse, error) {
	var resp TaskResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "edit-task", json.Marshal, json.Unmarshal, req, &resp,
	); err != nil {
		return nil, fmt.Errorf("edit-task service call failed: %w", err)
	}
	return &resp, nil
}

// MoveTask reassigns a task via the move-task service.
func (a *scheduleAdapter) MoveTask(ctx context.Context, req *MoveTaskRequest) (*TaskResponse, error) {
	var resp TaskResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "move-task", json.Marshal, json.Unmarshal, req, &resp,
	); err != nil {
		return nil, fmt.Errorf("move-task service call failed: %w", err)
	}
	return &resp, nil
}

// DeleteTask removes a task via the delete-task service.
func (a *scheduleAdapter) DeleteTask(ctx context.Context, taskID string) error {
	req := DeleteTaskRequest{TaskID: taskID}
	var resp DeleteTaskResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "delete-task", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return fmt.Errorf("delete-task service call failed: %w", err)
	}
	if !resp.Deleted {
		return fmt.Errorf("task not deleted: %s", taskID)
	}
	return nil
}

// WeekGrid fetches the classified week grid via the week-grid service.
func (a *scheduleAdapter) WeekGrid(ctx context.Context, anchor time.Time) (*WeekGridResponse, error) {
	req := WeekGridRequest{Anchor: anchor}
	var resp WeekGridResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "week-grid", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("week-grid service call failed: %w", err)
	}
	return &resp, nil
}
