package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// CalendarPort defines the interface other modules use to read and manage
// the holiday list and leave index. The scheduling core only ever calls
// Snapshot; the write methods exist for the API adapter.
type CalendarPort interface {
	AddHoliday(ctx context.Context, day time.Time, name string) (*HolidayResponse, error)
	RemoveHoliday(ctx context.Context, id string) error
	ListHolidays(ctx context.Context) (*ListHolidaysResponse, error)
	AddLeave(ctx context.Context, mechanicID string, day time.Time, reason string) (*LeaveResponse, error)
	RemoveLeave(ctx context.Context, id string) error
	ListLeaves(ctx context.Context) (*ListLeavesResponse, error)
	Snapshot(ctx context.Context, from, to time.Time) (*SnapshotResponse, error)
}

// calendarAdapter wraps ServiceContainer for type-safe cross-module
// communication.
type calendarAdapter struct {
	container mono.ServiceContainer
}

// NewCalendarAdapter creates a new adapter for calendar services.
// container is the ServiceContainer from the calendar module received via
// SetDependencyServiceContainer.
func NewCalendarAdapter(container mono.ServiceContainer) CalendarPort {
	if container == nil {
		panic("calendar adapter requires non-nil ServiceContainer")
	}
	return &calendarAdapter{container: container}
}

// AddHoliday lists a shop holiday via the add-holiday service.
func (a *calendarAdapter) AddHoliday(ctx context.Context, day time.Time, name string) (*HolidayResponse, error) {
	req := AddHolidayRequest{Day: day, Name: name}
	var resp HolidayResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "add-holiday", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("add-holiday service call failed: %w", err)
	}
	return &resp, nil
}

// RemoveHoliday delists a holiday via the remove-holiday service.
func (a *calendarAdapter) RemoveHoliday(ctx context.Context, id string) error {
	req := RemoveHolidayRequest{ID: id}
	var resp RemoveHolidayResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "remove-holiday", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return fmt.Errorf("remove-holiday service call failed: %w", err)
	}
	if !resp.Removed {
		return fmt.Errorf("holiday not removed: %s", id)
	}
	return nil
}

// ListHolidays lists all holidays via the list-holidays service.
func (a *calendarAdapter) ListHolidays(ctx context.Context) (*ListHolidaysResponse, error) {
	req := ListHolidaysRequest{}
	var resp ListHolidaysResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "list-holidays", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("list-holidays service call failed: %w", err)
	}
	return &resp, nil
}

// AddLeave records a mechanic's leave day via the add-leave service.
func (a *calendarAdapter) AddLeave(ctx context.Context, mechanicID string, day time.Time, reason string) (*LeaveResponse, error) {
	req := AddLeaveRequest{MechanicID: mechanicID, Day: day, Reason: reason}
	var resp LeaveResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "add-leave", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("add-leave service call failed: %w", err)
	}
	return &resp, nil
}

// RemoveLeave removes a leave entry via the remove-leave service.
func (a *calendarAdapter) RemoveLeave(ctx context.Context, id string) error {
	req := RemoveLeaveRequest{ID: id}
	var resp RemoveLeaveResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "remove-leave", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return fmt.Errorf("remove-leave service call failed: %w", err)
	}
	if !resp.Removed {
		return fmt.Errorf("leave not removed: %s", id)
	}
	return nil
}

// ListLeaves lists all leave entries via the list-leaves service.
func (a *calendarAdapter) ListLeaves(ctx context.Context) (*ListLeavesResponse, error) {
	req := ListLeavesRequest{}
	var resp ListLeavesResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "list-leaves", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("list-leaves service call failed: %w", err)
	}
	return &resp, nil
}

// Snapshot fetches the exclusion snapshot for a date range via the
// snapshot service.
func (a *calendarAdapter) Snapshot(ctx context.Context, from, to time.Time) (*SnapshotResponse, error) {
	req := SnapshotRequest{From: from, To: to}
	var resp SnapshotResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "snapshot", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("snapshot service call failed: %w", err)
	}
	return &resp, nil
}
