package calendar

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-monolith/mono"
	"github.com/google/uuid"
)

// invalidateGrids drops every cached week grid after an exclusion change.
func (m *CalendarModule) invalidateGrids(ctx context.Context) {
	if m.cache == nil {
		return
	}
	if err := m.cache.InvalidateAll(ctx); err != nil {
		log.Printf("[calendar] Warning: grid cache invalidation failed: %v", err)
	}
}

// addHoliday handles the add-holiday service request.
func (m *CalendarModule) addHoliday(ctx context.Context, req AddHolidayRequest, _ *mono.Msg) (HolidayResponse, error) {
	if req.Day.IsZero() {
		return HolidayResponse{}, fmt.Errorf("day is required")
	}

	holiday := &Holiday{
		ID:   uuid.New().String(),
		Day:  req.Day,
		Name: req.Name,
	}
	if err := m.repo.AddHoliday(holiday); err != nil {
		return HolidayResponse{}, fmt.Errorf("failed to save holiday: %w", err)
	}

	m.invalidateGrids(ctx)
	return HolidayResponse{ID: holiday.ID, Day: holiday.Day, Name: holiday.Name}, nil
}

// removeHoliday handles the remove-holiday service request.
func (m *CalendarModule) removeHoliday(ctx context.Context, req RemoveHolidayRequest, _ *mono.Msg) (RemoveHolidayResponse, error) {
	if req.ID == "" {
		return RemoveHolidayResponse{}, fmt.Errorf("id is required")
	}
	if err := m.repo.DeleteHoliday(req.ID); err != nil {
		return RemoveHolidayResponse{Removed: false}, err
	}

	m.invalidateGrids(ctx)
	return RemoveHolidayResponse{Removed: true}, nil
}

// listHolidays handles the list-holidays service request.
func (m *CalendarModule) listHolidays(_ context.Context, _ ListHolidaysRequest, _ *mono.Msg) (ListHolidaysResponse, error) {
	holidays, err := m.repo.ListHolidays()
	if err != nil {
		return ListHolidaysResponse{}, err
	}

	resp := ListHolidaysResponse{
		Holidays: make([]HolidayResponse, 0, len(holidays)),
		Total:    len(holidays),
	}
	for _, h := range holidays {
		resp.Holidays = append(resp.Holidays, HolidayResponse{ID: h.ID, Day: h.Day, Name: h.Name})
	}
	return resp, nil
}

// addLeave handles the add-leave service request.
func (m *CalendarModule) addLeave(ctx context.Context, req AddLeaveRequest, _ *mono.Msg) (LeaveResponse, error) {
	if req.MechanicID == "" {
		return LeaveResponse{}, fmt.Errorf("mechanic_id is required")
	}
	if req.Day.IsZero() {
		return LeaveResponse{}, fmt.Errorf("day is required")
	}

	leave := &Leave{
		ID:         uuid.New().String(),
		MechanicID: req.MechanicID,
		Day:        req.Day,
		Reason:     req.Reason,
	}
	if err := m.repo.AddLeave(leave); err != nil {
		return LeaveResponse{}, fmt.Errorf("failed to save leave: %w", err)
	}

	m.invalidateGrids(ctx)
	return LeaveResponse{
		ID:         leave.ID,
		MechanicID: leave.MechanicID,
		Day:        leave.Day,
		Reason:     leave.Reason,
	}, nil
}

// removeLeave handles the remove-leave service request.
func (m *CalendarModule) removeLeave(ctx context.Context, req RemoveLeaveRequest, _ *mono.Msg) (RemoveLeaveResponse, error) {
	if req.ID == "" {
		return RemoveLeaveResponse{}, fmt.Errorf("id is required")
	}
	if err := m.repo.DeleteLeave(req.ID); err != nil {
		return RemoveLeaveResponse{Removed: false}, err
	}

	m.invalidateGrids(ctx)
	return RemoveLeaveResponse{Removed: true}, nil
}

// listLeaves handles the list-leaves service request.
func (m *CalendarModule) listLeaves(_ context.Context, _ ListLeavesRequest, _ *mono.Msg) (ListLeavesResponse, error) {
	leaves, err := m.repo.ListLeaves()
	if err != nil {
		return ListLeavesResponse{}, err
	}

	resp := ListLeavesResponse{
		Leaves: make([]LeaveResponse, 0, len(leaves)),
		Total:  len(leaves),
	}
	for _, l := range leaves {
		resp.Leaves = append(resp.Leaves, LeaveResponse{
			ID:         l.ID,
			MechanicID: l.MechanicID,
			Day:        l.Day,
			Reason:     l.Reason,
		})
	}
	return resp, nil
}

// snapshot handles the snapshot service request. It returns the exclusion
// data for the requested range as one consistent read, suitable for a
// full grid computation pass.
func (m *CalendarModule) snapshot(_ context.Context, req SnapshotRequest, _ *mono.Msg) (SnapshotResponse, error) {
	holidays, err := m.repo.HolidaysBetween(req.From, req.To)
	if err != nil {
		return SnapshotResponse{}, err
	}
	leaves, err := m.repo.LeavesBetween(req.From, req.To)
	if err != nil {
		return SnapshotResponse{}, err
	}

	resp := SnapshotResponse{
		Holidays: make([]time.Time, 0, len(holidays)),
		Leaves:   make(map[string][]time.Time),
	}
	for _, h := range holidays {
		resp.Holidays = append(resp.Holidays, h.Day)
	}
	for _, l := range leaves {
		resp.Leaves[l.MechanicID] = append(resp.Leaves[l.MechanicID], l.Day)
	}
	return resp, nil
}
