package schedule

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-monolith/mono"
	"github.com/google/uuid"

	domain "github.com/roymoj06-cmd/repairshop-sub001/domain/schedule"
	"github.com/roymoj06-cmd/repairshop-sub001/events"
)

// exclusionsFor fetches the calendar snapshot covering the week and
// shapes it into the read-only exclusion set the core consumes. One
// snapshot serves one full computation pass.
func (m *ScheduleModule) exclusionsFor(ctx context.Context, w domain.WeekWindow) (domain.Exclusions, error) {
	snap, err := m.calendar.Snapshot(ctx, w.Days[0], w.Days[domain.DaysPerWeek-1])
	if err != nil {
		return domain.Exclusions{}, fmt.Errorf("failed to fetch calendar snapshot: %w", err)
	}

	excl := domain.Exclusions{
		WeeklyDayOff: m.cfg.WeeklyDayOff,
		Holidays:     domain.NewDaySet(snap.Holidays...),
		Leaves:       make(map[string]domain.DaySet, len(snap.Leaves)),
	}
	for mechanicID, days := range snap.Leaves {
		excl.Leaves[mechanicID] = domain.NewDaySet(days...)
	}
	return excl, nil
}

// createTask handles the create-task service request. The start day is
// rejected when it falls on a shop holiday; a mechanic's leave day is
// advisory and does not block.
func (m *ScheduleModule) createTask(ctx context.Context, req CreateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	valid, err := m.roster.ValidateMechanic(ctx, req.MechanicID)
	if err != nil {
		return TaskResponse{}, fmt.Errorf("failed to validate mechanic: %w", err)
	}
	if !valid {
		return TaskResponse{}, fmt.Errorf("unknown mechanic: %s", req.MechanicID)
	}

	w := domain.BuildWeek(req.Week, m.cfg)
	excl, err := m.exclusionsFor(ctx, w)
	if err != nil {
		return TaskResponse{}, err
	}

	task, err := domain.NewTask(
		uuid.New().String(), req.MechanicID, req.Title,
		req.StartDay, req.StartHour, req.Duration, w,
	)
	if err != nil {
		return TaskResponse{}, err
	}
	if err := excl.CheckStartDay(w, task.StartDay); err != nil {
		return TaskResponse{}, err
	}

	rec := &TaskRecord{ID: task.ID, WeekStart: w.WeekStart()}
	rec.applyDomain(task)
	if err := m.repo.Create(rec); err != nil {
		return TaskResponse{}, fmt.Errorf("failed to save task: %w", err)
	}

	m.invalidateWeek(ctx, w.WeekStart())

	if m.eventBus != nil {
		event := events.TaskScheduledEvent{
			TaskID:     rec.ID,
			MechanicID: rec.MechanicID,
			Title:      rec.Title,
			WeekStart:  rec.WeekStart,
			StartDay:   rec.StartDay,
			StartHour:  rec.StartHour,
			Duration:   rec.Duration,
			CreatedAt:  rec.CreatedAt,
		}
		if err := events.TaskScheduledV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[schedule] Warning: failed to publish TaskScheduled event for task %s: %v", rec.ID, err)
		}
	}

	return toTaskResponse(rec), nil
}

// editTask handles the edit-task service request. Absent patch fields are
// left unchanged; the resulting placement is re-derived and the start day
// re-checked against holidays.
func (m *ScheduleModule) editTask(ctx context.Context, req EditTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	rec, err := m.repo.FindByID(req.TaskID)
	if err != nil {
		return TaskResponse{}, err
	}

	w := domain.BuildWeek(rec.WeekStart, m.cfg)
	task := rec.toDomain()

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.StartDay != nil {
		task.StartDay = *req.StartDay
	}
	if req.StartHour != nil {
		task.StartHour = *req.StartHour
	}
	if req.Duration != nil {
		task.Duration = *req.Duration
	}
	if task.Duration <= 0 {
		return TaskResponse{}, domain.ErrInvalidDuration
	}
	task.DeriveEnd(w)

	excl, err := m.exclusionsFor(ctx, w)
	if err != nil {
		return TaskResponse{}, err
	}
	if err := excl.CheckStartDay(w, task.StartDay); err != nil {
		return TaskResponse{}, err
	}

	rec.applyDomain(task)
	if err := m.repo.Update(rec); err != nil {
		return TaskResponse{}, err
	}

	m.invalidateWeek(ctx, rec.WeekStart)

	if m.eventBus != nil {
		event := events.TaskUpdatedEvent{
			TaskID:     rec.ID,
			MechanicID: rec.MechanicID,
			StartDay:   rec.StartDay,
			StartHour:  rec.StartHour,
			Duration:   rec.Duration,
			UpdatedAt:  time.Now(),
		}
		if err := events.TaskUpdatedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[schedule] Warning: failed to publish TaskUpdated event for task %s: %v", rec.ID, err)
		}
	}

	return toTaskResponse(rec), nil
}

// moveTask handles the move-task service request: the drag-and-drop
// reassignment. It applies the new (mechanic, day, hour) unconditionally;
// unlike create and edit it performs no holiday or leave validation, so a
// task can be dropped onto a holiday and will classify as such on the
// next grid pass.
func (m *ScheduleModule) moveTask(ctx context.Context, req MoveTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	rec, err := m.repo.FindByID(req.TaskID)
	if err != nil {
		return TaskResponse{}, err
	}

	fromMechanic := rec.MechanicID
	w := domain.BuildWeek(rec.WeekStart, m.cfg)

	task := rec.toDomain()
	task.MechanicID = req.MechanicID
	task.StartDay = req.StartDay
	task.StartHour = req.StartHour
	task.DeriveEnd(w)

	rec.applyDomain(task)
	if err := m.repo.Update(rec); err != nil {
		return TaskResponse{}, err
	}

	m.invalidateWeek(ctx, rec.WeekStart)

	if m.eventBus != nil {
		event := events.TaskMovedEvent{
			TaskID:       rec.ID,
			FromMechanic: fromMechanic,
			ToMechanic:   rec.MechanicID,
			StartDay:     rec.StartDay,
			StartHour:    rec.StartHour,
			MovedAt:      time.Now(),
		}
		if err := events.TaskMovedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[schedule] Warning: failed to publish TaskMoved event for task %s: %v", rec.ID, err)
		}
	}

	return toTaskResponse(rec), nil
}

// deleteTask handles the delete-task service request.
func (m *ScheduleModule) deleteTask(ctx context.Context, req DeleteTaskRequest, _ *mono.Msg) (DeleteTaskResponse, error) {
	rec, err := m.repo.FindByID(req.TaskID)
	if err != nil {
		return DeleteTaskResponse{Deleted: false}, err
	}

	if err := m.repo.Delete(req.TaskID); err != nil {
		return DeleteTaskResponse{Deleted: false}, err
	}

	m.invalidateWeek(ctx, rec.WeekStart)

	if m.eventBus != nil {
		event := events.TaskCanceledEvent{
			TaskID:     rec.ID,
			MechanicID: rec.MechanicID,
			CanceledAt: time.Now(),
		}
		if err := events.TaskCanceledV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[schedule] Warning: failed to publish TaskCanceled event for task %s: %v", rec.ID, err)
		}
	}

	return DeleteTaskResponse{Deleted: true}, nil
}

// weekGrid handles the week-grid service request: the full classified
// matrix for the week containing the anchor date, served from cache when
// possible.
func (m *ScheduleModule) weekGrid(ctx context.Context, req WeekGridRequest, _ *mono.Msg) (WeekGridResponse, error) {
	w := domain.BuildWeek(req.Anchor, m.cfg)

	if m.cache != nil {
		var cached WeekGridResponse
		hit, err := m.cache.GetGrid(ctx, w.WeekStart(), &cached)
		if err != nil {
			log.Printf("[schedule] Warning: grid cache read failed: %v", err)
		} else if hit {
			return cached, nil
		}
	}

	mechanics, err := m.roster.ListMechanics(ctx)
	if err != nil {
		return WeekGridResponse{}, fmt.Errorf("failed to list mechanics: %w", err)
	}
	excl, err := m.exclusionsFor(ctx, w)
	if err != nil {
		return WeekGridResponse{}, err
	}
	records, err := m.repo.FindByWeek(w.WeekStart())
	if err != nil {
		return WeekGridResponse{}, err
	}

	gridMechanics := make([]domain.Mechanic, 0, len(mechanics.Mechanics))
	for _, mech := range mechanics.Mechanics {
		gridMechanics = append(gridMechanics, domain.Mechanic{ID: mech.ID, Name: mech.Name})
	}
	tasks := make([]domain.Task, 0, len(records))
	for _, rec := range records {
		tasks = append(tasks, rec.toDomain())
	}

	resp := WeekGridResponse{
		WeekStart: w.WeekStart(),
		Days:      w.Days[:],
		HourSlots: w.HourSlots(),
		OpenHour:  w.OpenHour,
		Rows:      domain.BuildGrid(w, excl, gridMechanics, tasks),
	}

	if m.cache != nil {
		if err := m.cache.SetGrid(ctx, w.WeekStart(), resp); err != nil {
			log.Printf("[schedule] Warning: grid cache write failed: %v", err)
		}
	}
	return resp, nil
}

// invalidateWeek drops the cached grid for a week after a mutation.
func (m *ScheduleModule) invalidateWeek(ctx context.Context, weekStart time.Time) {
	if m.cache == nil {
		return
	}
	if err := m.cache.InvalidateWeek(ctx, weekStart); err != nil {
		log.Printf("[schedule] Warning: grid cache invalidation failed: %v", err)
	}
}

// toTaskResponse converts a task record to a TaskResponse.
func toTaskResponse(rec *TaskRecord) TaskResponse {
	return TaskResponse{
		ID:         rec.ID,
		WeekStart:  rec.WeekStart,
		MechanicID: rec.MechanicID,
		Title:      rec.Title,
		StartDay:   rec.StartDay,
		StartHour:  rec.StartHour,
		Duration:   rec.Duration,
		EndDay:     rec.EndDay,
		EndHour:    rec.EndHour,
		CreatedAt:  rec.CreatedAt,
		UpdatedAt:  rec.UpdatedAt,
	}
}
