package notification

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"

	"github.com/roymoj06-cmd/repairshop-sub001/events"
)

// NotificationLog represents a logged notification.
type NotificationLog struct {
	TaskID    string    `json:"task_id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Channel   string    `json:"channel"`
	Timestamp time.Time `json:"timestamp"`
}

// NotificationModule keeps the shop floor informed about schedule
// changes. It subscribes to the schedule events and logs each one; the
// in-memory log stands in for a pager or display integration.
type NotificationModule struct {
	notifications []NotificationLog
	mu            sync.RWMutex
}

var _ mono.Module = (*NotificationModule)(nil)
var _ mono.EventConsumerModule = (*NotificationModule)(nil)

func NewModule() *NotificationModule {
	return &NotificationModule{
		notifications: make([]NotificationLog, 0),
	}
}

func (m *NotificationModule) Name() string {
	return "notification"
}

func (m *NotificationModule) RegisterEventConsumers(registry mono.EventRegistry) error {
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskScheduledV1, m.handleTaskScheduled, m); err != nil {
		return fmt.Errorf("failed to register TaskScheduled consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskUpdatedV1, m.handleTaskUpdated, m); err != nil {
		return fmt.Errorf("failed to register TaskUpdated consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskMovedV1, m.handleTaskMoved, m); err != nil {
		return fmt.Errorf("failed to register TaskMoved consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskCanceledV1, m.handleTaskCanceled, m); err != nil {
		return fmt.Errorf("failed to register TaskCanceled consumer: %w", err)
	}

	log.Printf("[notification] Registered event consumers: TaskScheduled, TaskUpdated, TaskMoved, TaskCanceled")
	return nil
}

func (m *NotificationModule) handleTaskScheduled(_ context.Context, event events.TaskScheduledEvent, _ *mono.Msg) error {
	log.Printf("[notification] Task scheduled: %s - %s for %s", event.TaskID, event.Title, event.MechanicID)
	m.logNotification(event.TaskID, "task_scheduled",
		fmt.Sprintf("'%s' scheduled for %s on day %d at slot %d (%dh)",
			event.Title, event.MechanicID, event.StartDay, event.StartHour, event.Duration))
	return nil
}

func (m *NotificationModule) handleTaskUpdated(_ context.Context, event events.TaskUpdatedEvent, _ *mono.Msg) error {
	log.Printf("[notification] Task updated: %s", event.TaskID)
	m.logNotification(event.TaskID, "task_updated",
		fmt.Sprintf("Task %s now runs %dh from day %d slot %d",
			event.TaskID, event.Duration, event.StartDay, event.StartHour))
	return nil
}

func (m *NotificationModule) handleTaskMoved(_ context.Context, event events.TaskMovedEvent, _ *mono.Msg) error {
	log.Printf("[notification] Task moved: %s from %s to %s", event.TaskID, event.FromMechanic, event.ToMechanic)
	m.logNotification(event.TaskID, "task_moved",
		fmt.Sprintf("Task %s reassigned from %s to %s (day %d, slot %d)",
			event.TaskID, event.FromMechanic, event.ToMechanic, event.StartDay, event.StartHour))
	return nil
}

func (m *NotificationModule) handleTaskCanceled(_ context.Context, event events.TaskCanceledEvent, _ *mono.Msg) error {
	log.Printf("[notification] Task canceled: %s for %s", event.TaskID, event.MechanicID)
	m.logNotification(event.TaskID, "task_canceled",
		fmt.Sprintf("Task %s for %s was canceled", event.TaskID, event.MechanicID))
	return nil
}

func (m *NotificationModule) logNotification(taskID, notificationType, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.notifications = append(m.notifications, NotificationLog{
		TaskID:    taskID,
		Type:      notificationType,
		Message:   message,
		Channel:   "event",
		Timestamp: time.Now(),
	})
}

// GetNotifications returns a copy of the notification log.
func (m *NotificationModule) GetNotifications() []NotificationLog {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]NotificationLog, len(m.notifications))
	copy(result, m.notifications)
	return result
}

func (m *NotificationModule) Start(_ context.Context) error {
	log.Println("[notification] Module started - listening for schedule events")
	return nil
}

func (m *NotificationModule) Stop(_ context.Context) error {
	log.Println("[notification] Module stopped")
	return nil
}
