package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/roymoj06-cmd/repairshop-sub001/modules/schedule"
)

const dateLayout = "2006-01-02"

// setupRoutes configures all HTTP routes.
func (m *APIModule) setupRoutes() {
	m.app.Get("/health", m.healthHandler)

	api := m.app.Group("/api/v1")

	sched := api.Group("/schedule")
	sched.Get("/grid", m.weekGrid)
	sched.Post("/tasks", m.createTask)
	sched.Put("/tasks/:id", m.editTask)
	sched.Post("/tasks/:id/move", m.moveTask)
	sched.Delete("/tasks/:id", m.deleteTask)

	api.Get("/mechanics", m.listMechanics)

	cal := api.Group("/calendar")
	cal.Get("/holidays", m.listHolidays)
	cal.Post("/holidays", m.addHoliday)
	cal.Delete("/holidays/:id", m.removeHoliday)
	cal.Get("/leaves", m.listLeaves)
	cal.Post("/leaves", m.addLeave)
	cal.Delete("/leaves/:id", m.removeLeave)
}

// statusForError maps a scheduling error to an HTTP status and code.
// Errors cross the module boundary as serialized strings, so the mapping
// matches on the sentinel messages rather than wrapped error values.
func statusForError(err error) (int, string) {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "cannot start on a shop holiday"):
		return fiber.StatusConflict, "holiday_conflict"
	case strings.Contains(msg, "duration must be a positive"):
		return fiber.StatusBadRequest, "invalid_duration"
	case strings.Contains(msg, "unknown mechanic"):
		return fiber.StatusBadRequest, "unknown_mechanic"
	case strings.Contains(msg, "not found"):
		return fiber.StatusNotFound, "not_found"
	default:
		return fiber.StatusInternalServerError, "internal_error"
	}
}

func errorJSON(c *fiber.Ctx, err error) error {
	status, code := statusForError(err)
	return c.Status(status).JSON(ErrorResponse{Error: code, Message: err.Error()})
}

// healthHandler handles GET /health.
func (m *APIModule) healthHandler(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status: "healthy",
		Details: map[string]any{
			"module": "api",
			"addr":   m.addr,
		},
	})
}

// weekGrid handles GET /api/v1/schedule/grid?week=2026-03-02. The week
// parameter may be any date inside the target week; it defaults to today.
func (m *APIModule) weekGrid(c *fiber.Ctx) error {
	anchor := time.Now()
	if raw := c.Query("week", ""); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error:   "validation_error",
				Message: "week must be formatted as " + dateLayout,
			})
		}
		anchor = parsed
	}

	resp, err := m.schedule.WeekGrid(c.Context(), anchor)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(resp)
}

// createTask handles POST /api/v1/schedule/tasks.
func (m *APIModule) createTask(c *fiber.Ctx) error {
	var req CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if req.MechanicID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "validation_error",
			Message: "Mechanic ID is required",
		})
	}
	if req.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "validation_error",
			Message: "Title is required",
		})
	}
	week, err := time.Parse(dateLayout, req.Week)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "validation_error",
			Message: "week must be formatted as " + dateLayout,
		})
	}

	resp, err := m.schedule.CreateTask(c.Context(), &schedule.CreateTaskRequest{
		Week:       week,
		MechanicID: req.MechanicID,
		Title:      req.Title,
		StartDay:   req.StartDay,
		StartHour:  req.StartHour,
		Duration:   req.Duration,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// editTask handles PUT /api/v1/schedule/tasks/:id.
func (m *APIModule) editTask(c *fiber.Ctx) error {
	taskID := c.Params("id")

	var req EditTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	resp, err := m.schedule.EditTask(c.Context(), &schedule.EditTaskRequest{
		TaskID:    taskID,
		Title:     req.Title,
		StartDay:  req.StartDay,
		StartHour: req.StartHour,
		Duration:  req.Duration,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(resp)
}

// moveTask handles POST /api/v1/schedule/tasks/:id/move.
func (m *APIModule) moveTask(c *fiber.Ctx) error {
	taskID := c.Params("id")

	var req MoveTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if req.MechanicID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "validation_error",
			Message: "Mechanic ID is required",
		})
	}

	resp, err := m.schedule.MoveTask(c.Context(), &schedule.MoveTaskRequest{
		TaskID:     taskID,
		MechanicID: req.MechanicID,
		StartDay:   req.StartDay,
		StartHour:  req.StartHour,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(resp)
}

// deleteTask handles DELETE /api/v1/schedule/tasks/:id.
func (m *APIModule) deleteTask(c *fiber.Ctx) error {
	taskID := c.Params("id")

	if err := m.schedule.DeleteTask(c.Context(), taskID); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// listMechanics handles GET /api/v1/mechanics.
func (m *APIModule) listMechanics(c *fiber.Ctx) error {
	resp, err := m.roster.ListMechanics(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(resp)
}

// listHolidays handles GET /api/v1/calendar/holidays.
func (m *APIModule) listHolidays(c *fiber.Ctx) error {
	resp, err := m.calendar.ListHolidays(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(resp)
}

// addHoliday handles POST /api/v1/calendar/holidays.
func (m *APIModule) addHoliday(c *fiber.Ctx) error {
	var req AddHolidayRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	day, err := time.Parse(dateLayout, req.Day)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "validation_error",
			Message: "day must be formatted as " + dateLayout,
		})
	}

	resp, err := m.calendar.AddHoliday(c.Context(), day, req.Name)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// removeHoliday handles DELETE /api/v1/calendar/holidays/:id.
func (m *APIModule) removeHoliday(c *fiber.Ctx) error {
	if err := m.calendar.RemoveHoliday(c.Context(), c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// listLeaves handles GET /api/v1/calendar/leaves.
func (m *APIModule) listLeaves(c *fiber.Ctx) error {
	resp, err := m.calendar.ListLeaves(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(resp)
}

// addLeave handles POST /api/v1/calendar/leaves.
func (m *APIModule) addLeave(c *fiber.Ctx) error {
	var req AddLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if req.MechanicID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "validation_error",
			Message: "Mechanic ID is required",
		})
	}
	day, err := time.Parse(dateLayout, req.Day)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "validation_error",
			Message: "day must be formatted as " + dateLayout,
		})
	}

	resp, err := m.calendar.AddLeave(c.Context(), req.MechanicID, day, req.Reason)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// removeLeave handles DELETE /api/v1/calendar/leaves/:id.
func (m *APIModule) removeLeave(c *fiber.Ctx) error {
	if err := m.calendar.RemoveLeave(c.Context(), c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
