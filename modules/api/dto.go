package api

// Dates in request bodies and query strings use the "2006-01-02" layout.

// CreateTaskRequest is the HTTP request for placing a task.
type CreateTaskRequest struct {
	Week       string `json:"week"`
	MechanicID string `json:"mechanic_id"`
	Title      string `json:"title"`
	StartDay   int    `json:"start_day"`
	StartHour  int    `json:"start_hour"`
	Duration   int    `json:"duration"`
}

// EditTaskRequest is the HTTP request for patching a task. Absent fields
// are left unchanged.
type EditTaskRequest struct {
	Title     *string `json:"title,omitempty"`
	StartDay  *int    `json:"start_day,omitempty"`
	StartHour *int    `json:"start_hour,omitempty"`
	Duration  *int    `json:"duration,omitempty"`
}

// MoveTaskRequest is the HTTP request for a drag-and-drop reassignment.
type MoveTaskRequest struct {
	MechanicID string `json:"mechanic_id"`
	StartDay   int    `json:"start_day"`
	StartHour  int    `json:"start_hour"`
}

// AddHolidayRequest is the HTTP request for listing a shop holiday.
type AddHolidayRequest struct {
	Day  string `json:"day"`
	Name string `json:"name"`
}

// AddLeaveRequest is the HTTP request for recording a mechanic's leave day.
type AddLeaveRequest struct {
	MechanicID string `json:"mechanic_id"`
	Day        string `json:"day"`
	Reason     string `json:"reason"`
}

// HealthResponse is the HTTP response for health check.
type HealthResponse struct {
	Status  string         `json:"status"`
	Details map[string]any `json:"details,omitempty"`
}

// ErrorResponse is the HTTP response for errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
