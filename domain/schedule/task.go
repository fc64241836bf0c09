package schedule

// Task is a work assignment anchored at a (day, hour) cell of its week.
// Duration is counted in work-hour slots and may exceed the hours left in
// the start day, spilling the task over onto following days.
//
// EndDay and EndHour are derived caches maintained by DeriveEnd; they are
// recomputed on every mutation and never hand-edited. EndDay >= StartDay
// always holds. For single-day tasks EndHour is 0 and unused; for spanning
// tasks it is the number of hours consumed on the final day.
type Task struct {
	ID         string `json:"id"`
	MechanicID string `json:"mechanic_id"`
	Title      string `json:"title"`
	StartDay   int    `json:"start_day"`
	StartHour  int    `json:"start_hour"`
	Duration   int    `json:"duration"`
	EndDay     int    `json:"end_day"`
	EndHour    int    `json:"end_hour"`
}

// NewTask builds a task with its end derived against the given week.
// Returns ErrInvalidDuration when duration <= 0.
func NewTask(id, mechanicID, title string, startDay, startHour, duration int, w WeekWindow) (Task, error) {
	if duration <= 0 {
		return Task{}, ErrInvalidDuration
	}
	t := Task{
		ID:         id,
		MechanicID: mechanicID,
		Title:      title,
		StartDay:   startDay,
		StartHour:  startHour,
		Duration:   duration,
	}
	t.DeriveEnd(w)
	return t, nil
}

// DeriveEnd recomputes the cached end day and end hour. Call after any
// change to StartDay, StartHour or Duration.
func (t *Task) DeriveEnd(w WeekWindow) {
	t.EndDay, t.EndHour = w.SpanEnd(t.StartDay, t.StartHour, t.Duration)
}

// MultiDay reports whether the task spills past its start day.
func (t Task) MultiDay() bool {
	return t.EndDay > t.StartDay
}
