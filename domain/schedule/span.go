package schedule

// RemainingHours is the count of work-hour slots from startHour to the end
// of the work day, inclusive of startHour's own slot. Floored at 0 for a
// start hour past the last slot.
func (w WeekWindow) RemainingHours(startHour int) int {
	if startHour >= w.Slots {
		return 0
	}
	return w.Slots - startHour
}

// SpanEnd walks forward from (startDay, startHour) consuming work hours
// until duration is exhausted: the remaining hours of the start day first,
// then a full day's slots per subsequent day. It returns the day on which
// consumption completes and, for spanning tasks, the hours consumed on
// that final day (0 for tasks that fit in the start day).
//
// The walk does not skip holidays or leave days; a spilled task occupies
// excluded days and the classifier renders them as such.
func (w WeekWindow) SpanEnd(startDay, startHour, duration int) (endDay, endHour int) {
	remaining := duration - w.RemainingHours(startHour)
	if remaining <= 0 {
		return startDay, 0
	}

	endDay = startDay
	for {
		endDay++
		if remaining <= w.Slots {
			return endDay, remaining
		}
		remaining -= w.Slots
	}
}

// HoursOn is the number of grid rows the task occupies on the given day:
// zero off its span, the full duration for a single-day task, and for a
// spanning task the start-day remainder, a full day strictly between, or
// the leftover hours on the end day. Summed over the span this always
// equals the task's duration.
func (w WeekWindow) HoursOn(t Task, day int) int {
	endDay, endHour := w.SpanEnd(t.StartDay, t.StartHour, t.Duration)
	if day < t.StartDay || day > endDay {
		return 0
	}
	if endDay == t.StartDay {
		return t.Duration
	}
	switch day {
	case t.StartDay:
		if first := w.RemainingHours(t.StartHour); first < t.Duration {
			return first
		}
		return t.Duration
	case endDay:
		return endHour
	default:
		return w.Slots
	}
}
