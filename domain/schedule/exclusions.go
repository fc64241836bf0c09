package schedule

import "time"

// DaySet is a set of calendar days keyed by their day-start instant.
type DaySet map[int64]struct{}

// NewDaySet builds a set from the given days, normalizing each to its
// day start.
func NewDaySet(days ...time.Time) DaySet {
	s := make(DaySet, len(days))
	for _, d := range days {
		s.Add(d)
	}
	return s
}

// Add inserts a day into the set.
func (s DaySet) Add(day time.Time) {
	s[DayStart(day).Unix()] = struct{}{}
}

// Contains reports whether the set holds the given day.
func (s DaySet) Contains(day time.Time) bool {
	_, ok := s[DayStart(day).Unix()]
	return ok
}

// Exclusions is the read-only snapshot of non-working days the core is
// handed for one full grid computation: the shop-wide holiday set, the
// per-mechanic leave index, and the fixed weekly day off. Callers own the
// snapshot and must keep it consistent for the duration of a pass.
type Exclusions struct {
	WeeklyDayOff time.Weekday
	Holidays     DaySet
	Leaves       map[string]DaySet
}

// IsHoliday reports whether day index dayIndex of the week is a shop-wide
// non-working day: either its weekday is the fixed weekly day off, or its
// day start is listed in the holiday set. The weekly rule is unconditional
// and cannot be suppressed by the set's content.
func (e Exclusions) IsHoliday(w WeekWindow, dayIndex int) bool {
	d := w.Days[dayIndex]
	if d.Weekday() == e.WeeklyDayOff {
		return true
	}
	return e.Holidays.Contains(d)
}

// IsOnLeave reports whether the mechanic has an approved leave entry on
// the given day of the week. Leave blocks only that mechanic; it is
// independent of the holiday flag and both can be true at once.
func (e Exclusions) IsOnLeave(w WeekWindow, mechanicID string, dayIndex int) bool {
	days, ok := e.Leaves[mechanicID]
	if !ok {
		return false
	}
	return days.Contains(w.Days[dayIndex])
}

// CheckStartDay enforces the write-time holiday rule: a task's start day
// may never be a shop holiday. Leave days are not checked; leave is
// advisory and visual only.
func (e Exclusions) CheckStartDay(w WeekWindow, dayIndex int) error {
	if e.IsHoliday(w, dayIndex) {
		return ErrHolidayConflict
	}
	return nil
}
