package schedule

import "errors"

// ErrInvalidDuration is returned when a task is constructed or patched
// with a non-positive duration. Durations are never silently clamped.
var ErrInvalidDuration = errors.New("task duration must be a positive number of hours")

// ErrHolidayConflict is returned when a task's start day would fall on a
// shop holiday. Creation and edits are rejected; a mechanic's leave day is
// advisory only and never blocks a write.
var ErrHolidayConflict = errors.New("task cannot start on a shop holiday")
