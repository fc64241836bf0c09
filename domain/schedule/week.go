package schedule

import (
	"fmt"
	"time"
)

// DaysPerWeek is the number of day columns in the scheduling grid.
const DaysPerWeek = 7

// Config holds the shop's fixed scheduling parameters.
type Config struct {
	Slots        int          // bookable work-hour slots per day
	OpenHour     int          // clock hour displayed for slot 0
	WeekStart    time.Weekday // weekday of day index 0
	WeeklyDayOff time.Weekday // the shop's fixed weekly day off
}

// DefaultConfig returns the standard shop schedule: a 9-slot day opening
// at 8:00, weeks starting on Monday, closed on Sundays.
func DefaultConfig() Config {
	return Config{
		Slots:        9,
		OpenHour:     8,
		WeekStart:    time.Monday,
		WeeklyDayOff: time.Sunday,
	}
}

// WeekWindow is one displayed week: seven consecutive day-start anchors
// plus the fixed in-day slot layout. Immutable for the life of a rendered
// week; rebuild it when navigating to another week.
type WeekWindow struct {
	Days     [7]time.Time `json:"days"`
	Slots    int          `json:"slots"`
	OpenHour int          `json:"open_hour"`
}

// DayStart normalizes a timestamp to the start of its calendar day.
func DayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// BuildWeek produces the week window containing anchor. The anchor is
// aligned back to the configured week-start weekday, so every date inside
// a week yields the same seven day anchors.
func BuildWeek(anchor time.Time, cfg Config) WeekWindow {
	start := DayStart(anchor)
	for start.Weekday() != cfg.WeekStart {
		start = start.AddDate(0, 0, -1)
	}

	w := WeekWindow{Slots: cfg.Slots, OpenHour: cfg.OpenHour}
	for i := 0; i < DaysPerWeek; i++ {
		w.Days[i] = start.AddDate(0, 0, i)
	}
	return w
}

// WeekStart returns the day-start anchor of day index 0.
func (w WeekWindow) WeekStart() time.Time {
	return w.Days[0]
}

// HourSlots returns the ordered in-day hour offsets, 0..Slots-1. Offset 0
// displays as opening time, offset Slots-1 as the last bookable hour.
func (w WeekWindow) HourSlots() []int {
	slots := make([]int, w.Slots)
	for i := range slots {
		slots[i] = i
	}
	return slots
}

// ClockRange formats the wall-clock range covered by hours consecutive
// slots starting at startHour, e.g. "08:00-12:00".
func (w WeekWindow) ClockRange(startHour, hours int) string {
	from := w.OpenHour + startHour
	return fmt.Sprintf("%02d:00-%02d:00", from, from+hours)
}
