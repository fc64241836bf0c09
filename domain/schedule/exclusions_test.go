package schedule

import (
	"testing"
	"time"
)

func TestIsHoliday(t *testing.T) {
	cfg := DefaultConfig()
	// Monday 2026-03-02 .. Sunday 2026-03-08.
	w := BuildWeek(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), cfg)

	t.Run("weekly day off with empty holiday set", func(t *testing.T) {
		excl := Exclusions{WeeklyDayOff: cfg.WeeklyDayOff, Holidays: NewDaySet()}
		if !excl.IsHoliday(w, 6) {
			t.Error("Sunday (day 6) not reported as holiday with empty set")
		}
		for d := 0; d < 6; d++ {
			if excl.IsHoliday(w, d) {
				t.Errorf("day %d reported as holiday with empty set", d)
			}
		}
	})

	t.Run("listed holiday", func(t *testing.T) {
		excl := Exclusions{
			WeeklyDayOff: cfg.WeeklyDayOff,
			Holidays:     NewDaySet(w.Days[2]),
		}
		if !excl.IsHoliday(w, 2) {
			t.Error("listed day not reported as holiday")
		}
		if excl.IsHoliday(w, 3) {
			t.Error("unlisted day reported as holiday")
		}
	})

	t.Run("set membership ignores time of day", func(t *testing.T) {
		noon := w.Days[4].Add(12 * time.Hour)
		excl := Exclusions{WeeklyDayOff: cfg.WeeklyDayOff, Holidays: NewDaySet(noon)}
		if !excl.IsHoliday(w, 4) {
			t.Error("holiday added with a time component not matched on its day")
		}
	})

	t.Run("weekly rule cannot be suppressed", func(t *testing.T) {
		// Only weekdays listed; the Sunday rule must still hold.
		excl := Exclusions{
			WeeklyDayOff: cfg.WeeklyDayOff,
			Holidays:     NewDaySet(w.Days[0], w.Days[1]),
		}
		if !excl.IsHoliday(w, 6) {
			t.Error("weekly day off suppressed by holiday set content")
		}
	})
}

func TestIsOnLeave(t *testing.T) {
	cfg := DefaultConfig()
	w := BuildWeek(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), cfg)

	excl := Exclusions{
		WeeklyDayOff: cfg.WeeklyDayOff,
		Holidays:     NewDaySet(),
		Leaves: map[string]DaySet{
			"mech-1": NewDaySet(w.Days[2]),
		},
	}

	tests := []struct {
		name       string
		mechanicID string
		day        int
		want       bool
	}{
		{name: "mechanic on leave", mechanicID: "mech-1", day: 2, want: true},
		{name: "same mechanic other day", mechanicID: "mech-1", day: 3, want: false},
		{name: "other mechanic same day", mechanicID: "mech-2", day: 2, want: false},
		{name: "unknown mechanic", mechanicID: "mech-9", day: 2, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := excl.IsOnLeave(w, tt.mechanicID, tt.day); got != tt.want {
				t.Errorf("IsOnLeave(%q, %d) = %v, want %v", tt.mechanicID, tt.day, got, tt.want)
			}
		})
	}

	t.Run("leave and holiday are independent", func(t *testing.T) {
		both := Exclusions{
			WeeklyDayOff: cfg.WeeklyDayOff,
			Holidays:     NewDaySet(w.Days[2]),
			Leaves:       map[string]DaySet{"mech-1": NewDaySet(w.Days[2])},
		}
		if !both.IsHoliday(w, 2) || !both.IsOnLeave(w, "mech-1", 2) {
			t.Error("holiday and leave flags must both be reportable for the same day")
		}
	})
}

func TestCheckStartDay(t *testing.T) {
	cfg := DefaultConfig()
	w := BuildWeek(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), cfg)

	excl := Exclusions{
		WeeklyDayOff: cfg.WeeklyDayOff,
		Holidays:     NewDaySet(w.Days[1]),
		Leaves:       map[string]DaySet{"mech-1": NewDaySet(w.Days[3])},
	}

	if err := excl.CheckStartDay(w, 0); err != nil {
		t.Errorf("CheckStartDay(working day) error = %v", err)
	}
	if err := excl.CheckStartDay(w, 1); err != ErrHolidayConflict {
		t.Errorf("CheckStartDay(listed holiday) error = %v, want ErrHolidayConflict", err)
	}
	if err := excl.CheckStartDay(w, 6); err != ErrHolidayConflict {
		t.Errorf("CheckStartDay(weekly day off) error = %v, want ErrHolidayConflict", err)
	}
	// Leave days never block writes.
	if err := excl.CheckStartDay(w, 3); err != nil {
		t.Errorf("CheckStartDay(leave day) error = %v, want nil", err)
	}
}
