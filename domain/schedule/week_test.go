package schedule

import (
	"testing"
	"time"
)

func TestBuildWeek(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("days are consecutive", func(t *testing.T) {
		w := BuildWeek(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), cfg)
		for i := 1; i < DaysPerWeek; i++ {
			if got := w.Days[i].Sub(w.Days[i-1]); got != 24*time.Hour {
				t.Errorf("gap between day %d and %d = %s, want 24h", i-1, i, got)
			}
		}
	})

	t.Run("anchor aligns back to week start", func(t *testing.T) {
		// 2026-03-05 is a Thursday; its week starts Monday 2026-03-02.
		w := BuildWeek(time.Date(2026, 3, 5, 14, 30, 0, 0, time.UTC), cfg)
		want := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
		if !w.WeekStart().Equal(want) {
			t.Errorf("WeekStart() = %s, want %s", w.WeekStart(), want)
		}
	})

	t.Run("every date in a week yields the same window", func(t *testing.T) {
		base := BuildWeek(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), cfg)
		for offset := 0; offset < DaysPerWeek; offset++ {
			anchor := time.Date(2026, 3, 2+offset, 9, 15, 0, 0, time.UTC)
			w := BuildWeek(anchor, cfg)
			if !w.WeekStart().Equal(base.WeekStart()) {
				t.Errorf("anchor %s: WeekStart() = %s, want %s",
					anchor, w.WeekStart(), base.WeekStart())
			}
		}
	})

	t.Run("time of day is stripped", func(t *testing.T) {
		w := BuildWeek(time.Date(2026, 3, 2, 23, 59, 59, 0, time.UTC), cfg)
		for i, d := range w.Days {
			if d.Hour() != 0 || d.Minute() != 0 || d.Second() != 0 {
				t.Errorf("day %d anchor %s is not a day start", i, d)
			}
		}
	})
}

func TestHourSlots(t *testing.T) {
	w := BuildWeek(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), DefaultConfig())

	slots := w.HourSlots()
	if len(slots) != 9 {
		t.Fatalf("len(HourSlots()) = %d, want 9", len(slots))
	}
	for i, s := range slots {
		if s != i {
			t.Errorf("slot %d = %d, want %d", i, s, i)
		}
	}
}

func TestClockRange(t *testing.T) {
	w := BuildWeek(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), DefaultConfig())

	tests := []struct {
		name      string
		startHour int
		hours     int
		want      string
	}{
		{name: "opening slot", startHour: 0, hours: 1, want: "08:00-09:00"},
		{name: "full day", startHour: 0, hours: 9, want: "08:00-17:00"},
		{name: "afternoon block", startHour: 5, hours: 2, want: "13:00-15:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.ClockRange(tt.startHour, tt.hours); got != tt.want {
				t.Errorf("ClockRange(%d, %d) = %q, want %q", tt.startHour, tt.hours, got, tt.want)
			}
		})
	}
}

func TestDayStart(t *testing.T) {
	in := time.Date(2026, 8, 30, 17, 45, 12, 999, time.UTC)
	want := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	if got := DayStart(in); !got.Equal(want) {
		t.Errorf("DayStart(%s) = %s, want %s", in, got, want)
	}
}
