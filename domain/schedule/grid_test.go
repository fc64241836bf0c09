package schedule

import (
	"strings"
	"testing"
	"time"
)

func gridFixture(t *testing.T) (WeekWindow, Exclusions) {
	t.Helper()
	cfg := DefaultConfig()
	w := BuildWeek(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), cfg)
	excl := Exclusions{
		WeeklyDayOff: cfg.WeeklyDayOff,
		Holidays:     NewDaySet(),
		Leaves:       map[string]DaySet{},
	}
	return w, excl
}

func TestClassifyCell(t *testing.T) {
	w, excl := gridFixture(t)

	task, err := NewTask("t1", "mech-1", "clutch", 0, 7, 4, w)
	if err != nil {
		t.Fatalf("NewTask() error = %v", err)
	}

	t.Run("start cell", func(t *testing.T) {
		cell, ok := ClassifyCell(task, "mech-1", 0, 7, w, excl)
		if !ok {
			t.Fatal("task does not touch its own start cell")
		}
		if cell.Continuation {
			t.Error("start cell marked as continuation")
		}
		if cell.Hours != 2 {
			t.Errorf("Hours = %d, want 2", cell.Hours)
		}
		if cell.Height != 2*SlotHeight {
			t.Errorf("Height = %d, want %d", cell.Height, 2*SlotHeight)
		}
		if cell.State != StateNormal {
			t.Errorf("State = %q, want %q", cell.State, StateNormal)
		}
		if !strings.Contains(cell.Label, "clutch") {
			t.Errorf("Label = %q, want task title shown", cell.Label)
		}
		if !strings.Contains(cell.Label, "15:00-17:00") {
			t.Errorf("Label = %q, want clock range 15:00-17:00", cell.Label)
		}
	})

	t.Run("continuation cell anchors at slot 0", func(t *testing.T) {
		cell, ok := ClassifyCell(task, "mech-1", 1, 0, w, excl)
		if !ok {
			t.Fatal("spanning task does not touch day 1 at slot 0")
		}
		if !cell.Continuation {
			t.Error("continuation day not marked")
		}
		if cell.Hours != 2 {
			t.Errorf("Hours = %d, want 2", cell.Hours)
		}
		if _, ok := ClassifyCell(task, "mech-1", 1, 7, w, excl); ok {
			t.Error("continuation day matched at a non-anchor hour")
		}
	})

	t.Run("no touch cases", func(t *testing.T) {
		tests := []struct {
			name     string
			mechanic string
			day      int
			hour     int
		}{
			{name: "other mechanic", mechanic: "mech-2", day: 0, hour: 7},
			{name: "wrong hour on start day", mechanic: "mech-1", day: 0, hour: 6},
			{name: "day before span", mechanic: "mech-1", day: 0, hour: 0},
			{name: "day past span", mechanic: "mech-1", day: 2, hour: 0},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if _, ok := ClassifyCell(task, tt.mechanic, tt.day, tt.hour, w, excl); ok {
					t.Error("cell unexpectedly touched")
				}
			})
		}
	})
}

func TestClassifyCell_Exclusions(t *testing.T) {
	w, excl := gridFixture(t)
	excl.Holidays.Add(w.Days[1])
	excl.Leaves["mech-1"] = NewDaySet(w.Days[2], w.Days[1])

	t.Run("holiday overrides the title", func(t *testing.T) {
		task, _ := NewTask("t1", "mech-1", "gearbox", 0, 7, 4, w)
		cell, ok := ClassifyCell(task, "mech-1", 1, 0, w, excl)
		if !ok {
			t.Fatal("spilled task does not occupy the holiday")
		}
		if cell.State != StateHoliday {
			t.Errorf("State = %q, want %q", cell.State, StateHoliday)
		}
		if cell.Label != HolidayLabel {
			t.Errorf("Label = %q, want %q", cell.Label, HolidayLabel)
		}
		if cell.Title != "gearbox" {
			t.Errorf("Title = %q, want raw title preserved", cell.Title)
		}
	})

	t.Run("leave state on a working day", func(t *testing.T) {
		task, _ := NewTask("t2", "mech-1", "suspension", 2, 0, 3, w)
		cell, ok := ClassifyCell(task, "mech-1", 2, 0, w, excl)
		if !ok {
			t.Fatal("task does not touch its start cell")
		}
		if cell.State != StateLeave {
			t.Errorf("State = %q, want %q", cell.State, StateLeave)
		}
		if cell.Label != LeaveLabel {
			t.Errorf("Label = %q, want %q", cell.Label, LeaveLabel)
		}
	})

	t.Run("holiday wins over leave", func(t *testing.T) {
		// Day 1 is both a listed holiday and a leave day for mech-1.
		task, _ := NewTask("t3", "mech-1", "welding", 1, 0, 2, w)
		cell, ok := ClassifyCell(task, "mech-1", 1, 0, w, excl)
		if !ok {
			t.Fatal("task does not touch its start cell")
		}
		if cell.State != StateHoliday {
			t.Errorf("State = %q, want holiday to take precedence over leave", cell.State)
		}
	})
}

func TestBuildGrid(t *testing.T) {
	w, excl := gridFixture(t)
	excl.Leaves["mech-2"] = NewDaySet(w.Days[2])

	mechanics := []Mechanic{
		{ID: "mech-1", Name: "Dana Cole"},
		{ID: "mech-2", Name: "Sam Ortiz"},
	}

	spanning, _ := NewTask("t1", "mech-1", "engine swap", 0, 7, 4, w)
	onLeaveDay, _ := NewTask("t2", "mech-2", "tires", 2, 1, 2, w)

	rows := BuildGrid(w, excl, mechanics, []Task{spanning, onLeaveDay})

	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}

	t.Run("row and day structure", func(t *testing.T) {
		for _, row := range rows {
			for d, day := range row.Days {
				if !day.Date.Equal(w.Days[d]) {
					t.Errorf("row %s day %d date = %s, want %s", row.MechanicID, d, day.Date, w.Days[d])
				}
			}
			if !row.Days[6].Holiday {
				t.Errorf("row %s: weekly day off not flagged", row.MechanicID)
			}
		}
	})

	t.Run("spanning task yields start and continuation cells", func(t *testing.T) {
		row := rows[0]
		if len(row.Days[0].Cells) != 1 || len(row.Days[1].Cells) != 1 {
			t.Fatalf("cells on days 0/1 = %d/%d, want 1/1",
				len(row.Days[0].Cells), len(row.Days[1].Cells))
		}
		if row.Days[0].Cells[0].Continuation {
			t.Error("day 0 cell marked as continuation")
		}
		if !row.Days[1].Cells[0].Continuation {
			t.Error("day 1 cell not marked as continuation")
		}
		for d := 2; d < DaysPerWeek; d++ {
			if len(row.Days[d].Cells) != 0 {
				t.Errorf("day %d has %d cells, want none", d, len(row.Days[d].Cells))
			}
		}
	})

	t.Run("task on a leave day renders as leave", func(t *testing.T) {
		cells := rows[1].Days[2].Cells
		if len(cells) != 1 {
			t.Fatalf("len(cells) = %d, want 1", len(cells))
		}
		if cells[0].State != StateLeave {
			t.Errorf("State = %q, want %q", cells[0].State, StateLeave)
		}
	})

	t.Run("tasks never bleed across mechanics", func(t *testing.T) {
		for d := range rows[0].Days {
			for _, c := range rows[0].Days[d].Cells {
				if c.MechanicID != "mech-1" {
					t.Errorf("mech-1 row holds cell for %q", c.MechanicID)
				}
			}
		}
	})
}
