package schedule

import (
	"fmt"
	"time"
)

// SlotHeight is the rendered height in pixels of one work-hour row.
const SlotHeight = 40

// CellState classifies a rendered cell for styling.
type CellState string

const (
	StateNormal  CellState = "normal"
	StateHoliday CellState = "holiday"
	StateLeave   CellState = "leave"
)

// Labels shown in place of the task title on excluded days. A holiday
// overrides a leave when both apply.
const (
	HolidayLabel = "Closed"
	LeaveLabel   = "On leave"
)

// Mechanic is the reference-data shape the grid consumes: a stable
// identity plus a display name, supplied by the roster collaborator.
type Mechanic struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Cell is one rendered task segment: the anchor cell of a task on one of
// the days it touches. Height, not repeated per-hour placement, conveys
// the hours occupied on that day.
type Cell struct {
	TaskID       string    `json:"task_id"`
	MechanicID   string    `json:"mechanic_id"`
	Title        string    `json:"title"`
	Label        string    `json:"label"`
	Day          int       `json:"day"`
	Hour         int       `json:"hour"`
	Hours        int       `json:"hours"`
	Height       int       `json:"height"`
	State        CellState `json:"state"`
	Continuation bool      `json:"continuation"`
}

// ClassifyCell determines whether the task occupies the (day, hour) cell
// for the given mechanic and, if so, how to render it. A task touches a
// cell only when the mechanic matches, the day lies within its span, and
// the hour is the segment anchor: the task's start hour on its start day,
// slot 0 on every continuation day.
//
// Out-of-range day or hour indices are a caller contract violation, not a
// runtime condition.
func ClassifyCell(t Task, mechanicID string, day, hour int, w WeekWindow, excl Exclusions) (Cell, bool) {
	if t.MechanicID != mechanicID {
		return Cell{}, false
	}
	endDay, _ := w.SpanEnd(t.StartDay, t.StartHour, t.Duration)
	if day < t.StartDay || day > endDay {
		return Cell{}, false
	}
	anchor := 0
	if day == t.StartDay {
		anchor = t.StartHour
	}
	if hour != anchor {
		return Cell{}, false
	}

	hours := w.HoursOn(t, day)
	cell := Cell{
		TaskID:       t.ID,
		MechanicID:   t.MechanicID,
		Title:        t.Title,
		Day:          day,
		Hour:         anchor,
		Hours:        hours,
		Height:       hours * SlotHeight,
		Continuation: day > t.StartDay,
	}

	switch {
	case excl.IsHoliday(w, day):
		cell.State = StateHoliday
		cell.Label = HolidayLabel
	case excl.IsOnLeave(w, t.MechanicID, day):
		cell.State = StateLeave
		cell.Label = LeaveLabel
	default:
		cell.State = StateNormal
		cell.Label = fmt.Sprintf("%s %s", t.Title, w.ClockRange(anchor, hours))
	}
	return cell, true
}

// DayCells is one day column of a mechanic's row.
type DayCells struct {
	Date    time.Time `json:"date"`
	Holiday bool      `json:"holiday"`
	Cells   []Cell    `json:"cells,omitempty"`
}

// MechanicRow is the full week of one mechanic.
type MechanicRow struct {
	MechanicID string      `json:"mechanic_id"`
	Name       string      `json:"name"`
	Days       [7]DayCells `json:"days"`
}

// BuildGrid classifies the full mechanic x day x hour matrix for one
// render pass. Inputs are read-only snapshots; the function is pure.
func BuildGrid(w WeekWindow, excl Exclusions, mechanics []Mechanic, tasks []Task) []MechanicRow {
	rows := make([]MechanicRow, 0, len(mechanics))
	for _, m := range mechanics {
		row := MechanicRow{MechanicID: m.ID, Name: m.Name}
		for d := 0; d < DaysPerWeek; d++ {
			row.Days[d] = DayCells{Date: w.Days[d], Holiday: excl.IsHoliday(w, d)}
		}
		for _, t := range tasks {
			if t.MechanicID != m.ID {
				continue
			}
			endDay, _ := w.SpanEnd(t.StartDay, t.StartHour, t.Duration)
			for d := t.StartDay; d <= endDay && d < DaysPerWeek; d++ {
				anchor := 0
				if d == t.StartDay {
					anchor = t.StartHour
				}
				if cell, ok := ClassifyCell(t, m.ID, d, anchor, w, excl); ok {
					row.Days[d].Cells = append(row.Days[d].Cells, cell)
				}
			}
		}
		rows = append(rows, row)
	}
	return rows
}
