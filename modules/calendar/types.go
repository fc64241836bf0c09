package calendar

import "time"

// AddHolidayRequest is the request for listing a shop holiday.
type AddHolidayRequest struct {
	Day  time.Time `json:"day"`
	Name string    `json:"name"`
}

// HolidayResponse represents a holiday in responses.
type HolidayResponse struct {
	ID   string    `json:"id"`
	Day  time.Time `json:"day"`
	Name string    `json:"name"`
}

// RemoveHolidayRequest is the request for delisting a holiday.
type RemoveHolidayRequest struct {
	ID string `json:"id"`
}

// RemoveHolidayResponse is the response for delisting a holiday.
type RemoveHolidayResponse struct {
	Removed bool `json:"removed"`
}

// ListHolidaysRequest is the request for listing holidays.
type ListHolidaysRequest struct{}

// ListHolidaysResponse is the response for listing holidays.
type ListHolidaysResponse struct {
	Holidays []HolidayResponse `json:"holidays"`
	Total    int               `json:"total"`
}

// AddLeaveRequest is the request for recording a mechanic's leave day.
type AddLeaveRequest struct {
	MechanicID string    `json:"mechanic_id"`
	Day        time.Time `json:"day"`
	Reason     string    `json:"reason"`
}

// LeaveResponse represents a leave entry in responses.
type LeaveResponse struct {
	ID         string    `json:"id"`
	MechanicID string    `json:"mechanic_id"`
	Day        time.Time `json:"day"`
	Reason     string    `json:"reason"`
}

// RemoveLeaveRequest is the request for removing a leave entry.
type RemoveLeaveRequest struct {
	ID string `json:"id"`
}

// RemoveLeaveResponse is the response for removing a leave entry.
type RemoveLeaveResponse struct {
	Removed bool `json:"removed"`
}

// ListLeavesRequest is the request for listing leave entries.
type ListLeavesRequest struct{}

// ListLeavesResponse is the response for listing leave entries.
type ListLeavesResponse struct {
	Leaves []LeaveResponse `json:"leaves"`
	Total  int             `json:"total"`
}

// SnapshotRequest asks for the read-only exclusion snapshot covering a
// date range, typically one displayed week.
type SnapshotRequest struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// SnapshotResponse is the exclusion snapshot the scheduling core consumes
// per computation pass: listed holiday days plus per-mechanic leave days.
type SnapshotResponse struct {
	Holidays []time.Time            `json:"holidays"`
	Leaves   map[string][]time.Time `json:"leaves"`
}
