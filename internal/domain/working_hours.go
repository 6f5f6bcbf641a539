package domain

import (
	"github.com/barbercloud/barbercloud/pkg/types"
)

// TimeRange is a start/end pair within a single day
// Values are raw HH:MM strings; they may be transiently invalid while being edited
type TimeRange struct {
	StartTime types.TimeString `json:"startTime"`
	EndTime   types.TimeString `json:"endTime"`
}

// WeeklyTemplate maps every weekday to its ordered list of ranges
// An empty list means the shop is closed that day
type WeeklyTemplate map[Weekday][]TimeRange

// WorkingHoursEntry is the flat record exchanged with the remote store
type WorkingHoursEntry struct {
	Weekday   Weekday          `json:"weekday"`
	StartTime types.TimeString `json:"startTime"`
	EndTime   types.TimeString `json:"endTime"`
}

// Range returns the entry's time range
func (e WorkingHoursEntry) Range() TimeRange {
	return TimeRange{StartTime: e.StartTime, EndTime: e.EndTime}
}

// IsOpen reports whether the day has at least one range
func (t WeeklyTemplate) IsOpen(day Weekday) bool {
	return len(t[day]) > 0
}

// Clone returns a deep copy of the template
func (t WeeklyTemplate) Clone() WeeklyTemplate {
	out := make(WeeklyTemplate, len(t))
	for day, ranges := range t {
		out[day] = CloneRanges(ranges)
	}
	return out
}

// CloneRanges returns an independent copy of ranges (never nil)
func CloneRanges(ranges []TimeRange) []TimeRange {
	out := make([]TimeRange, len(ranges))
	copy(out, ranges)
	return out
}

// Default ranges inserted by the editor
var (
	MorningRange   = TimeRange{StartTime: "10:00", EndTime: "13:00"}
	AfternoonRange = TimeRange{StartTime: "16:00", EndTime: "20:00"}
)

// DefaultOpenDay is used when a closed day is toggled open
func DefaultOpenDay() []TimeRange {
	return []TimeRange{MorningRange, AfternoonRange}
}
