package models

import (
	"strings"
	"time"
)

// TimeSlot is a declared free interval of a sitter's recurring weekly
// schedule. Start and End are minutes from midnight (e.g., 540 for 9:00 AM).
type TimeSlot struct {
	Start int `bson:"start" json:"start"`
	End   int `bson:"end" json:"end"`
}

// IsValid reports whether the slot is a well-formed interval within one day.
func (s TimeSlot) IsValid() bool {
	return s.Start >= 0 && s.End <= 24*60 && s.Start < s.End
}

// WeeklyAvailability maps a lowercase weekday name ("monday".."sunday") to
// the sitter's declared free slots for that day. A day's slots need not be
// sorted or disjoint.
type WeeklyAvailability map[string][]TimeSlot

// DayKey returns the availability map key for a weekday.
func DayKey(day time.Weekday) string {
	return strings.ToLower(day.String())
}

// SlotsFor returns the declared free slots for the given weekday. A missing
// or empty day means the sitter does not work that day.
func (w WeeklyAvailability) SlotsFor(day time.Weekday) []TimeSlot {
	if w == nil {
		return nil
	}
	return w[DayKey(day)]
}

// HasAnySlots reports whether at least one day has a declared free slot.
func (w WeeklyAvailability) HasAnySlots() bool {
	for _, slots := range w {
		if len(slots) > 0 {
			return true
		}
	}
	return false
}
