package booking

import (
	"time"

	"nestly/models"
)

// FreeSlotsFor returns the sitter's declared free slots for a weekday. An
// absent or empty day is the defined "unavailable that day" state, not an
// error. Slots may be unsorted or overlapping; callers treat them as a union
// of coverage.
func FreeSlotsFor(p models.Provider, day time.Weekday) []models.TimeSlot {
	return p.Availability.SlotsFor(day)
}

// coversInterval reports whether any of the free slots overlaps the requested
// interval. This is an overlap test, not a containment test: a
// request partially outside declared hours still passes when it touches a
// free slot.
func coversInterval(slots []models.TimeSlot, start, end int) bool {
	for _, slot := range slots {
		if Overlaps(slot.Start, slot.End, start, end) {
			return true
		}
	}
	return false
}
