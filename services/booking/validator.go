package booking

import (
	"time"

	"nestly/models"
)

// Booking policy bounds.
const (
	minLeadTime        = 24 * time.Hour
	minDurationMinutes = 2 * 60
	maxDurationMinutes = 8 * 60
)

// ValidateRequest decides whether a requested booking interval is admissible
// against one sitter's declared weekly availability and their existing active
// bookings. Checks run in order and short-circuit on the first failure, each
// with its own reason code. The function performs no I/O and no mutation;
// persisting an accepted booking is the caller's job, and the caller must
// also serialize booking creation per sitter to close the check-then-act
// window between validation and commit.
func ValidateRequest(req models.BookingRequest, provider models.Provider, existing []models.Booking, now time.Time) models.EligibilityResult {
	date, err := time.ParseInLocation(models.BookingDateLayout, req.Date, now.Location())
	if err != nil {
		return models.Rejected(models.ReasonInvalidDate)
	}

	// 1. Lead time: the requested start must be at least 24h away.
	start := date.Add(time.Duration(req.Start) * time.Minute)
	if start.Sub(now) < minLeadTime {
		return models.Rejected(models.ReasonInsufficientLeadTime)
	}

	// 2. Duration bounds: 2h..8h, end strictly after start.
	duration := req.End - req.Start
	if req.End <= req.Start || duration < minDurationMinutes || duration > maxDurationMinutes {
		return models.Rejected(models.ReasonInvalidDuration)
	}

	// 3. Availability: some free slot on that weekday must overlap the request.
	slots := FreeSlotsFor(provider, date.Weekday())
	if len(slots) == 0 {
		return models.Rejected(models.ReasonNoFreeSlots)
	}
	if !coversInterval(slots, req.Start, req.End) {
		return models.Rejected(models.ReasonOutsideHours)
	}

	// 4. Conflicts: no active booking for the same sitter and date may overlap.
	for _, b := range existing {
		if b.ProviderID != req.ProviderID || b.Date != req.Date {
			continue
		}
		if !b.IsActive() {
			continue
		}
		if Overlaps(b.Start, b.End, req.Start, req.End) {
			return models.Rejected(models.ReasonTimeConflict)
		}
	}

	return models.Accepted()
}
