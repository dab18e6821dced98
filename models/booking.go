package models

import "time"

// Booking statuses. Only the first three occupy a sitter's calendar for
// conflict purposes.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
	BookingStatusRejected  = "rejected"
)

// BookingDateLayout is the calendar-date format used across booking records.
const BookingDateLayout = "2006-01-02"

// Booking represents a booking record.
type Booking struct {
	ID         string    `bson:"id" json:"id"`                   // Unique booking identifier (UUID)
	ProviderID string    `bson:"provider_id" json:"provider_id"` // Sitter who was booked
	UserID     string    `bson:"user_id" json:"user_id"`         // Parent who made the booking
	Date       string    `bson:"date" json:"date"`               // Booking date in "YYYY-MM-DD" format
	Start      int       `bson:"start" json:"start"`             // Booking start time (minutes from midnight)
	End        int       `bson:"end" json:"end"`                 // Booking end time (minutes from midnight)
	Status     string    `bson:"status" json:"status"`
	TotalPrice float64   `bson:"total_price" json:"total_price"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}

// IsActive reports whether the booking still occupies the sitter's calendar.
func (b *Booking) IsActive() bool {
	switch b.Status {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted:
		return true
	}
	return false
}

// BookingRequest is a candidate interval to validate. It is transient and
// never persisted as-is.
type BookingRequest struct {
	ProviderID string `json:"providerId" binding:"required"`
	UserID     string `json:"userId"`
	Date       string `json:"date" binding:"required"` // "YYYY-MM-DD"
	Start      int    `json:"start"`                   // minutes from midnight
	End        int    `json:"end"`
}

// Eligibility reason codes returned when a booking request is rejected.
const (
	ReasonInvalidDate          = "invalid_date"
	ReasonInsufficientLeadTime = "insufficient_lead_time"
	ReasonInvalidDuration      = "invalid_duration"
	ReasonOutsideHours         = "outside_available_hours"
	ReasonNoFreeSlots          = "no_free_slots"
	ReasonTimeConflict         = "time_conflict"
)

// EligibilityResult is the outcome of validating a booking request.
// Rejection is business data, not an error.
type EligibilityResult struct {
	OK         bool   `json:"ok"`
	ReasonCode string `json:"reasonCode,omitempty"`
}

// Accepted is the successful eligibility outcome.
func Accepted() EligibilityResult {
	return EligibilityResult{OK: true}
}

// Rejected builds a rejection outcome with the given reason code.
func Rejected(reason string) EligibilityResult {
	return EligibilityResult{OK: false, ReasonCode: reason}
}
