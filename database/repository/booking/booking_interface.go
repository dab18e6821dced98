package bookingRepo

import (
	"nestly/models"
)

// BookingRepository defines methods for booking data access. The eligibility
// engine never writes through this interface; persisting an accepted booking
// is the booking service's job.
type BookingRepository interface {
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// GetByProviderAndDate returns a provider's active bookings for a
	// calendar date ("YYYY-MM-DD"). Cancelled and rejected bookings are
	// excluded at the query level.
	GetByProviderAndDate(providerID, date string) ([]models.Booking, error)
	// GetByUser returns all bookings made by a parent.
	GetByUser(userID string) ([]models.Booking, error)
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// UpdateStatus transitions a booking to a new status.
	UpdateStatus(id, status string) error
}
