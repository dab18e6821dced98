package booking

import (
	"fmt"
	"time"

	bookingRepo "nestly/database/repository/booking"
	providerRepo "nestly/database/repository/provider"
	"nestly/models"
	"nestly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingService is the caller-facing surface around the eligibility engine:
// it loads the sitter and booking snapshots, runs validation, and persists
// accepted bookings.
type BookingService interface {
	CheckEligibility(req models.BookingRequest) (models.EligibilityResult, error)
	CreateBooking(req models.BookingRequest) (*models.Booking, models.EligibilityResult, error)
	GetBooking(id string) (*models.Booking, error)
	GetUserBookings(userID string) ([]models.Booking, error)
	UpdateBookingStatus(id, status string) error
}

// DefaultBookingService is the Mongo-backed implementation.
type DefaultBookingService struct {
	ProviderRepo providerRepo.ProviderRepository
	BookingRepo  bookingRepo.BookingRepository
}

// CheckEligibility runs the validator against a fresh snapshot of the
// sitter's availability and active bookings, without persisting anything.
func (s *DefaultBookingService) CheckEligibility(req models.BookingRequest) (models.EligibilityResult, error) {
	provider, err := s.ProviderRepo.GetByID(req.ProviderID)
	if err != nil {
		return models.EligibilityResult{}, ErrProviderNotFound(req.ProviderID)
	}
	existing, err := s.BookingRepo.GetByProviderAndDate(req.ProviderID, req.Date)
	if err != nil {
		return models.EligibilityResult{}, fmt.Errorf("failed to load existing bookings: %w", err)
	}
	return ValidateRequest(req, *provider, existing, time.Now()), nil
}

// CreateBooking validates the request and, when admissible, persists a new
// pending booking. The validate-then-insert sequence is a pre-flight filter,
// not an atomic reservation; concurrent requests for the same sitter must be
// serialized by the storage layer.
func (s *DefaultBookingService) CreateBooking(req models.BookingRequest) (*models.Booking, models.EligibilityResult, error) {
	logger := utils.GetLogger()

	provider, err := s.ProviderRepo.GetByID(req.ProviderID)
	if err != nil {
		return nil, models.EligibilityResult{}, ErrProviderNotFound(req.ProviderID)
	}
	existing, err := s.BookingRepo.GetByProviderAndDate(req.ProviderID, req.Date)
	if err != nil {
		return nil, models.EligibilityResult{}, fmt.Errorf("failed to load existing bookings: %w", err)
	}

	result := ValidateRequest(req, *provider, existing, time.Now())
	if !result.OK {
		logger.Debug("booking request rejected",
			zap.String("providerID", req.ProviderID),
			zap.String("reason", result.ReasonCode))
		return nil, result, nil
	}

	hours := float64(req.End-req.Start) / 60
	newBooking := &models.Booking{
		ID:         uuid.New().String(),
		ProviderID: req.ProviderID,
		UserID:     req.UserID,
		Date:       req.Date,
		Start:      req.Start,
		End:        req.End,
		Status:     models.BookingStatusPending,
		TotalPrice: hours * provider.HourlyRate,
		CreatedAt:  time.Now(),
	}
	if err := s.BookingRepo.Create(newBooking); err != nil {
		return nil, models.EligibilityResult{}, fmt.Errorf("failed to persist booking: %w", err)
	}

	logger.Info("booking created",
		zap.String("bookingID", newBooking.ID),
		zap.String("providerID", newBooking.ProviderID),
		zap.String("date", newBooking.Date))
	return newBooking, result, nil
}

// GetBooking retrieves a booking by ID.
func (s *DefaultBookingService) GetBooking(id string) (*models.Booking, error) {
	b, err := s.BookingRepo.GetByID(id)
	if err != nil {
		return nil, ErrBookingNotFound(id)
	}
	return b, nil
}

// GetUserBookings lists all bookings made by a parent.
func (s *DefaultBookingService) GetUserBookings(userID string) ([]models.Booking, error) {
	return s.BookingRepo.GetByUser(userID)
}

// UpdateBookingStatus transitions a booking to a new status.
func (s *DefaultBookingService) UpdateBookingStatus(id, status string) error {
	switch status {
	case models.BookingStatusPending, models.BookingStatusConfirmed,
		models.BookingStatusCompleted, models.BookingStatusCancelled,
		models.BookingStatusRejected:
	default:
		return &BookingError{Code: "invalidStatus", Message: fmt.Sprintf("unknown booking status %q", status)}
	}
	return s.BookingRepo.UpdateStatus(id, status)
}
