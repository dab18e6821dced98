package handlers

import (
	"net/http"

	"nestly/models"
	"nestly/services/booking"
	"nestly/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes booking creation and lifecycle endpoints.
type BookingHandler struct {
	Svc booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

// CheckEligibility runs the eligibility validator without creating a booking.
func (h *BookingHandler) CheckEligibility(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.Svc.CheckEligibility(req)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "eligibility check failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// CreateBooking validates a booking request and persists it when admissible.
// Business-rule rejection is a 422 with the reason code, not an error.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	newBooking, result, err := h.Svc.CreateBooking(req)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create booking", err.Error())
		return
	}
	if !result.OK {
		c.JSON(http.StatusUnprocessableEntity, result)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "booking": newBooking})
}

// GetBooking returns a single booking by ID.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id := c.Param("id")
	b, err := h.Svc.GetBooking(id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "booking not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, b)
}

// GetUserBookings lists a parent's bookings.
func (h *BookingHandler) GetUserBookings(c *gin.Context) {
	userID := c.Param("userId")
	bookings, err := h.Svc.GetUserBookings(userID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// UpdateBookingStatus transitions a booking's status.
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	id := c.Param("id")
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := h.Svc.UpdateBookingStatus(id, input.Status); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to update booking status", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": input.Status})
}
