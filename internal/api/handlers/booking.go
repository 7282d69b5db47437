package handlers

import (
	"errors"
	"net/http"

	"github.com/Marco-XM/arixyDashboardBack/internal/database/models"
	"github.com/Marco-XM/arixyDashboardBack/internal/services"
	"github.com/gin-gonic/gin"
)

// BookingHandler handles event booking requests
type BookingHandler struct {
	bookingService *services.BookingService
}

// NewBookingHandler creates a new BookingHandler instance
func NewBookingHandler(bookingService *services.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// CreateBooking stores a booking submitted from the public website
// POST /api/bookings
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var booking models.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := h.bookingService.CreateBooking(&booking); err != nil {
		if errors.Is(err, services.ErrInvalidBookingData) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking created successfully",
		"booking": booking,
	})
}

// GetBookings returns all bookings
// GET /api/bookings
func (h *BookingHandler) GetBookings(c *gin.Context) {
	bookings, err := h.bookingService.GetBookings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GetConfirmedBookings returns bookings that have been confirmed
// GET /api/bookings/confirmed
func (h *BookingHandler) GetConfirmedBookings(c *gin.Context) {
	bookings, err := h.bookingService.GetConfirmedBookings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// CountBookings returns booking counts for the dashboard
// GET /api/bookings/count
func (h *BookingHandler) CountBookings(c *gin.Context) {
	total, err := h.bookingService.CountBookings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count bookings"})
		return
	}

	confirmed, err := h.bookingService.CountBookingsByConfirmed(true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count bookings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":     total,
		"confirmed": confirmed,
		"pending":   total - confirmed,
	})
}

// ConfirmBooking marks a booking as confirmed
// PUT /api/bookings/:id/confirm
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	booking, err := h.bookingService.ConfirmBooking(id)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to confirm booking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking confirmed successfully",
		"booking": booking,
	})
}

// DeclineBooking removes a booking and returns the deleted record
// DELETE /api/bookings/:id
func (h *BookingHandler) DeclineBooking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	booking, err := h.bookingService.DeclineBooking(id)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decline booking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking declined successfully",
		"booking": booking,
	})
}
