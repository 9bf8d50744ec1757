package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"tripwise/models"
	"tripwise/services/booking"
	"tripwise/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking store to signed-in users.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

func callerID(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var itinerary models.Itinerary
	if err := c.ShouldBindJSON(&itinerary); err != nil {
		logger.Warn("Invalid booking request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	created, err := h.Service.Create(c.Request.Context(), callerID(c), itinerary)
	if err != nil {
		var verr *models.ValidationError
		switch {
		case errors.Is(err, booking.ErrAuthRequired):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "You must be logged in to book a trip."})
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
		default:
			logger.Error("Failed to save booking", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to save booking", err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"booking": created,
		"message": fmt.Sprintf("Your trip to %s is confirmed. Happy travels!", created.Destination),
	})
}

// ListBookingsHandler handles GET /api/bookings.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	bookings, err := h.Service.List(c.Request.Context(), callerID(c))
	if err != nil {
		if errors.Is(err, booking.ErrAuthRequired) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "You must be logged in to view bookings."})
			return
		}
		logger.Error("Failed to fetch bookings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// DeleteBookingHandler handles DELETE /api/bookings/:id. Deleting an unknown
// ID succeeds; the owner's list is simply unchanged.
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()

	id := c.Param("id")
	if err := h.Service.Delete(c.Request.Context(), callerID(c), id); err != nil {
		if errors.Is(err, booking.ErrAuthRequired) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "You must be logged in to delete bookings."})
			return
		}
		logger.Error("Failed to delete booking", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted"})
}
