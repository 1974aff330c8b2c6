package handlers

import (
	"net/http"
	"strconv"

	"driveline/backend"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler serves the instructor/admin booking views. Everything is
// a pass-through to the backend; this service adds no interpretation.
type DashboardHandler struct {
	Bookings backend.BookingAPI
	Logger   *zap.Logger
}

func NewDashboardHandler(bookings backend.BookingAPI, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{Bookings: bookings, Logger: logger}
}

// ListBookings pages through bookings (?skip=&limit=).
func (h *DashboardHandler) ListBookings(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	bookings, err := h.Bookings.ListBookings(c.Request.Context(), skip, limit)
	if err != nil {
		h.Logger.Error("failed to list bookings", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not load bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// UpdateBookingStatus patches a booking's status string (opaque value).
func (h *DashboardHandler) UpdateBookingStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking id"})
		return
	}
	status := c.Query("status")
	if status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing status"})
		return
	}

	updated, err := h.Bookings.UpdateBookingStatus(c.Request.Context(), id, status)
	if err != nil {
		h.Logger.Error("failed to update booking status", zap.Int("bookingId", id), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not update booking"})
		return
	}
	c.JSON(http.StatusOK, updated)
}
