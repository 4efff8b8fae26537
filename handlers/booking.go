package handlers

import (
	"errors"
	"net/http"

	"servana/models"
	"servana/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking lifecycle endpoints.
type BookingHandler struct {
	Service booking.BookingService
}

type createBookingRequest struct {
	TaskID     string `json:"task_id" binding:"required"`
	ProviderID string `json:"provider_id" binding:"required"`
}

// CreateBookingHandler handles POST /api/bookings. The authenticated user is
// the customer.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	b, err := h.Service.Create(c.Request.Context(), req.TaskID, userID, req.ProviderID)
	if err != nil {
		logger.Error("Failed to create booking", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, b)
}

// GetBookingHandler handles GET /api/bookings/:id. Only a party to the
// booking may view it.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	b, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if b.CustomerID != userID && b.ProviderID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not a party to this booking"})
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListMyBookingsHandler handles GET /api/bookings, returning the role-shaped
// view for the authenticated user.
func (h *BookingHandler) ListMyBookingsHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if currentUserRole(c) == models.RoleProvider {
		views, err := h.Service.ProviderBookings(c.Request.Context(), userID)
		if err != nil {
			logger.Error("Failed to list provider bookings", zap.String("userID", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bookings"})
			return
		}
		c.JSON(http.StatusOK, views)
		return
	}

	views, err := h.Service.CustomerBookings(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list customer bookings", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, views)
}

type updateStatusRequest struct {
	Status models.BookingStatus `json:"status" binding:"required"`
}

// allowedFor limits which side of the booking may request each status.
func allowedFor(status models.BookingStatus, isCustomer bool) bool {
	switch status {
	case models.BookingAccepted, models.BookingDeclined,
		models.BookingInProgress, models.BookingCompleted:
		return !isCustomer
	case models.BookingCancelled:
		return isCustomer
	}
	return false
}

// UpdateBookingStatusHandler handles PATCH /api/bookings/:id.
func (h *BookingHandler) UpdateBookingStatusHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	bookingID := c.Param("id")
	existing, err := h.Service.GetByID(c.Request.Context(), bookingID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if existing.CustomerID != userID && existing.ProviderID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not a party to this booking"})
		return
	}
	if !allowedFor(req.Status, existing.CustomerID == userID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Your role may not set this status"})
		return
	}

	updated, err := h.Service.Transition(c.Request.Context(), bookingID, req.Status)
	if err != nil {
		var terr *booking.TransitionError
		var serr *booking.InvalidStatusError
		switch {
		case errors.As(err, &serr):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.As(err, &terr):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, booking.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update booking status",
				zap.String("bookingID", bookingID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking"})
		}
		return
	}
	c.JSON(http.StatusOK, updated)
}

// BookingStatsHandler handles GET /api/bookings/stats.
func (h *BookingHandler) BookingStatsHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	stats, err := h.Service.Stats(c.Request.Context(), userID, currentUserRole(c))
	if err != nil {
		logger.Error("Failed to compute booking stats", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
