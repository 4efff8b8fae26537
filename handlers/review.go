package handlers

import (
	"errors"
	"net/http"

	"servana/models"
	"servana/services/booking"
	"servana/services/review"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReviewHandler exposes the rating endpoints.
type ReviewHandler struct {
	Service  review.ReviewService
	Bookings booking.BookingService
}

type createReviewRequest struct {
	BookingID  string `json:"booking_id" binding:"required"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	ReviewText string `json:"review_text"`
}

// CreateReviewHandler handles POST /api/reviews. Only the customer of a
// completed booking may rate it.
func (h *ReviewHandler) CreateReviewHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	b, err := h.Bookings.GetByID(c.Request.Context(), req.BookingID)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to fetch booking for review", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
		return
	}
	if b.CustomerID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the booking's customer may leave a review"})
		return
	}
	if b.Status != models.BookingCompleted {
		c.JSON(http.StatusConflict, gin.H{"error": "Only completed bookings can be reviewed"})
		return
	}

	created, err := h.Service.Create(c.Request.Context(), &models.Review{
		BookingID:  req.BookingID,
		CustomerID: userID,
		ProviderID: b.ProviderID,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
	})
	if err != nil {
		logger.Error("Failed to create review", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListProviderReviewsHandler handles GET /api/reviews/:providerID.
func (h *ReviewHandler) ListProviderReviewsHandler(c *gin.Context) {
	logger := getLogger(c)

	reviews, err := h.Service.ListByProvider(c.Request.Context(), c.Param("providerID"))
	if err != nil {
		logger.Error("Failed to list reviews", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reviews"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}
