package handlers

import (
	"fmt"
	"html"
	"net/http"

	"servana/models"
	"servana/services/booking"
	"servana/services/payment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler exposes checkout plus the built-in mock payment pages used
// when no Stripe key is configured.
type PaymentHandler struct {
	Service  payment.PaymentService
	Bookings booking.BookingService
}

// CheckoutHandler handles POST /api/checkout.
func (h *PaymentHandler) CheckoutHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	b, err := h.Bookings.GetByID(c.Request.Context(), req.BookingID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if b.CustomerID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the booking's customer may pay"})
		return
	}

	resp, err := h.Service.Checkout(c.Request.Context(), req)
	if err != nil {
		logger.Error("Checkout failed", zap.String("bookingID", req.BookingID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PayPageHandler handles GET /pay/:bookingID, serving the mock paywall.
func (h *PaymentHandler) PayPageHandler(c *gin.Context) {
	bookingID := html.EscapeString(c.Param("bookingID"))
	page := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><title>Pay for booking</title></head>
<body style="font-family: sans-serif; max-width: 480px; margin: 4em auto;">
  <h1>Complete your payment</h1>
  <p>Booking <code>%s</code></p>
  <a href="/pay/success/%s" style="display:inline-block;padding:0.8em 2em;background:#2b8a3e;color:#fff;text-decoration:none;border-radius:6px;">Pay now</a>
</body>
</html>`, bookingID, bookingID)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

// PaySuccessHandler handles GET /pay/success/:bookingID.
func (h *PaymentHandler) PaySuccessHandler(c *gin.Context) {
	bookingID := html.EscapeString(c.Param("bookingID"))
	page := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><title>Payment received</title></head>
<body style="font-family: sans-serif; max-width: 480px; margin: 4em auto; text-align:center;">
  <h1>Payment received</h1>
  <p>Thanks! Your payment for booking <code>%s</code> has been recorded.</p>
  <p>You can close this window and return to the app.</p>
</body>
</html>`, bookingID)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}
