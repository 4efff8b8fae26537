package payment

import (
	"context"
	"fmt"
	"math"
	"strings"

	"servana/config"
	"servana/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// DefaultCurrency is used when the checkout request leaves currency empty.
const DefaultCurrency = "usd"

// PaymentService creates checkout sessions for completed bookings. With a
// Stripe key configured it creates a real PaymentIntent; without one it serves
// the built-in mock payment page so the booking flow stays testable locally.
type PaymentService interface {
	Checkout(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutResponse, error)
}

// DefaultPaymentService is the production implementation.
type DefaultPaymentService struct {
	Logger *zap.Logger
}

// Checkout starts payment collection for a booking.
func (s *DefaultPaymentService) Checkout(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutResponse, error) {
	if req.BookingID == "" {
		return nil, fmt.Errorf("booking_id is required")
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}
	currency := strings.ToLower(req.Currency)
	if currency == "" {
		currency = DefaultCurrency
	}

	resp := &models.CheckoutResponse{
		Status:     "pending_payment",
		PaymentURL: fmt.Sprintf("%s/pay/%s", config.AppConfig.PublicURL, req.BookingID),
	}

	if config.AppConfig.StripeKey == "" {
		s.Logger.Info("checkout: no stripe key configured, using mock payment page",
			zap.String("bookingID", req.BookingID))
		return resp, nil
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(req.Amount * 100))),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("booking_id", req.BookingID)

	intent, err := paymentintent.New(params)
	if err != nil {
		s.Logger.Error("checkout: failed to create payment intent",
			zap.String("bookingID", req.BookingID), zap.Error(err))
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	resp.ClientSecret = intent.ClientSecret
	return resp, nil
}
