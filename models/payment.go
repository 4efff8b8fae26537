package models

// CheckoutRequest starts a (mock or Stripe-backed) payment for a booking.
type CheckoutRequest struct {
	BookingID string  `json:"booking_id"`
	Amount    float64 `json:"amount,omitempty"`
	Currency  string  `json:"currency,omitempty"`
}

// CheckoutResponse points the client at the paywall for the booking.
type CheckoutResponse struct {
	Status       string `json:"status"` // always "pending_payment"
	PaymentURL   string `json:"payment_url"`
	ClientSecret string `json:"client_secret,omitempty"` // set when Stripe is configured
}
