package payment

import (
	"context"
	"testing"

	"servana/config"
	"servana/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) *DefaultPaymentService {
	t.Helper()
	config.AppConfig.StripeKey = ""
	config.AppConfig.PublicURL = "http://localhost:8080"
	return &DefaultPaymentService{Logger: zap.NewNop()}
}

func TestCheckoutMockFlow(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Checkout(context.Background(), models.CheckoutRequest{
		BookingID: "bk-1",
		Amount:    49.99,
	})
	require.NoError(t, err)

	assert.Equal(t, "pending_payment", resp.Status)
	assert.Equal(t, "http://localhost:8080/pay/bk-1", resp.PaymentURL)
	assert.Empty(t, resp.ClientSecret)
}

func TestCheckoutRequiresBookingID(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Checkout(context.Background(), models.CheckoutRequest{Amount: 10})
	assert.Error(t, err)
}

func TestCheckoutRejectsNonPositiveAmount(t *testing.T) {
	svc := newTestService(t)

	for _, amount := range []float64{0, -5} {
		_, err := svc.Checkout(context.Background(), models.CheckoutRequest{
			BookingID: "bk-1",
			Amount:    amount,
		})
		assert.Errorf(t, err, "amount %v should be rejected", amount)
	}
}
