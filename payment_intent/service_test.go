package payment_intent

import (
	"context"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"goflare.io/receipt/stripetest"
)

func TestGetByID(t *testing.T) {
	api, transport := stripetest.NewClient()
	s := NewService(api, zap.NewNop())

	transport.RegisterResponder(http.MethodGet, stripetest.BaseURL+"/v1/payment_intents/pi_1",
		httpmock.NewStringResponder(http.StatusOK,
			`{"id": "pi_1", "object": "payment_intent", "payment_method": "pm_1"}`))

	stripePaymentIntent, err := s.GetByID(context.Background(), "pi_1")
	require.NoError(t, err)
	assert.Equal(t, "pi_1", stripePaymentIntent.ID)
	require.NotNil(t, stripePaymentIntent.PaymentMethod)
	assert.Equal(t, "pm_1", stripePaymentIntent.PaymentMethod.ID)
}
