package invoice

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"goflare.io/receipt/stripetest"
)

const invoiceURL = stripetest.BaseURL + "/v1/invoices/in_123"

func TestGetByID(t *testing.T) {
	api, transport := stripetest.NewClient()
	s := NewService(api, zap.NewNop())

	var expanded []string
	transport.RegisterResponder(http.MethodGet, invoiceURL,
		func(req *http.Request) (*http.Response, error) {
			for key, values := range req.URL.Query() {
				if strings.HasPrefix(key, "expand") {
					expanded = append(expanded, values...)
				}
			}
			return httpmock.NewStringResponse(http.StatusOK, `{
				"id": "in_123",
				"object": "invoice",
				"customer": "cus_1",
				"charge": "ch_1",
				"payment_intent": "pi_1",
				"total": 2160,
				"status_transitions": {"paid_at": 1709640000}
			}`), nil
		})

	stripeInvoice, err := s.GetByID(context.Background(), "in_123")
	require.NoError(t, err)

	assert.Equal(t, "in_123", stripeInvoice.ID)
	assert.Equal(t, "cus_1", stripeInvoice.Customer.ID)
	assert.Equal(t, "ch_1", stripeInvoice.Charge.ID)
	assert.Equal(t, "pi_1", stripeInvoice.PaymentIntent.ID)
	assert.Equal(t, int64(2160), stripeInvoice.Total)
	assert.Equal(t, int64(1709640000), stripeInvoice.StatusTransitions.PaidAt)
	assert.ElementsMatch(t, Expansions, expanded)
}

func TestGetByIDNotFound(t *testing.T) {
	api, transport := stripetest.NewClient()
	s := NewService(api, zap.NewNop())

	transport.RegisterResponder(http.MethodGet, invoiceURL,
		httpmock.NewStringResponder(http.StatusNotFound,
			`{"error": {"type": "invalid_request_error", "message": "No such invoice: 'in_123'"}}`))

	_, err := s.GetByID(context.Background(), "in_123")
	assert.ErrorContains(t, err, "failed to get Stripe invoice")
}
