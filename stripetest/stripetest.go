// Package stripetest builds Stripe API clients backed by httpmock for tests.
package stripetest

import (
	"net/http"

	"github.com/jarcoal/httpmock"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

const (
	BaseURL = "https://api.stripe.test"
	Key     = "sk_test_receipt"
)

// NewClient returns a Stripe client whose requests are answered by the returned transport.
// Register responders against BaseURL + "/v1/...".
func NewClient() (*client.API, *httpmock.MockTransport) {
	transport := httpmock.NewMockTransport()
	httpClient := &http.Client{Transport: transport}

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		HTTPClient:        httpClient,
		URL:               stripe.String(BaseURL),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})

	api := client.New(Key, &stripe.Backends{
		API:     backend,
		Connect: backend,
		Uploads: backend,
	})
	return api, transport
}
