package pdf

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v79"
	"go.uber.org/zap"

	"goflare.io/receipt/config"
)

const (
	invoicePDFURL = "https://pay.stripe.test/invoice/acct_1/in_1/pdf"
	receiptURL    = "https://pay.stripe.test/receipts/acct_1/ch_1/rcpt_1?s=ap"
	receiptPDFURL = "https://pay.stripe.test/receipts/acct_1/ch_1/rcpt_1/pdf"
)

func newTestFetcher(t *testing.T, strict bool) Fetcher {
	t.Helper()

	f := NewFetcher(&config.Config{
		PDF: config.PDFConfig{Timeout: time.Second, StrictStatus: strict},
	}, zap.NewNop())

	httpmock.ActivateNonDefault(f.(*fetcher).client.HTTPClient)
	t.Cleanup(httpmock.DeactivateAndReset)
	return f
}

func TestFetchInvoicePDF(t *testing.T) {
	f := newTestFetcher(t, false)
	httpmock.RegisterResponder(http.MethodGet, invoicePDFURL,
		httpmock.NewBytesResponder(http.StatusOK, []byte("%PDF-1.4 invoice")))

	body, err := f.FetchInvoicePDF(context.Background(), &stripe.Invoice{InvoicePDF: invoicePDFURL})
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 invoice"), body)
}

func TestFetchReceiptPDF(t *testing.T) {
	f := newTestFetcher(t, false)
	httpmock.RegisterResponder(http.MethodGet, receiptPDFURL,
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "s=ap", req.URL.RawQuery)
			return httpmock.NewBytesResponse(http.StatusOK, []byte("%PDF-1.4 receipt")), nil
		})

	body, err := f.FetchReceiptPDF(context.Background(), &stripe.Charge{ReceiptURL: receiptURL})
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 receipt"), body)
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}

func TestFetchReturnsErrorBodies(t *testing.T) {
	f := newTestFetcher(t, false)
	httpmock.RegisterResponder(http.MethodGet, invoicePDFURL,
		httpmock.NewStringResponder(http.StatusNotFound, "not found"))

	body, err := f.Fetch(context.Background(), invoicePDFURL)
	require.NoError(t, err)
	assert.Equal(t, []byte("not found"), body)
}

func TestFetchStrictStatus(t *testing.T) {
	f := newTestFetcher(t, true)
	httpmock.RegisterResponder(http.MethodGet, invoicePDFURL,
		httpmock.NewStringResponder(http.StatusNotFound, "not found"))

	_, err := f.Fetch(context.Background(), invoicePDFURL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnexpectedStatus))
}

func TestFetchTransportError(t *testing.T) {
	f := newTestFetcher(t, false)
	httpmock.RegisterResponder(http.MethodGet, invoicePDFURL,
		httpmock.NewErrorResponder(errors.New("connection reset")))

	_, err := f.Fetch(context.Background(), invoicePDFURL)
	assert.Error(t, err)
}

func TestFetchNilRecords(t *testing.T) {
	f := newTestFetcher(t, false)

	_, err := f.FetchInvoicePDF(context.Background(), nil)
	assert.Error(t, err)
	_, err = f.FetchReceiptPDF(context.Background(), nil)
	assert.Error(t, err)
	assert.Equal(t, 0, httpmock.GetTotalCallCount())
}
