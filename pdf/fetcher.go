package pdf

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/stripe/stripe-go/v79"
	"go.uber.org/zap"

	"goflare.io/receipt/config"
)

const ContentType = "application/pdf"

var ErrUnexpectedStatus = errors.New("unexpected PDF response status")

type Fetcher interface {
	FetchInvoicePDF(ctx context.Context, stripeInvoice *stripe.Invoice) ([]byte, error)
	FetchReceiptPDF(ctx context.Context, stripeCharge *stripe.Charge) ([]byte, error)
	Fetch(ctx context.Context, url string) ([]byte, error)
}

type fetcher struct {
	client       *retryablehttp.Client
	strictStatus bool
	logger       *zap.Logger
}

func NewFetcher(appConfig *config.Config, logger *zap.Logger) Fetcher {
	client := retryablehttp.NewClient()
	client.RetryMax = appConfig.PDF.RetryMax
	client.HTTPClient.Timeout = appConfig.PDF.Timeout
	// hand back whatever body the server sent once retries are used up
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	client.Logger = &leveledLogger{logger: logger.Sugar()}

	return &fetcher{
		client:       client,
		strictStatus: appConfig.PDF.StrictStatus,
		logger:       logger,
	}
}

// FetchInvoicePDF downloads the invoice PDF Stripe links from the invoice
func (f *fetcher) FetchInvoicePDF(ctx context.Context, stripeInvoice *stripe.Invoice) ([]byte, error) {
	if stripeInvoice == nil {
		return nil, errors.New("invoice is nil")
	}
	return f.Fetch(ctx, stripeInvoice.InvoicePDF)
}

// FetchReceiptPDF downloads the PDF variant of the charge's hosted receipt
func (f *fetcher) FetchReceiptPDF(ctx context.Context, stripeCharge *stripe.Charge) ([]byte, error) {
	if stripeCharge == nil {
		return nil, errors.New("charge is nil")
	}
	return f.Fetch(ctx, ReceiptPDFLink(stripeCharge.ReceiptURL))
}

// Fetch GETs url and returns the raw body. Unless strict status checking is
// enabled the body is returned for any status code, error pages included.
func (f *fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build PDF request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch PDF: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		if f.strictStatus {
			return nil, errors.WithHintf(ErrUnexpectedStatus, "GET %s returned %d", url, resp.StatusCode)
		}
		f.logger.Warn("PDF endpoint returned non-success status",
			zap.String("url", url),
			zap.Int("status", resp.StatusCode))
	}

	return body, nil
}

// leveledLogger adapts zap to retryablehttp.LeveledLogger.
type leveledLogger struct {
	logger *zap.SugaredLogger
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Errorw(msg, keysAndValues...)
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Infow(msg, keysAndValues...)
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debugw(msg, keysAndValues...)
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warnw(msg, keysAndValues...)
}
