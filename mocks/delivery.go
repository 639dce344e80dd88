package mocks

import (
	"context"

	"github.com/stripe/stripe-go/v79"

	"goflare.io/receipt/models"
)

// Fetcher fakes pdf.Fetcher. Nil funcs return an empty body.
type Fetcher struct {
	FetchInvoicePDFFunc func(ctx context.Context, stripeInvoice *stripe.Invoice) ([]byte, error)
	FetchReceiptPDFFunc func(ctx context.Context, stripeCharge *stripe.Charge) ([]byte, error)
	FetchFunc           func(ctx context.Context, url string) ([]byte, error)
	Calls               int
}

func (m *Fetcher) FetchInvoicePDF(ctx context.Context, stripeInvoice *stripe.Invoice) ([]byte, error) {
	m.Calls++
	if m.FetchInvoicePDFFunc == nil {
		return []byte{}, nil
	}
	return m.FetchInvoicePDFFunc(ctx, stripeInvoice)
}

func (m *Fetcher) FetchReceiptPDF(ctx context.Context, stripeCharge *stripe.Charge) ([]byte, error) {
	m.Calls++
	if m.FetchReceiptPDFFunc == nil {
		return []byte{}, nil
	}
	return m.FetchReceiptPDFFunc(ctx, stripeCharge)
}

func (m *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	m.Calls++
	if m.FetchFunc == nil {
		return []byte{}, nil
	}
	return m.FetchFunc(ctx, url)
}

// Mailer fakes email.Mailer and records every message it is asked to send.
type Mailer struct {
	SendFunc func(ctx context.Context, msg *models.Email) (string, error)
	Sent     []*models.Email
}

func (m *Mailer) Send(ctx context.Context, msg *models.Email) (string, error) {
	m.Sent = append(m.Sent, msg)
	if m.SendFunc == nil {
		return "email_test", nil
	}
	return m.SendFunc(ctx, msg)
}

// EventService fakes event.Service with an in-memory set.
type EventService struct {
	MarkProcessedFunc func(ctx context.Context, eventID string) (bool, error)
	Seen              map[string]bool
	Released          []string
}

func (m *EventService) MarkProcessed(ctx context.Context, eventID string) (bool, error) {
	if m.MarkProcessedFunc != nil {
		return m.MarkProcessedFunc(ctx, eventID)
	}
	if m.Seen == nil {
		m.Seen = map[string]bool{}
	}
	if m.Seen[eventID] {
		return false, nil
	}
	m.Seen[eventID] = true
	return true, nil
}

func (m *EventService) Release(_ context.Context, eventID string) error {
	m.Released = append(m.Released, eventID)
	delete(m.Seen, eventID)
	return nil
}

// Sender fakes receipt.Sender.
type Sender struct {
	NewRequestFunc          func(invoiceID string) *models.SendRequest
	SendFunc                func(ctx context.Context, req *models.SendRequest) error
	PreviewFunc             func(ctx context.Context, req *models.SendRequest) (string, error)
	HandleStripeWebhookFunc func(ctx context.Context, payload []byte, signature string) error
	Requests                []*models.SendRequest
}

func (m *Sender) NewRequest(invoiceID string) *models.SendRequest {
	if m.NewRequestFunc != nil {
		return m.NewRequestFunc(invoiceID)
	}
	return &models.SendRequest{InvoiceID: invoiceID}
}

func (m *Sender) Send(ctx context.Context, req *models.SendRequest) error {
	m.Requests = append(m.Requests, req)
	if m.SendFunc == nil {
		return nil
	}
	return m.SendFunc(ctx, req)
}

func (m *Sender) Preview(ctx context.Context, req *models.SendRequest) (string, error) {
	m.Requests = append(m.Requests, req)
	if m.PreviewFunc == nil {
		return "", nil
	}
	return m.PreviewFunc(ctx, req)
}

func (m *Sender) HandleStripeWebhook(ctx context.Context, payload []byte, signature string) error {
	if m.HandleStripeWebhookFunc == nil {
		return nil
	}
	return m.HandleStripeWebhookFunc(ctx, payload, signature)
}
