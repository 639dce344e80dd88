package receipt

import (
	"context"

	"github.com/cockroachdb/errors"

	"goflare.io/receipt/discount"
	"goflare.io/receipt/models"
	"goflare.io/receipt/payment_method"
	"goflare.io/receipt/view"
)

const (
	InvoiceAttachmentName = "Invoice.pdf"
	ReceiptAttachmentName = "Receipt.pdf"
)

var (
	ErrNoCustomer        = errors.New("invoice does not have an associated customer")
	ErrMissingInvoiceID  = errors.New("invoice id is required")
	ErrWebhookNotEnabled = errors.New("stripe webhook secret is not configured")
	ErrInvalidSignature  = errors.New("invalid stripe webhook signature")
)

type Sender interface {
	// NewRequest returns a send request for invoiceID filled with the configured defaults.
	NewRequest(invoiceID string) *models.SendRequest

	// Send emails the receipt of one invoice. A failure of the final email dispatch
	// is logged and not returned; every earlier failure aborts the send.
	Send(ctx context.Context, req *models.SendRequest) error

	// Preview renders the receipt HTML without fetching PDFs or sending anything.
	Preview(ctx context.Context, req *models.SendRequest) (string, error)

	HandleStripeWebhook(ctx context.Context, payload []byte, signature string) error
}

// IsPermanent reports whether err comes from the invoice data itself, in which
// case sending the same invoice again fails the same way.
func IsPermanent(err error) bool {
	return errors.IsAny(err,
		ErrMissingInvoiceID,
		ErrNoCustomer,
		view.ErrMissingRecord,
		view.ErrNotPaid,
		discount.ErrMalformedDiscount,
		payment_method.ErrNotCard,
		payment_method.ErrMissingCardDetails,
	)
}
