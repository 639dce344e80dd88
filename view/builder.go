package view

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/stripe/stripe-go/v79"

	"goflare.io/receipt/charge"
	"goflare.io/receipt/discount"
	"goflare.io/receipt/models"
	"goflare.io/receipt/money"
	"goflare.io/receipt/payment_method"
)

const PaidDateLayout = "January 02, 2006"

var (
	ErrMissingRecord = errors.New("missing billing record")
	ErrNotPaid       = errors.New("invoice has no paid-at timestamp")
)

// Builder turns Stripe records into a ReceiptView.
type Builder struct {
	location *time.Location
	intn     charge.IntN
}

type Option func(*Builder)

// WithLocation overrides the timezone used for the paid date; the default is time.Local.
func WithLocation(loc *time.Location) Option {
	return func(b *Builder) { b.location = loc }
}

// WithIntN overrides the random source used for receipt numbers.
func WithIntN(intn charge.IntN) Option {
	return func(b *Builder) { b.intn = intn }
}

func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		location: time.Local,
		intn:     charge.DefaultIntN,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build assigns a receipt number to the charge when it has none, then flattens the records.
func (b *Builder) Build(records *models.ReceiptRecords, business models.Business) (*models.ReceiptView, error) {
	if err := checkRecords(records); err != nil {
		return nil, err
	}

	stripeInvoice := records.Invoice
	if stripeInvoice.StatusTransitions == nil || stripeInvoice.StatusTransitions.PaidAt == 0 {
		return nil, errors.WithHintf(ErrNotPaid, "invoice %s", stripeInvoice.ID)
	}

	charge.AssignReceiptNumber(records.Charge, b.intn)

	discountInfo, err := discount.Resolve(stripeInvoice)
	if err != nil {
		return nil, err
	}

	paymentMethodLabel, err := payment_method.Label(records.PaymentMethod)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to label payment method %s", records.PaymentMethod.ID)
	}

	return &models.ReceiptView{
		TotalAmount:         money.Format(stripeInvoice.Total),
		PaidDate:            FormatPaidDate(stripeInvoice.StatusTransitions.PaidAt, b.location),
		InvoiceLink:         stripeInvoice.InvoicePDF,
		ReceiptNumber:       records.Charge.ReceiptNumber,
		ReceiptLink:         records.Charge.ReceiptURL,
		PaymentMethod:       paymentMethodLabel,
		Tax:                 money.Format(stripeInvoice.Tax),
		Subtotal:            money.Format(stripeInvoice.Subtotal),
		Items:               LineItems(stripeInvoice),
		DiscountDescription: discountInfo.Description,
		DiscountAmount:      discountInfo.Amount,
		DiscountCode:        discountInfo.Code,
		BusinessName:        business.Name,
		BusinessEmail:       business.Email,
	}, nil
}

// LineItems maps invoice lines to display rows in invoice order.
func LineItems(stripeInvoice *stripe.Invoice) []models.LineItem {
	if stripeInvoice.Lines == nil {
		return []models.LineItem{}
	}
	lines := lo.Filter(stripeInvoice.Lines.Data, func(line *stripe.InvoiceLineItem, _ int) bool {
		return line != nil
	})
	return lo.Map(lines, func(line *stripe.InvoiceLineItem, _ int) models.LineItem {
		return models.LineItem{
			Name:     line.Description,
			Quantity: line.Quantity,
			Price:    money.Format(line.Amount),
		}
	})
}

// FormatPaidDate renders a unix timestamp as "January 02, 2006" in loc.
func FormatPaidDate(unix int64, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return time.Unix(unix, 0).In(loc).Format(PaidDateLayout)
}

func checkRecords(records *models.ReceiptRecords) error {
	switch {
	case records == nil || records.Invoice == nil:
		return errors.WithHint(ErrMissingRecord, "invoice not loaded")
	case records.Charge == nil:
		return errors.WithHintf(ErrMissingRecord, "charge of invoice %s not loaded", records.Invoice.ID)
	case records.PaymentMethod == nil:
		return errors.WithHintf(ErrMissingRecord, "payment method of invoice %s not loaded", records.Invoice.ID)
	}
	return nil
}

// ProvideBuilder returns a Builder with the default location and random source.
func ProvideBuilder() *Builder {
	return NewBuilder()
}
