package receipt

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"
	"go.uber.org/zap"

	"goflare.io/receipt/charge"
	"goflare.io/receipt/config"
	"goflare.io/receipt/customer"
	"goflare.io/receipt/email"
	"goflare.io/receipt/event"
	"goflare.io/receipt/invoice"
	"goflare.io/receipt/models"
	"goflare.io/receipt/models/enum"
	"goflare.io/receipt/payment_intent"
	"goflare.io/receipt/payment_method"
	"goflare.io/receipt/pdf"
	"goflare.io/receipt/render"
	"goflare.io/receipt/view"
)

type ReceiptSender struct {
	invoice       invoice.Service
	customer      customer.Service
	charge        charge.Service
	paymentIntent payment_intent.Service
	paymentMethod payment_method.Service
	event         event.Service

	builder  *view.Builder
	renderer *render.Renderer
	fetcher  pdf.Fetcher
	mailer   email.Mailer

	defaults      config.ReceiptConfig
	from          string
	webhookSecret string
	logger        *zap.Logger
}

func NewReceiptSender(
	appConfig *config.Config,
	is invoice.Service,
	cs customer.Service,
	chs charge.Service,
	pis payment_intent.Service,
	pms payment_method.Service,
	es event.Service,
	builder *view.Builder,
	renderer *render.Renderer,
	fetcher pdf.Fetcher,
	mailer email.Mailer,
	logger *zap.Logger,
) Sender {
	return &ReceiptSender{
		invoice:       is,
		customer:      cs,
		charge:        chs,
		paymentIntent: pis,
		paymentMethod: pms,
		event:         es,
		builder:       builder,
		renderer:      renderer,
		fetcher:       fetcher,
		mailer:        mailer,
		defaults:      appConfig.Receipt,
		from:          appConfig.Resend.From,
		webhookSecret: appConfig.Stripe.WebhookSecret,
		logger:        logger,
	}
}

func (rs *ReceiptSender) NewRequest(invoiceID string) *models.SendRequest {
	return &models.SendRequest{
		InvoiceID: invoiceID,
		Business: models.Business{
			Name:  rs.defaults.BusinessName,
			Email: rs.defaults.BusinessEmail,
		},
		Subject:          rs.defaults.Subject,
		From:             rs.from,
		AttachInvoicePDF: rs.defaults.AttachInvoicePDF,
		AttachReceiptPDF: rs.defaults.AttachReceiptPDF,
		RecipientField:   rs.defaults.RecipientField,
	}
}

// Send fetches, renders and emails the receipt of req.InvoiceID
func (rs *ReceiptSender) Send(ctx context.Context, req *models.SendRequest) error {

	records, receiptView, err := rs.prepare(ctx, req)
	if err != nil {
		return err
	}

	html, err := rs.renderer.Render(receiptView)
	if err != nil {
		return err
	}

	var attachments []*models.Attachment

	if req.AttachInvoicePDF {
		content, err := rs.fetcher.FetchInvoicePDF(ctx, records.Invoice)
		if err != nil {
			return errors.Wrapf(err, "failed to fetch invoice PDF of %s", req.InvoiceID)
		}
		attachments = append(attachments, &models.Attachment{
			Filename:    InvoiceAttachmentName,
			Content:     content,
			ContentType: pdf.ContentType,
		})
	}

	if req.AttachReceiptPDF {
		content, err := rs.fetcher.FetchReceiptPDF(ctx, records.Charge)
		if err != nil {
			return errors.Wrapf(err, "failed to fetch receipt PDF of %s", req.InvoiceID)
		}
		attachments = append(attachments, &models.Attachment{
			Filename:    ReceiptAttachmentName,
			Content:     content,
			ContentType: pdf.ContentType,
		})
	}

	msg := &models.Email{
		From:        req.From,
		To:          recipient(records.Customer, req.RecipientField),
		Subject:     req.Subject,
		HTML:        html,
		Attachments: attachments,
	}

	messageID, err := rs.mailer.Send(ctx, msg)
	if err != nil {
		rs.logger.Error("Failed to send receipt email",
			zap.Error(err),
			zap.String("invoice_id", req.InvoiceID),
			zap.String("recipient_field", string(req.RecipientField)))
		return nil
	}

	rs.logger.Info("Receipt email sent",
		zap.String("invoice_id", req.InvoiceID),
		zap.String("message_id", messageID),
		zap.String("receipt_number", receiptView.ReceiptNumber),
		zap.Int("attachments", len(attachments)))

	return nil
}

func (rs *ReceiptSender) Preview(ctx context.Context, req *models.SendRequest) (string, error) {
	_, receiptView, err := rs.prepare(ctx, req)
	if err != nil {
		return "", err
	}
	return rs.renderer.Render(receiptView)
}

// HandleStripeWebhook sends a receipt for every verified invoice.paid event
func (rs *ReceiptSender) HandleStripeWebhook(ctx context.Context, payload []byte, signature string) error {
	if rs.webhookSecret == "" {
		return ErrWebhookNotEnabled
	}

	stripeEvent, err := webhook.ConstructEventWithOptions(payload, signature, rs.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return errors.Wrap(errors.Mark(err, ErrInvalidSignature), "failed to verify webhook signature")
	}

	if stripeEvent.Type != stripe.EventTypeInvoicePaid {
		rs.logger.Debug("Ignoring Stripe event",
			zap.String("event_id", stripeEvent.ID),
			zap.String("event_type", string(stripeEvent.Type)))
		return nil
	}

	stripeInvoice := new(stripe.Invoice)
	if err = json.Unmarshal(stripeEvent.Data.Raw, stripeInvoice); err != nil {
		return fmt.Errorf("failed to unmarshal invoice event: %w", err)
	}

	first, err := rs.event.MarkProcessed(ctx, stripeEvent.ID)
	if err != nil {
		return err
	}
	if !first {
		return nil
	}

	if err = rs.Send(ctx, rs.NewRequest(stripeInvoice.ID)); err != nil {
		// the event stays marked so redeliveries skip the Stripe fetch
		if IsPermanent(err) {
			rs.logger.Warn("Stripe invoice.paid event cannot produce a receipt",
				zap.Error(err),
				zap.String("event_id", stripeEvent.ID),
				zap.String("invoice_id", stripeInvoice.ID))
			return nil
		}
		if releaseErr := rs.event.Release(ctx, stripeEvent.ID); releaseErr != nil {
			rs.logger.Warn("Failed to release Stripe event", zap.Error(releaseErr), zap.String("event_id", stripeEvent.ID))
		}
		return err
	}

	rs.logger.Info("Stripe invoice.paid event processed",
		zap.String("event_id", stripeEvent.ID),
		zap.String("invoice_id", stripeInvoice.ID))
	return nil
}

// prepare loads every record of the invoice and builds its view. The customer
// check runs before any other call so an orphan invoice causes no side effects.
func (rs *ReceiptSender) prepare(ctx context.Context, req *models.SendRequest) (*models.ReceiptRecords, *models.ReceiptView, error) {
	if req == nil || req.InvoiceID == "" {
		return nil, nil, ErrMissingInvoiceID
	}

	stripeInvoice, err := rs.invoice.GetByID(ctx, req.InvoiceID)
	if err != nil {
		return nil, nil, err
	}

	if stripeInvoice.Customer == nil || stripeInvoice.Customer.ID == "" {
		return nil, nil, errors.WithHintf(ErrNoCustomer, "invoice %s", req.InvoiceID)
	}

	records := &models.ReceiptRecords{Invoice: stripeInvoice}

	if records.Customer, err = rs.customer.GetByID(ctx, stripeInvoice.Customer.ID); err != nil {
		return nil, nil, err
	}

	if stripeInvoice.Charge == nil || stripeInvoice.Charge.ID == "" {
		return nil, nil, errors.WithHintf(view.ErrMissingRecord, "invoice %s has no charge", req.InvoiceID)
	}
	if records.Charge, err = rs.charge.GetByID(ctx, stripeInvoice.Charge.ID); err != nil {
		return nil, nil, err
	}

	if stripeInvoice.PaymentIntent == nil || stripeInvoice.PaymentIntent.ID == "" {
		return nil, nil, errors.WithHintf(view.ErrMissingRecord, "invoice %s has no payment intent", req.InvoiceID)
	}
	if records.PaymentIntent, err = rs.paymentIntent.GetByID(ctx, stripeInvoice.PaymentIntent.ID); err != nil {
		return nil, nil, err
	}

	if records.PaymentIntent.PaymentMethod == nil || records.PaymentIntent.PaymentMethod.ID == "" {
		return nil, nil, errors.WithHintf(view.ErrMissingRecord, "payment intent %s has no payment method", records.PaymentIntent.ID)
	}
	if records.PaymentMethod, err = rs.paymentMethod.GetByID(ctx, records.PaymentIntent.PaymentMethod.ID); err != nil {
		return nil, nil, err
	}

	receiptView, err := rs.builder.Build(records, req.Business)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to build receipt of %s", req.InvoiceID)
	}

	return records, receiptView, nil
}

func recipient(stripeCustomer *stripe.Customer, field enum.RecipientField) string {
	if field == enum.RecipientFieldEmail {
		return stripeCustomer.Email
	}
	return stripeCustomer.Name
}
