package models

import (
	"github.com/stripe/stripe-go/v79"

	"goflare.io/receipt/models/enum"
)

// ReceiptRecords groups the Stripe objects a receipt is built from
type ReceiptRecords struct {
	Invoice       *stripe.Invoice
	Customer      *stripe.Customer
	Charge        *stripe.Charge
	PaymentIntent *stripe.PaymentIntent
	PaymentMethod *stripe.PaymentMethod
}

// Business identifies the sender shown on the receipt. Both fields are optional.
type Business struct {
	Name  string `json:"business_name"`
	Email string `json:"business_email"`
}

// ReceiptView is the flat, display-ready input of the renderer.
type ReceiptView struct {
	TotalAmount         string     `json:"total_amount"`
	PaidDate            string     `json:"paid_date"`
	InvoiceLink         string     `json:"invoice_link"`
	ReceiptNumber       string     `json:"receipt_number"`
	ReceiptLink         string     `json:"receipt_link"`
	PaymentMethod       string     `json:"payment_method"`
	Tax                 string     `json:"tax"`
	Subtotal            string     `json:"subtotal"`
	Items               []LineItem `json:"items"`
	DiscountDescription string     `json:"discount_description"`
	DiscountAmount      string     `json:"discount_amount"`
	DiscountCode        *string    `json:"discount_code,omitempty"`
	BusinessName        string     `json:"business_name"`
	BusinessEmail       string     `json:"business_email"`
}

type LineItem struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
	Price    string `json:"price"`
}

type DiscountInfo struct {
	Description string
	Amount      string
	Code        *string
}

// SendRequest describes one receipt email for one invoice.
type SendRequest struct {
	InvoiceID        string              `json:"invoice_id"`
	Business         Business            `json:"business"`
	Subject          string              `json:"subject"`
	From             string              `json:"from"`
	AttachInvoicePDF bool                `json:"attach_invoice_pdf"`
	AttachReceiptPDF bool                `json:"attach_receipt_pdf"`
	RecipientField   enum.RecipientField `json:"recipient_field"`
}

type Attachment struct {
	Filename    string
	Content     []byte
	ContentType string
}

type Email struct {
	From        string
	To          string
	Subject     string
	HTML        string
	Attachments []*Attachment
}
