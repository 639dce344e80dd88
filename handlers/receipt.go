package handlers

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"goflare.io/receipt"
	"goflare.io/receipt/models"
	"goflare.io/receipt/models/enum"
)

type ReceiptHandler interface {
	SendReceipt(c echo.Context) error
	PreviewReceipt(c echo.Context) error
}

type receiptHandler struct {
	Sender   receipt.Sender
	validate *validator.Validate
	logger   *zap.Logger
}

func NewReceiptHandler(
	Sender receipt.Sender,
	logger *zap.Logger,
) ReceiptHandler {
	return &receiptHandler{
		Sender:   Sender,
		validate: validator.New(),
		logger:   logger,
	}
}

// receiptOverrides replaces configured defaults for a single request
type receiptOverrides struct {
	Subject          *string `json:"subject" query:"subject"`
	BusinessName     *string `json:"business_name" query:"business_name"`
	BusinessEmail    *string `json:"business_email" query:"business_email" validate:"omitempty,email"`
	AttachInvoicePDF *bool   `json:"attach_invoice_pdf" query:"attach_invoice_pdf"`
	AttachReceiptPDF *bool   `json:"attach_receipt_pdf" query:"attach_receipt_pdf"`
	RecipientField   *string `json:"recipient_field" query:"recipient_field" validate:"omitempty,oneof=name email"`
}

// SendReceipt handles POST /receipts/:invoice_id/send
func (rh *receiptHandler) SendReceipt(c echo.Context) error {
	req, err := rh.bindRequest(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}

	if err = rh.Sender.Send(c.Request().Context(), req); err != nil {
		rh.logger.Error("Failed to send receipt", zap.Error(err), zap.String("invoice_id", req.InvoiceID))
		return c.JSON(statusFor(err), map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]string{"invoice_id": req.InvoiceID, "status": "processed"})
}

// PreviewReceipt handles GET /receipts/:invoice_id/preview
func (rh *receiptHandler) PreviewReceipt(c echo.Context) error {
	req, err := rh.bindRequest(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}

	html, err := rh.Sender.Preview(c.Request().Context(), req)
	if err != nil {
		rh.logger.Error("Failed to preview receipt", zap.Error(err), zap.String("invoice_id", req.InvoiceID))
		return c.JSON(statusFor(err), map[string]string{"error": err.Error()})
	}

	return c.HTML(http.StatusOK, html)
}

func (rh *receiptHandler) bindRequest(c echo.Context) (*models.SendRequest, error) {
	var overrides receiptOverrides
	if err := c.Bind(&overrides); err != nil {
		return nil, err
	}
	if err := rh.validate.Struct(overrides); err != nil {
		return nil, err
	}

	req := rh.Sender.NewRequest(c.Param("invoice_id"))
	req.Subject = lo.FromPtrOr(overrides.Subject, req.Subject)
	req.Business.Name = lo.FromPtrOr(overrides.BusinessName, req.Business.Name)
	req.Business.Email = lo.FromPtrOr(overrides.BusinessEmail, req.Business.Email)
	req.AttachInvoicePDF = lo.FromPtrOr(overrides.AttachInvoicePDF, req.AttachInvoicePDF)
	req.AttachReceiptPDF = lo.FromPtrOr(overrides.AttachReceiptPDF, req.AttachReceiptPDF)
	if overrides.RecipientField != nil {
		req.RecipientField = enum.RecipientField(*overrides.RecipientField)
	}

	return req, nil
}

// statusFor maps send failures to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, receipt.ErrMissingInvoiceID):
		return http.StatusBadRequest
	case receipt.IsPermanent(err):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}
