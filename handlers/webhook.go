package handlers

import (
	"io"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"goflare.io/receipt"
)

type WebhookHandler interface {
	HandleStripeWebhook(c echo.Context) error
}

type webhookHandler struct {
	Sender receipt.Sender
	logger *zap.Logger
}

func NewWebhookHandler(
	Sender receipt.Sender,
	logger *zap.Logger,
) WebhookHandler {
	return &webhookHandler{
		Sender: Sender,
		logger: logger,
	}
}

// HandleStripeWebhook handles POST /webhook/stripe
func (wh *webhookHandler) HandleStripeWebhook(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Failed to read request body"})
	}

	signature := c.Request().Header.Get("Stripe-Signature")

	if err = wh.Sender.HandleStripeWebhook(c.Request().Context(), payload, signature); err != nil {
		wh.logger.Error("Failed to handle Stripe webhook", zap.Error(err))
		if errors.Is(err, receipt.ErrWebhookNotEnabled) {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "Webhook is not enabled"})
		}
		return c.JSON(webhookStatusFor(err), map[string]string{"error": "Failed to handle webhook"})
	}

	return c.NoContent(http.StatusOK)
}

// webhookStatusFor answers 400 for payloads that fail signature verification.
func webhookStatusFor(err error) int {
	if errors.Is(err, receipt.ErrInvalidSignature) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
