package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"

	"goflare.io/receipt/config"
	"goflare.io/receipt/models"
)

type Mailer interface {
	// Send dispatches one email and returns the provider's message id.
	Send(ctx context.Context, msg *models.Email) (string, error)
}

// Client sends email through the Resend API.
type Client struct {
	client  *resend.Client
	replyTo string
	logger  *zap.Logger
}

func NewClient(appConfig *config.Config, logger *zap.Logger) Mailer {
	return NewClientWithResend(resend.NewClient(appConfig.Resend.APIKey), appConfig, logger)
}

func NewClientWithResend(client *resend.Client, appConfig *config.Config, logger *zap.Logger) *Client {
	return &Client{
		client:  client,
		replyTo: appConfig.Resend.ReplyTo,
		logger:  logger,
	}
}

func (c *Client) Send(ctx context.Context, msg *models.Email) (string, error) {
	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	}

	if c.replyTo != "" {
		params.ReplyTo = c.replyTo
	}

	for _, attachment := range msg.Attachments {
		params.Attachments = append(params.Attachments, &resend.Attachment{
			Filename:    attachment.Filename,
			Content:     attachment.Content,
			ContentType: attachment.ContentType,
		})
	}

	sent, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	c.logger.Debug("Resend accepted email",
		zap.String("message_id", sent.Id),
		zap.Int("attachments", len(params.Attachments)))
	return sent.Id, nil
}
