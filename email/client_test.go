package email

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"goflare.io/receipt/config"
	"goflare.io/receipt/models"
)

const resendEmailsURL = "https://api.resend.com/emails"

func newTestClient(t *testing.T, replyTo string) *Client {
	t.Helper()

	httpClient := &http.Client{}
	httpmock.ActivateNonDefault(httpClient)
	t.Cleanup(httpmock.DeactivateAndReset)

	cfg := &config.Config{Resend: config.ResendConfig{APIKey: "re_test", ReplyTo: replyTo}}
	return NewClientWithResend(resend.NewCustomClient(httpClient, cfg.Resend.APIKey), cfg, zap.NewNop())
}

func TestSend(t *testing.T) {
	c := newTestClient(t, "support@acme.test")

	var payload map[string]any
	httpmock.RegisterResponder(http.MethodPost, resendEmailsURL,
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "Bearer re_test", req.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(req.Body).Decode(&payload))
			return httpmock.NewJsonResponse(http.StatusOK, map[string]string{"id": "email_123"})
		})

	id, err := c.Send(context.Background(), &models.Email{
		From:    "Acme <billing@acme.test>",
		To:      "ada@example.com",
		Subject: "Your receipt",
		HTML:    "<p>receipt</p>",
		Attachments: []*models.Attachment{
			{Filename: "Invoice.pdf", Content: []byte("%PDF invoice"), ContentType: "application/pdf"},
			{Filename: "Receipt.pdf", Content: []byte("%PDF receipt"), ContentType: "application/pdf"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "email_123", id)

	assert.Equal(t, "Acme <billing@acme.test>", payload["from"])
	assert.Equal(t, []any{"ada@example.com"}, payload["to"])
	assert.Equal(t, "Your receipt", payload["subject"])
	assert.Equal(t, "<p>receipt</p>", payload["html"])
	assert.Equal(t, "support@acme.test", payload["reply_to"])

	attachments, ok := payload["attachments"].([]any)
	require.True(t, ok)
	require.Len(t, attachments, 2)

	first := attachments[0].(map[string]any)
	assert.Equal(t, "Invoice.pdf", first["filename"])
	assert.Equal(t, "application/pdf", first["content_type"])
	assert.NotEmpty(t, first["content"])
	assert.Equal(t, "Receipt.pdf", attachments[1].(map[string]any)["filename"])
}

func TestSendWithoutAttachments(t *testing.T) {
	c := newTestClient(t, "")

	var payload map[string]any
	httpmock.RegisterResponder(http.MethodPost, resendEmailsURL,
		func(req *http.Request) (*http.Response, error) {
			require.NoError(t, json.NewDecoder(req.Body).Decode(&payload))
			return httpmock.NewJsonResponse(http.StatusOK, map[string]string{"id": "email_456"})
		})

	id, err := c.Send(context.Background(), &models.Email{To: "ada@example.com", HTML: "<p></p>"})
	require.NoError(t, err)
	assert.Equal(t, "email_456", id)
	assert.Equal(t, []any{"ada@example.com"}, payload["to"])
	assert.Empty(t, payload["attachments"])
}

func TestSendProviderError(t *testing.T) {
	c := newTestClient(t, "")

	httpmock.RegisterResponder(http.MethodPost, resendEmailsURL,
		httpmock.NewStringResponder(http.StatusUnprocessableEntity,
			`{"statusCode":422,"name":"validation_error","message":"Invalid to field"}`))

	_, err := c.Send(context.Background(), &models.Email{To: "Ada"})
	assert.Error(t, err)
}
