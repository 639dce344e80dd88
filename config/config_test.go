package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goflare.io/receipt/models/enum"
)

func missingPath(t *testing.T) Path {
	return Path(filepath.Join(t.TempDir(), "config.yaml"))
}

func TestProvideApplicationConfigDefaults(t *testing.T) {
	t.Setenv("RECEIPT_STRIPE_SECRET_KEY", "")
	t.Setenv("RECEIPT_RESEND_API_KEY", "")
	t.Setenv("STRIPE_KEY", "sk_test_legacy")
	t.Setenv("RESEND_API_KEY", "re_legacy")

	cfg, err := ProvideApplicationConfig(missingPath(t))
	require.NoError(t, err)

	assert.Equal(t, "sk_test_legacy", cfg.Stripe.SecretKey)
	assert.Equal(t, "re_legacy", cfg.Resend.APIKey)
	assert.True(t, cfg.Receipt.AttachInvoicePDF)
	assert.True(t, cfg.Receipt.AttachReceiptPDF)
	assert.Equal(t, enum.RecipientFieldName, cfg.Receipt.RecipientField)
	assert.Equal(t, 30*time.Second, cfg.PDF.Timeout)
	assert.Equal(t, 0, cfg.PDF.RetryMax)
	assert.Equal(t, ServerStartPort, cfg.Server.Address)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestProvideApplicationConfigPrefixedEnv(t *testing.T) {
	t.Setenv("STRIPE_KEY", "sk_test_legacy")
	t.Setenv("RECEIPT_STRIPE_SECRET_KEY", "sk_test_prefixed")
	t.Setenv("RECEIPT_RESEND_API_KEY", "re_prefixed")
	t.Setenv("RECEIPT_RECEIPT_RECIPIENT_FIELD", "email")
	t.Setenv("RECEIPT_RECEIPT_BUSINESS_NAME", "Acme")

	cfg, err := ProvideApplicationConfig(missingPath(t))
	require.NoError(t, err)

	assert.Equal(t, "sk_test_prefixed", cfg.Stripe.SecretKey)
	assert.Equal(t, "re_prefixed", cfg.Resend.APIKey)
	assert.Equal(t, enum.RecipientFieldEmail, cfg.Receipt.RecipientField)
	assert.Equal(t, "Acme", cfg.Receipt.BusinessName)
}

func TestProvideApplicationConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
stripe:
  secret_key: sk_test_file
resend:
  api_key: re_file
  from: "Acme <billing@acme.test>"
receipt:
  business_name: Acme
  subject: Your receipt
  attach_receipt_pdf: false
pdf:
  timeout: 5s
  retry_max: 2
`), 0o600))

	cfg, err := ProvideApplicationConfig(Path(path))
	require.NoError(t, err)

	assert.Equal(t, "sk_test_file", cfg.Stripe.SecretKey)
	assert.Equal(t, "Acme <billing@acme.test>", cfg.Resend.From)
	assert.Equal(t, "Your receipt", cfg.Receipt.Subject)
	assert.True(t, cfg.Receipt.AttachInvoicePDF)
	assert.False(t, cfg.Receipt.AttachReceiptPDF)
	assert.Equal(t, 5*time.Second, cfg.PDF.Timeout)
	assert.Equal(t, 2, cfg.PDF.RetryMax)
}

func TestProvideApplicationConfigMissingKeys(t *testing.T) {
	t.Setenv("STRIPE_KEY", "")
	t.Setenv("RESEND_API_KEY", "")
	t.Setenv("RECEIPT_STRIPE_SECRET_KEY", "")
	t.Setenv("RECEIPT_RESEND_API_KEY", "")

	_, err := ProvideApplicationConfig(missingPath(t))
	assert.Error(t, err)
}

func TestValidateRecipientField(t *testing.T) {
	t.Setenv("STRIPE_KEY", "sk_test")
	t.Setenv("RESEND_API_KEY", "re_test")
	t.Setenv("RECEIPT_RECEIPT_RECIPIENT_FIELD", "phone")

	_, err := ProvideApplicationConfig(missingPath(t))
	assert.Error(t, err)
}

func TestProvideRedis(t *testing.T) {
	assert.Nil(t, ProvideRedis(&Config{}))

	rdb := ProvideRedis(&Config{Redis: RedisConfig{Addr: "localhost:6379", DB: 2}})
	require.NotNil(t, rdb)
	assert.Equal(t, 2, rdb.Options().DB)
	require.NoError(t, rdb.Close())
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(&Config{Log: LogConfig{Level: "debug"}})
	require.NoError(t, err)
	assert.NotNil(t, logger)

	_, err = NewLogger(&Config{Log: LogConfig{Level: "loud"}})
	assert.Error(t, err)
}
