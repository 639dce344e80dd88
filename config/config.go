package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"github.com/stripe/stripe-go/v79/client"
	"go.uber.org/zap"

	"goflare.io/receipt/models/enum"
)

const (
	ServerStartPort = ":8080"
	EnvPrefix       = "RECEIPT"
)

// Path is the location of the optional YAML config file.
type Path string

const DefaultPath Path = "./config.yaml"

type Config struct {
	Stripe  StripeConfig  `mapstructure:"stripe"`
	Resend  ResendConfig  `mapstructure:"resend"`
	Receipt ReceiptConfig `mapstructure:"receipt"`
	PDF     PDFConfig     `mapstructure:"pdf"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
}

type StripeConfig struct {
	SecretKey     string `mapstructure:"secret_key" validate:"required"`
	WebhookSecret string `mapstructure:"webhook_secret"`
}

type ResendConfig struct {
	APIKey  string `mapstructure:"api_key" validate:"required"`
	From    string `mapstructure:"from"`
	ReplyTo string `mapstructure:"reply_to"`
}

// ReceiptConfig holds the defaults applied to every send request.
type ReceiptConfig struct {
	BusinessName     string              `mapstructure:"business_name"`
	BusinessEmail    string              `mapstructure:"business_email"`
	Subject          string              `mapstructure:"subject"`
	AttachInvoicePDF bool                `mapstructure:"attach_invoice_pdf"`
	AttachReceiptPDF bool                `mapstructure:"attach_receipt_pdf"`
	RecipientField   enum.RecipientField `mapstructure:"recipient_field" validate:"oneof=name email"`
}

type PDFConfig struct {
	Timeout      time.Duration `mapstructure:"timeout" validate:"gt=0"`
	RetryMax     int           `mapstructure:"retry_max" validate:"gte=0"`
	StrictStatus bool          `mapstructure:"strict_status"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type ServerConfig struct {
	Address string `mapstructure:"address" validate:"required"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

func ProvideApplicationConfig(path Path) (*Config, error) {

	// a missing .env is the normal case outside local development
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := bindLegacyEnv(v); err != nil {
		return nil, err
	}

	if path != "" {
		if _, err := os.Stat(string(path)); err == nil {
			v.SetConfigFile(string(path))
			v.SetConfigType("yaml")
			if err = v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("stripe.secret_key", "")
	v.SetDefault("stripe.webhook_secret", "")
	v.SetDefault("resend.api_key", "")
	v.SetDefault("resend.from", "")
	v.SetDefault("resend.reply_to", "")
	v.SetDefault("receipt.business_name", "")
	v.SetDefault("receipt.business_email", "")
	v.SetDefault("receipt.subject", "")
	v.SetDefault("receipt.attach_invoice_pdf", true)
	v.SetDefault("receipt.attach_receipt_pdf", true)
	v.SetDefault("receipt.recipient_field", string(enum.RecipientFieldName))
	v.SetDefault("pdf.timeout", 30*time.Second)
	v.SetDefault("pdf.retry_max", 0)
	v.SetDefault("pdf.strict_status", false)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("server.address", ServerStartPort)
	v.SetDefault("log.level", "info")
}

// bindLegacyEnv keeps the unprefixed variable names working next to the RECEIPT_ ones.
func bindLegacyEnv(v *viper.Viper) error {
	bindings := map[string][]string{
		"stripe.secret_key":     {"RECEIPT_STRIPE_SECRET_KEY", "STRIPE_KEY"},
		"stripe.webhook_secret": {"RECEIPT_STRIPE_WEBHOOK_SECRET", "STRIPE_WEBHOOK_SECRET"},
		"resend.api_key":        {"RECEIPT_RESEND_API_KEY", "RESEND_API_KEY"},
	}
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}
	return nil
}

func ProvideStripeClient(appConfig *Config) *client.API {
	return client.New(appConfig.Stripe.SecretKey, nil)
}

// ProvideRedis returns nil when no address is configured.
func ProvideRedis(appConfig *Config) *redis.Client {
	if appConfig.Redis.Addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     appConfig.Redis.Addr,
		Password: appConfig.Redis.Password,
		DB:       appConfig.Redis.DB,
	})
}

func NewLogger(appConfig *Config) (*zap.Logger, error) {

	level, err := zap.ParseAtomicLevel(appConfig.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = level
	return zapConfig.Build()
}
