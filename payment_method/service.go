package payment_method

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"go.uber.org/zap"
)

type Service interface {
	GetByID(ctx context.Context, id string) (*stripe.PaymentMethod, error)
}

type service struct {
	client *client.API
	logger *zap.Logger
}

func NewService(client *client.API, logger *zap.Logger) Service {
	return &service{
		client: client,
		logger: logger,
	}
}

// GetByID retrieves a payment method from Stripe
func (s *service) GetByID(ctx context.Context, id string) (*stripe.PaymentMethod, error) {
	params := &stripe.PaymentMethodParams{}
	params.Context = ctx

	stripePaymentMethod, err := s.client.PaymentMethods.Get(id, params)
	if err != nil {
		return nil, fmt.Errorf("failed to get Stripe payment method: %w", err)
	}

	s.logger.Debug("Stripe payment method retrieved",
		zap.String("payment_method_id", id),
		zap.String("type", string(stripePaymentMethod.Type)))
	return stripePaymentMethod, nil
}
