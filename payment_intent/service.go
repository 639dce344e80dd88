package payment_intent

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"go.uber.org/zap"
)

type Service interface {
	GetByID(ctx context.Context, id string) (*stripe.PaymentIntent, error)
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

// GetByID retrieves a payment intent from Stripe
func (s *service) GetByID(ctx context.Context, id string) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	stripePaymentIntent, err := s.client.PaymentIntents.Get(id, params)
	if err != nil {
		return nil, fmt.Errorf("failed to get Stripe payment intent: %w", err)
	}

	s.logger.Debug("Stripe payment intent retrieved", zap.String("payment_intent_id", id))
	return stripePaymentIntent, nil
}
