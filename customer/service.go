package customer

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"go.uber.org/zap"
)

type Service interface {
	GetByID(ctx context.Context, id string) (*stripe.Customer, error)
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

// GetByID retrieves a customer from Stripe
func (s *service) GetByID(ctx context.Context, id string) (*stripe.Customer, error) {
	params := &stripe.CustomerParams{}
	params.Context = ctx

	stripeCustomer, err := s.client.Customers.Get(id, params)
	if err != nil {
		return nil, fmt.Errorf("failed to get Stripe customer: %w", err)
	}

	s.logger.Debug("Stripe customer retrieved", zap.String("customer_id", id))
	return stripeCustomer, nil
}
