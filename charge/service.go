package charge

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"go.uber.org/zap"
)

type Service interface {
	GetByID(ctx context.Context, id string) (*stripe.Charge, error)
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

// GetByID retrieves a charge from Stripe
func (s *service) GetByID(ctx context.Context, id string) (*stripe.Charge, error) {
	params := &stripe.ChargeParams{}
	params.Context = ctx

	stripeCharge, err := s.client.Charges.Get(id, params)
	if err != nil {
		return nil, fmt.Errorf("failed to get Stripe charge: %w", err)
	}

	s.logger.Debug("Stripe charge retrieved",
		zap.String("charge_id", id),
		zap.Bool("has_receipt_number", stripeCharge.ReceiptNumber != ""))
	return stripeCharge, nil
}
