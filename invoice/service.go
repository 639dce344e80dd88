package invoice

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"go.uber.org/zap"
)

// Expansions requested with every invoice so the discount and its promotion code arrive inline.
var Expansions = []string{"discounts", "discount.promotion_code"}

type Service interface {
	GetByID(ctx context.Context, id string) (*stripe.Invoice, error)
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

// GetByID retrieves an invoice from Stripe with its discounts expanded
func (s *service) GetByID(ctx context.Context, id string) (*stripe.Invoice, error) {
	params := &stripe.InvoiceParams{}
	params.Context = ctx
	for _, expansion := range Expansions {
		params.AddExpand(expansion)
	}

	stripeInvoice, err := s.client.Invoices.Get(id, params)
	if err != nil {
		return nil, fmt.Errorf("failed to get Stripe invoice: %w", err)
	}

	s.logger.Debug("Stripe invoice retrieved", zap.String("invoice_id", id))
	return stripeInvoice, nil
}
