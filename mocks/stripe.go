package mocks

import (
	"context"

	"github.com/stripe/stripe-go/v79"
)

// InvoiceService fakes invoice.Service.
type InvoiceService struct {
	GetByIDFunc func(ctx context.Context, id string) (*stripe.Invoice, error)
	Calls       []string
}

func (m *InvoiceService) GetByID(ctx context.Context, id string) (*stripe.Invoice, error) {
	m.Calls = append(m.Calls, id)
	return m.GetByIDFunc(ctx, id)
}

// CustomerService fakes customer.Service.
type CustomerService struct {
	GetByIDFunc func(ctx context.Context, id string) (*stripe.Customer, error)
	Calls       []string
}

func (m *CustomerService) GetByID(ctx context.Context, id string) (*stripe.Customer, error) {
	m.Calls = append(m.Calls, id)
	return m.GetByIDFunc(ctx, id)
}

// ChargeService fakes charge.Service.
type ChargeService struct {
	GetByIDFunc func(ctx context.Context, id string) (*stripe.Charge, error)
	Calls       []string
}

func (m *ChargeService) GetByID(ctx context.Context, id string) (*stripe.Charge, error) {
	m.Calls = append(m.Calls, id)
	return m.GetByIDFunc(ctx, id)
}

// PaymentIntentService fakes payment_intent.Service.
type PaymentIntentService struct {
	GetByIDFunc func(ctx context.Context, id string) (*stripe.PaymentIntent, error)
	Calls       []string
}

func (m *PaymentIntentService) GetByID(ctx context.Context, id string) (*stripe.PaymentIntent, error) {
	m.Calls = append(m.Calls, id)
	return m.GetByIDFunc(ctx, id)
}

// PaymentMethodService fakes payment_method.Service.
type PaymentMethodService struct {
	GetByIDFunc func(ctx context.Context, id string) (*stripe.PaymentMethod, error)
	Calls       []string
}

func (m *PaymentMethodService) GetByID(ctx context.Context, id string) (*stripe.PaymentMethod, error) {
	m.Calls = append(m.Calls, id)
	return m.GetByIDFunc(ctx, id)
}
