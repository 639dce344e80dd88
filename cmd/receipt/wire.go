//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"goflare.io/receipt"
	"goflare.io/receipt/charge"
	"goflare.io/receipt/config"
	"goflare.io/receipt/customer"
	"goflare.io/receipt/email"
	"goflare.io/receipt/event"
	"goflare.io/receipt/handlers"
	"goflare.io/receipt/invoice"
	"goflare.io/receipt/payment_intent"
	"goflare.io/receipt/payment_method"
	"goflare.io/receipt/pdf"
	"goflare.io/receipt/render"
	"goflare.io/receipt/server"
	"goflare.io/receipt/view"
)

var senderSet = wire.NewSet(
	config.ProvideApplicationConfig,
	config.NewLogger,
	config.ProvideStripeClient,
	config.ProvideRedis,
	invoice.NewService,
	customer.NewService,
	charge.NewService,
	payment_intent.NewService,
	payment_method.NewService,
	event.NewService,
	view.ProvideBuilder,
	render.NewRenderer,
	pdf.NewFetcher,
	email.NewClient,
	receipt.NewReceiptSender,
)

func InitializeSender(path config.Path) (receipt.Sender, error) {

	wire.Build(senderSet)

	return nil, nil
}

func InitializeServer(path config.Path) (*server.Server, error) {

	wire.Build(
		senderSet,
		handlers.NewReceiptHandler,
		handlers.NewWebhookHandler,
		server.NewServer,
	)

	return &server.Server{}, nil
}
