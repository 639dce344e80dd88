package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"goflare.io/receipt/config"
	"goflare.io/receipt/handlers"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	echo    *echo.Echo
	address string
	logger  *zap.Logger
	Receipt handlers.ReceiptHandler
	Webhook handlers.WebhookHandler
}

func NewServer(
	appConfig *config.Config,
	Receipt handlers.ReceiptHandler,
	Webhook handlers.WebhookHandler,
	logger *zap.Logger,
) *Server {
	e := echo.New()
	e.HideBanner = true

	s := &Server{
		echo:    e,
		address: appConfig.Server.Address,
		logger:  logger,
		Receipt: Receipt,
		Webhook: Webhook,
	}
	s.registerMiddlewares()
	s.registerRoutes()
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start listens on the configured address until the server is shut down.
func (s *Server) Start() error {
	s.logger.Info("Receipt server listening", zap.String("address", s.address))
	return s.echo.Start(s.address)
}

// Run starts the server in a goroutine and blocks until SIGINT or SIGTERM,
// then shuts down gracefully within shutdownTimeout.
func (s *Server) Run() error {

	errCh := make(chan error, 1)
	go func() {
		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return s.echo.Shutdown(ctx)
}

func (s *Server) registerMiddlewares() {
	s.echo.Use(middleware.Recover())
	s.echo.Use(middleware.RequestID())
}

func (s *Server) registerRoutes() {

	s.echo.GET("/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	s.echo.POST("/receipts/:invoice_id/send", s.Receipt.SendReceipt)
	s.echo.GET("/receipts/:invoice_id/preview", s.Receipt.PreviewReceipt)

	s.echo.POST("/webhook/stripe", s.Webhook.HandleStripeWebhook)
}
