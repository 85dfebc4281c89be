package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/ibeloyar/cupcake/internal/config"
	"github.com/ibeloyar/cupcake/internal/repository/memory"
	"github.com/ibeloyar/cupcake/internal/service"
	"github.com/ibeloyar/cupcake/pgk/currency"
	"github.com/ibeloyar/cupcake/pgk/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	httpController "github.com/ibeloyar/cupcake/internal/controller/http"
)

// NewRouter builds the order and auth state and exposes them over HTTP.
func NewRouter(cfg config.Config, lg *zap.SugaredLogger) (*chi.Mux, error) {
	formatter, err := currency.New(cfg.CurrencySymbol, cfg.Locale)
	if err != nil {
		return nil, err
	}

	pricing := service.NewPricing(
		time.Now,
		decimal.NewFromFloat(cfg.UnitPrice),
		decimal.NewFromFloat(cfg.SameDaySurcharge),
		formatter,
	)

	order := service.NewOrder(pricing, lg)
	auth := service.NewAuth(memory.New(), lg)

	router := chi.NewRouter()

	router.Use(logger.LoggingMiddleware(lg))
	router.Use(middleware.Recoverer)

	handlers := httpController.New(order, auth, lg)

	return httpController.InitRoutes(router, handlers), nil
}

func Run(cfg config.Config, lg *zap.SugaredLogger) error {
	router, err := NewRouter(cfg, lg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: router,
	}

	signalCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	lg.Infof("starting server on %s", cfg.RunAddress)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatalf("server ListenAndServe error: %v", err)
		}
	}()

	<-signalCtx.Done()
	lg.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown (server) error: %v", err)
	}

	lg.Info("server shutdown success")
	return nil
}
