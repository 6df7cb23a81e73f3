package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/boddenberg/donor-bfa-go/internal/config"
	"github.com/boddenberg/donor-bfa-go/internal/handler"
	"github.com/boddenberg/donor-bfa-go/internal/infra/cache"
	"github.com/boddenberg/donor-bfa-go/internal/infra/clock"
	"github.com/boddenberg/donor-bfa-go/internal/infra/gateway"
	"github.com/boddenberg/donor-bfa-go/internal/infra/memstore"
	"github.com/boddenberg/donor-bfa-go/internal/infra/observability"
	"github.com/boddenberg/donor-bfa-go/internal/infra/resilience"
	"github.com/boddenberg/donor-bfa-go/internal/service"

	"go.uber.org/zap"
)

const serviceName = "donor-bfa"

func main() {
	// --- Load .env file (for local development) ---
	_ = config.LoadDotEnv(".env")

	// --- Config ---
	cfg := config.Load()

	// --- Logger ---
	logger := observability.NewLogger(cfg.LogLevel, serviceName)
	defer logger.Sync()

	logger.Info("configuration loaded",
		zap.Int("port", cfg.Port),
		zap.String("log_level", cfg.LogLevel),
		zap.Duration("donation_delay", cfg.DonationDelay),
		zap.Duration("auth_delay", cfg.AuthDelay),
		zap.Duration("view_ttl", cfg.ViewTTL),
		zap.Duration("session_ttl", cfg.SessionTTL),
		zap.Int("ledger_capacity", cfg.LedgerCapacity),
		zap.Bool("tracing_enabled", cfg.TracingEnabled),
	)

	// --- Tracing ---
	shutdown, err := observability.InitTracer(cfg.TracerEndpoint(), serviceName)
	if err != nil {
		logger.Fatal("failed to init tracer", zap.Error(err))
	}
	defer shutdown(context.Background())

	// --- Metrics ---
	metrics := observability.NewMetrics()

	// --- Data ---
	store := memstore.New()
	clk := clock.System{}

	// --- Payment gateway ---
	resilienceCfg := resilience.Config{
		MaxRetries:     cfg.GatewayMaxRetries,
		InitialBackoff: cfg.GatewayInitialBackoff,
		Waiter:         clock.Sleep{},
	}
	cb := resilience.NewCircuitBreaker("payment-gateway", logger, metrics)
	payments := gateway.NewResilient(gateway.NewSimulated(clock.Sleep{}, cfg.DonationDelay), cb, resilienceCfg)

	// --- Lifetimes ---
	views := cache.New[*service.DetailView](cfg.ViewTTL)
	defer views.Close()
	sessions := cache.New[*service.Session](cfg.SessionTTL)
	defer sessions.Close()

	// --- Services ---
	svcs := handler.Services{
		Catalog: service.NewCatalogService(store, logger),
		Views: service.NewViewService(
			store,
			views,
			payments,
			clk,
			cfg.LedgerCapacity,
			metrics,
			logger,
		),
		Sessions: service.NewSessionService(
			sessions,
			store,
			clock.Sleep{},
			cfg.AuthDelay,
			clk,
			cfg.JWTSecret,
			cfg.SessionTTL,
			metrics,
			logger,
		),
		Bookmarks:  service.NewBookmarkService(store, logger),
		Grievances: service.NewGrievanceService(store, store, clk, logger),
	}

	// --- Router ---
	router := handler.NewRouter(svcs, cfg.CORSAllowedOrigins, metrics, logger)

	// --- Server ---
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// --- Graceful shutdown ---
	go func() {
		logger.Info("server starting", zap.Int("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
