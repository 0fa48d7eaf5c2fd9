// Package main is the entry point for the Shipping Console API.
// A single process serves shipment drafts, business units and customers
// over HTTP, backed by in-memory stores.
//
// 12-Factor App compilance:
//   - III. Config: Configuration via environment variables
//   - VII. Port Binding: Self-contained HTTP server
//   - IX. Disposability: Graceful shutdown
//   - XI. Logs: Structured logging to stdout
//
// Usage:
//
//	go run ./cmd/console-api
//
// Environment Variables:
//
//	SCS_ENVIRONMENT               - Deployment environment (development, staging, production)
//	SCS_SERVER_PORT               - HTTP server port (default: 8080)
//	SCS_AUTH_PASSWORD             - Operator password
//	SCS_SHIPMENT_DIMENSION_POLICY - retain or clear
//	SCS_SERVER_TRUSTED_PROXIES    - Comma-separated proxy addresses or CIDRs allowed to set X-Forwarded-For
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hapkiduki/shipping-console/internal/application/port"
	"github.com/hapkiduki/shipping-console/internal/application/service"
	"github.com/hapkiduki/shipping-console/internal/infrastructure/config"
	"github.com/hapkiduki/shipping-console/internal/infrastructure/logging"
	"github.com/hapkiduki/shipping-console/internal/infrastructure/metrics"
	"github.com/hapkiduki/shipping-console/internal/infrastructure/persistance/memory"
	"github.com/hapkiduki/shipping-console/internal/infrastructure/submitter"
	"github.com/hapkiduki/shipping-console/internal/interfaces/http/handler"
	"github.com/hapkiduki/shipping-console/internal/interfaces/http/middleware"
	"github.com/hapkiduki/shipping-console/internal/interfaces/http/router"
	"github.com/hapkiduki/shipping-console/pkg/logger"
	"github.com/hapkiduki/shipping-console/pkg/validation"
)

// version is set at build time via ldflags
var version = "dev"

func main() {
	cfg := config.MustLoad()

	log := logger.MustNew(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		Development: cfg.App.IsDevelopment(),
	})
	defer log.Sync()

	log.Info("Starting Shipping Console API",
		"version", version,
		"environment", cfg.App.Environment,
	)

	// Create context that listens for shutdown signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logAdapter := logging.NewAdapter(log)
	validator := validation.New()

	// ============================================================================
	// Stores
	// ============================================================================

	drafts := memory.NewDraftRepository()
	sessions := memory.NewSessionRepository()
	units := memory.NewBusinessUnitRepository(
		memory.SeedBusinessUnits(),
		memory.BusinessUnitTypes(),
		memory.BusinessUnitStatuses(),
	)
	customers := memory.NewCustomerRepository(memory.SeedCustomers(), memory.SeedCountries())

	// ============================================================================
	// Metrics
	// ============================================================================

	var (
		rec            port.Metrics = metrics.Nop{}
		metricsHandler http.Handler
	)
	if cfg.Metrics.Enabled {
		prom := metrics.NewPrometheus(cfg.Metrics.Namespace)
		rec = prom
		metricsHandler = prom.Handler()
	}

	// ============================================================================
	// Services
	// ============================================================================

	policy, err := cfg.Shipment.Policy()
	if err != nil {
		log.Fatal("Invalid shipment configuration", "error", err)
	}

	var backend port.ShipmentSubmitter = submitter.NewLogSubmitter(logAdapter.With("component", "submitter"))
	if cfg.Submitter.BreakerEnabled {
		breaker := submitter.DefaultBreakerConfig()
		breaker.FailureThreshold = cfg.Submitter.BreakerFailureThreshold
		breaker.OpenTimeout = cfg.Submitter.BreakerOpenTimeout
		backend = submitter.NewBreakerSubmitter("shipment-backend", backend, breaker, logAdapter.With("component", "submitter"))
	}

	draftService := service.NewDraftService(
		drafts,
		backend,
		validator,
		rec,
		logAdapter.With("component", "drafts"),
		service.WithDimensionPolicy(policy),
	)
	authService := service.NewAuthService(sessions, drafts, validator, logAdapter.With("component", "auth"), service.AuthConfig{
		Username:   cfg.Auth.Username,
		Password:   cfg.Auth.Password,
		SessionTTL: cfg.Auth.SessionTTL,
	})
	unitService := service.NewBusinessUnitService(units, logAdapter.With("component", "business_units"))
	customerService := service.NewCustomerService(customers, logAdapter.With("component", "customers"))

	if cfg.Auth.CleanupInterval > 0 {
		go authService.RunCleanup(ctx, cfg.Auth.CleanupInterval)
	}

	// ============================================================================
	// HTTP
	// ============================================================================

	trustedProxies, err := cfg.Server.TrustedProxyPrefixes()
	if err != nil {
		log.Fatal("Invalid server configuration", "error", err)
	}

	routes := router.Config{
		Version:        version,
		Logger:         logAdapter,
		Metrics:        rec,
		RequestTimeout: cfg.Server.RequestTimeout,
		AllowedOrigins: cfg.Server.CORSAllowedOrigins,
		TrustedProxies: trustedProxies,
		Sessions:       authService,
		Health: handler.NewHealthHandler(version, map[string]handler.Counter{
			"drafts":         drafts,
			"sessions":       sessions,
			"business_units": units,
			"customers":      customers,
		}),
		Auth:          handler.NewAuthHandler(authService, validator, logAdapter),
		Shipments:     handler.NewShipmentHandler(draftService, validator, logAdapter),
		BusinessUnits: handler.NewBusinessUnitHandler(unitService, validator, logAdapter),
		Customers:     handler.NewCustomerHandler(customerService, validator, logAdapter),
	}
	if cfg.RateLimit.Enabled {
		rl := middleware.DefaultRateLimiterConfig()
		rl.RequestsPerSecond = cfg.RateLimit.RequestsPerSecond
		rl.Burst = cfg.RateLimit.Burst
		routes.RateLimit = &rl
	}
	if metricsHandler != nil {
		routes.MetricsPath = cfg.Metrics.Path
		routes.MetricsHandler = metricsHandler
	}

	addr := cfg.Server.Address()
	server := &http.Server{
		Addr:         addr,
		Handler:      http.MaxBytesHandler(router.New(routes), cfg.Server.MaxRequestSize),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", "address", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", "error", err)
		}
	}()

	// Wait for interrupt signal
	<-ctx.Done()

	log.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}
	log.Info("Server shutdown complete")
}
