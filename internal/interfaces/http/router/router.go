// Package router assembles the middleware stack and routes of the console API.
package router

import (
	"net/http"
	"net/netip"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/hapkiduki/shipping-console/internal/application/port"
	"github.com/hapkiduki/shipping-console/internal/interfaces/http/handler"
	"github.com/hapkiduki/shipping-console/internal/interfaces/http/middleware"
)

// Config carries everything the router needs.
type Config struct {
	Version        string
	Logger         port.Logger
	Metrics        port.Metrics
	RequestTimeout time.Duration
	AllowedOrigins []string

	// TrustedProxies are the peers whose forwarding headers are honoured.
	TrustedProxies []netip.Prefix

	// RateLimit is nil when rate limiting is disabled.
	RateLimit *middleware.RateLimiterConfig

	// MetricsPath and MetricsHandler are both set when /metrics is exposed.
	MetricsPath    string
	MetricsHandler http.Handler

	Sessions middleware.SessionValidator

	Health        *handler.HealthHandler
	Auth          *handler.AuthHandler
	Shipments     *handler.ShipmentHandler
	BusinessUnits *handler.BusinessUnitHandler
	Customers     *handler.CustomerHandler
}

// New returns the root handler.
func New(cfg Config) http.Handler {
	r := chi.NewRouter()

	// Order matters: middleware runs in the order added.
	r.Use(middleware.RealIP(cfg.TrustedProxies))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.Recoverer(cfg.Logger))
	if cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.RequestTimeout))
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader, "X-API-Version"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	if cfg.RateLimit != nil {
		r.Use(middleware.RateLimiter(*cfg.RateLimit))
	}
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.APIVersion(cfg.Version))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}
	r.Use(middleware.ContentTypeJSON)

	r.Get("/health", cfg.Health.Health)
	if cfg.MetricsPath != "" && cfg.MetricsHandler != nil {
		r.Method(http.MethodGet, cfg.MetricsPath, cfg.MetricsHandler)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			cfg.Auth.PublicRoutes(r)
			r.Group(func(r chi.Router) {
				r.Use(middleware.Authenticate(cfg.Sessions))
				cfg.Auth.ProtectedRoutes(r)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(cfg.Sessions))

			r.Route("/shipments", cfg.Shipments.Routes)
			r.Route("/business-units", cfg.BusinessUnits.Routes)
			r.Route("/customers", cfg.Customers.Routes)
			r.Get("/countries", cfg.Customers.Countries)
		})
	})

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	return r
}
