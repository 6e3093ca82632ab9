package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ndewijer/datetime-formatter/internal/api/handlers"
	custommiddleware "github.com/ndewijer/datetime-formatter/internal/api/middleware"
	"github.com/ndewijer/datetime-formatter/internal/config"
	"github.com/ndewijer/datetime-formatter/internal/metrics"
	"github.com/ndewijer/datetime-formatter/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(dateTimeService *service.DateTimeService, systemService *service.SystemService, m *metrics.Metrics, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(custommiddleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(custommiddleware.Metrics(m))

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	r.Method(http.MethodGet, "/metrics", m.Handler())

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/datetime", func(r chi.Router) {
			dateTimeHandler := handlers.NewDateTimeHandler(dateTimeService)
			r.Get("/now", dateTimeHandler.Now)
			r.Get("/now/iso", dateTimeHandler.NowISO)
			r.Get("/timestamp", dateTimeHandler.Timestamp)
			r.Get("/utc", dateTimeHandler.UTC)
			r.Get("/iso", dateTimeHandler.ISO)
			r.Get("/local", dateTimeHandler.Local)
			r.Get("/zone", dateTimeHandler.Zone)
			r.Get("/filter", dateTimeHandler.Filter)
		})
	})

	return r
}
