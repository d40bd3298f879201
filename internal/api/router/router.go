// Package router wires the HTTP surface: catalog, wizard sessions and the
// bookings API.
package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/buburuebi/healthcare-booking/internal/bookings"
	"github.com/buburuebi/healthcare-booking/internal/catalog"
	"github.com/buburuebi/healthcare-booking/internal/http/handlers"
	httpmiddleware "github.com/buburuebi/healthcare-booking/internal/http/middleware"
	"github.com/buburuebi/healthcare-booking/pkg/logging"
)

// Config holds router configuration.
type Config struct {
	Logger             *logging.Logger
	CatalogHandler     *catalog.Handler
	BookingsHandler    *bookings.Handler
	SessionsHandler    *handlers.BookingSessions
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string

	// SubmitRatePerSec rate-limits booking writes per client IP. Zero
	// disables the limiter.
	SubmitRatePerSec float64
	SubmitBurst      int
}

// New creates a Chi router with all routes configured.
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", healthCheck)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api", func(api chi.Router) {
		if cfg.CatalogHandler != nil {
			api.Get("/services", cfg.CatalogHandler.ListServices)
			api.Get("/services/{serviceID}", cfg.CatalogHandler.GetService)
		}

		if cfg.SessionsHandler != nil {
			api.Route("/booking/sessions", cfg.SessionsHandler.Routes)
		}

		if cfg.BookingsHandler != nil {
			api.Group(func(writes chi.Router) {
				if cfg.SubmitRatePerSec > 0 {
					writes.Use(httpmiddleware.RateLimit(cfg.SubmitRatePerSec, cfg.SubmitBurst))
				}
				writes.Post("/bookings", cfg.BookingsHandler.CreateBooking)
			})
			api.Get("/bookings/{bookingID}", cfg.BookingsHandler.GetBooking)
		}
	})

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
