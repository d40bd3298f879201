package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/buburuebi/healthcare-booking/cmd/mainconfig"
	"github.com/buburuebi/healthcare-booking/internal/api/router"
	"github.com/buburuebi/healthcare-booking/internal/booking"
	"github.com/buburuebi/healthcare-booking/internal/bookings"
	"github.com/buburuebi/healthcare-booking/internal/catalog"
	appconfig "github.com/buburuebi/healthcare-booking/internal/config"
	"github.com/buburuebi/healthcare-booking/internal/http/handlers"
	"github.com/buburuebi/healthcare-booking/internal/notify"
	"github.com/buburuebi/healthcare-booking/internal/observability/metrics"
	"github.com/buburuebi/healthcare-booking/internal/payments"
	"github.com/buburuebi/healthcare-booking/pkg/logging"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	var logger *logging.Logger
	if cfg.Env == "development" {
		logger = logging.NewText(cfg.LogLevel)
	} else {
		logger = logging.New(cfg.LogLevel)
	}
	logger.Info("starting healthcare-booking API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	cat := loadCatalog(cfg, logger)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	m := metrics.NewBookingMetrics(reg)

	emailSender := buildEmailSender(cfg, logger)
	messenger := buildMessenger(cfg, logger)

	repo := bookings.NewInMemoryRepository()
	bookingService := bookings.NewService(repo, cat, emailSender, messenger, m, logger)

	sessions := booking.NewSessionStore(cfg.SessionTTL)
	sessions.StartSweeper(cfg.SessionSweepInterval)
	defer sessions.Close()

	processor := payments.NewSimulatedProcessor(cfg.PaymentDelay, logger)

	sessionsHandler := handlers.NewBookingSessions(
		sessions, cat, processor, bookingService, m, logger,
	)

	r := router.New(&router.Config{
		Logger:             logger,
		CatalogHandler:     catalog.NewHandler(cat, logger),
		BookingsHandler:    bookings.NewHandler(bookingService, logger),
		SessionsHandler:    sessionsHandler,
		MetricsHandler:     promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		SubmitRatePerSec:   2,
		SubmitBurst:        5,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// loadCatalog prefers the configured JSON file and falls back to the built-in
// catalog.
func loadCatalog(cfg *appconfig.Config, logger *logging.Logger) *catalog.Catalog {
	if cfg.CatalogPath == "" {
		return catalog.Default()
	}
	cat, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		logger.Error("failed to load service catalog, using built-in", "path", cfg.CatalogPath, "error", err)
		return catalog.Default()
	}
	logger.Info("service catalog loaded", "path", cfg.CatalogPath, "services", len(cat.List()))
	return cat
}

func buildEmailSender(cfg *appconfig.Config, logger *logging.Logger) notify.EmailSender {
	switch cfg.EmailProvider {
	case "sendgrid":
		sender := notify.NewSendGridSender(notify.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.SendGridFromEmail,
			FromName:  cfg.SendGridFromName,
		}, logger)
		if sender != nil {
			logger.Info("email provider configured", "provider", "sendgrid")
			return sender
		}
		logger.Warn("sendgrid selected but not configured, falling back to log sender")
	case "ses":
		awsCfg, err := mainconfig.LoadAWSConfig(context.Background(), cfg)
		if err != nil {
			logger.Error("failed to load AWS config, falling back to log sender", "error", err)
			break
		}
		sender := notify.NewSESSender(sesv2.NewFromConfig(awsCfg), notify.SESConfig{
			FromEmail: cfg.SESFromEmail,
			FromName:  cfg.SESFromName,
		}, logger)
		if sender != nil {
			logger.Info("email provider configured", "provider", "ses", "region", cfg.AWSRegion)
			return sender
		}
	}
	return notify.NewLogSender(logger)
}

func buildMessenger(cfg *appconfig.Config, logger *logging.Logger) notify.MessageSender {
	if cfg.MessagingProvider == "twilio" &&
		cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" {
		logger.Info("messaging provider configured", "provider", "twilio")
		return notify.NewTwilioWhatsAppSender(
			cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber, logger,
		)
	}
	return notify.NewLogMessenger(logger)
}
