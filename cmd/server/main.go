// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/leadbridge/whatsapp-leads-api/internal/config"
	"github.com/leadbridge/whatsapp-leads-api/internal/controller"
	"github.com/leadbridge/whatsapp-leads-api/internal/db"
	"github.com/leadbridge/whatsapp-leads-api/internal/middleware"
	"github.com/leadbridge/whatsapp-leads-api/internal/queue"
	"github.com/leadbridge/whatsapp-leads-api/internal/repository"
	"github.com/leadbridge/whatsapp-leads-api/internal/service"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Str("service", config.ServiceName).Logger()

	// Load .env
	if err := godotenv.Load(); err != nil {
		logger.Warn().Msg("⚠️ no .env file found, relying on OS environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Warn().Err(err).Msg("⚠️ some environment variables could not be decoded")
	}
	// Missing settings are not fatal: the process serves diagnostics either
	// way and database calls surface the problem when they happen.
	for _, key := range cfg.Missing() {
		logger.Warn().Str("key", key).Msg("⚠️ required setting is not set")
	}

	manager := db.NewManager(cfg, logger)
	publisher := queue.NewPublisher(cfg.AMQPURL, logger)

	leadRepo := &repository.LeadRepository{Manager: manager}

	leadService := &service.LeadService{
		LeadRepo:  leadRepo,
		Publisher: publisher,
		Logger:    logger,
	}

	leadController := &controller.LeadController{
		LeadService: leadService,
		DB:          manager,
		Logger:      logger,
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimiddleware.Recoverer)

	// Lead routes
	r.With(middleware.RequireAPIKey(cfg.APISecretKey)).
		Post("/whatsapp/leads/insert", leadController.Insert)

	// Diagnostics
	r.Get("/", leadController.Root)
	r.Get("/health", leadController.Health)
	r.Get("/db-health", leadController.DBHealth)
	r.Get("/env-check", leadController.EnvCheck)
	r.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info().Str("addr", cfg.Addr()).Msg("🚀 server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("forced shutdown")
	}

	manager.Close()
	if p, ok := publisher.(*queue.AMQPPublisher); ok {
		p.Close()
	}
}
