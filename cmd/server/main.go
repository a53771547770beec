package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/contactrelay/contactrelay/internal/config"
	"github.com/contactrelay/contactrelay/internal/database"
	"github.com/contactrelay/contactrelay/internal/email"
	"github.com/contactrelay/contactrelay/internal/handler"
	"github.com/contactrelay/contactrelay/internal/logger"
	"github.com/contactrelay/contactrelay/internal/middleware"
	"github.com/contactrelay/contactrelay/internal/router"
	"github.com/contactrelay/contactrelay/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	log.Info().
		Str("version", handler.Version).
		Str("environment", cfg.Environment).
		Msg("starting contact relay")

	// Email provider
	sender, err := email.NewSender(context.Background(), cfg.Email, log)
	if err != nil {
		log.Fatal().Err(err).Str("provider", cfg.Email.Provider).Msg("failed to initialize email provider")
	}
	log.Info().Str("provider", cfg.Email.Provider).Msg("email provider initialized")

	recipient := cfg.Email.RecipientOrPlaceholder()
	if recipient == config.PlaceholderRecipient {
		log.Warn().
			Str("recipient", recipient).
			Msg("no recipient configured, submissions go to the placeholder address")
	}

	// Redis is only needed for rate limiting. The interfaces stay nil
	// otherwise so the handler and middleware skip it.
	var (
		health  handler.HealthChecker
		counter middleware.Counter
	)
	if cfg.RateLimit.Enabled {
		rdb, err := database.NewRedis(cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to Redis")
		}
		defer rdb.Close()
		health, counter = rdb, rdb
		log.Info().
			Int("limit", cfg.RateLimit.Limit).
			Dur("window", cfg.RateLimit.Window).
			Msg("rate limiting enabled")
	}

	// Initialize services
	contactSvc := service.NewContactService(sender, service.ContactConfig{
		SenderName:    cfg.Email.SenderName,
		SenderAddress: cfg.Email.SenderAddress,
		Recipient:     recipient,
	}, log)

	h := handler.New(contactSvc, health, log, cfg)
	mw := middleware.New(counter, log, cfg)
	r := router.New(h, mw, cfg)

	// Create HTTP server
	addr := cfg.Server.Addr()
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Str("path", router.SendEmailPath).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		return
	}

	log.Info().Msg("server stopped")
}
