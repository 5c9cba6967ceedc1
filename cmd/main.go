package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bilgisen/factcheck/internal/api"
	"github.com/bilgisen/factcheck/internal/config"
	"github.com/bilgisen/factcheck/internal/logger"
	"github.com/bilgisen/factcheck/internal/metrics"
)

func main() {
	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	output := "stdout"
	if cfg.LogFile != "" {
		output = cfg.LogFile
	}
	if err := logger.Init(logger.Config{
		Level:  cfg.LogLevel,
		Output: output,
		Pretty: cfg.LogPretty,
	}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	logr := logger.Get()
	logr.Info().Str("env", cfg.Env).Msg("Starting fact-check service...")

	if cfg.FactCheckAPIKey == "" {
		logr.Warn().Msg("GOOGLE_FACT_CHECK_API_KEY is not set, upstream requests will be rejected")
	}

	app := api.NewApp(cfg, metrics.New())

	go func() {
		logr.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := app.Listen(":" + cfg.Port); err != nil {
			logr.Fatal().Err(err).Msg("Server error")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logr.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logr.Error().Err(err).Msg("Server forced to shutdown")
	}

	logr.Info().Msg("Server exited properly")
}
