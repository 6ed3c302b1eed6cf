package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/piggytree/piggytree/internal/api/rest"
	"github.com/piggytree/piggytree/internal/config"
	"github.com/piggytree/piggytree/internal/espn"
	"github.com/piggytree/piggytree/internal/resolver"
	"github.com/piggytree/piggytree/internal/store"
)

const serviceName = "piggytree"

func main() {
	setupLogger()

	log.Info().Msgf("Starting %s - Prop Pick Tracker", serviceName)

	cfg := config.MustLoad()
	log.Info().
		Str("env", cfg.AppEnv).
		Str("log_level", cfg.LogLevel).
		Str("entries_file", cfg.EntriesFile()).
		Msg("Configuration loaded")

	entries := store.NewEntryStore(cfg.EntriesFile())

	espnClient := espn.NewClient(cfg.ESPNSiteAPIBase, cfg.ESPNCoreAPIBase, cfg.ESPNTimeout)
	playerResolver := resolver.New(espnClient)

	server := rest.NewServer(cfg.Port, entries, playerResolver, rest.Options{
		StaticDir:     cfg.StaticDir,
		EnableMetrics: cfg.EnableMetrics,
	})

	go func() {
		log.Info().Int("port", cfg.Port).Msg("HTTP server listening")
		if err := server.Start(); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info().Msg("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	}

	log.Info().Msgf("%s stopped", serviceName)
}

// setupLogger configures the zerolog logger
func setupLogger() {
	// Pretty console logging in development
	if os.Getenv("APP_ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	}

	level := zerolog.InfoLevel
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if parsed, err := zerolog.ParseLevel(lvl); err == nil {
			level = parsed
		}
	}
	zerolog.SetGlobalLevel(level)
}
