// Console gateway — the data-access layer for the agent admin console.
//
// It serves the console's /api/v1 surface and routes every call to one of
// two interchangeable backends:
//   - the in-process simulated store (default; zero config, demo dataset)
//   - the real backend service behind the {code,message,data,timestamp}
//     envelope (CONSOLE_SIMULATE=false)
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/agentdeck/agentdeck/console-gateway/internal/config"
	"github.com/agentdeck/agentdeck/console-gateway/internal/gateway"
	"github.com/agentdeck/agentdeck/console-gateway/internal/httpapi"
	"github.com/agentdeck/agentdeck/console-gateway/internal/simstore"
	"github.com/agentdeck/agentdeck/console-gateway/internal/telemetry"
	"github.com/agentdeck/agentdeck/console-gateway/internal/transport"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg := config.Load()

	shutdownTelemetry, err := telemetry.Init(cfg.Telemetry)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize telemetry")
	}
	ctx := context.Background()
	defer shutdownTelemetry(ctx)

	// One store, one client; the facade picks at call time based on the
	// process-wide switch captured at construction.
	var store *simstore.Store
	var client *transport.Client
	if cfg.Backend.Simulate {
		store = simstore.New()
		log.Info().Msg("Running against the simulated backend")
	} else {
		client = transport.New(cfg.Backend.BaseURL, cfg.Backend.Timeout)
		log.Info().Str("backend", cfg.Backend.BaseURL).Msg("Running against the network backend")
	}
	gw := gateway.New(gateway.Config{Simulate: cfg.Backend.Simulate}, store, client)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      httpapi.NewRouter(cfg, gw),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info().Msg("Shutting down gracefully...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info().Int("port", cfg.Port).Msg("Console gateway listening")

	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
