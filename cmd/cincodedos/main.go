// Package main is the entry point for As Crônicas dos Cinco Dedos.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/cincodedos/internal/config"
	"github.com/samdwyer/cincodedos/internal/entity"
	"github.com/samdwyer/cincodedos/internal/game"
	"github.com/samdwyer/cincodedos/internal/logger"
	"github.com/samdwyer/cincodedos/internal/telemetry"
	"github.com/samdwyer/cincodedos/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "cincodedos: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		logger.Log.Debugf(".env file not loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flag.StringVar(&cfg.PlayerName, "name", cfg.PlayerName, "hero name")
	flag.StringVar(&cfg.Class, "class", cfg.Class, "hero class: knight, mage, archer, berserker, viking, elf")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "dice seed, 0 for random")
	flag.Parse()

	class, err := cfg.PlayerClass()
	if err != nil {
		return err
	}

	closer, err := logger.Init(cfg.LoggerOptions())
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx := context.Background()

	// The engine's tracer comes from the global provider, so spans start
	// flowing once Setup installs the exporter. The seed is known only after
	// the engine has drawn it.
	engine, err := game.New(game.Config{Seed: cfg.Seed}, game.WithTracer(telemetry.Tracer("game")))
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}

	if cfg.Telemetry {
		setupOTelEnv(cfg)
		shutdown, err := telemetry.Setup(ctx, runAttributes(engine, class)...)
		if err != nil {
			logger.Log.WithError(err).Warn("Telemetry setup failed, running without traces.")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Log.WithError(err).Error("Error shutting down telemetry.")
				}
			}()
		}
	}

	state, err := game.NewGame(ctx, cfg.PlayerName, class)
	if err != nil {
		return fmt.Errorf("new game: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"session": state.SessionID,
		"name":    state.Player.Name,
		"class":   class.ID(),
		"seed":    engine.Seed(),
	}).Info("Session started.")

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer screen.Close()

	return ui.NewConsole(screen, game.NewSession(engine, state)).Run(ctx)
}

// runAttributes identifies the run in traces: the seed the engine rolls
// with, so a traced session can be replayed.
func runAttributes(engine *game.Engine, class entity.Class) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int64("game.seed", engine.Seed()),
		attribute.String("game.class", class.ID()),
	}
}

// setupOTelEnv points the OTLP exporter at Honeycomb when a key is configured.
func setupOTelEnv(cfg config.Config) {
	headers := cfg.HoneycombHeaders()
	if headers == "" {
		return
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS", headers)
}
