package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"marketdeck/internal/logger"
	"marketdeck/internal/market"
	"marketdeck/internal/sentiment"
	"marketdeck/internal/snapshot"
	"marketdeck/internal/store"
	"marketdeck/internal/trace"
)

// initializeSystem initializes environment, logger, and tracer
func initializeSystem() error {
	// Load environment variables
	_ = godotenv.Load()

	// Initialize logger
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Initialize tracer
	if err := trace.Init(serviceName, Version); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}

	return nil
}

// initializeQuiet configures logging for one-shot commands that print JSON
// to stdout. Warnings still surface; info chatter is suppressed unless
// LOG_LEVEL asks for it explicitly. Tracing is skipped entirely.
func initializeQuiet() {
	_ = godotenv.Load()

	cfg := logger.LoadConfigFromEnv()
	if os.Getenv("LOG_LEVEL") == "" {
		cfg.Level = "WARN"
	}
	_ = logger.InitWithConfig(cfg)
}

// buildAssembler loads the configuration and wires the catalog, sentiment
// feed, and snapshot assembler.
func buildAssembler(ctx context.Context, configPath string) (*store.Config, *snapshot.Assembler, error) {
	cfg, err := store.LoadConfig(configPath)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load config", err)
		return nil, nil, err
	}

	catalog := market.NewCatalog(cfg)
	feed := sentiment.NewFeed(catalog.RefDate())
	logger.Generation(ctx, len(cfg.Universe), cfg.Generator.Days)

	return cfg, snapshot.New(cfg, catalog, feed), nil
}
