package main

import (
	"context"
	"log/slog"

	"github.com/kopibot/kopi/src/app"
	"github.com/kopibot/kopi/src/config"
)

// buildApp loads configuration, applies CLI overrides, and wires the
// application.
func buildApp(ctx context.Context, cli *CLI, logger *slog.Logger) (*app.App, error) {
	cfg, err := config.NewLoader().Load(cli.Config)
	if err != nil {
		return nil, err
	}

	if cli.Database != "" {
		cfg.Storage.DatabasePath = cli.Database
	}
	if cli.InMemory {
		cfg.Storage.InMemory = true
	}
	if cli.LogLevel != "" {
		cfg.Logging.Level = cli.LogLevel
	}

	return app.New(ctx, cfg, logger)
}
