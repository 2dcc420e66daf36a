package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/kopibot/kopi/src/config"
	"github.com/kopibot/kopi/src/debate"
	"github.com/kopibot/kopi/src/storage"
)

// App wires configuration, the topic registry, conversation storage, and
// the debate engine into one runnable unit.
type App struct {
	Config   *config.Config
	Registry *debate.Registry
	Engine   *debate.Engine
	Store    debate.Store
	Logger   *slog.Logger

	db *storage.DB // nil when running in memory
}

// New builds an App from the given configuration. The topic catalog comes
// from cfg.TopicsFile when set, otherwise the built-in one is used.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	registry := debate.DefaultRegistry()
	if cfg.TopicsFile != "" {
		topics, err := config.LoadTopics(afero.NewOsFs(), cfg.TopicsFile)
		if err != nil {
			return nil, err
		}
		registry = debate.NewRegistry(topics)
		logger.Info("loaded topic catalog", "path", cfg.TopicsFile, "topics", registry.Len())
	}

	maxTurns := 2 * cfg.Engine.WindowSize

	var (
		store debate.Store
		db    *storage.DB
	)
	if cfg.Storage.InMemory {
		store = storage.NewMemStore()
	} else {
		opened, err := storage.Open(cfg.Storage.DatabasePath)
		if err != nil {
			return nil, fmt.Errorf("open conversation database: %w", err)
		}
		db = opened
		store = storage.NewStore(db, registry, maxTurns)
	}

	engine := debate.NewEngine(store, registry, debate.Options{
		WindowSize:       cfg.Engine.WindowSize,
		MaxMessageLength: cfg.Engine.MaxMessageLength,
		ResponseDeadline: cfg.Engine.ResponseDeadline(),
	}, logger)

	return &App{
		Config:   cfg,
		Registry: registry,
		Engine:   engine,
		Store:    store,
		Logger:   logger,
		db:       db,
	}, nil
}

// Close releases the database handle, if any.
func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}
