package app

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/thenoetrevino/kanban/internal/database"
	cardservice "github.com/thenoetrevino/kanban/internal/services/card"
	columnservice "github.com/thenoetrevino/kanban/internal/services/column"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (direct database access)
	store *database.Store

	logger *slog.Logger

	// Service layer (business logic)
	ColumnService columnservice.Service
	CardService   cardservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(db *sql.DB, opts ...Option) *App {
	cfg := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	store := database.NewStore(db, cfg.storeOptions...)
	return &App{
		store:         store,
		logger:        cfg.logger,
		ColumnService: columnservice.NewService(store, cfg.logger),
		CardService:   cardservice.NewService(store, cfg.logger),
	}
}

// Open opens the database at path, seeds the default columns when asked and
// returns the initialized App.
func Open(ctx context.Context, path string, seed bool, opts ...Option) (*App, error) {
	db, err := database.Open(ctx, path)
	if err != nil {
		return nil, err
	}

	a := New(db, opts...)
	if seed {
		if _, err := database.SeedDefaultColumns(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	return a, nil
}

// Store returns the underlying store for direct database access.
func (a *App) Store() *database.Store {
	return a.store
}

// Logger returns the application logger
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close releases the database handle.
func (a *App) Close() error {
	return a.store.DB().Close()
}
