package app

import (
	"log/slog"
	"time"

	"github.com/thenoetrevino/kanban/internal/database"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger       *slog.Logger
	storeOptions []database.Option
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithClock sets the time source for created_at/updated_at
func WithClock(now func() time.Time) Option {
	return func(cfg *appConfig) {
		cfg.storeOptions = append(cfg.storeOptions, database.WithClock(now))
	}
}
