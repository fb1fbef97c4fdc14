package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/logging"
)

type contextKey string

const appKey contextKey = "kanban-app"

// WithApp returns a context carrying an already-open App. Commands executed
// with it reuse the App instead of opening the configured database.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services

	owned    bool
	closeLog func() error
}

// GetCLIFromContext returns the CLI for cmd. An App injected with WithApp is
// used as-is; otherwise the config is loaded (honoring the persistent
// --config and --db flags) and the database is opened.
func GetCLIFromContext(cmd *cobra.Command) (*CLI, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		return &CLI{App: a}, nil
	}

	cfg, err := LoadConfig(cmd)
	if err != nil {
		return nil, err
	}

	styles.Init(cfg.Colors)

	closeLog, err := logging.Init(cfg.Log, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	application, err := app.Open(ctx, cfg.Database.Path, cfg.ShouldSeed(), app.WithLogger(logging.Logger))
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &CLI{App: application, owned: true, closeLog: closeLog}, nil
}

// LoadConfig loads the configuration named by --config (or the default
// location) and applies the --db override.
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path := flagString(cmd, "config"); path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if db := flagString(cmd, "db"); db != "" {
		cfg.Database.Path = db
	}
	return cfg, nil
}

// Close releases the database when this CLI opened it
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	err := c.App.Close()
	if c.closeLog != nil {
		if logErr := c.closeLog(); logErr != nil {
			slog.Warn("failed to close log file", "error", logErr)
		}
	}
	return err
}

// CloseCLI closes c, logging any failure
func CloseCLI(c *CLI) {
	if err := c.Close(); err != nil {
		slog.Error("Error closing CLI", "error", err)
	}
}

// flagString reads a string flag from cmd or any of its parents, returning ""
// when the flag is not defined.
func flagString(cmd *cobra.Command, name string) string {
	f := cmd.Flags().Lookup(name)
	if f == nil {
		f = cmd.InheritedFlags().Lookup(name)
	}
	if f == nil {
		return ""
	}
	return f.Value.String()
}
