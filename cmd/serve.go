package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/logging"
	"github.com/thenoetrevino/kanban/internal/server"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Run the board's JSON HTTP API until interrupted.

Examples:
  kanban serve
  kanban serve --addr=0.0.0.0:8080 --db=/var/lib/kanban/board.db
`,
		RunE: runServe,
	}

	cmd.Flags().String("addr", "", "Listen address (overrides config, default 127.0.0.1:5000)")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	// Set up signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancel()

	cfg, err := cli.LoadConfig(cmd)
	if err != nil {
		return err
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Server.Addr = addr
	}

	closeLog, err := logging.Init(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() {
		if err := closeLog(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "failed to close log file: %v\n", err)
		}
	}()

	application, err := app.Open(ctx, cfg.Database.Path, cfg.ShouldSeed(), app.WithLogger(logging.Logger))
	if err != nil {
		logging.Logger.Error("failed to open database", "path", cfg.Database.Path, "error", err)
		return err
	}
	defer func() {
		if err := application.Close(); err != nil {
			logging.Logger.Error("failed to close database", "error", err)
		}
	}()

	logging.Logger.Info("kanban server starting", "addr", cfg.Server.Addr, "db", cfg.Database.Path, "pid", os.Getpid())

	if err := server.New(application, server.Config{Addr: cfg.Server.Addr}).Run(ctx); err != nil {
		logging.Logger.Error("server error", "error", err)
		return err
	}

	logging.Logger.Info("kanban server shut down gracefully")
	return nil
}
