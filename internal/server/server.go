// Package server exposes the board over HTTP/JSON.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/thenoetrevino/kanban/internal/app"
	"golang.org/x/sync/errgroup"
)

// DefaultAddr is the listen address used when none is configured
const DefaultAddr = "127.0.0.1:5000"

// shutdownTimeout bounds how long in-flight requests may take after shutdown starts
const shutdownTimeout = 10 * time.Second

// Server is the board HTTP server.
type Server struct {
	app     *app.App
	router  chi.Router
	addr    string
	logger  *slog.Logger
	metrics *Metrics
}

// Config holds the configuration for the server.
type Config struct {
	Addr string // listen address (default: "127.0.0.1:5000")
}

// New creates a new Server over the application services.
func New(a *app.App, cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}

	s := &Server{
		app:     a,
		addr:    cfg.Addr,
		logger:  a.Logger(),
		metrics: NewMetrics(),
	}
	s.router = s.buildRouter()
	return s
}

// ServeHTTP delegates to the chi router, satisfying http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Addr returns the configured listen address
func (s *Server) Addr() string {
	return s.addr
}

// Metrics returns the request counters reported by /health
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully.
// A listener failure also ends Serve and is returned.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("server listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		s.logger.Info("server shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// buildRouter constructs the chi router with all routes and middleware.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(s.recoverer)

	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Route("/columns", func(r chi.Router) {
			r.Get("/", s.handleColumnList)
			r.Post("/", s.handleColumnCreate)
			r.Post("/reorder", s.handleColumnReorder)

			r.Route("/{columnID:[0-9]+}", func(r chi.Router) {
				r.Patch("/", s.handleColumnUpdate)
				r.Delete("/", s.handleColumnDelete)
				r.Post("/cards", s.handleCardCreate)
			})
		})

		r.Route("/cards/{cardID:[0-9]+}", func(r chi.Router) {
			r.Patch("/", s.handleCardUpdate)
			r.Delete("/", s.handleCardDelete)
			r.Post("/move", s.handleCardMove)
		})
	})

	return r
}

// handleHealth reports liveness and request counters.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.metrics.GetSnapshot())
}
