package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/thenoetrevino/kanban/internal/models"
)

// Error messages for failures that do not come from a service
const (
	msgNotFound         = "Resource not found."
	msgMethodNotAllowed = "Method not allowed."
	msgInternal         = "Internal server error."
)

// errorResponse is the body of every error response
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeServiceError maps a service error onto the HTTP error envelope.
// Anything that is not a domain error is logged and reported as a generic 500.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var domainErr *models.Error
	if errors.As(err, &domainErr) {
		switch {
		case errors.Is(domainErr, models.ErrNotFound):
			writeError(w, http.StatusNotFound, domainErr.Message)
			return
		case errors.Is(domainErr, models.ErrValidation):
			writeError(w, http.StatusBadRequest, domainErr.Message)
			return
		}
	}

	s.logger.Error("request failed",
		"request_id", RequestID(r.Context()),
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	writeError(w, http.StatusInternalServerError, msgInternal)
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, msgNotFound)
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
}

// recoverer turns a handler panic into the JSON 500 envelope
func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				// Let net/http abort the connection
				panic(rvr)
			}

			s.logger.Error("panic in handler",
				"request_id", RequestID(r.Context()),
				"panic", rvr,
				"stack", string(debug.Stack()),
			)
			if r.Header.Get("Connection") != "Upgrade" {
				writeError(w, http.StatusInternalServerError, msgInternal)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
