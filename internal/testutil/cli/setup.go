package cli

import (
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/logging"
	"github.com/thenoetrevino/kanban/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	application := app.New(db, app.WithLogger(logging.New(testWriter{t}, logging.ParseLevel("warn"))))
	return db, application
}

// Envelope is the JSON success/error wrapper written by --json commands
type Envelope[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ParseJSON decodes --json output into an Envelope
func ParseJSON[T any](t *testing.T, output string) Envelope[T] {
	t.Helper()

	var env Envelope[T]
	if err := json.Unmarshal([]byte(output), &env); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}
	return env
}

// testWriter routes log records to t.Log
type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}
