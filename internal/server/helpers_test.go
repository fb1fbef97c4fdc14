package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/testutil"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(app.New(db, app.WithLogger(logger)), Config{})
}

func do(t *testing.T, srv http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[map[string]string](t, rec)["error"]
}

type columnJSON struct {
	ID            int        `json:"id"`
	Title         string     `json:"title"`
	PositionIndex int        `json:"position_index"`
	Cards         []cardJSON `json:"cards"`
}

type cardJSON struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	ColumnID      int     `json:"column_id"`
	PositionIndex int     `json:"position_index"`
	LabelColor    *string `json:"label_color"`
}

func createColumn(t *testing.T, srv http.Handler, title string) columnJSON {
	t.Helper()
	rec := do(t, srv, http.MethodPost, "/api/columns", `{"title":"`+title+`"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[columnJSON](t, rec)
}

func createCard(t *testing.T, srv http.Handler, columnID int, title string) cardJSON {
	t.Helper()
	rec := do(t, srv, http.MethodPost, columnCardsPath(columnID), `{"title":"`+title+`"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[cardJSON](t, rec)
}

func listColumns(t *testing.T, srv http.Handler) []columnJSON {
	t.Helper()
	rec := do(t, srv, http.MethodGet, "/api/columns", "")
	require.Equal(t, http.StatusOK, rec.Code)
	return decode[[]columnJSON](t, rec)
}

func columnPath(id int) string      { return fmt.Sprintf("/api/columns/%d", id) }
func columnCardsPath(id int) string { return fmt.Sprintf("/api/columns/%d/cards", id) }
func cardPath(id int) string        { return fmt.Sprintf("/api/cards/%d", id) }
func cardMovePath(id int) string    { return fmt.Sprintf("/api/cards/%d/move", id) }
