package server

import (
	"net/http"

	"github.com/thenoetrevino/kanban/internal/models"
	columnservice "github.com/thenoetrevino/kanban/internal/services/column"
)

// handleColumnList returns every column in board order with its cards.
func (s *Server) handleColumnList(w http.ResponseWriter, r *http.Request) {
	columns, err := s.app.ColumnService.ListColumns(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	out := make([]models.ColumnWithCards, 0, len(columns))
	for _, col := range columns {
		out = append(out, col.WithCards())
	}
	writeJSON(w, http.StatusOK, out)
}

// handleColumnCreate appends a new column.
func (s *Server) handleColumnCreate(w http.ResponseWriter, r *http.Request) {
	body := decodeBody(r)

	col, err := s.app.ColumnService.CreateColumn(r.Context(), body.text("title"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, col.WithCards())
}

// handleColumnUpdate renames a column.
func (s *Server) handleColumnUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "columnID")
	if !ok {
		s.writeServiceError(w, r, columnservice.ErrColumnNotFound)
		return
	}
	body := decodeBody(r)

	col, err := s.app.ColumnService.UpdateColumn(r.Context(), id, body.text("title"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, col)
}

// handleColumnDelete removes a column and its cards.
func (s *Server) handleColumnDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "columnID")
	if !ok {
		s.writeServiceError(w, r, columnservice.ErrColumnNotFound)
		return
	}

	if err := s.app.ColumnService.DeleteColumn(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleColumnReorder writes the full column order sent by the board.
func (s *Server) handleColumnReorder(w http.ResponseWriter, r *http.Request) {
	body := decodeBody(r)

	ids, err := body.intList("ordered_ids")
	if err != nil {
		s.writeServiceError(w, r, columnservice.ErrEmptyOrder)
		return
	}

	if err := s.app.ColumnService.ReorderColumns(r.Context(), ids); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
