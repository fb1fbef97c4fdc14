package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/ordering"
)

// ColumnRepo handles pure data access for columns.
// No business logic, no validation - just database operations.
type ColumnRepo struct {
	db  DBTX
	now func() time.Time
}

const columnFields = `id, title, position_index, created_at, updated_at`

func scanColumn(row rowScanner) (*models.Column, error) {
	var (
		col                  models.Column
		createdAt, updatedAt string
	)
	if err := row.Scan(&col.ID, &col.Title, &col.PositionIndex, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if col.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if col.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &col, nil
}

// Create appends a new column after the current last one
func (r *ColumnRepo) Create(ctx context.Context, title string) (*models.Column, error) {
	now := formatTime(r.now())
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO columns (title, position_index, created_at, updated_at)
		 VALUES (?, (SELECT COALESCE(MAX(position_index), -1) + 1 FROM columns), ?, ?)`,
		title, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create column: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, int(id))
}

// GetByID retrieves a column by ID. A missing column yields sql.ErrNoRows.
func (r *ColumnRepo) GetByID(ctx context.Context, id int) (*models.Column, error) {
	col, err := scanColumn(r.db.QueryRowContext(ctx,
		`SELECT `+columnFields+` FROM columns WHERE id = ?`, id,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to get column %d: %w", id, err)
	}
	return col, nil
}

// Exists reports whether a column with the given ID exists
func (r *ColumnRepo) Exists(ctx context.Context, id int) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, "SELECT 1 FROM columns WHERE id = ?", id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check column %d: %w", id, err)
	}
	return true, nil
}

// List returns every column ordered by position
func (r *ColumnRepo) List(ctx context.Context) ([]*models.Column, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+columnFields+` FROM columns ORDER BY position_index, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list columns: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var columns []*models.Column
	for rows.Next() {
		col, err := scanColumn(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan column: %w", err)
		}
		columns = append(columns, col)
	}
	return columns, rows.Err()
}

// UpdateTitle updates a column's title. A missing column yields sql.ErrNoRows.
func (r *ColumnRepo) UpdateTitle(ctx context.Context, id int, title string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE columns SET title = ?, updated_at = ? WHERE id = ?`,
		title, formatTime(r.now()), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update column %d: %w", id, err)
	}
	if err := checkAffected(res); err != nil {
		return fmt.Errorf("failed to update column %d: %w", id, err)
	}
	return nil
}

// Delete removes a column together with its cards: children first, then the parent.
// A missing column yields sql.ErrNoRows.
func (r *ColumnRepo) Delete(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM cards WHERE column_id = ?", id); err != nil {
		return fmt.Errorf("failed to delete cards of column %d: %w", id, err)
	}

	res, err := r.db.ExecContext(ctx, "DELETE FROM columns WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete column %d: %w", id, err)
	}
	if err := checkAffected(res); err != nil {
		return fmt.Errorf("failed to delete column %d: %w", id, err)
	}
	return nil
}

// Entries returns the column scope as ordering entries
func (r *ColumnRepo) Entries(ctx context.Context) ([]ordering.Entry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, position_index FROM columns ORDER BY position_index, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load column positions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []ordering.Entry
	for rows.Next() {
		var e ordering.Entry
		if err := rows.Scan(&e.ID, &e.Position); err != nil {
			return nil, fmt.Errorf("failed to scan column position: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// SetPositions writes position_index for each column ID in positions
func (r *ColumnRepo) SetPositions(ctx context.Context, positions map[int]int) error {
	if len(positions) == 0 {
		return nil
	}

	now := formatTime(r.now())
	for id, pos := range positions {
		if _, err := r.db.ExecContext(ctx,
			`UPDATE columns SET position_index = ?, updated_at = ? WHERE id = ?`,
			pos, now, id,
		); err != nil {
			return fmt.Errorf("failed to set position of column %d: %w", id, err)
		}
	}
	return nil
}
