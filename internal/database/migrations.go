package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"
)

// DefaultColumns are seeded into an empty board
var DefaultColumns = []string{"To Do", "In Progress", "Done"}

// Migrate creates the database schema. It is safe to run on every startup.
func Migrate(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS columns (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			position_index INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL,
			deleted_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS cards (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			column_id INTEGER NOT NULL,
			position_index INTEGER NOT NULL DEFAULT 0,
			label_color TEXT,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL,
			deleted_at TEXT,
			FOREIGN KEY (column_id) REFERENCES columns(id) ON DELETE CASCADE
		)`,
		`CREATE INDEX IF NOT EXISTS idx_cards_column
		ON cards(column_id, position_index)`,
		`CREATE INDEX IF NOT EXISTS idx_columns_position
		ON columns(position_index)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// SeedDefaultColumns inserts DefaultColumns if the columns table is empty.
// It reports how many columns were created.
func SeedDefaultColumns(ctx context.Context, db *sql.DB) (int, error) {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM columns").Scan(&count); err != nil {
		return 0, err
	}

	// If columns exist, don't seed
	if count > 0 {
		return 0, nil
	}

	now := formatTime(time.Now())
	err := withTx(ctx, db, func(tx *sql.Tx) error {
		for idx, title := range DefaultColumns {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO columns (title, position_index, created_at, updated_at)
				 VALUES (?, ?, ?, ?)`,
				title, idx, now, now,
			); err != nil {
				return fmt.Errorf("failed to seed column %q: %w", title, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	slog.Info("seeded default columns", "count", len(DefaultColumns))
	return len(DefaultColumns), nil
}
