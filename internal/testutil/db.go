package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/kanban/internal/database"
)

// SetupTestDB creates an in-memory database with the full schema.
// The database is closed when the test finishes.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(context.Background(), database.MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// SetupTestStore creates a store over a fresh in-memory database
func SetupTestStore(t *testing.T) *database.Store {
	t.Helper()
	return database.NewStore(SetupTestDB(t))
}

// CreateTestColumn appends a column and returns its ID
func CreateTestColumn(t *testing.T, db *sql.DB, title string) int {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		`INSERT INTO columns (title, position_index, created_at, updated_at)
		 VALUES (?, (SELECT COALESCE(MAX(position_index), -1) + 1 FROM columns),
		         strftime('%Y-%m-%dT%H:%M:%fZ', 'now'), strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))`,
		title)
	if err != nil {
		t.Fatalf("Failed to create test column: %v", err)
	}
	id, _ := result.LastInsertId()
	return int(id)
}

// CreateTestCard appends a card to a column and returns its ID
func CreateTestCard(t *testing.T, db *sql.DB, columnID int, title string) int {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		`INSERT INTO cards (title, description, column_id, position_index, created_at, updated_at)
		 VALUES (?, '', ?, (SELECT COALESCE(MAX(position_index), -1) + 1 FROM cards WHERE column_id = ?),
		         strftime('%Y-%m-%dT%H:%M:%fZ', 'now'), strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))`,
		title, columnID, columnID)
	if err != nil {
		t.Fatalf("Failed to create test card: %v", err)
	}
	id, _ := result.LastInsertId()
	return int(id)
}

// ColumnOrder returns the column IDs in board order
func ColumnOrder(t *testing.T, db *sql.DB) []int {
	t.Helper()
	return queryIDs(t, db, "SELECT id FROM columns ORDER BY position_index, id")
}

// CardOrder returns the card IDs of a column in position order
func CardOrder(t *testing.T, db *sql.DB, columnID int) []int {
	t.Helper()
	return queryIDs(t, db, "SELECT id FROM cards WHERE column_id = ? ORDER BY position_index, id", columnID)
}

// ColumnPositions returns every column's position_index in board order
func ColumnPositions(t *testing.T, db *sql.DB) []int {
	t.Helper()
	return queryIDs(t, db, "SELECT position_index FROM columns ORDER BY position_index, id")
}

// CardPositions returns the position_index values of a column's cards in order
func CardPositions(t *testing.T, db *sql.DB, columnID int) []int {
	t.Helper()
	return queryIDs(t, db, "SELECT position_index FROM cards WHERE column_id = ? ORDER BY position_index, id", columnID)
}

func queryIDs(t *testing.T, db *sql.DB, query string, args ...any) []int {
	t.Helper()
	rows, err := db.QueryContext(context.Background(), query, args...)
	if err != nil {
		t.Fatalf("Failed to query: %v", err)
	}
	defer func() { _ = rows.Close() }()

	ids := []int{}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			t.Fatalf("Failed to scan: %v", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("Failed to iterate rows: %v", err)
	}
	return ids
}
