package database_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/kanban/internal/database"
	"github.com/thenoetrevino/kanban/internal/testutil"
)

func TestOpenCreatesFileAndSchema(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "board.db")

	db, err := database.Open(ctx, path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	var mode string
	require.NoError(t, db.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)

	var fk int
	require.NoError(t, db.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&fk))
	assert.Equal(t, 1, fk)

	// Migrations are idempotent
	require.NoError(t, database.Migrate(ctx, db))
}

func TestSeedDefaultColumns(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)

	n, err := database.SeedDefaultColumns(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = database.SeedDefaultColumns(ctx, db)
	require.NoError(t, err)
	assert.Zero(t, n, "a non-empty board is never reseeded")

	store := database.NewStore(db)
	columns, err := store.Columns.List(ctx)
	require.NoError(t, err)
	require.Len(t, columns, 3)
	for i, col := range columns {
		assert.Equal(t, database.DefaultColumns[i], col.Title)
		assert.Equal(t, i, col.PositionIndex)
	}
}

func TestColumnRepo_AppendAndTimestamps(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	store := database.NewStore(testutil.SetupTestDB(t), database.WithClock(func() time.Time { return fixed }))

	first, err := store.Columns.Create(ctx, "First")
	require.NoError(t, err)
	second, err := store.Columns.Create(ctx, "Second")
	require.NoError(t, err)

	assert.Equal(t, 0, first.PositionIndex)
	assert.Equal(t, 1, second.PositionIndex)
	assert.True(t, fixed.Equal(first.CreatedAt))
	assert.True(t, fixed.Equal(first.UpdatedAt))

	require.NoError(t, store.Columns.UpdateTitle(ctx, first.ID, "Renamed"))
	got, err := store.Columns.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)

	ok, err := store.Columns.Exists(ctx, 999)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.ErrorIs(t, store.Columns.UpdateTitle(ctx, 999, "x"), sql.ErrNoRows)
	assert.ErrorIs(t, store.Columns.Delete(ctx, 999), sql.ErrNoRows)
	_, err = store.Columns.GetByID(ctx, 999)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestColumnRepo_DeleteRemovesCards(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	store := database.NewStore(db)

	col := testutil.CreateTestColumn(t, db, "Doomed")
	testutil.CreateTestCard(t, db, col, "A")
	testutil.CreateTestCard(t, db, col, "B")

	require.NoError(t, store.Columns.Delete(ctx, col))
	assert.Empty(t, testutil.CardOrder(t, db, col))
}

func TestCardRepo_CreateAppendsPerColumn(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	store := database.NewStore(db)

	todo := testutil.CreateTestColumn(t, db, "To Do")
	done := testutil.CreateTestColumn(t, db, "Done")

	color := "#abc"
	a, err := store.Cards.Create(ctx, database.CreateCardParams{ColumnID: todo, Title: "A", LabelColor: &color})
	require.NoError(t, err)
	b, err := store.Cards.Create(ctx, database.CreateCardParams{ColumnID: todo, Title: "B", Description: "notes"})
	require.NoError(t, err)
	x, err := store.Cards.Create(ctx, database.CreateCardParams{ColumnID: done, Title: "X"})
	require.NoError(t, err)

	assert.Equal(t, 0, a.PositionIndex)
	assert.Equal(t, 1, b.PositionIndex)
	assert.Equal(t, 0, x.PositionIndex)
	require.NotNil(t, a.LabelColor)
	assert.Equal(t, "#abc", *a.LabelColor)
	assert.Nil(t, b.LabelColor)
	assert.Equal(t, "notes", b.Description)

	all, err := store.Cards.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	some, err := store.Cards.ListByIDs(ctx, []int{x.ID, 999, a.ID})
	require.NoError(t, err)
	assert.Len(t, some, 2)

	none, err := store.Cards.ListByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCardRepo_UpdateContentAndDelete(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	store := database.NewStore(db)

	col := testutil.CreateTestColumn(t, db, "To Do")
	id := testutil.CreateTestCard(t, db, col, "Draft")

	card, err := store.Cards.GetByID(ctx, id)
	require.NoError(t, err)

	color := "#123456"
	card.Title = "Final"
	card.Description = "done"
	card.LabelColor = &color
	require.NoError(t, store.Cards.UpdateContent(ctx, card))

	got, err := store.Cards.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Final", got.Title)
	assert.Equal(t, "done", got.Description)
	require.NotNil(t, got.LabelColor)
	assert.Equal(t, color, *got.LabelColor)

	require.NoError(t, store.Cards.Delete(ctx, id))
	assert.ErrorIs(t, store.Cards.Delete(ctx, id), sql.ErrNoRows)
	card.ID = id
	assert.ErrorIs(t, store.Cards.UpdateContent(ctx, card), sql.ErrNoRows)
}

func TestTx_NormalizeCards(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	store := database.NewStore(db)

	col := testutil.CreateTestColumn(t, db, "To Do")
	a := testutil.CreateTestCard(t, db, col, "A")
	b := testutil.CreateTestCard(t, db, col, "B")
	c := testutil.CreateTestCard(t, db, col, "C")

	// Leave a gap and a duplicate
	_, err := db.ExecContext(ctx, "UPDATE cards SET position_index = 5 WHERE id = ?", a)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, "UPDATE cards SET position_index = 2 WHERE id IN (?, ?)", b, c)
	require.NoError(t, err)

	require.NoError(t, store.WithTx(ctx, func(tx *database.Tx) error {
		return tx.NormalizeCards(ctx, col)
	}))

	assert.Equal(t, []int{b, c, a}, testutil.CardOrder(t, db, col))
	assert.Equal(t, []int{0, 1, 2}, testutil.CardPositions(t, db, col))
}

func TestTx_ReorderAndNormalizeColumns(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	store := database.NewStore(db)

	a := testutil.CreateTestColumn(t, db, "A")
	b := testutil.CreateTestColumn(t, db, "B")
	c := testutil.CreateTestColumn(t, db, "C")

	var skipped []int
	require.NoError(t, store.WithTx(ctx, func(tx *database.Tx) error {
		var err error
		skipped, err = tx.ReorderColumns(ctx, []int{c, 42, a, b})
		return err
	}))
	assert.Equal(t, []int{42}, skipped)
	// c=0, a=2, b=3 before normalization; dense afterwards
	assert.Equal(t, []int{c, a, b}, testutil.ColumnOrder(t, db))
	assert.Equal(t, []int{0, 1, 2}, testutil.ColumnPositions(t, db))

	_, err := db.ExecContext(ctx, "DELETE FROM columns WHERE id = ?", a)
	require.NoError(t, err)
	require.NoError(t, store.WithTx(ctx, func(tx *database.Tx) error {
		return tx.NormalizeColumns(ctx)
	}))
	assert.Equal(t, []int{c, b}, testutil.ColumnOrder(t, db))
	assert.Equal(t, []int{0, 1}, testutil.ColumnPositions(t, db))
}
