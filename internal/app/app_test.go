package app

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/kanban/internal/database"
	"github.com/thenoetrevino/kanban/internal/testutil"
)

func TestNew(t *testing.T) {
	db := testutil.SetupTestDB(t)

	app := New(db)
	require.NotNil(t, app)
	assert.NotNil(t, app.ColumnService)
	assert.NotNil(t, app.CardService)
	assert.Same(t, db, app.Store().DB())
}

func TestNew_WithOptions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	app := New(db, WithLogger(logger), WithClock(func() time.Time { return fixed }))
	assert.Same(t, logger, app.Logger())

	col, err := app.ColumnService.CreateColumn(context.Background(), "Backlog")
	require.NoError(t, err)
	assert.True(t, fixed.Equal(col.CreatedAt))
}

func TestOpen_SeedsDefaultColumnsOnce(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "kanban.db")

	app, err := Open(ctx, path, true)
	require.NoError(t, err)

	columns, err := app.ColumnService.ListColumns(ctx)
	require.NoError(t, err)
	require.Len(t, columns, len(database.DefaultColumns))
	for i, col := range columns {
		assert.Equal(t, database.DefaultColumns[i], col.Title)
		assert.Equal(t, i, col.PositionIndex)
	}
	require.NoError(t, app.Close())

	// Reopening does not seed again
	app, err = Open(ctx, path, true)
	require.NoError(t, err)
	defer func() { _ = app.Close() }()

	columns, err = app.ColumnService.ListColumns(ctx)
	require.NoError(t, err)
	assert.Len(t, columns, len(database.DefaultColumns))
}

func TestOpen_WithoutSeed(t *testing.T) {
	ctx := context.Background()

	app, err := Open(ctx, database.MemoryPath, false)
	require.NoError(t, err)
	defer func() { _ = app.Close() }()

	columns, err := app.ColumnService.ListColumns(ctx)
	require.NoError(t, err)
	assert.Empty(t, columns)
}
