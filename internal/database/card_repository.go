package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/ordering"
)

// CardRepo handles pure data access for cards.
// No business logic, no validation - just database operations.
type CardRepo struct {
	db  DBTX
	now func() time.Time
}

const cardFields = `id, title, description, column_id, position_index, label_color, created_at, updated_at`

func scanCard(row rowScanner) (*models.Card, error) {
	var (
		card                 models.Card
		labelColor           sql.NullString
		createdAt, updatedAt string
	)
	if err := row.Scan(
		&card.ID, &card.Title, &card.Description,
		&card.ColumnID, &card.PositionIndex, &labelColor,
		&createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}
	card.LabelColor = nullStringToPtr(labelColor)

	var err error
	if card.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if card.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &card, nil
}

func collectCards(rows *sql.Rows) ([]*models.Card, error) {
	defer func() { _ = rows.Close() }()

	var cards []*models.Card
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		cards = append(cards, card)
	}
	return cards, rows.Err()
}

// CreateCardParams holds the content of a new card
type CreateCardParams struct {
	ColumnID    int
	Title       string
	Description string
	LabelColor  *string
}

// Create appends a new card at the bottom of its column
func (r *CardRepo) Create(ctx context.Context, p CreateCardParams) (*models.Card, error) {
	now := formatTime(r.now())
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO cards (title, description, column_id, position_index, label_color, created_at, updated_at)
		 VALUES (?, ?, ?,
		         (SELECT COALESCE(MAX(position_index), -1) + 1 FROM cards WHERE column_id = ?),
		         ?, ?, ?)`,
		p.Title, p.Description, p.ColumnID, p.ColumnID, ptrToNullString(p.LabelColor), now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, int(id))
}

// GetByID retrieves a card by ID. A missing card yields sql.ErrNoRows.
func (r *CardRepo) GetByID(ctx context.Context, id int) (*models.Card, error) {
	card, err := scanCard(r.db.QueryRowContext(ctx,
		`SELECT `+cardFields+` FROM cards WHERE id = ?`, id,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to get card %d: %w", id, err)
	}
	return card, nil
}

// ListByColumn retrieves all cards of a column, ordered by position
func (r *CardRepo) ListByColumn(ctx context.Context, columnID int) ([]*models.Card, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+cardFields+` FROM cards WHERE column_id = ? ORDER BY position_index, id`,
		columnID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards of column %d: %w", columnID, err)
	}
	return collectCards(rows)
}

// ListAll retrieves every card, grouped by column and ordered by position
func (r *CardRepo) ListAll(ctx context.Context) ([]*models.Card, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+cardFields+` FROM cards ORDER BY column_id, position_index, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	return collectCards(rows)
}

// ListByIDs retrieves the cards whose IDs are in ids. Unknown IDs are ignored.
func (r *CardRepo) ListByIDs(ctx context.Context, ids []int) ([]*models.Card, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+cardFields+` FROM cards WHERE id IN (`+placeholders(len(ids))+`)`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards by id: %w", err)
	}
	return collectCards(rows)
}

// UpdateContent writes the editable content fields of a card.
// A missing card yields sql.ErrNoRows.
func (r *CardRepo) UpdateContent(ctx context.Context, card *models.Card) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE cards
		 SET title = ?, description = ?, label_color = ?, updated_at = ?
		 WHERE id = ?`,
		card.Title, card.Description, ptrToNullString(card.LabelColor), formatTime(r.now()), card.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update card %d: %w", card.ID, err)
	}
	if err := checkAffected(res); err != nil {
		return fmt.Errorf("failed to update card %d: %w", card.ID, err)
	}
	return nil
}

// Delete removes a card. A missing card yields sql.ErrNoRows.
func (r *CardRepo) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM cards WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete card %d: %w", id, err)
	}
	if err := checkAffected(res); err != nil {
		return fmt.Errorf("failed to delete card %d: %w", id, err)
	}
	return nil
}

// Entries returns the card scope of one column as ordering entries
func (r *CardRepo) Entries(ctx context.Context, columnID int) ([]ordering.Entry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, position_index FROM cards WHERE column_id = ? ORDER BY position_index, id`,
		columnID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load card positions of column %d: %w", columnID, err)
	}
	defer func() { _ = rows.Close() }()

	var entries []ordering.Entry
	for rows.Next() {
		var e ordering.Entry
		if err := rows.Scan(&e.ID, &e.Position); err != nil {
			return nil, fmt.Errorf("failed to scan card position: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Place assigns a card to a column at a position
func (r *CardRepo) Place(ctx context.Context, id, columnID, position int) error {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE cards SET column_id = ?, position_index = ?, updated_at = ? WHERE id = ?`,
		columnID, position, formatTime(r.now()), id,
	); err != nil {
		return fmt.Errorf("failed to place card %d in column %d: %w", id, columnID, err)
	}
	return nil
}

// SetPositions writes position_index for each card ID in positions
func (r *CardRepo) SetPositions(ctx context.Context, positions map[int]int) error {
	if len(positions) == 0 {
		return nil
	}

	now := formatTime(r.now())
	for id, pos := range positions {
		if _, err := r.db.ExecContext(ctx,
			`UPDATE cards SET position_index = ?, updated_at = ? WHERE id = ?`,
			pos, now, id,
		); err != nil {
			return fmt.Errorf("failed to set position of card %d: %w", id, err)
		}
	}
	return nil
}
