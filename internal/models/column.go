package models

import "time"

// Column represents a kanban board column (e.g., "To Do", "In Progress", "Done").
// Columns are ordered by PositionIndex, which is dense and zero-based across the board.
type Column struct {
	ID            int       `json:"id"`
	Title         string    `json:"title"`
	PositionIndex int       `json:"position_index"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Cards is only populated when the column is loaded together with its cards.
	Cards []*Card `json:"cards,omitempty"`
}

// ColumnWithCards is the serialized form used by board listings, where an empty
// column must still render "cards": [].
type ColumnWithCards struct {
	ID            int       `json:"id"`
	Title         string    `json:"title"`
	PositionIndex int       `json:"position_index"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Cards         []*Card   `json:"cards"`
}

// WithCards converts the column into its board representation.
func (c *Column) WithCards() ColumnWithCards {
	cards := c.Cards
	if cards == nil {
		cards = []*Card{}
	}
	return ColumnWithCards{
		ID:            c.ID,
		Title:         c.Title,
		PositionIndex: c.PositionIndex,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
		Cards:         cards,
	}
}

// GetID returns the column ID (used by the CLI quiet output mode)
func (c *Column) GetID() int { return c.ID }
