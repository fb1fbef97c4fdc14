package models

import "time"

// Card represents a single card on the kanban board.
// Cards are ordered within their column by PositionIndex.
type Card struct {
	ID            int       `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	ColumnID      int       `json:"column_id"`
	PositionIndex int       `json:"position_index"`
	LabelColor    *string   `json:"label_color"` // nil when the card has no label
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// GetID returns the card ID (used by the CLI quiet output mode)
func (c *Card) GetID() int { return c.ID }
