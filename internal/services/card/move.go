package card

import (
	"context"
	"database/sql"
	"errors"
	"sort"

	"github.com/thenoetrevino/kanban/internal/database"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/ordering"
)

// MoveCard places a card in the target column and applies the full desired order
// of that column in a single transaction.
//
// Every card named in OrderedCardIDs is re-parented to the target column at its
// index in the list. The moved card itself is appended at the end when the list
// does not name it. IDs that are not cards are skipped. Afterwards the target
// column and every column that lost a card have dense positions again.
func (s *service) MoveCard(ctx context.Context, req MoveCardRequest) (*models.Card, error) {
	var (
		moved   *models.Card
		skipped []int
	)
	err := s.store.WithTx(ctx, func(tx *database.Tx) error {
		card, err := tx.Cards.GetByID(ctx, req.CardID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrCardNotFound
			}
			return err
		}

		ok, err := tx.Columns.Exists(ctx, req.TargetColumnID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrTargetColumnNotFound
		}

		entries, err := tx.Cards.Entries(ctx, req.TargetColumnID)
		if err != nil {
			return err
		}

		named, err := tx.Cards.ListByIDs(ctx, req.OrderedCardIDs)
		if err != nil {
			return err
		}

		// origin tracks the column of every card joining the target scope
		origin := make(map[int]int)
		join := func(c *models.Card) {
			if c.ColumnID == req.TargetColumnID {
				return
			}
			if _, seen := origin[c.ID]; seen {
				return
			}
			origin[c.ID] = c.ColumnID
			entries = append(entries, ordering.Entry{ID: c.ID, Position: ordering.Append(entries)})
		}

		for _, c := range named {
			join(c)
		}
		join(card)

		before := entries
		var result []ordering.Entry
		result, skipped = ordering.Apply(entries, req.OrderedCardIDs)

		changed := ordering.Changed(before, result)
		for _, e := range result {
			_, joined := origin[e.ID]
			if _, repositioned := changed[e.ID]; !repositioned && !joined {
				continue
			}
			if err := tx.Cards.Place(ctx, e.ID, req.TargetColumnID, e.Position); err != nil {
				return err
			}
		}

		for _, columnID := range sourceColumns(origin) {
			if err := tx.NormalizeCards(ctx, columnID); err != nil {
				return err
			}
		}

		moved, err = tx.Cards.GetByID(ctx, req.CardID)
		return err
	})
	if err != nil {
		return nil, err
	}

	if len(skipped) > 0 {
		s.logger.Debug("move skipped unknown cards", "ids", skipped)
	}
	s.logger.Info("moved card", "card_id", moved.ID, "column_id", moved.ColumnID, "position", moved.PositionIndex)
	return moved, nil
}

// sourceColumns returns the distinct columns cards left, in ascending order
func sourceColumns(origin map[int]int) []int {
	seen := make(map[int]bool, len(origin))
	var columns []int
	for _, columnID := range origin {
		if !seen[columnID] {
			seen[columnID] = true
			columns = append(columns, columnID)
		}
	}
	sort.Ints(columns)
	return columns
}
