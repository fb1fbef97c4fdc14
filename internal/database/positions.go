package database

import (
	"context"

	"github.com/thenoetrevino/kanban/internal/ordering"
)

// NormalizeColumns renumbers every column 0..n-1 in its current order and writes
// the rows whose position changed.
func (tx *Tx) NormalizeColumns(ctx context.Context) error {
	entries, err := tx.Columns.Entries(ctx)
	if err != nil {
		return err
	}
	return tx.Columns.SetPositions(ctx, ordering.Changed(entries, ordering.Normalize(entries)))
}

// NormalizeCards renumbers the cards of one column 0..m-1 in their current order
// and writes the rows whose position changed.
func (tx *Tx) NormalizeCards(ctx context.Context, columnID int) error {
	entries, err := tx.Cards.Entries(ctx, columnID)
	if err != nil {
		return err
	}
	return tx.Cards.SetPositions(ctx, ordering.Changed(entries, ordering.Normalize(entries)))
}

// ReorderColumns applies a caller-supplied order to the column scope and
// normalizes it. IDs that are not columns are skipped and returned.
func (tx *Tx) ReorderColumns(ctx context.Context, order []int) ([]int, error) {
	entries, err := tx.Columns.Entries(ctx)
	if err != nil {
		return nil, err
	}

	result, skipped := ordering.Apply(entries, order)
	if err := tx.Columns.SetPositions(ctx, ordering.Changed(entries, result)); err != nil {
		return nil, err
	}
	return skipped, nil
}
