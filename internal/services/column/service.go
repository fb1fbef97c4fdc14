package column

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/kanban/internal/database"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/validation"
)

// Service defines all column-related business operations
type Service interface {
	// Read operations
	ListColumns(ctx context.Context) ([]*models.Column, error)
	GetColumn(ctx context.Context, id int) (*models.Column, error)

	// Write operations
	CreateColumn(ctx context.Context, title string) (*models.Column, error)
	UpdateColumn(ctx context.Context, id int, title string) (*models.Column, error)
	DeleteColumn(ctx context.Context, id int) error
	ReorderColumns(ctx context.Context, orderedIDs []int) error
}

// titleInput is the validated shape of a column title
type titleInput struct {
	Title string `json:"title" validate:"required,max=120"`
}

// service implements Service on top of the store
type service struct {
	store  *database.Store
	logger *slog.Logger
}

// NewService creates a new column service
func NewService(store *database.Store, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		store:  store,
		logger: logger,
	}
}

// ListColumns returns every column in board order, each with its cards in order
func (s *service) ListColumns(ctx context.Context) ([]*models.Column, error) {
	columns, err := s.store.Columns.List(ctx)
	if err != nil {
		return nil, err
	}

	cards, err := s.store.Cards.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	byColumn := make(map[int][]*models.Card, len(columns))
	for _, card := range cards {
		byColumn[card.ColumnID] = append(byColumn[card.ColumnID], card)
	}
	for _, col := range columns {
		col.Cards = byColumn[col.ID]
	}
	return columns, nil
}

// GetColumn retrieves a specific column with its cards
func (s *service) GetColumn(ctx context.Context, id int) (*models.Column, error) {
	col, err := s.store.Columns.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrColumnNotFound
	}
	if err != nil {
		return nil, err
	}

	col.Cards, err = s.store.Cards.ListByColumn(ctx, id)
	if err != nil {
		return nil, err
	}
	return col, nil
}

// CreateColumn validates the title and appends a new column at the rightmost position
func (s *service) CreateColumn(ctx context.Context, title string) (*models.Column, error) {
	title, err := validateTitle(title)
	if err != nil {
		return nil, err
	}

	var col *models.Column
	err = s.store.WithTx(ctx, func(tx *database.Tx) error {
		var err error
		col, err = tx.Columns.Create(ctx, title)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create column: %w", err)
	}

	s.logger.Info("created column", "column_id", col.ID, "title", col.Title, "position", col.PositionIndex)
	return col, nil
}

// UpdateColumn replaces a column's title
func (s *service) UpdateColumn(ctx context.Context, id int, title string) (*models.Column, error) {
	var col *models.Column
	err := s.store.WithTx(ctx, func(tx *database.Tx) error {
		if _, err := tx.Columns.GetByID(ctx, id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrColumnNotFound
			}
			return err
		}

		title, err := validateTitle(title)
		if err != nil {
			return err
		}

		if err := tx.Columns.UpdateTitle(ctx, id, title); err != nil {
			return err
		}

		col, err = tx.Columns.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return col, nil
}

// DeleteColumn deletes a column and all of its cards, then closes the gap it
// leaves in the column order
func (s *service) DeleteColumn(ctx context.Context, id int) error {
	err := s.store.WithTx(ctx, func(tx *database.Tx) error {
		if err := tx.Columns.Delete(ctx, id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrColumnNotFound
			}
			return err
		}
		return tx.NormalizeColumns(ctx)
	})
	if err != nil {
		return err
	}

	s.logger.Info("deleted column", "column_id", id)
	return nil
}

// ReorderColumns writes the caller's full column order in one transaction.
// IDs that are not columns are skipped; the column order is normalized afterwards
// so an incomplete list cannot leave gaps or duplicates.
func (s *service) ReorderColumns(ctx context.Context, orderedIDs []int) error {
	if len(orderedIDs) == 0 {
		return ErrEmptyOrder
	}

	var skipped []int
	err := s.store.WithTx(ctx, func(tx *database.Tx) error {
		var err error
		skipped, err = tx.ReorderColumns(ctx, orderedIDs)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to reorder columns: %w", err)
	}

	if len(skipped) > 0 {
		s.logger.Debug("reorder skipped unknown columns", "ids", skipped)
	}
	return nil
}

// validateTitle trims the title and checks it against the column rules
func validateTitle(title string) (string, error) {
	in := titleInput{Title: validation.Title(title)}
	if f, failed := validation.Check(in); failed {
		if f.Rule == "max" {
			return "", ErrTitleTooLong
		}
		return "", ErrTitleRequired
	}
	return in.Title, nil
}
