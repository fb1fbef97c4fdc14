package card

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/kanban/internal/database"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/validation"
)

// Service defines all card-related business operations
type Service interface {
	// Read operations
	GetCard(ctx context.Context, id int) (*models.Card, error)

	// Write operations
	CreateCard(ctx context.Context, req CreateCardRequest) (*models.Card, error)
	UpdateCard(ctx context.Context, req UpdateCardRequest) (*models.Card, error)
	DeleteCard(ctx context.Context, id int) error

	// Drag and drop
	MoveCard(ctx context.Context, req MoveCardRequest) (*models.Card, error)
}

// CreateCardRequest encapsulates the data needed to create a card
type CreateCardRequest struct {
	ColumnID    int
	Title       string
	Description string
	LabelColor  *string // Optional: nil or "" means no label
}

// UpdateCardRequest encapsulates a partial card update.
// Nil pointers and unset optionals leave the field unchanged.
type UpdateCardRequest struct {
	CardID      int
	Title       *string
	Description *string
	LabelColor  models.Optional[string]
}

// MoveCardRequest encapsulates a drag-and-drop move.
// OrderedCardIDs is the complete desired card order of the target column.
type MoveCardRequest struct {
	CardID         int
	TargetColumnID int
	OrderedCardIDs []int
}

// contentInput is the validated shape of a card's content
type contentInput struct {
	Title      string  `json:"title" validate:"required,max=500"`
	LabelColor *string `json:"label_color" validate:"omitnil,labelcolor"`
}

// service implements Service on top of the store
type service struct {
	store  *database.Store
	logger *slog.Logger
}

// NewService creates a new card service
func NewService(store *database.Store, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		store:  store,
		logger: logger,
	}
}

// GetCard retrieves a card by ID
func (s *service) GetCard(ctx context.Context, id int) (*models.Card, error) {
	c, err := s.store.Cards.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCardNotFound
	}
	return c, err
}

// CreateCard checks the column, validates the content and appends a new card at the bottom of its column
func (s *service) CreateCard(ctx context.Context, req CreateCardRequest) (*models.Card, error) {
	var c *models.Card
	err := s.store.WithTx(ctx, func(tx *database.Tx) error {
		ok, err := tx.Columns.Exists(ctx, req.ColumnID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrColumnNotFound
		}

		params, err := validateCreate(req)
		if err != nil {
			return err
		}

		c, err = tx.Cards.Create(ctx, params)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("created card", "card_id", c.ID, "column_id", c.ColumnID, "position", c.PositionIndex)
	return c, nil
}

// UpdateCard updates the editable content fields of a card
func (s *service) UpdateCard(ctx context.Context, req UpdateCardRequest) (*models.Card, error) {
	var c *models.Card
	err := s.store.WithTx(ctx, func(tx *database.Tx) error {
		current, err := tx.Cards.GetByID(ctx, req.CardID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrCardNotFound
			}
			return err
		}

		if err := applyUpdate(current, req); err != nil {
			return err
		}

		if err := tx.Cards.UpdateContent(ctx, current); err != nil {
			return err
		}

		c, err = tx.Cards.GetByID(ctx, req.CardID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCard removes a card and closes the gap it leaves in its column
func (s *service) DeleteCard(ctx context.Context, id int) error {
	var columnID int
	err := s.store.WithTx(ctx, func(tx *database.Tx) error {
		c, err := tx.Cards.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrCardNotFound
			}
			return err
		}
		columnID = c.ColumnID

		if err := tx.Cards.Delete(ctx, id); err != nil {
			return err
		}
		return tx.NormalizeCards(ctx, columnID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("deleted card", "card_id", id, "column_id", columnID)
	return nil
}

// validateCreate trims and checks the content of a new card
func validateCreate(req CreateCardRequest) (database.CreateCardParams, error) {
	labelColor := req.LabelColor
	if labelColor != nil && *labelColor == "" {
		labelColor = nil
	}

	in := contentInput{Title: validation.Title(req.Title), LabelColor: labelColor}
	if f, failed := validation.Check(in); failed {
		switch {
		case f.Field == "label_color":
			return database.CreateCardParams{}, ErrInvalidLabelColor
		case f.Rule == "max":
			return database.CreateCardParams{}, ErrTitleTooLong
		default:
			return database.CreateCardParams{}, ErrTitleRequired
		}
	}

	return database.CreateCardParams{
		ColumnID:    req.ColumnID,
		Title:       in.Title,
		Description: strings.TrimSpace(req.Description),
		LabelColor:  in.LabelColor,
	}, nil
}

// applyUpdate validates the requested changes and applies them to c
func applyUpdate(c *models.Card, req UpdateCardRequest) error {
	if req.Title != nil {
		title := validation.Title(*req.Title)
		if f, failed := validation.Check(contentInput{Title: title}); failed {
			if f.Rule == "max" {
				return ErrTitleTooLong
			}
			return ErrTitleEmpty
		}
		c.Title = title
	}

	if req.Description != nil {
		c.Description = strings.TrimSpace(*req.Description)
	}

	if req.LabelColor.Set {
		lc := req.LabelColor.Ptr()
		if lc != nil && !validation.IsLabelColor(*lc) {
			return ErrLabelColorNotNull
		}
		c.LabelColor = lc
	}

	return nil
}
