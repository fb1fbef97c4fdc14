package card

import "github.com/thenoetrevino/kanban/internal/models"

// Card-related errors
var (
	// Validation errors
	ErrTitleRequired       = models.NewValidationError("Card title is required.")
	ErrTitleEmpty          = models.NewValidationError("Card title cannot be empty.")
	ErrTitleTooLong        = models.NewValidationError("Card title must be 500 characters or fewer.")
	ErrInvalidLabelColor   = models.NewValidationError("label_color must be a valid CSS hex string (e.g. #fff or #ffffff).")
	ErrLabelColorNotNull   = models.NewValidationError("label_color must be a valid CSS hex string or null.")
	ErrTargetColumnMissing = models.NewValidationError("target_column_id is required.")
	ErrTargetColumnInvalid = models.NewValidationError("target_column_id must be an integer.")
	ErrOrderNotList        = models.NewValidationError("ordered_card_ids must be a list.")

	// Lookup errors
	ErrCardNotFound         = models.NewNotFoundError("Card not found.")
	ErrColumnNotFound       = models.NewNotFoundError("Column not found.")
	ErrTargetColumnNotFound = models.NewNotFoundError("Target column not found.")
)
