package column

import "github.com/thenoetrevino/kanban/internal/models"

// Column-related errors
var (
	// Validation errors
	ErrTitleRequired = models.NewValidationError("Column title is required.")
	ErrTitleTooLong  = models.NewValidationError("Column title must be 120 characters or fewer.")
	ErrEmptyOrder    = models.NewValidationError("ordered_ids must be a non-empty list.")

	// Lookup errors
	ErrColumnNotFound = models.NewNotFoundError("Column not found.")
)
