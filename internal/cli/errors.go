package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/kanban/internal/models"
)

// ExitCodeError carries the process exit code for a failed command.
// The error has already been reported to the user when it is returned.
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string { return e.Err.Error() }

func (e *ExitCodeError) Unwrap() error { return e.Err }

// ExitCode maps err to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitError
}

// HandleError reports err through the formatter and returns it wrapped in an
// ExitCodeError carrying the matching exit code. Internal errors are logged and
// reported with a generic message.
func HandleError(f *OutputFormatter, err error) error {
	code, errCode, message := ExitError, "INTERNAL_ERROR", "Internal error."

	var domainErr *models.Error
	switch {
	case errors.As(err, &domainErr) && errors.Is(err, models.ErrValidation):
		code, errCode, message = ExitValidation, "VALIDATION_ERROR", domainErr.Message
	case errors.As(err, &domainErr) && errors.Is(err, models.ErrNotFound):
		code, errCode, message = ExitNotFound, "NOT_FOUND", domainErr.Message
	default:
		slog.Error("command failed", "error", err)
	}

	if fmtErr := f.Error(errCode, message); fmtErr != nil {
		slog.Warn("failed to format error message", "error", fmtErr)
	}
	return &ExitCodeError{Code: code, Err: err}
}

// UsageError reports a malformed argument and returns an ExitCodeError with
// ExitUsage.
func UsageError(f *OutputFormatter, format string, args ...any) error {
	err := fmt.Errorf(format, args...)
	if fmtErr := f.Error("USAGE_ERROR", err.Error()); fmtErr != nil {
		slog.Warn("failed to format error message", "error", fmtErr)
	}
	return &ExitCodeError{Code: ExitUsage, Err: err}
}
