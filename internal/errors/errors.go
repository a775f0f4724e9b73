package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error types for common failure scenarios.
var (
	ErrSceneNotFound  = errors.New("scene not found")
	ErrEmptyTimeline  = errors.New("timeline is empty")
	ErrInvalidEdit    = errors.New("invalid edit")
	ErrHistory        = errors.New("history out of sync")
	ErrConfigNotFound = errors.New("config file not found")
	ErrInvalidConfig  = errors.New("invalid configuration")
)

// Error wraps an error with a user-friendly suggestion.
type Error struct {
	Err        error
	Suggestion string
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// WithSuggestion wraps an error with a helpful suggestion.
func WithSuggestion(err error, suggestion string) error {
	return &Error{
		Err:        err,
		Suggestion: suggestion,
	}
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// GetSuggestion returns a suggestion for the given error.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	var cutErr *Error
	if errors.As(err, &cutErr) && cutErr.Suggestion != "" {
		return cutErr.Suggestion
	}

	errStr := strings.ToLower(err.Error())

	if errors.Is(err, ErrSceneNotFound) {
		return "Run 'cutline status' to see scene indexes"
	}

	if errors.Is(err, ErrEmptyTimeline) {
		return "Add a scene first, or define [[timeline.scenes]] in your config"
	}

	if errors.Is(err, ErrInvalidEdit) || strings.Contains(errStr, "unknown operation") {
		return "Run 'cutline edit --help' for the list of operations"
	}

	if errors.Is(err, ErrConfigNotFound) {
		return "Run 'cutline config init' to create a configuration file"
	}

	if errors.Is(err, ErrInvalidConfig) || strings.Contains(errStr, "config") {
		return "Run 'cutline config show' to inspect the loaded configuration"
	}

	return ""
}

// Format returns a formatted error message with suggestion if available.
func Format(err error) string {
	if err == nil {
		return ""
	}

	suggestion := GetSuggestion(err)
	if suggestion != "" {
		return fmt.Sprintf("Error: %s\n\nSuggestion: %s", err.Error(), suggestion)
	}

	return fmt.Sprintf("Error: %s", err.Error())
}
