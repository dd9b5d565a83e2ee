// Package errors provides error types with actionable suggestions for
// profilecard. Errors carry enough context for the CLI to tell the user what
// to fix; the profile view itself never fails.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Common sentinel errors for use with errors.Is().
var (
	// ErrConfig indicates a configuration error.
	ErrConfig = errors.New("configuration error")
	// ErrProfile indicates an unusable profile record.
	ErrProfile = errors.New("profile error")
	// ErrSchedule indicates an animation schedule that breaks the reveal order.
	ErrSchedule = errors.New("animation schedule error")
	// ErrNotFound indicates a resource was not found.
	ErrNotFound = errors.New("not found")
)

// AppError is the base error type for profilecard errors.
// It wraps an underlying error and provides additional context.
type AppError struct {
	// Kind is the category of error (e.g., ErrConfig, ErrSchedule).
	Kind error
	// Message is the human-readable error message.
	Message string
	// Suggestion provides actionable advice for resolving the error.
	Suggestion string
	// Cause is the underlying error that caused this error.
	Cause error
	// Details provides additional context (e.g., file path, field name).
	Details map[string]string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *AppError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return e.Kind
}

// Is reports whether the error's Kind matches the target.
func (e *AppError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// Format returns a multi-line message with details and suggestion, meant for
// printing at the CLI boundary.
func (e *AppError) Format() string {
	var sb strings.Builder

	sb.WriteString("Error: ")
	sb.WriteString(e.Error())
	sb.WriteString("\n")

	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString("\nDetails:\n")
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", k, e.Details[k]))
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\n💡 Suggestion: ")
		sb.WriteString(e.Suggestion)
		sb.WriteString("\n")
	}

	return sb.String()
}

// WithDetails adds details to the error.
func (e *AppError) WithDetails(key, value string) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying cause of the error.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// New creates a new AppError with the given kind and message.
func New(kind error, message string) *AppError {
	return &AppError{
		Kind:    kind,
		Message: message,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(err error, kind error, message string) *AppError {
	return &AppError{
		Kind:    kind,
		Message: message,
		Cause:   err,
	}
}

// WithSuggestion creates a new error with a suggestion.
func WithSuggestion(kind error, message, suggestion string) *AppError {
	return &AppError{
		Kind:       kind,
		Message:    message,
		Suggestion: suggestion,
	}
}

// FormatError renders err for the terminal. AppErrors get their full
// Format output; anything else is printed as a single line.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Format()
	}
	return "Error: " + err.Error() + "\n"
}
