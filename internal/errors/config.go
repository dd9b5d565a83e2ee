package errors

import (
	"fmt"
	"strings"
	"time"
)

// Configuration-related error constructors.

// ConfigNotFound creates an error for a config path the user named explicitly
// that does not exist.
func ConfigNotFound(configPath string) *AppError {
	return &AppError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("configuration file not found: %s", configPath),
		Details: map[string]string{
			"path": configPath,
		},
		Suggestion: `Create a sample configuration:

    profilecard init

  or run without --config to show the built-in sample profile.`,
	}
}

// ConfigParseError creates an error for YAML parsing failures.
func ConfigParseError(configPath string, parseErr error) *AppError {
	return &AppError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("failed to parse configuration: %s", configPath),
		Cause:   parseErr,
		Details: map[string]string{
			"path": configPath,
		},
		Suggestion: `Check your config.yaml for syntax errors:
  1. Ensure proper YAML indentation (use spaces, not tabs)
  2. Stats are a list of {label, value} maps
  3. Skills are a list of strings`,
	}
}

// ConfigValidationError creates an error for invalid configuration values.
func ConfigValidationError(field, message string, validOptions []string) *AppError {
	suggestion := fmt.Sprintf("Fix the %q field in .profilecard/config.yaml", field)
	if len(validOptions) > 0 {
		suggestion += fmt.Sprintf("\n  Valid options: %s", strings.Join(validOptions, ", "))
	}

	return &AppError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("invalid configuration: %s", message),
		Details: map[string]string{
			"field": field,
		},
		Suggestion: suggestion,
	}
}

// ConfigExists creates an error when init would overwrite a config file.
func ConfigExists(configPath string) *AppError {
	return &AppError{
		Kind:       ErrConfig,
		Message:    fmt.Sprintf("configuration already exists: %s", configPath),
		Details:    map[string]string{"path": configPath},
		Suggestion: "Use --force to overwrite it.",
	}
}

// Schedule-related error constructors.

// ScheduleOrderError reports two reveal steps whose start times are out of
// order. earlier must start strictly before later.
func ScheduleOrderError(earlier, later string, earlierAt, laterAt time.Duration) *AppError {
	return &AppError{
		Kind:    ErrSchedule,
		Message: fmt.Sprintf("%s (%s) must start before %s (%s)", earlier, earlierAt, later, laterAt),
		Details: map[string]string{
			"earlier": earlier,
			"later":   later,
		},
		Suggestion: "Reveal order is avatar, header, bio, stats, skills, edit button, floating button.",
	}
}

// ScheduleValueError reports a negative delay, non-positive duration or a
// stagger that breaks the stats/skills relationship.
func ScheduleValueError(field, message string) *AppError {
	return &AppError{
		Kind:    ErrSchedule,
		Message: fmt.Sprintf("%s: %s", field, message),
		Details: map[string]string{
			"field": field,
		},
	}
}
