// Package hooks runs user commands when the profile card's controls are
// activated. The view only reports activations; what they do is up to the
// commands configured under hooks: in config.yaml.
package hooks

import (
	"context"
	"fmt"
	"time"

	"github.com/wexinc/profilecard/internal/config"
	"github.com/wexinc/profilecard/internal/profile"
)

// Event names the activation that triggers a hook.
type Event string

const (
	// EventEditProfile fires when the edit button is activated.
	EventEditProfile Event = "edit_profile"
	// EventCreate fires when the floating "+" control is activated.
	EventCreate Event = "create"
)

// String returns the string representation of the event.
func (e Event) String() string {
	return string(e)
}

// IsValid returns true if the event is known.
func (e Event) IsValid() bool {
	return e == EventEditProfile || e == EventCreate
}

// HookContext describes the activation being handled.
type HookContext struct {
	// Event is the activation that fired.
	Event Event
	// Record is the profile shown when the control was activated.
	Record profile.Record
}

// HookResult represents the outcome of a hook execution.
type HookResult struct {
	// Success indicates whether the hook completed successfully.
	Success bool
	// Output is the captured output from the hook.
	Output string
	// Error contains any error message if the hook failed.
	Error string
	// ExitCode is the command's exit code (0 = success).
	ExitCode int
	// Duration is how long the hook ran.
	Duration time.Duration
}

// IsSuccess returns true if the hook executed successfully.
func (r HookResult) IsSuccess() bool {
	return r.Success && r.ExitCode == 0
}

// Hook defines the interface that all hook implementations must satisfy.
type Hook interface {
	// Name returns a descriptive name for this hook (for logging/debugging).
	Name() string

	// Event returns the activation this hook handles.
	Event() Event

	// Execute runs the hook with the given context.
	Execute(ctx context.Context, hookCtx *HookContext) (*HookResult, error)
}

// CreateHooksFromConfig creates a shell hook for every configured command.
// Empty commands produce no hook.
func CreateHooksFromConfig(cfg config.HooksConfig) ([]Hook, error) {
	if cfg.Timeout < 0 {
		return nil, fmt.Errorf("hook timeout must not be negative: %v", cfg.Timeout)
	}

	var hooks []Hook
	if cfg.OnEdit != "" {
		hooks = append(hooks, NewShellHook("on_edit", EventEditProfile, cfg.OnEdit, cfg.Timeout))
	}
	if cfg.OnCreate != "" {
		hooks = append(hooks, NewShellHook("on_create", EventCreate, cfg.OnCreate, cfg.Timeout))
	}
	return hooks, nil
}
