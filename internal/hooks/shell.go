package hooks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// ShellHook executes a shell command as a hook.
// The command text is passed to sh unchanged; the activation and profile
// reach it only as environment variables, e.g. "$PROFILE_NAME".
type ShellHook struct {
	name    string
	event   Event
	command string
	timeout time.Duration
}

// NewShellHook creates a new shell hook. A zero timeout means no limit
// beyond the caller's context.
func NewShellHook(name string, event Event, command string, timeout time.Duration) *ShellHook {
	return &ShellHook{
		name:    name,
		event:   event,
		command: command,
		timeout: timeout,
	}
}

// Name returns the hook name.
func (h *ShellHook) Name() string {
	return h.name
}

// Event returns the activation this hook handles.
func (h *ShellHook) Event() Event {
	return h.event
}

// Command returns the configured command line.
func (h *ShellHook) Command() string {
	return h.command
}

// Execute runs the shell command with the hook context.
// A failing command is reported in the result, not as an error.
func (h *ShellHook) Execute(ctx context.Context, hookCtx *HookContext) (*HookResult, error) {
	if hookCtx == nil {
		return nil, fmt.Errorf("hook context is required")
	}
	if h.command == "" {
		return nil, fmt.Errorf("shell hook command is empty")
	}

	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	vars := h.vars(hookCtx)
	cmd := exec.CommandContext(ctx, "sh", "-c", h.command)
	cmd.Env = os.Environ()
	for k, v := range vars {
		cmd.Env = append(cmd.Env, k+"="+v)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	output := strings.TrimSpace(stdout.String())
	if errOut := strings.TrimSpace(stderr.String()); errOut != "" {
		if output != "" {
			output += "\n"
		}
		output += errOut
	}

	result := &HookResult{
		Success:  err == nil,
		Output:   output,
		Duration: elapsed,
	}
	if err != nil {
		result.ExitCode = 1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
			result.ExitCode = exitErr.ExitCode()
		}
		result.Error = err.Error()
		if ctx.Err() != nil {
			result.Error = fmt.Sprintf("%s: %v", result.Error, ctx.Err())
		}
	}
	return result, nil
}

// vars are the variables a hook command can read.
func (h *ShellHook) vars(hookCtx *HookContext) map[string]string {
	r := hookCtx.Record
	return map[string]string{
		"HOOK_EVENT":       string(h.event),
		"PROFILE_NAME":     r.Name,
		"PROFILE_TITLE":    r.Title,
		"PROFILE_LOCATION": r.Location,
		"PROFILE_SKILLS":   strings.Join(r.Skills, ","),
		"PROFILE_STATS":    strconv.Itoa(len(r.Stats)),
	}
}
