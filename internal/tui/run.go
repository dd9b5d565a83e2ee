package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// ProgramOptions configures the terminal program around a ProfileView.
type ProgramOptions struct {
	// AltScreen draws in the alternate screen buffer.
	AltScreen bool
	// Mouse enables cell-motion mouse reporting for hover and click.
	Mouse bool
	// Input and Output default to the terminal when nil.
	Input  io.Reader
	Output io.Writer
}

// NewProgram wraps a new ProfileView in a Bubble Tea program bound to ctx.
func NewProgram(ctx context.Context, opts Options, popts ProgramOptions) (*tea.Program, *ProfileView) {
	view := New(opts)

	teaOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if popts.AltScreen {
		teaOpts = append(teaOpts, tea.WithAltScreen())
	}
	if popts.Mouse {
		teaOpts = append(teaOpts, tea.WithMouseCellMotion())
	}
	if popts.Input != nil {
		teaOpts = append(teaOpts, tea.WithInput(popts.Input))
	}
	if popts.Output != nil {
		teaOpts = append(teaOpts, tea.WithOutput(popts.Output))
	}

	return tea.NewProgram(view, teaOpts...), view
}

// Run shows the profile card until the user quits or ctx is cancelled.
// Cancellation is a normal exit and returns nil.
func Run(ctx context.Context, opts Options, popts ProgramOptions) error {
	program, view := NewProgram(ctx, opts, popts)

	_, err := program.Run()
	if err != nil && ctx.Err() != nil {
		view.log.Debug("profile view cancelled", "cause", ctx.Err())
		return nil
	}
	return err
}
