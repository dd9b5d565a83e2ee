package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wexinc/profilecard/internal/config"
	"github.com/wexinc/profilecard/internal/hooks"
	"github.com/wexinc/profilecard/internal/logging"
	"github.com/wexinc/profilecard/internal/tui"
)

// runView runs the terminal program. Tests replace it.
var runView = tui.Run

// showCmd represents the show command.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the profile card",
	Long: `Show the profile card with its entrance animation.

Press e to edit the profile, + to create, tab to move between the
controls and ? for all shortcuts. Press q to quit.

Examples:
  profilecard show                     # Use .profilecard/config.yaml
  profilecard show --config card.yaml  # Use a specific config file
  profilecard show --speed 2           # Play the animation twice as fast
  profilecard show --no-animation      # Show the card at rest`,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	addShowFlags(showCmd)
}

func addShowFlags(c *cobra.Command) {
	c.Flags().StringP("config", "c", "", "Path to config file (default .profilecard/config.yaml)")
	c.Flags().BoolP("verbose", "v", false, "Enable debug logging")
	c.Flags().Bool("no-animation", false, "Show the card without the entrance animation")
	c.Flags().Float64("speed", config.DefaultSpeed, "Animation speed multiplier")
}

// runShow is the main entry point for the show command.
func runShow(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	noAnimation, _ := cmd.Flags().GetBool("no-animation")
	speed, _ := cmd.Flags().GetFloat64("speed")

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// Flags win over the file and the environment.
	if cmd.Flags().Changed("speed") {
		cfg.Animation.Speed = speed
	}
	if noAnimation {
		cfg.Animation.Disabled = true
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logging.InitGlobal(cfg.LoggingConfig()); err != nil {
		// Non-fatal: warn but continue without file logging
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to initialize logging: %v\n", err)
	} else {
		defer func() { _ = logging.CloseGlobal() }()
		logging.Info("profilecard starting", "version", Version, "verbose", verbose)
	}

	if cfg.Profile.IsEmpty() {
		fmt.Fprintln(cmd.ErrOrStderr(), "Warning: profile is empty; only the controls will be shown")
		logging.Warn("profile is empty", "config", configPath)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case sig := <-sigChan:
			logging.Info("received signal, shutting down", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
	}()

	hookMgr, err := hooks.NewManagerFromConfig(cfg.Hooks)
	if err != nil {
		return err
	}
	hookMgr.Logger = logHookResult
	// Let running hooks finish before the log is closed.
	defer hookMgr.Wait()

	schedule := cfg.Schedule()
	record := cfg.Profile.Clone()
	opts := tui.Options{
		Record:   cfg.Profile,
		Schedule: &schedule,
		OnEditProfile: func() {
			logging.Info("edit profile requested", "name", record.Name, "hooked", hookMgr.Has(hooks.EventEditProfile))
			hookMgr.Dispatch(ctx, hooks.HookContext{Event: hooks.EventEditProfile, Record: record})
		},
		OnCreateAction: func() {
			logging.Info("create action requested", "name", record.Name, "hooked", hookMgr.Has(hooks.EventCreate))
			hookMgr.Dispatch(ctx, hooks.HookContext{Event: hooks.EventCreate, Record: record})
		},
	}

	if err := runView(ctx, opts, tui.ProgramOptions{
		AltScreen: cfg.UI.AltScreen,
		Mouse:     cfg.UI.Mouse,
	}); err != nil {
		logging.Error("profile view failed", "error", err)
		return fmt.Errorf("failed to run profile view: %w", err)
	}

	logging.Info("profilecard exiting")
	return nil
}

// logHookResult records the outcome of a hook command.
func logHookResult(event hooks.Event, hook hooks.Hook, result *hooks.HookResult) {
	if result.IsSuccess() {
		logging.Info("hook finished",
			"event", event, "hook", hook.Name(), "duration", result.Duration)
		return
	}
	logging.Warn("hook failed",
		"event", event, "hook", hook.Name(), "exit_code", result.ExitCode,
		"error", result.Error, "output", result.Output)
}
