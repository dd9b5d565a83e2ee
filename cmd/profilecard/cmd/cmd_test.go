package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/wexinc/profilecard/internal/config"
	pcerrors "github.com/wexinc/profilecard/internal/errors"
	"github.com/wexinc/profilecard/internal/tui"
)

// newTestRoot creates a fresh command hierarchy for testing.
// This is necessary because Cobra commands maintain state between runs.
func newTestRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "profilecard",
		Short:         "Animated profile card for the terminal",
		Long:          "profilecard shows a user profile as a card whose parts animate into place.",
		RunE:          runShow,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.Version = "test"
	root.SetVersionTemplate("profilecard {{.Version}}\n")
	addShowFlags(root)

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the profile card",
		RunE:  runShow,
	}
	addShowFlags(show)
	root.AddCommand(show)

	initC := &cobra.Command{
		Use:   "init",
		Short: "Write a sample configuration",
		RunE:  runInit,
	}
	initC.Flags().BoolP("force", "f", false, "Overwrite existing configuration")
	root.AddCommand(initC)

	versionC := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE:  runVersion,
	}
	versionC.Flags().Bool("json", false, "Print version information as JSON")
	root.AddCommand(versionC)

	return root
}

// viewCall records what show passed to the terminal program.
type viewCall struct {
	calls int
	opts  tui.Options
	popts tui.ProgramOptions
}

// stubView replaces runView for the duration of the test.
func stubView(t *testing.T, err error) *viewCall {
	t.Helper()
	call := &viewCall{}
	orig := runView
	runView = func(ctx context.Context, opts tui.Options, popts tui.ProgramOptions) error {
		call.calls++
		call.opts = opts
		call.popts = popts
		return err
	}
	t.Cleanup(func() { runView = orig })
	return call
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	cmd := newTestRoot()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "card.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestRootCommand(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantErr    bool
		wantOutput string
	}{
		{
			name:       "help flag",
			args:       []string{"--help"},
			wantOutput: "Available Commands:",
		},
		{
			name:       "version flag",
			args:       []string{"--version"},
			wantOutput: "profilecard test",
		},
		{
			name:    "unknown command",
			args:    []string{"unknown"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if (err != nil) != tt.wantErr {
				t.Errorf("Execute() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantOutput != "" && !bytes.Contains([]byte(out), []byte(tt.wantOutput)) {
				t.Errorf("Output = %q, want to contain %q", out, tt.wantOutput)
			}
		})
	}
}

func TestRootRunsShow(t *testing.T) {
	t.Chdir(t.TempDir())
	call := stubView(t, nil)

	if _, err := execute(t); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if call.calls != 1 {
		t.Fatalf("view should run once, ran %d times", call.calls)
	}
	if call.opts.Record.Name != "Alex Johnson" {
		t.Errorf("default profile name = %q", call.opts.Record.Name)
	}
	if !call.popts.AltScreen || !call.popts.Mouse {
		t.Errorf("program options = %+v, want alt screen and mouse", call.popts)
	}
}

func TestShowCommand(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeConfig(t, dir, `
profile:
  name: Sam Rivera
  title: Designer
  skills: [Figma, CSS]
ui:
  alt_screen: false
`)

	t.Run("loads config file", func(t *testing.T) {
		call := stubView(t, nil)
		if _, err := execute(t, "show", "--config", path); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if call.opts.Record.Name != "Sam Rivera" {
			t.Errorf("name = %q, want Sam Rivera", call.opts.Record.Name)
		}
		if len(call.opts.Record.Skills) != 2 {
			t.Errorf("skills = %v", call.opts.Record.Skills)
		}
		if call.popts.AltScreen {
			t.Error("alt screen should be off")
		}
		if call.opts.Schedule == nil {
			t.Fatal("show should pass a schedule")
		}
		if got, want := call.opts.Schedule.Settle(0, 2), config.NewConfig().Schedule().Settle(0, 2); got != want {
			t.Errorf("settle = %v, want %v", got, want)
		}
	})

	t.Run("no animation", func(t *testing.T) {
		call := stubView(t, nil)
		if _, err := execute(t, "show", "--config", path, "--no-animation"); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if got := call.opts.Schedule.Settle(3, 6); got != 0 {
			t.Errorf("settle = %v, want 0", got)
		}
	})

	t.Run("speed flag", func(t *testing.T) {
		call := stubView(t, nil)
		if _, err := execute(t, "show", "--config", path, "--speed", "2"); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		normal := config.NewConfig().Schedule().Settle(0, 2)
		if got := call.opts.Schedule.Settle(0, 2); got != normal/2 {
			t.Errorf("settle = %v, want %v", got, normal/2)
		}
	})

	t.Run("speed out of range", func(t *testing.T) {
		call := stubView(t, nil)
		if _, err := execute(t, "show", "--config", path, "--speed", "50"); err == nil {
			t.Error("expected validation error")
		}
		if call.calls != 0 {
			t.Error("view must not run with an invalid config")
		}
	})

	t.Run("hooks without commands are safe to call", func(t *testing.T) {
		call := stubView(t, nil)
		if _, err := execute(t, "show", "--config", path, "--verbose"); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		call.opts.OnEditProfile()
		call.opts.OnCreateAction()
	})
}

func TestShowRunsConfiguredHooks(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeConfig(t, dir, `
profile:
  name: Sam Rivera
hooks:
  on_edit: printf '%s' "$PROFILE_NAME" > edited.txt
  on_create: touch created.txt
  timeout: 5s
`)

	orig := runView
	runView = func(ctx context.Context, opts tui.Options, popts tui.ProgramOptions) error {
		opts.OnEditProfile()
		opts.OnCreateAction()
		return nil
	}
	t.Cleanup(func() { runView = orig })

	if _, err := execute(t, "show", "--config", path); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	// show waits for dispatched hooks before returning.
	data, err := os.ReadFile(filepath.Join(dir, "edited.txt"))
	if err != nil {
		t.Fatalf("edit hook did not run: %v", err)
	}
	if string(data) != "Sam Rivera" {
		t.Errorf("edit hook wrote %q, want profile name", data)
	}
	if _, err := os.Stat(filepath.Join(dir, "created.txt")); err != nil {
		t.Errorf("create hook did not run: %v", err)
	}
}

func TestShowWarnsOnEmptyProfile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	empty := writeConfig(t, dir, `
profile:
  name: ""
`)

	call := stubView(t, nil)
	out, err := execute(t, "show", "--config", empty)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "profile is empty") {
		t.Errorf("expected empty profile warning, got %q", out)
	}
	if call.calls != 1 {
		t.Error("an empty profile should still be shown")
	}

	stubView(t, nil)
	out, err = execute(t, "show")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.Contains(out, "profile is empty") {
		t.Errorf("sample profile should not warn, got %q", out)
	}
}

func TestShowMissingConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	call := stubView(t, nil)

	_, err := execute(t, "show", "--config", "nope.yaml")
	if err == nil {
		t.Fatal("expected error for missing config")
	}
	if !errors.Is(err, pcerrors.ErrConfig) {
		t.Errorf("error should be a config error, got %v", err)
	}
	if call.calls != 0 {
		t.Error("view must not run without a config")
	}
}

func TestShowViewError(t *testing.T) {
	t.Chdir(t.TempDir())
	stubView(t, errors.New("no tty"))

	_, err := execute(t, "show")
	if err == nil {
		t.Fatal("expected error from view")
	}
}

func TestShowWritesLog(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	stubView(t, nil)

	if _, err := execute(t, "show"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	entries, err := os.ReadDir(filepath.Join(dir, config.DefaultLogDir))
	if err != nil {
		t.Fatalf("log dir missing: %v", err)
	}
	if len(entries) == 0 {
		t.Error("show should write a log file")
	}
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	out, err := execute(t, "init")
	if err != nil {
		t.Fatalf("init error = %v", err)
	}
	if !bytes.Contains([]byte(out), []byte(config.DefaultConfigPath)) {
		t.Errorf("output = %q, want created path", out)
	}

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("written config does not load: %v", err)
	}
	if cfg.Profile.Name != "Alex Johnson" || len(cfg.Profile.Skills) != 6 {
		t.Errorf("written profile = %+v", cfg.Profile)
	}

	// A second init refuses to overwrite.
	_, err = execute(t, "init")
	if !errors.Is(err, pcerrors.ErrConfig) {
		t.Errorf("second init error = %v, want config error", err)
	}

	if _, err := execute(t, "init", "--force"); err != nil {
		t.Errorf("init --force error = %v", err)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !bytes.Contains([]byte(out), []byte("profilecard")) {
		t.Errorf("output = %q", out)
	}

	out, err = execute(t, "version", "--json")
	if err != nil {
		t.Fatalf("version --json error = %v", err)
	}
	var info map[string]string
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if info["version"] == "" {
		t.Error("JSON should carry the version")
	}
}
