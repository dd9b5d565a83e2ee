// Package cmd provides the CLI commands for profilecard.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	pcerrors "github.com/wexinc/profilecard/internal/errors"
)

// Version information - set via ldflags at build time in main.go.
// These are exported so main.go can set them before Execute().
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "profilecard",
	Short: "Animated profile card for the terminal",
	Long: `profilecard shows a user profile as a card whose parts animate into
place one after another: avatar, name, bio, stats, skills and controls.

The profile and animation timing come from .profilecard/config.yaml.
Run 'profilecard init' to write a sample configuration.`,
	// With no subcommand, show the card (same as "profilecard show").
	RunE:          runShow,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	addShowFlags(rootCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
	rootCmd.SetVersionTemplate("profilecard {{.Version}}\n")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, pcerrors.FormatError(err))
		os.Exit(1)
	}
}

// Root returns the root command for testing purposes.
func Root() *cobra.Command {
	return rootCmd
}
