package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wexinc/profilecard/internal/config"
	pcerrors "github.com/wexinc/profilecard/internal/errors"
)

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a sample configuration",
	Long: `Write a sample configuration to .profilecard/config.yaml.

The file holds the sample profile, animation speed, terminal options
and log settings. Edit it to show your own profile.

Use --force to overwrite existing configuration.

Examples:
  profilecard init          # Initialize in current directory
  profilecard init --force  # Overwrite an existing config`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolP("force", "f", false, "Overwrite existing configuration")
}

// runInit is the main entry point for the init command.
func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	path := config.DefaultConfigPath

	if _, err := os.Stat(path); err == nil && !force {
		return pcerrors.ConfigExists(path)
	}

	if err := config.Save(config.NewConfig(), path); err != nil {
		return fmt.Errorf("failed to write configuration: %w", err)
	}

	cmd.Printf("Created %s\n", path)
	cmd.Println("")
	cmd.Println("Edit it to show your own profile, then run 'profilecard'.")
	return nil
}
