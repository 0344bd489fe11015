// Package cli wires the runestone commands: validating, parsing, listing,
// scaffolding, and watching RUNE spec files, plus the MCP stdio server.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/runestone-dev/runestone/internal/app/config"
	infraConfig "github.com/runestone-dev/runestone/internal/infra/config"
)

// globalConfig holds the loaded configuration for all commands.
var globalConfig config.Config

func NewRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "runestone",
		Short:        "RUNE specification toolkit",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			baseDir := ".runestone"
			if home := os.Getenv("RUNESTONE_HOME"); home != "" {
				baseDir = home
			}

			cfg, err := infraConfig.LoadSettings(baseDir)
			if err != nil {
				// Continue with defaults if loading fails.
				cfg = config.NewAppConfig(".runestone", "specs", false, "warn", "default", "")
			}
			globalConfig = cfg
			InitGlobalLogger(cfg.StderrLevel())
			return nil
		},
		RunE: func(c *cobra.Command, _ []string) error { return c.Help() },
	}
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newParseCmd())
	cmd.AddCommand(newNewCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newWatchCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}
