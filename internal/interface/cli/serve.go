package cli

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/runestone-dev/runestone/internal/mcp"
	"github.com/runestone-dev/runestone/internal/tools"
	spectools "github.com/runestone-dev/runestone/internal/tools/spec"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve spec tools over MCP on stdin/stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := tools.NewRegistry()
			for _, tool := range spectools.GetTools(afero.NewOsFs()) {
				if err := registry.Register(tool); err != nil {
					return err
				}
			}

			GetLogger().Info("MCP server listening on stdio")
			return mcp.NewServer(registry).ProcessStream(os.Stdin, os.Stdout)
		},
	}
}
