package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/runestone-dev/runestone/internal/spec"
	spectools "github.com/runestone-dev/runestone/internal/tools/spec"
)

func newListCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list <dir>",
		Short: "List RUNE specification files under a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.OutOrStdout(), afero.NewOsFs(), args[0], jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the listing as JSON")
	return cmd
}

func runList(w io.Writer, fs afero.Fs, dir string, jsonOutput bool) error {
	listings, err := spectools.ListSpecs(fs, dir)
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(listings)
	}

	if len(listings) == 0 {
		fmt.Fprintf(w, "No %s files found in %s\n", spec.Extension, dir)
		return nil
	}

	for _, entry := range listings {
		if entry.Error != "" {
			fmt.Fprintf(w, "%s\n    parse error: %s\n", entry.Filepath, entry.Error)
			continue
		}
		fmt.Fprintf(w, "%s\n    %s (%s, %d test(s))\n", entry.Filepath, entry.Name, entry.Language, entry.Tests)
		if entry.Intent != "" {
			fmt.Fprintf(w, "    %s\n", entry.Intent)
		}
	}
	fmt.Fprintf(w, "\n%d spec(s)\n", len(listings))
	return nil
}
