package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/runestone-dev/runestone/internal/parser"
)

func newParseCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a RUNE specification file",
		Long:  "Parse a .rune file into its structured form and run the minimal structural check.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd.OutOrStdout(), args[0], jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the parsed spec as JSON")
	return cmd
}

func runParse(w io.Writer, path string, jsonOutput bool) error {
	p := parser.New()
	s, err := p.ParseFile(path)
	if err != nil {
		return err
	}

	problems := p.Validate(s)

	if jsonOutput {
		out := map[string]any{
			"spec":   s.ToMap(),
			"valid":  len(problems) == 0,
			"errors": problems,
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Fprintf(w, "Name:      %s\n", s.Name())
	fmt.Fprintf(w, "Language:  %s\n", s.Language())
	fmt.Fprintf(w, "Version:   %s\n", s.Meta.Version)
	fmt.Fprintf(w, "Signature: %s\n", s.Signature)
	fmt.Fprintf(w, "Intent:    %s\n", s.Intent)
	fmt.Fprintf(w, "Behavior:  %d clause(s)\n", len(s.Behavior))
	fmt.Fprintf(w, "Tests:     %d case(s)\n", s.TestCount())
	if len(s.Meta.Tags) > 0 {
		fmt.Fprintf(w, "Tags:      %s\n", strings.Join(s.Meta.Tags, ", "))
	}
	if s.IsAsync() {
		fmt.Fprintln(w, "Async:     yes")
	}

	if len(problems) > 0 {
		fmt.Fprintln(w)
		for _, e := range problems {
			fmt.Fprintf(w, "ERROR: %s\n", e)
		}
		return fmt.Errorf("%d structural error(s)", len(problems))
	}
	return nil
}
