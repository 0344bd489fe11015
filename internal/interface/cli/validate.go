package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/runestone-dev/runestone/internal/spec"
	"github.com/runestone-dev/runestone/internal/validator"
)

func newValidateCmd() *cobra.Command {
	var strict bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "validate <path>",
		Short: "Validate RUNE specification files",
		Long:  "Validate a .rune file, or recursively validate every .rune file under a directory.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// The flag wins over config when given explicitly.
			if !cmd.Flags().Changed("strict") && globalConfig != nil && globalConfig.Strict() {
				strict = true
			}
			return runValidate(cmd.OutOrStdout(), args[0], strict, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Enable strict validation (optional fields become expected)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report list as JSON")
	return cmd
}

func runValidate(w io.Writer, path string, strict, jsonOutput bool) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path not found: %s", path)
	}

	v := validator.New(strict)
	var reports []*validator.Report
	if info.IsDir() {
		reports, err = v.ValidateDirectory(path)
		if err != nil {
			return err
		}
		if len(reports) == 0 {
			fmt.Fprintf(w, "No %s files found in %s\n", spec.Extension, path)
			return fmt.Errorf("no spec files found")
		}
	} else {
		report, err := v.ValidateFile(path)
		if err != nil {
			return err
		}
		reports = []*validator.Report{report}
	}

	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			return err
		}
	} else {
		printReports(w, reports)
	}

	run := validator.NewRunResult(reports)
	GetLogger().Debug("validation run %s: %d passed, %d failed", run.ID, run.Summary.Passed, run.Summary.Failed)
	if run.Summary.Failed > 0 {
		return fmt.Errorf("%d of %d spec(s) failed validation", run.Summary.Failed, run.Summary.Files)
	}
	return nil
}

func printReports(w io.Writer, reports []*validator.Report) {
	passed := 0
	failed := 0
	for _, report := range reports {
		if report.Valid {
			passed++
			fmt.Fprintf(w, "  PASS  %s\n", report.Filepath)
		} else {
			failed++
			fmt.Fprintf(w, "  FAIL  %s\n", report.Filepath)
			for _, e := range report.Errors {
				fmt.Fprintf(w, "        ERROR: %s\n", e)
			}
		}
		for _, warn := range report.Warnings {
			fmt.Fprintf(w, "        WARN:  %s\n", warn)
		}
		for _, fix := range report.Suggestions {
			fmt.Fprintf(w, "        FIX:   %s\n", fix)
		}
	}
	fmt.Fprintf(w, "\nResults: %d passed, %d failed, %d total\n", passed, failed, len(reports))
}
