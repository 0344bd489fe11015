package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/runestone-dev/runestone/internal/infra/persistence/file"
	"github.com/runestone-dev/runestone/internal/pkg/runepath"
	"github.com/runestone-dev/runestone/internal/spec"
)

const specTemplate = `---
meta:
  name: %[1]s
  language: %[2]s
  version: "1.0"
---
RUNE: %[1]s

SIGNATURE: %[1]s(input)

INTENT: Describe in one sentence what %[1]s does.

BEHAVIOR:
  - WHEN given valid input THEN return the expected result
  - WHEN given invalid input THEN report an error

CONSTRAINTS:
  - Input must not be empty

TESTS:
  - %[1]s(valid_input) == expected_output
  - %[1]s(edge_input) == edge_output
  - %[1]s(invalid_input) raises error
`

func newNewCmd() *cobra.Command {
	var language string
	var dir string
	var force bool

	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Scaffold a new RUNE specification file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(cmd.OutOrStdout(), afero.NewOsFs(), args[0], language, dir, force)
		},
	}

	cmd.Flags().StringVar(&language, "language", "python", "Target language for the spec")
	cmd.Flags().StringVar(&dir, "dir", ".", "Directory to create the spec file in")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}

func runNew(w io.Writer, fs afero.Fs, name, language, dir string, force bool) error {
	if !spec.IsSupportedLanguage(language) {
		return fmt.Errorf("unsupported language: %s (supported: %s)", language, strings.Join(spec.SupportedLanguageList(), ", "))
	}

	path := filepath.Join(dir, runepath.Filename(name))
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return err
	}
	if exists && !force {
		return fmt.Errorf("file already exists: %s (use --force to overwrite)", path)
	}

	content := fmt.Sprintf(specTemplate, name, language)
	if err := file.WriteFileAtomic(fs, path, []byte(content)); err != nil {
		return fmt.Errorf("write spec file: %w", err)
	}

	GetLogger().Info("created spec %s", path)
	fmt.Fprintf(w, "Created %s\n", path)
	return nil
}
