package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/runestone-dev/runestone/internal/validator"
	"github.com/runestone-dev/runestone/internal/watcher"
)

func newWatchCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "watch <dir>",
		Short: "Watch a directory and re-validate specs on change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// The flag wins over config when given explicitly.
			if !cmd.Flags().Changed("strict") && globalConfig != nil && globalConfig.Strict() {
				strict = true
			}
			return runWatch(cmd.OutOrStdout(), args[0], strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Enable strict validation")
	return cmd
}

func runWatch(w io.Writer, dir string, strict bool) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("not a directory: %s", dir)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fw, err := watcher.New(dir, strict, watcher.DefaultDebounceWindow, func(run *validator.RunResult) {
		GetLogger().Info("run %s: %d passed, %d failed", run.ID, run.Summary.Passed, run.Summary.Failed)
		fmt.Fprintf(w, "[%s] %d passed, %d failed, %d total\n",
			run.GeneratedAt, run.Summary.Passed, run.Summary.Failed, run.Summary.Files)
	})
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}

	fmt.Fprintf(w, "Watching %s (Ctrl-C to stop)\n", dir)
	return fw.Run(ctx)
}
