package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/spendscope-dev/spendscope/internal/rules"
)

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new spendscope workspace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, absDir)
		},
	}

	return cmd
}

func runInit(cmd *cobra.Command, dir string) error {
	// Create the statements directory.
	if err := os.MkdirAll(filepath.Join(dir, "statements"), 0o755); err != nil {
		return fmt.Errorf("creating statements directory: %w", err)
	}

	// Write the built-in category schema so it can be customized.
	if err := rules.Save(filepath.Join(dir, "categories.yaml"), rules.DefaultSchema()); err != nil {
		return fmt.Errorf("writing category schema: %w", err)
	}

	// Write statements/.gitkeep.
	if err := os.WriteFile(filepath.Join(dir, "statements", ".gitkeep"), []byte{}, 0o644); err != nil {
		return fmt.Errorf("writing .gitkeep: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized spendscope workspace at %s\n", dir)
	fmt.Fprintln(cmd.OutOrStdout(), "Drop card statement CSVs into statements/ and run 'spendscope dashboard'.")
	return nil
}
