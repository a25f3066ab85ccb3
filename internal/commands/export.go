package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/spendscope-dev/spendscope/internal/export"
)

func newExportCommand() *cobra.Command {
	var flags sessionFlags
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export transactions to CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, txns, err := flags.session(cmd)
			if err != nil {
				return err
			}

			path := output
			if path == "" {
				path = export.FileName(time.Now())
			}

			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("creating export file: %w", err)
			}
			defer f.Close()

			if err := export.Write(f, txns); err != nil {
				return fmt.Errorf("writing export: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d transactions to %s\n", len(txns), path)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: spending-export-M-D-YYYY.csv)")
	return cmd
}
