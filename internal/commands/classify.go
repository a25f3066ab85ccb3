package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newClassifyCommand() *cobra.Command {
	var schemaPath string

	cmd := &cobra.Command{
		Use:   "classify <description>...",
		Short: "Show which category a transaction description falls into",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := sessionFlags{schema: schemaPath}
			engine, err := flags.engine()
			if err != nil {
				return err
			}

			description := strings.Join(args, " ")
			label := engine.Classify(description)
			cfg := engine.DisplayConfig(label)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", cfg.Icon, categoryStyle(cfg.Color).Render(label))
			if display := engine.DisplayCategory(label); display != label {
				fmt.Fprintf(out, "grouped under %s\n", display)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&schemaPath, "schema", "", "category schema YAML (default: built-in categories)")
	return cmd
}
