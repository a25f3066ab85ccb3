package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newCategoriesCommand() *cobra.Command {
	var schemaPath string

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the category rules in classification order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := sessionFlags{schema: schemaPath}
			engine, err := flags.engine()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-4s %-28s %s\n", "PRI", "CATEGORY", "MATCHES")
			for _, r := range engine.Rules() {
				var parts []string
				if len(r.Keywords) > 0 {
					parts = append(parts, fmt.Sprintf("%d keywords", len(r.Keywords)))
				}
				if len(r.Patterns) > 0 {
					parts = append(parts, fmt.Sprintf("%d patterns", len(r.Patterns)))
				}
				if len(r.Excludes) > 0 {
					parts = append(parts, fmt.Sprintf("%d excludes", len(r.Excludes)))
				}

				name := r.Label
				if display := engine.DisplayCategory(r.Label); display != r.Label {
					name = fmt.Sprintf("%s (in %s)", r.Label, display)
				}
				fmt.Fprintf(out, "%-4d %s %s %s\n",
					r.Priority, r.Icon, categoryStyle(r.Color).Render(fmt.Sprintf("%-28s", name)),
					mutedStyle.Render(strings.Join(parts, ", ")))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&schemaPath, "schema", "", "category schema YAML (default: built-in categories)")
	return cmd
}
