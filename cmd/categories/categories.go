// Package categories lists the expense category presets.
package categories

import (
	"fmt"
	"text/tabwriter"

	"fjacquet/finance-tracker/cmd/root"
	"fjacquet/finance-tracker/internal/container"

	"github.com/spf13/cobra"
)

// Cmd prints the configured category presets
var Cmd = &cobra.Command{
	Use:   "categories",
	Short: "List the expense category presets",
	Long: `List the expense category presets loaded from categories.file. Expenses
may use other categories too; those are recorded with a warning in the log.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return root.RunSession(cmd, false, func(c *container.Container) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, preset := range c.GetCategories() {
				fmt.Fprintf(tw, "%s\t%s\n", preset.Name, preset.Description)
			}
			return tw.Flush()
		})
	},
}
