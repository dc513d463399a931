// Package show prints the overview of a month.
package show

import (
	"fjacquet/finance-tracker/cmd/root"
	"fjacquet/finance-tracker/internal/container"
	"fjacquet/finance-tracker/internal/render"

	"github.com/spf13/cobra"
)

var period string

// Cmd renders the balance, transactions, chart, notes and reminders
var Cmd = &cobra.Command{
	Use:   "show",
	Short: "Show the overview of a month",
	Long: `Show the balance, the month's transactions (newest first), the expense
breakdown by category, the month's notes and all reminders. Pass
--period all to list every transaction.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := root.ParsePeriod(period, true)
		if err != nil {
			return err
		}
		return root.RunSession(cmd, false, func(c *container.Container) error {
			return c.GetTracker().Render(p, render.NewTextSink(cmd.OutOrStdout()))
		})
	},
}

func init() {
	Cmd.Flags().StringVarP(&period, "period", "p", "", "Month as YYYY-MM or \"all\" (default: current month)")
}
