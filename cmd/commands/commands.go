// Package commands assembles the command tree under root.Cmd.
package commands

import (
	"sync"

	"fjacquet/finance-tracker/cmd/categories"
	"fjacquet/finance-tracker/cmd/data"
	"fjacquet/finance-tracker/cmd/note"
	"fjacquet/finance-tracker/cmd/plan"
	"fjacquet/finance-tracker/cmd/reminder"
	"fjacquet/finance-tracker/cmd/root"
	"fjacquet/finance-tracker/cmd/show"
	"fjacquet/finance-tracker/cmd/transaction"

	"github.com/spf13/cobra"
)

var once sync.Once

// Register initializes the root flags and adds every subcommand. It is safe
// to call more than once.
func Register() *cobra.Command {
	once.Do(func() {
		root.Init()

		root.Cmd.AddCommand(transaction.IncomeCmd)
		root.Cmd.AddCommand(transaction.ExpenseCmd)
		root.Cmd.AddCommand(transaction.RemoveCmd)
		root.Cmd.AddCommand(transaction.ListCmd)
		root.Cmd.AddCommand(plan.LimitCmd)
		root.Cmd.AddCommand(plan.SavingsCmd)
		root.Cmd.AddCommand(plan.CheckCmd)
		root.Cmd.AddCommand(note.Cmd)
		root.Cmd.AddCommand(reminder.Cmd)
		root.Cmd.AddCommand(show.Cmd)
		root.Cmd.AddCommand(data.ExportCmd)
		root.Cmd.AddCommand(data.ImportCmd)
		root.Cmd.AddCommand(data.ReportCmd)
		root.Cmd.AddCommand(categories.Cmd)
	})
	return root.Cmd
}
