// Package transaction holds the commands that record, remove and list
// income and expense entries.
package transaction

import (
	"fmt"
	"strings"

	"fjacquet/finance-tracker/cmd/root"
	"fjacquet/finance-tracker/internal/container"
	"fjacquet/finance-tracker/internal/models"
	"fjacquet/finance-tracker/internal/views"

	"github.com/spf13/cobra"
)

var (
	period   string
	flowType string
)

// IncomeCmd records an income entry
var IncomeCmd = &cobra.Command{
	Use:   "income <amount>",
	Short: "Record income",
	Long:  `Record an income entry for a month. The amount must be positive.`,
	Args:  cobra.ExactArgs(1),
	RunE:  incomeFunc,
}

// ExpenseCmd records an expense entry
var ExpenseCmd = &cobra.Command{
	Use:   "expense <amount> <category>",
	Short: "Record an expense",
	Long:  `Record an expense for a month under a category. The amount must be positive.`,
	Args:  cobra.MinimumNArgs(2),
	RunE:  expenseFunc,
}

// RemoveCmd deletes a transaction by id
var RemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a transaction",
	Long:  `Remove a transaction by its id and reverse its effect on the balance.`,
	Args:  cobra.ExactArgs(1),
	RunE:  removeFunc,
}

// ListCmd lists transactions
var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions, newest first",
	Long:  `List the transactions of a month (or of all months with --period all), newest first.`,
	Args:  cobra.NoArgs,
	RunE:  listFunc,
}

func init() {
	for _, cmd := range []*cobra.Command{IncomeCmd, ExpenseCmd, ListCmd} {
		cmd.Flags().StringVarP(&period, "period", "p", "", "Month as YYYY-MM (default: current month)")
	}
	ListCmd.Flags().StringVarP(&flowType, "type", "t", "all", "Transaction type: all, income or expense")
}

func incomeFunc(cmd *cobra.Command, args []string) error {
	amount, err := models.ParseAmount(args[0])
	if err != nil {
		return err
	}
	p, err := root.ParsePeriod(period, false)
	if err != nil {
		return err
	}

	return root.RunSession(cmd, true, func(c *container.Container) error {
		t := c.GetTracker()
		tx, err := t.AddIncome(amount, p)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added %s for %s (%s)\n", views.TransactionLine(tx, t.Currency()), tx.Date, tx.ID)
		return nil
	})
}

func expenseFunc(cmd *cobra.Command, args []string) error {
	amount, err := models.ParseAmount(args[0])
	if err != nil {
		return err
	}
	category := strings.Join(args[1:], " ")
	p, err := root.ParsePeriod(period, false)
	if err != nil {
		return err
	}

	return root.RunSession(cmd, true, func(c *container.Container) error {
		t := c.GetTracker()
		tx, err := t.AddExpense(amount, category, p)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added %s for %s (%s)\n", views.TransactionLine(tx, t.Currency()), tx.Date, tx.ID)
		return nil
	})
}

func removeFunc(cmd *cobra.Command, args []string) error {
	return root.RunSession(cmd, true, func(c *container.Container) error {
		t := c.GetTracker()
		tx, err := t.RemoveTransaction(models.TransactionID(args[0]))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", views.TransactionLine(tx, t.Currency()))
		return nil
	})
}

// ParseFlow maps the --type flag to a models.Flow.
func ParseFlow(s string) (models.Flow, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return models.FlowAll, nil
	case "income":
		return models.FlowIncome, nil
	case "expense", "expenses":
		return models.FlowExpense, nil
	default:
		return models.FlowAll, fmt.Errorf("invalid type %q: must be all, income or expense", s)
	}
}

func listFunc(cmd *cobra.Command, args []string) error {
	p, err := root.ParsePeriod(period, true)
	if err != nil {
		return err
	}
	flow, err := ParseFlow(flowType)
	if err != nil {
		return err
	}

	return root.RunSession(cmd, false, func(c *container.Container) error {
		t := c.GetTracker()
		out := cmd.OutOrStdout()
		txs := t.Transactions(p, flow)
		if len(txs) == 0 {
			fmt.Fprintln(out, "No transactions")
			return nil
		}
		for _, tx := range txs {
			fmt.Fprintf(out, "%s\t%s\t%s\n", tx.ID, tx.Date, views.TransactionLine(tx, t.Currency()))
		}
		return nil
	})
}
