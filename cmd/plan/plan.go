// Package plan holds the spending limit and savings target commands.
package plan

import (
	"fmt"

	"fjacquet/finance-tracker/cmd/root"
	"fjacquet/finance-tracker/internal/container"
	"fjacquet/finance-tracker/internal/models"

	"github.com/spf13/cobra"
)

var (
	period string
	remove bool
)

// LimitCmd sets or removes the spending limit of a month
var LimitCmd = &cobra.Command{
	Use:   "limit [amount]",
	Short: "Set or remove a monthly spending limit",
	Long: `Set the spending limit of a month. An alert is shown as soon as the
month's expenses go over it. Use --remove to drop the limit.`,
	Args: cobra.MaximumNArgs(1),
	RunE: limitFunc,
}

// SavingsCmd sets or clears the savings target of a month
var SavingsCmd = &cobra.Command{
	Use:   "savings [amount]",
	Short: "Set or clear a monthly savings target",
	Long: `Set the savings target of a month. The amount is set aside from the
balance until the target is cleared with --clear.`,
	Args: cobra.MaximumNArgs(1),
	RunE: savingsFunc,
}

// CheckCmd reports the limit and savings status of a month
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the spending limit and savings target of a month",
	Args:  cobra.NoArgs,
	RunE:  checkFunc,
}

func init() {
	for _, cmd := range []*cobra.Command{LimitCmd, SavingsCmd, CheckCmd} {
		cmd.Flags().StringVarP(&period, "period", "p", "", "Month as YYYY-MM (default: current month)")
	}
	LimitCmd.Flags().BoolVar(&remove, "remove", false, "Remove the limit instead of setting it")
	SavingsCmd.Flags().BoolVar(&remove, "clear", false, "Clear the target and return the amount to the balance")
}

func limitFunc(cmd *cobra.Command, args []string) error {
	p, err := root.ParsePeriod(period, false)
	if err != nil {
		return err
	}
	if remove {
		return root.RunSession(cmd, true, func(c *container.Container) error {
			if err := c.GetTracker().RemoveLimit(p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed spending limit for %s\n", p)
			return nil
		})
	}

	if len(args) != 1 {
		return fmt.Errorf("an amount is required unless --remove is set")
	}
	amount, err := models.ParseAmount(args[0])
	if err != nil {
		return err
	}
	return root.RunSession(cmd, true, func(c *container.Container) error {
		t := c.GetTracker()
		if err := t.SetLimit(p, amount); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Spending limit for %s set to %s\n", p, models.NewMoney(amount, t.Currency()))
		return nil
	})
}

func savingsFunc(cmd *cobra.Command, args []string) error {
	p, err := root.ParsePeriod(period, false)
	if err != nil {
		return err
	}
	if remove {
		return root.RunSession(cmd, true, func(c *container.Container) error {
			t := c.GetTracker()
			if err := t.ClearSavings(p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared savings target for %s, balance %s\n",
				p, models.NewMoney(t.Balance(), t.Currency()))
			return nil
		})
	}

	if len(args) != 1 {
		return fmt.Errorf("an amount is required unless --clear is set")
	}
	amount, err := models.ParseAmount(args[0])
	if err != nil {
		return err
	}
	return root.RunSession(cmd, true, func(c *container.Container) error {
		t := c.GetTracker()
		if err := t.SetSavings(p, amount); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Savings target for %s set to %s, balance %s\n",
			p, models.NewMoney(amount, t.Currency()), models.NewMoney(t.Balance(), t.Currency()))
		return nil
	})
}

func checkFunc(cmd *cobra.Command, args []string) error {
	p, err := root.ParsePeriod(period, false)
	if err != nil {
		return err
	}

	return root.RunSession(cmd, false, func(c *container.Container) error {
		t := c.GetTracker()
		out := cmd.OutOrStdout()
		currency := t.Currency()

		ls := t.CheckLimitExceeded(p)
		switch {
		case !ls.HasLimit:
			fmt.Fprintf(out, "Limit:   none for %s\n", p)
		case ls.Exceeded:
			fmt.Fprintf(out, "Limit:   %s spent of %s, exceeded by %s\n",
				models.NewMoney(ls.Spent, currency), models.NewMoney(ls.Limit, currency), models.NewMoney(ls.Over, currency))
		default:
			fmt.Fprintf(out, "Limit:   %s spent of %s\n",
				models.NewMoney(ls.Spent, currency), models.NewMoney(ls.Limit, currency))
		}

		ss := t.CheckSavingsAchievable(p)
		switch {
		case !ss.HasTarget:
			fmt.Fprintf(out, "Savings: no target for %s\n", p)
		case ss.Achievable:
			fmt.Fprintf(out, "Savings: target %s is achievable (net %s)\n",
				models.NewMoney(ss.Target, currency), models.NewMoney(ss.Net, currency))
		default:
			fmt.Fprintf(out, "Savings: target %s is not reached yet (net %s)\n",
				models.NewMoney(ss.Target, currency), models.NewMoney(ss.Net, currency))
		}
		return nil
	})
}
