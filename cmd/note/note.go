// Package note handles the per-month note commands
package note

import (
	"fmt"
	"strings"

	"fjacquet/finance-tracker/cmd/root"
	"fjacquet/finance-tracker/internal/container"
	"fjacquet/finance-tracker/internal/models"

	"github.com/spf13/cobra"
)

var period string

// Cmd represents the note command
var Cmd = &cobra.Command{
	Use:   "note",
	Short: "Manage notes attached to a month",
	Long:  `Add, list and remove free-text notes attached to a month.`,
}

var addCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add a note to a month",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := root.ParsePeriod(period, false)
		if err != nil {
			return err
		}
		text := strings.Join(args, " ")
		return root.RunSession(cmd, true, func(c *container.Container) error {
			if err := c.GetTracker().AddNote(p, text); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Note added to %s\n", p)
			return nil
		})
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the notes of a month, or of every month with --period all",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := root.ParsePeriod(period, true)
		if err != nil {
			return err
		}
		return root.RunSession(cmd, false, func(c *container.Container) error {
			t := c.GetTracker()
			out := cmd.OutOrStdout()

			periods := []models.Period{p}
			if p == models.AllPeriods {
				periods = t.NotePeriods()
			}
			printed := 0
			for _, np := range periods {
				for i, text := range t.Notes(np) {
					fmt.Fprintf(out, "%s\t%d\t%s\n", np, i, text)
					printed++
				}
			}
			if printed == 0 {
				fmt.Fprintln(out, "No notes")
			}
			return nil
		})
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove <index>",
	Short: "Remove a note of a month by its index",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := root.ParsePeriod(period, false)
		if err != nil {
			return err
		}
		index, err := root.ParseIndex(args[0])
		if err != nil {
			return err
		}
		return root.RunSession(cmd, true, func(c *container.Container) error {
			if err := c.GetTracker().RemoveNote(p, index); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Note %d removed from %s\n", index, p)
			return nil
		})
	},
}

func init() {
	Cmd.PersistentFlags().StringVarP(&period, "period", "p", "", "Month as YYYY-MM (default: current month)")
	Cmd.AddCommand(addCmd, listCmd, removeCmd)
}
