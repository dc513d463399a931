// Package reminder handles the reminder list commands
package reminder

import (
	"fmt"
	"strings"

	"fjacquet/finance-tracker/cmd/root"
	"fjacquet/finance-tracker/internal/container"
	"fjacquet/finance-tracker/internal/tracker"

	"github.com/spf13/cobra"
)

// Cmd represents the reminder command
var Cmd = &cobra.Command{
	Use:   "reminder",
	Short: "Manage the reminder list",
	Long:  `Add reminders, mark them done or not done, remove and list them.`,
}

var addCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add a reminder",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		return root.RunSession(cmd, true, func(c *container.Container) error {
			t := c.GetTracker()
			if err := t.AddReminder(text); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reminder %d added\n", len(t.Reminders())-1)
			return nil
		})
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List reminders",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return root.RunSession(cmd, false, func(c *container.Container) error {
			out := cmd.OutOrStdout()
			reminders := c.GetTracker().Reminders()
			if len(reminders) == 0 {
				fmt.Fprintln(out, "No reminders")
				return nil
			}
			for i, r := range reminders {
				mark := " "
				if r.Done {
					mark = "x"
				}
				fmt.Fprintf(out, "[%s] %d. %s\n", mark, i, r.Text)
			}
			return nil
		})
	},
}

// indexCommand builds a command that applies op to the reminder at the
// index given as its only argument.
func indexCommand(use, short, done string, op func(t *tracker.Tracker, index int) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <index>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := root.ParseIndex(args[0])
			if err != nil {
				return err
			}
			return root.RunSession(cmd, true, func(c *container.Container) error {
				if err := op(c.GetTracker(), index); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Reminder %d %s\n", index, done)
				return nil
			})
		},
	}
}

func init() {
	Cmd.AddCommand(
		addCmd,
		indexCommand("done", "Mark a reminder as done", "marked done", (*tracker.Tracker).MarkReminderDone),
		indexCommand("undo", "Mark a reminder as not done", "marked not done", (*tracker.Tracker).MarkReminderUndone),
		indexCommand("remove", "Remove a reminder", "removed", (*tracker.Tracker).RemoveReminder),
		listCmd,
	)
}
