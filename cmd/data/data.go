// Package data holds the export, import and report commands.
package data

import (
	"fmt"

	"fjacquet/finance-tracker/cmd/root"
	"fjacquet/finance-tracker/internal/codec"
	"fjacquet/finance-tracker/internal/container"
	"fjacquet/finance-tracker/internal/fileutils"
	"fjacquet/finance-tracker/internal/models"
	"fjacquet/finance-tracker/internal/report"

	"github.com/spf13/cobra"
)

// Stdout as an --output value writes to the terminal.
const Stdout = "-"

var (
	exportOutput string
	reportOutput string
	period       string
	kind         string
	format       string
)

// ExportCmd writes the whole state as a JSON document
var ExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all data to a JSON file",
	Long: `Export the balance, transactions, savings targets, spending limits,
notes and reminders to a JSON file that import can read back.`,
	Args: cobra.NoArgs,
	RunE: exportFunc,
}

// ImportCmd replaces the state with the content of a JSON document
var ImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import data from a JSON file, replacing the current data",
	Long: `Import a JSON document written by export. The current data is only
replaced when the whole document is valid.`,
	Args: cobra.ExactArgs(1),
	RunE: importFunc,
}

// ReportCmd writes transactions or the category breakdown as CSV or JSON
var ReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write a CSV or JSON report of a month",
	Long: `Write the transactions or the expense breakdown of a month as CSV, or
the full report as JSON. Pass --period all to cover every month.`,
	Args: cobra.NoArgs,
	RunE: reportFunc,
}

func init() {
	ExportCmd.Flags().StringVarP(&exportOutput, "output", "o", codec.DefaultFileName, "Output file, or - for stdout")

	ReportCmd.Flags().StringVarP(&period, "period", "p", "", "Month as YYYY-MM or \"all\" (default: current month)")
	ReportCmd.Flags().StringVarP(&kind, "kind", "k", report.KindTransactions, "Report content: transactions or breakdown")
	ReportCmd.Flags().StringVarP(&format, "format", "f", report.FormatCSV, "Output format: csv or json")
	ReportCmd.Flags().StringVarP(&reportOutput, "output", "o", Stdout, "Output file, or - for stdout")
}

func exportFunc(cmd *cobra.Command, args []string) error {
	return root.RunSession(cmd, false, func(c *container.Container) error {
		data, err := c.GetTracker().Export()
		if err != nil {
			return err
		}
		if err := write(cmd, exportOutput, data); err != nil {
			return err
		}
		if exportOutput != Stdout {
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", exportOutput)
		}
		return nil
	})
}

func importFunc(cmd *cobra.Command, args []string) error {
	data, err := fileutils.ReadFile(args[0])
	if err != nil {
		return err
	}
	// The current data file is replaced as a whole, so it is not loaded
	// first. A corrupt data file can be repaired this way.
	return root.ReplaceSession(cmd, func(c *container.Container) error {
		t := c.GetTracker()
		if err := t.Import(data); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d transactions from %s, balance %s\n",
			len(t.Transactions(models.AllPeriods, models.FlowAll)),
			args[0],
			models.NewMoney(t.Balance(), t.Currency()))
		return nil
	})
}

func reportFunc(cmd *cobra.Command, args []string) error {
	p, err := root.ParsePeriod(period, true)
	if err != nil {
		return err
	}
	return root.RunSession(cmd, false, func(c *container.Container) error {
		r := report.Build(c.GetTracker().Transactions(models.AllPeriods, models.FlowAll), p)
		data, err := c.GetReportGenerator().Generate(r, kind, format)
		if err != nil {
			return err
		}
		return write(cmd, reportOutput, data)
	})
}

func write(cmd *cobra.Command, path string, data []byte) error {
	if path == Stdout || path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	return fileutils.WriteFile(path, data, 0644)
}
