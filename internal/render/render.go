// Package render defines what the core hands to a presentation layer and a
// plain-text implementation of it for terminals.
package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"fjacquet/finance-tracker/internal/models"
	"fjacquet/finance-tracker/internal/views"

	"github.com/shopspring/decimal"
)

// TransactionRow is one line of the transaction list.
type TransactionRow struct {
	ID       models.TransactionID
	Period   models.Period
	IsIncome bool
	Line     string
}

// ReminderRow is one reminder with its list index.
type ReminderRow struct {
	Index int
	Text  string
	Done  bool
}

// Snapshot is everything a view needs for one period (or all periods).
type Snapshot struct {
	Period       models.Period
	PeriodLabel  string
	Balance      string
	Currency     string
	Transactions []TransactionRow
	Chart        []views.ChartSlice
	Notes        []string
	Reminders    []ReminderRow
	Periods      []views.PeriodOption
}

// Sink consumes snapshots.
type Sink interface {
	Render(s Snapshot) error
}

// TextSink renders snapshots as aligned plain text.
type TextSink struct {
	w        io.Writer
	barWidth int
}

// NewTextSink creates a TextSink writing to w.
func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{w: w, barWidth: 20}
}

// Render writes the snapshot.
func (t *TextSink) Render(s Snapshot) error {
	tw := tabwriter.NewWriter(t.w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "Balance:\t%s\n", s.Balance)
	fmt.Fprintf(tw, "Period:\t%s\n", s.PeriodLabel)

	fmt.Fprintln(tw, "\nTransactions")
	if len(s.Transactions) == 0 {
		fmt.Fprintln(tw, "  (none)")
	}
	for _, row := range s.Transactions {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", row.Line, row.Period, row.ID)
	}

	fmt.Fprintln(tw, "\nExpenses by category")
	if len(s.Chart) == 0 {
		fmt.Fprintln(tw, "  (none)")
	}
	for _, slice := range s.Chart {
		fmt.Fprintf(tw, "  %s\t%s\t%s%%\t%s\n",
			slice.Category,
			models.NewMoney(slice.Amount, s.Currency),
			slice.Percent.StringFixed(2),
			t.bar(slice.Percent))
	}

	if len(s.Notes) > 0 {
		fmt.Fprintln(tw, "\nNotes")
		for i, note := range s.Notes {
			fmt.Fprintf(tw, "  %d.\t%s\n", i, note)
		}
	}

	if len(s.Reminders) > 0 {
		fmt.Fprintln(tw, "\nReminders")
		for _, r := range s.Reminders {
			mark := " "
			if r.Done {
				mark = "x"
			}
			fmt.Fprintf(tw, "  [%s] %d.\t%s\n", mark, r.Index, r.Text)
		}
	}

	if len(s.Periods) > 0 {
		labels := make([]string, 0, len(s.Periods))
		for _, p := range s.Periods {
			labels = append(labels, fmt.Sprintf("%s (%s)", p.Value, p.Label))
		}
		fmt.Fprintf(tw, "\nPeriods:\t%s\n", strings.Join(labels, ", "))
	}

	return tw.Flush()
}

func (t *TextSink) bar(percent decimal.Decimal) string {
	n := percent.Mul(decimal.NewFromInt(int64(t.barWidth))).Div(decimal.NewFromInt(100)).Round(0).IntPart()
	if n < 0 {
		n = 0
	}
	return strings.Repeat("#", int(n))
}
