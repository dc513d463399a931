package tracker

import (
	"fjacquet/finance-tracker/internal/models"
	"fjacquet/finance-tracker/internal/render"
	"fjacquet/finance-tracker/internal/views"
)

// AllPeriodsLabel is shown when no single period is selected.
const AllPeriodsLabel = "All periods"

// Snapshot collects the derived views for period. models.AllPeriods shows
// every transaction and no notes.
func (t *Tracker) Snapshot(period models.Period) render.Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := render.Snapshot{
		Period:      period,
		PeriodLabel: AllPeriodsLabel,
		Balance:     views.CurrentBalance(t.ledger.Balance(), t.currency),
		Currency:    t.currency,
		Periods:     views.PeriodOptions(t.ledger.PeriodsInUse(), t.locale),
	}
	if period != models.AllPeriods {
		s.PeriodLabel = period.Label(t.locale)
		s.Notes = t.notes.Notes(period)
	}

	transactions := t.ledger.Transactions()
	for _, tx := range views.NewestFirst(transactions) {
		if period != models.AllPeriods && tx.Date != period {
			continue
		}
		s.Transactions = append(s.Transactions, render.TransactionRow{
			ID:       tx.ID,
			Period:   tx.Date,
			IsIncome: tx.IsIncome,
			Line:     views.TransactionLine(tx, t.currency),
		})
	}
	s.Chart = views.ChartSlices(views.CategoryBreakdown(transactions, period))

	for i, r := range t.notes.Reminders() {
		s.Reminders = append(s.Reminders, render.ReminderRow{Index: i, Text: r.Text, Done: r.Done})
	}
	return s
}

// Render hands the snapshot of period to sink.
func (t *Tracker) Render(period models.Period, sink render.Sink) error {
	return sink.Render(t.Snapshot(period))
}
