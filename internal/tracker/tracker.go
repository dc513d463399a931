// Package tracker is the application root. A Tracker owns the ledger, the
// plan store and the annotations, serializes every access with one mutex,
// and reports budget alerts to an alert.Sink after each mutation.
package tracker

import (
	"strings"
	"sync"

	"fjacquet/finance-tracker/internal/alert"
	"fjacquet/finance-tracker/internal/annotations"
	"fjacquet/finance-tracker/internal/ledger"
	"fjacquet/finance-tracker/internal/logging"
	"fjacquet/finance-tracker/internal/models"
	"fjacquet/finance-tracker/internal/plan"
	"fjacquet/finance-tracker/internal/views"

	"github.com/shopspring/decimal"
)

// Tracker is safe for concurrent use.
type Tracker struct {
	mu sync.Mutex

	ledger *ledger.Ledger
	plans  *plan.Store
	notes  *annotations.Store

	alerts     alert.Sink
	logger     logging.Logger
	currency   string
	locale     string
	categories []string
	ledgerOpts []ledger.Option
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithAlertSink sets where budget and import alerts go. The default
// discards them.
func WithAlertSink(sink alert.Sink) Option {
	return func(t *Tracker) {
		if sink != nil {
			t.alerts = sink
		}
	}
}

// WithCurrency sets the currency symbol used in formatted amounts.
func WithCurrency(currency string) Option {
	return func(t *Tracker) {
		if currency != "" {
			t.currency = currency
		}
	}
}

// WithLocale sets the locale for month labels.
func WithLocale(locale string) Option {
	return func(t *Tracker) {
		if locale != "" {
			t.locale = locale
		}
	}
}

// WithCategories sets the preset expense categories. Expenses outside the
// presets are still recorded, with a warning.
func WithCategories(categories []string) Option {
	return func(t *Tracker) {
		t.categories = append([]string(nil), categories...)
	}
}

// WithLedgerOptions passes options to every ledger the tracker builds,
// including the ones restored on import.
func WithLedgerOptions(opts ...ledger.Option) Option {
	return func(t *Tracker) {
		t.ledgerOpts = append(t.ledgerOpts, opts...)
	}
}

// New creates a tracker with empty state.
func New(logger logging.Logger, opts ...Option) *Tracker {
	t := &Tracker{
		alerts:   alert.Discard,
		logger:   logging.OrDiscard(logger),
		currency: models.DefaultCurrency,
		locale:   "en",
	}
	for _, opt := range opts {
		opt(t)
	}
	t.ledger = ledger.New(t.logger, t.ledgerOpts...)
	t.plans = plan.NewStore(t.ledger, t.logger)
	t.notes = annotations.NewStore(t.logger)
	return t
}

// Currency returns the display currency.
func (t *Tracker) Currency() string {
	return t.currency
}

// Locale returns the display locale.
func (t *Tracker) Locale() string {
	return t.locale
}

// notify sends alerts outside the lock so a sink may call back into the
// tracker.
func (t *Tracker) notify(alerts []alert.Alert) {
	for _, a := range alerts {
		t.alerts.Notify(a)
	}
}

// periodAlerts must be called with t.mu held.
func (t *Tracker) periodAlerts(period models.Period) []alert.Alert {
	return views.PeriodAlerts(period, t.plans, t.ledger, t.currency)
}

// AddIncome records income for period.
func (t *Tracker) AddIncome(amount decimal.Decimal, period models.Period) (models.Transaction, error) {
	t.mu.Lock()
	tx, err := t.ledger.AddIncome(amount, period)
	var alerts []alert.Alert
	if err == nil {
		alerts = t.periodAlerts(tx.Date)
	}
	t.mu.Unlock()

	t.notify(alerts)
	return tx, err
}

// AddExpense records an expense for period under category.
func (t *Tracker) AddExpense(amount decimal.Decimal, category string, period models.Period) (models.Transaction, error) {
	category = strings.TrimSpace(category)

	t.mu.Lock()
	tx, err := t.ledger.AddExpense(amount, category, period)
	var alerts []alert.Alert
	if err == nil {
		if !t.knownCategory(category) {
			t.logger.Warn("Expense recorded under a category outside the presets",
				logging.F(logging.FieldCategory, category),
				logging.F(logging.FieldTransactionID, tx.ID))
		}
		alerts = t.periodAlerts(tx.Date)
	}
	t.mu.Unlock()

	t.notify(alerts)
	return tx, err
}

func (t *Tracker) knownCategory(category string) bool {
	if len(t.categories) == 0 {
		return true
	}
	for _, c := range t.categories {
		if strings.EqualFold(c, category) {
			return true
		}
	}
	return false
}

// RemoveTransaction deletes the transaction with id.
func (t *Tracker) RemoveTransaction(id models.TransactionID) (models.Transaction, error) {
	t.mu.Lock()
	tx, err := t.ledger.Remove(id)
	var alerts []alert.Alert
	if err == nil {
		alerts = t.periodAlerts(tx.Date)
	}
	t.mu.Unlock()

	t.notify(alerts)
	return tx, err
}

// Transactions returns the transactions of period matching flow, newest
// first. models.AllPeriods selects every period.
func (t *Tracker) Transactions(period models.Period, flow models.Flow) []models.Transaction {
	t.mu.Lock()
	defer t.mu.Unlock()

	var out []models.Transaction
	for _, tx := range views.NewestFirst(t.ledger.Transactions()) {
		if period != models.AllPeriods && tx.Date != period {
			continue
		}
		if flow.Matches(tx) {
			out = append(out, tx)
		}
	}
	return out
}

// Balance returns the running balance.
func (t *Tracker) Balance() decimal.Decimal {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ledger.Balance()
}

// TotalForPeriod sums the matching transactions of period.
func (t *Tracker) TotalForPeriod(period models.Period, flow models.Flow) decimal.Decimal {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ledger.TotalForPeriod(period, flow)
}

// PeriodsInUse lists the transaction periods in chronological order.
func (t *Tracker) PeriodsInUse() []models.Period {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ledger.PeriodsInUse()
}

// CategoryBreakdown groups the expenses of period by category.
func (t *Tracker) CategoryBreakdown(period models.Period) []views.CategoryTotal {
	t.mu.Lock()
	defer t.mu.Unlock()
	return views.CategoryBreakdown(t.ledger.Transactions(), period)
}
