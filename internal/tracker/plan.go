package tracker

import (
	"fjacquet/finance-tracker/internal/alert"
	"fjacquet/finance-tracker/internal/models"
	"fjacquet/finance-tracker/internal/plan"

	"github.com/shopspring/decimal"
)

// SetLimit sets the spending limit of period.
func (t *Tracker) SetLimit(period models.Period, amount decimal.Decimal) error {
	t.mu.Lock()
	err := t.plans.SetLimit(period, amount)
	var alerts []alert.Alert
	if err == nil {
		alerts = t.periodAlerts(period)
	}
	t.mu.Unlock()

	t.notify(alerts)
	return err
}

// RemoveLimit drops the spending limit of period.
func (t *Tracker) RemoveLimit(period models.Period) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.plans.RemoveLimit(period)
}

// Limit returns the spending limit of period.
func (t *Tracker) Limit(period models.Period) (decimal.Decimal, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.plans.Limit(period)
}

// SetSavings sets the savings target of period and moves the amount out of
// the balance.
func (t *Tracker) SetSavings(period models.Period, amount decimal.Decimal) error {
	t.mu.Lock()
	err := t.plans.SetSavings(period, amount)
	var alerts []alert.Alert
	if err == nil {
		alerts = t.periodAlerts(period)
	}
	t.mu.Unlock()

	t.notify(alerts)
	return err
}

// ClearSavings removes the savings target of period and returns the amount
// to the balance.
func (t *Tracker) ClearSavings(period models.Period) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.plans.ClearSavings(period)
}

// Savings returns the savings target of period.
func (t *Tracker) Savings(period models.Period) (decimal.Decimal, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.plans.Savings(period)
}

// CheckLimitExceeded evaluates the spending limit of period.
func (t *Tracker) CheckLimitExceeded(period models.Period) plan.LimitStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.plans.CheckLimitExceeded(period, t.ledger)
}

// CheckSavingsAchievable evaluates the savings target of period.
func (t *Tracker) CheckSavingsAchievable(period models.Period) plan.SavingsStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.plans.CheckSavingsAchievable(period, t.ledger)
}

// Alerts evaluates period without notifying the sink.
func (t *Tracker) Alerts(period models.Period) []alert.Alert {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.periodAlerts(period)
}
