package plan

import (
	"fjacquet/finance-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// LimitStatus is the outcome of comparing a period's expenses to its limit.
type LimitStatus struct {
	Period   models.Period
	HasLimit bool
	Limit    decimal.Decimal
	Spent    decimal.Decimal
	Exceeded bool
	// Over is Spent - Limit when exceeded, zero otherwise.
	Over decimal.Decimal
}

// SavingsStatus is the outcome of comparing a period's net income to its target.
type SavingsStatus struct {
	Period     models.Period
	HasTarget  bool
	Target     decimal.Decimal
	Net        decimal.Decimal
	Achievable bool
}

// CheckLimitExceeded reports whether expenses in period are strictly above
// its limit. A period without a limit is never exceeded.
func (s *Store) CheckLimitExceeded(period models.Period, totals Totals) LimitStatus {
	status := LimitStatus{
		Period: period,
		Limit:  decimal.Zero,
		Spent:  totals.TotalForPeriod(period, models.FlowExpense),
		Over:   decimal.Zero,
	}

	limit, ok := s.limits[period]
	if !ok {
		return status
	}
	status.HasLimit = true
	status.Limit = limit
	if status.Spent.GreaterThan(limit) {
		status.Exceeded = true
		status.Over = status.Spent.Sub(limit)
	}
	return status
}

// CheckSavingsAchievable reports whether income minus expenses in period
// covers its savings target. Without a target the result is not achievable.
func (s *Store) CheckSavingsAchievable(period models.Period, totals Totals) SavingsStatus {
	income := totals.TotalForPeriod(period, models.FlowIncome)
	expense := totals.TotalForPeriod(period, models.FlowExpense)
	status := SavingsStatus{
		Period: period,
		Target: decimal.Zero,
		Net:    income.Sub(expense),
	}

	target, ok := s.savings[period]
	if !ok {
		return status
	}
	status.HasTarget = true
	status.Target = target
	status.Achievable = status.Net.GreaterThanOrEqual(target)
	return status
}
