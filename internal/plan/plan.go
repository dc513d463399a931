// Package plan stores per-period spending limits and savings targets and
// evaluates them against ledger totals.
//
// Savings targets are allocations: setting one debits the ledger balance by
// the target amount and clearing it credits the amount back. Overwriting a
// target releases the previous allocation first.
package plan

import (
	"sort"

	"fjacquet/finance-tracker/internal/financeerror"
	"fjacquet/finance-tracker/internal/logging"
	"fjacquet/finance-tracker/internal/models"
	"fjacquet/finance-tracker/internal/validation"

	"github.com/shopspring/decimal"
)

// BalanceAdjuster receives savings allocations. *ledger.Ledger implements it.
type BalanceAdjuster interface {
	Adjust(delta decimal.Decimal)
}

// Totals provides per-period sums. *ledger.Ledger implements it.
type Totals interface {
	TotalForPeriod(period models.Period, flow models.Flow) decimal.Decimal
}

// Store holds limits and savings targets keyed by period.
type Store struct {
	limits   map[models.Period]decimal.Decimal
	savings  map[models.Period]decimal.Decimal
	adjuster BalanceAdjuster
	logger   logging.Logger
}

// NewStore creates an empty plan store that books savings allocations on adjuster.
func NewStore(adjuster BalanceAdjuster, logger logging.Logger) *Store {
	return &Store{
		limits:   map[models.Period]decimal.Decimal{},
		savings:  map[models.Period]decimal.Decimal{},
		adjuster: adjuster,
		logger:   logging.OrDiscard(logger),
	}
}

// Restore rebuilds a store from imported maps without touching the balance;
// the ledger restored alongside already accounts for the allocations.
func Restore(adjuster BalanceAdjuster, logger logging.Logger, limits, savings map[models.Period]decimal.Decimal) *Store {
	s := NewStore(adjuster, logger)
	for p, v := range limits {
		s.limits[p] = v
	}
	for p, v := range savings {
		s.savings[p] = v
	}
	return s
}

func validatePeriodAmount(period models.Period, amount decimal.Decimal) error {
	if err := period.Validate(); err != nil {
		return err
	}
	return validation.Amount(amount)
}

// SetLimit stores or overwrites the spending ceiling for period.
func (s *Store) SetLimit(period models.Period, amount decimal.Decimal) error {
	if err := validatePeriodAmount(period, amount); err != nil {
		return err
	}
	s.limits[period] = amount
	s.logger.Debug("Limit set",
		logging.F(logging.FieldPeriod, period),
		logging.F(logging.FieldAmount, amount.String()))
	return nil
}

// RemoveLimit deletes the ceiling for period.
func (s *Store) RemoveLimit(period models.Period) error {
	if _, ok := s.limits[period]; !ok {
		return financeerror.Missing("limit for", string(period))
	}
	delete(s.limits, period)
	return nil
}

// Limit returns the ceiling for period, if any.
func (s *Store) Limit(period models.Period) (decimal.Decimal, bool) {
	v, ok := s.limits[period]
	return v, ok
}

// SetSavings sets aside amount for period, debiting the balance.
func (s *Store) SetSavings(period models.Period, amount decimal.Decimal) error {
	if err := validatePeriodAmount(period, amount); err != nil {
		return err
	}
	if prev, ok := s.savings[period]; ok {
		s.adjust(prev)
	}
	s.savings[period] = amount
	s.adjust(amount.Neg())

	s.logger.Debug("Savings target set",
		logging.F(logging.FieldPeriod, period),
		logging.F(logging.FieldAmount, amount.String()))
	return nil
}

// ClearSavings removes the target for period and credits it back.
func (s *Store) ClearSavings(period models.Period) error {
	amount, ok := s.savings[period]
	if !ok {
		return financeerror.Missing("savings target for", string(period))
	}
	delete(s.savings, period)
	s.adjust(amount)

	s.logger.Debug("Savings target cleared",
		logging.F(logging.FieldPeriod, period),
		logging.F(logging.FieldAmount, amount.String()))
	return nil
}

func (s *Store) adjust(delta decimal.Decimal) {
	if s.adjuster != nil {
		s.adjuster.Adjust(delta)
	}
}

// Savings returns the target for period, if any.
func (s *Store) Savings(period models.Period) (decimal.Decimal, bool) {
	v, ok := s.savings[period]
	return v, ok
}

// TotalAllocated sums all active savings targets.
func (s *Store) TotalAllocated() decimal.Decimal {
	total := decimal.Zero
	for _, v := range s.savings {
		total = total.Add(v)
	}
	return total
}

// Limits returns a copy of all limits.
func (s *Store) Limits() map[models.Period]decimal.Decimal {
	return copyMap(s.limits)
}

// SavingsTargets returns a copy of all savings targets.
func (s *Store) SavingsTargets() map[models.Period]decimal.Decimal {
	return copyMap(s.savings)
}

// Periods returns every period that has a limit or a savings target, sorted.
func (s *Store) Periods() []models.Period {
	seen := map[models.Period]struct{}{}
	for p := range s.limits {
		seen[p] = struct{}{}
	}
	for p := range s.savings {
		seen[p] = struct{}{}
	}
	out := make([]models.Period, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func copyMap(in map[models.Period]decimal.Decimal) map[models.Period]decimal.Decimal {
	out := make(map[models.Period]decimal.Decimal, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
