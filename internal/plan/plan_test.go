package plan

import (
	"testing"

	"fjacquet/finance-tracker/internal/financeerror"
	"fjacquet/finance-tracker/internal/ledger"
	"fjacquet/finance-tracker/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newLedgerAndStore(t *testing.T) (*ledger.Ledger, *Store) {
	t.Helper()
	l := ledger.New(nil)
	return l, NewStore(l, nil)
}

func TestSetLimit(t *testing.T) {
	l, s := newLedgerAndStore(t)

	require.NoError(t, s.SetLimit("2024-01", dec("150")))
	require.NoError(t, s.SetLimit("2024-01", dec("175")))

	limit, ok := s.Limit("2024-01")
	require.True(t, ok)
	assert.True(t, limit.Equal(dec("175")))
	assert.True(t, l.Balance().IsZero(), "limits never touch the balance")

	assert.ErrorIs(t, s.SetLimit("2024-01", decimal.Zero), financeerror.ErrValidation)
	assert.ErrorIs(t, s.SetLimit("", dec("10")), financeerror.ErrValidation)

	require.NoError(t, s.RemoveLimit("2024-01"))
	assert.ErrorIs(t, s.RemoveLimit("2024-01"), financeerror.ErrNotFound)
}

func TestSavingsDebitsAndCreditsBalance(t *testing.T) {
	l, s := newLedgerAndStore(t)
	_, err := l.AddIncome(dec("1000"), "2024-01")
	require.NoError(t, err)

	require.NoError(t, s.SetSavings("2024-01", dec("300")))
	assert.True(t, l.Balance().Equal(dec("700")))

	// Overwrite releases the old allocation first.
	require.NoError(t, s.SetSavings("2024-01", dec("100")))
	assert.True(t, l.Balance().Equal(dec("900")))
	assert.True(t, s.TotalAllocated().Equal(dec("100")))
	assert.True(t, l.Allocated().Equal(s.TotalAllocated()))

	require.NoError(t, s.ClearSavings("2024-01"))
	assert.True(t, l.Balance().Equal(dec("1000")))
	assert.True(t, s.TotalAllocated().IsZero())

	assert.ErrorIs(t, s.ClearSavings("2024-01"), financeerror.ErrNotFound)
	assert.True(t, l.Balance().Equal(dec("1000")))
}

func TestSetSavingsValidation(t *testing.T) {
	l, s := newLedgerAndStore(t)

	assert.ErrorIs(t, s.SetSavings("2024-01", dec("-1")), financeerror.ErrValidation)
	assert.ErrorIs(t, s.SetSavings("24-01", dec("1")), financeerror.ErrValidation)
	assert.True(t, l.Balance().IsZero())
	assert.Empty(t, s.SavingsTargets())
}

func TestCheckLimitExceeded(t *testing.T) {
	l, s := newLedgerAndStore(t)

	require.NoError(t, s.SetLimit("2024-01", dec("150")))
	_, err := l.AddExpense(dec("200"), "food", "2024-01")
	require.NoError(t, err)

	status := s.CheckLimitExceeded("2024-01", l)
	assert.True(t, status.HasLimit)
	assert.True(t, status.Exceeded)
	assert.True(t, status.Over.Equal(dec("50")), "over %s", status.Over)
	assert.True(t, status.Spent.Equal(dec("200")))

	noLimit := s.CheckLimitExceeded("2024-02", l)
	assert.False(t, noLimit.HasLimit)
	assert.False(t, noLimit.Exceeded)
	assert.True(t, noLimit.Over.IsZero())
}

func TestCheckLimitExceededIsStrict(t *testing.T) {
	l, s := newLedgerAndStore(t)
	require.NoError(t, s.SetLimit("2024-01", dec("200")))
	_, _ = l.AddExpense(dec("200"), "food", "2024-01")
	_, _ = l.AddIncome(dec("5000"), "2024-01")

	status := s.CheckLimitExceeded("2024-01", l)
	assert.False(t, status.Exceeded, "spending exactly the limit is not over it")
}

func TestCheckLimitExceededProperty(t *testing.T) {
	periods := []models.Period{"2024-01", "2024-02", "2024-03"}
	l, s := newLedgerAndStore(t)
	_, _ = l.AddExpense(dec("120"), "food", "2024-01")
	_, _ = l.AddExpense(dec("80"), "rent", "2024-02")
	require.NoError(t, s.SetLimit("2024-01", dec("100")))
	require.NoError(t, s.SetLimit("2024-02", dec("80")))

	for _, p := range periods {
		status := s.CheckLimitExceeded(p, l)
		limit, ok := s.Limit(p)
		expected := ok && l.TotalForPeriod(p, models.FlowExpense).GreaterThan(limit)
		assert.Equal(t, expected, status.Exceeded, "period %s", p)
	}
}

func TestCheckSavingsAchievable(t *testing.T) {
	l, s := newLedgerAndStore(t)
	_, _ = l.AddIncome(dec("1000"), "2024-01")
	_, _ = l.AddExpense(dec("600"), "rent", "2024-01")

	require.NoError(t, s.SetSavings("2024-01", dec("400")))
	status := s.CheckSavingsAchievable("2024-01", l)
	assert.True(t, status.HasTarget)
	assert.True(t, status.Achievable)
	assert.True(t, status.Net.Equal(dec("400")))

	require.NoError(t, s.SetSavings("2024-01", dec("401")))
	assert.False(t, s.CheckSavingsAchievable("2024-01", l).Achievable)

	none := s.CheckSavingsAchievable("2024-05", l)
	assert.False(t, none.HasTarget)
	assert.False(t, none.Achievable)
}

func TestRestoreDoesNotAdjust(t *testing.T) {
	l := ledger.New(nil)
	_, _ = l.AddIncome(dec("500"), "2024-01")

	s := Restore(l, nil,
		map[models.Period]decimal.Decimal{"2024-01": dec("100")},
		map[models.Period]decimal.Decimal{"2024-02": dec("50")})

	assert.True(t, l.Balance().Equal(dec("500")))
	assert.Equal(t, []models.Period{"2024-01", "2024-02"}, s.Periods())

	limits := s.Limits()
	limits["2024-09"] = dec("1")
	_, ok := s.Limit("2024-09")
	assert.False(t, ok, "Limits must return a copy")
}
