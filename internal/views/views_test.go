package views

import (
	"testing"

	"fjacquet/finance-tracker/internal/alert"
	"fjacquet/finance-tracker/internal/ledger"
	"fjacquet/finance-tracker/internal/models"
	"fjacquet/finance-tracker/internal/plan"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleTransactions() []models.Transaction {
	return []models.Transaction{
		{ID: "1", Amount: dec("1000"), IsIncome: true, Date: "2024-01"},
		{ID: "2", Amount: dec("200"), Category: "food", Date: "2024-01"},
		{ID: "3", Amount: dec("50"), Category: "rent", Date: "2024-01"},
		{ID: "4", Amount: dec("25.5"), Category: "food", Date: "2024-01"},
		{ID: "5", Amount: dec("70"), Category: "fun", Date: "2024-02"},
		{ID: "6", Amount: dec("30"), Category: "rent", Date: "2024-02"},
	}
}

func TestCategoryBreakdownScenario(t *testing.T) {
	txs := []models.Transaction{
		{ID: "1", Amount: dec("1000"), IsIncome: true, Date: "2024-01"},
		{ID: "2", Amount: dec("200"), Category: "food", Date: "2024-01"},
	}

	got := CategoryBreakdown(txs, "2024-01")
	require.Len(t, got, 1)
	assert.Equal(t, "food", got[0].Category)
	assert.True(t, got[0].Amount.Equal(dec("200")))
}

func TestCategoryBreakdownOrderAndFilter(t *testing.T) {
	jan := CategoryBreakdown(sampleTransactions(), "2024-01")
	require.Len(t, jan, 2)
	assert.Equal(t, "food", jan[0].Category)
	assert.True(t, jan[0].Amount.Equal(dec("225.5")))
	assert.Equal(t, "rent", jan[1].Category)

	all := CategoryBreakdown(sampleTransactions(), models.AllPeriods)
	var categories []string
	for _, c := range all {
		categories = append(categories, c.Category)
	}
	assert.Equal(t, []string{"food", "rent", "fun"}, categories)
	assert.True(t, all[1].Amount.Equal(dec("80")))

	assert.Empty(t, CategoryBreakdown(sampleTransactions(), "2030-01"))
}

func TestCategoryBreakdownMatchesExpenseTotals(t *testing.T) {
	txs := sampleTransactions()
	for _, period := range []models.Period{"2024-01", "2024-02", models.AllPeriods} {
		sum := decimal.Zero
		for _, c := range CategoryBreakdown(txs, period) {
			sum = sum.Add(c.Amount)
		}
		l := ledger.Restore(nil, txs, decimal.Zero)
		assert.True(t, sum.Equal(l.TotalForPeriod(period, models.FlowExpense)), "period %q", period)
	}
}

func TestChartSlices(t *testing.T) {
	slices := ChartSlices([]CategoryTotal{
		{Category: "food", Amount: dec("1")},
		{Category: "rent", Amount: dec("2")},
	})
	require.Len(t, slices, 2)
	assert.Equal(t, "33.33", slices[0].Percent.StringFixed(2))
	assert.Equal(t, "66.67", slices[1].Percent.StringFixed(2))
	assert.Equal(t, Palette[0], slices[0].Color)
	assert.Equal(t, Palette[1], slices[1].Color)

	assert.Empty(t, ChartSlices(nil))
}

func TestCurrentBalance(t *testing.T) {
	assert.Equal(t, "800.00 ₽", CurrentBalance(dec("800"), "₽"))
	assert.Equal(t, "-12.34 €", CurrentBalance(dec("-12.34"), "€"))
}

func TestTransactionLine(t *testing.T) {
	txs := sampleTransactions()
	assert.Equal(t, "+1000.00 ₽", TransactionLine(txs[0], "₽"))
	assert.Equal(t, "-200.00 ₽ - food", TransactionLine(txs[1], "₽"))
}

func TestNewestFirst(t *testing.T) {
	got := NewestFirst(sampleTransactions())
	assert.Equal(t, models.TransactionID("6"), got[0].ID)
	assert.Equal(t, models.TransactionID("1"), got[5].ID)
	assert.Empty(t, NewestFirst(nil))
}

func TestMonthLabelAndOptions(t *testing.T) {
	label, err := MonthLabel("2024-01", "ru")
	require.NoError(t, err)
	assert.Equal(t, "Январь 2024", label)

	opts := PeriodOptions([]models.Period{"2023-12", "2024-01"}, "en")
	assert.Equal(t, []PeriodOption{
		{Value: "2023-12", Label: "December 2023"},
		{Value: "2024-01", Label: "January 2024"},
	}, opts)
}

func TestPeriodAlerts(t *testing.T) {
	l := ledger.New(nil)
	plans := plan.NewStore(l, nil)
	_, _ = l.AddIncome(dec("1000"), "2024-01")
	_, _ = l.AddExpense(dec("200"), "food", "2024-01")
	require.NoError(t, plans.SetLimit("2024-01", dec("150")))
	require.NoError(t, plans.SetSavings("2024-01", dec("500")))

	alerts := PeriodAlerts("2024-01", plans, l, "₽")
	require.Len(t, alerts, 2)

	assert.Equal(t, alert.LimitExceeded, alerts[0].Kind)
	assert.True(t, alerts[0].Amount.Equal(dec("50")))
	assert.Equal(t, "Spending limit for 2024-01 exceeded by 50.00 ₽", alerts[0].Message)

	assert.Equal(t, alert.SavingsAchievable, alerts[1].Kind)
	assert.Equal(t, "Savings target of 500.00 ₽ for 2024-01 is achievable", alerts[1].Message)

	assert.Empty(t, PeriodAlerts("2024-02", plans, l, "₽"))
}
