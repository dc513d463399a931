// Package views derives display data from the ledger and the plan store:
// the category breakdown behind the expense chart, the balance string,
// month labels for period selectors and budget alerts. Everything here is a
// pure function recomputed on demand.
package views

import (
	"fmt"

	"fjacquet/finance-tracker/internal/alert"
	"fjacquet/finance-tracker/internal/dateutils"
	"fjacquet/finance-tracker/internal/models"
	"fjacquet/finance-tracker/internal/plan"

	"github.com/shopspring/decimal"
)

// Palette holds the chart colors assigned to categories in order.
var Palette = []string{
	"#ff6384", "#36a2eb", "#ffcd56",
	"#4bc0c0", "#9966ff", "#ff9f40",
	"#c9cbcf", "#6f42c1",
}

// CategoryTotal is one category's summed expenses.
type CategoryTotal struct {
	Category string          `json:"category" csv:"Category"`
	Amount   decimal.Decimal `json:"amount" csv:"Amount"`
}

// ChartSlice is a CategoryTotal with its share of all expenses and a color.
type ChartSlice struct {
	CategoryTotal
	Percent decimal.Decimal
	Color   string
}

// PeriodOption is one entry of a period selector.
type PeriodOption struct {
	Value models.Period
	Label string
}

// CategoryBreakdown sums expenses per category for period, or for every
// period with models.AllPeriods. Categories appear in order of first
// occurrence; income is ignored.
func CategoryBreakdown(transactions []models.Transaction, period models.Period) []CategoryTotal {
	index := map[string]int{}
	var out []CategoryTotal
	for _, tx := range transactions {
		if tx.IsIncome {
			continue
		}
		if period != models.AllPeriods && tx.Date != period {
			continue
		}
		i, ok := index[tx.Category]
		if !ok {
			index[tx.Category] = len(out)
			out = append(out, CategoryTotal{Category: tx.Category, Amount: tx.Amount})
			continue
		}
		out[i].Amount = out[i].Amount.Add(tx.Amount)
	}
	return out
}

// ChartSlices turns a breakdown into pie slices with percentages rounded to
// two decimals. Colors cycle through Palette.
func ChartSlices(breakdown []CategoryTotal) []ChartSlice {
	total := decimal.Zero
	for _, c := range breakdown {
		total = total.Add(c.Amount)
	}
	slices := make([]ChartSlice, 0, len(breakdown))
	if total.IsZero() {
		return slices
	}
	hundred := decimal.NewFromInt(100)
	for i, c := range breakdown {
		slices = append(slices, ChartSlice{
			CategoryTotal: c,
			Percent:       c.Amount.Mul(hundred).Div(total).Round(2),
			Color:         Palette[i%len(Palette)],
		})
	}
	return slices
}

// CurrentBalance formats a balance with two decimals and the currency suffix.
func CurrentBalance(balance decimal.Decimal, currency string) string {
	return models.NewMoney(balance, currency).String()
}

// TransactionLine renders a transaction the way the list shows it:
// "+1000.00 ₽" for income and "-200.00 ₽ - food" for expenses.
func TransactionLine(tx models.Transaction, currency string) string {
	money := models.NewMoney(tx.Amount, currency)
	if tx.IsIncome {
		return money.Signed(true)
	}
	return fmt.Sprintf("%s - %s", money.Signed(false), tx.Category)
}

// NewestFirst returns the transactions in reverse insertion order.
func NewestFirst(transactions []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, len(transactions))
	for i, tx := range transactions {
		out[len(transactions)-1-i] = tx
	}
	return out
}

// MonthLabel returns "<month> <year>" in locale. Supported locales are those
// of dateutils.SupportedLocales; anything else is rendered in English.
func MonthLabel(period models.Period, locale string) (string, error) {
	return dateutils.MonthLabel(string(period), locale)
}

// PeriodOptions builds selector entries for periods, keeping their order.
func PeriodOptions(periods []models.Period, locale string) []PeriodOption {
	opts := make([]PeriodOption, 0, len(periods))
	for _, p := range periods {
		opts = append(opts, PeriodOption{Value: p, Label: p.Label(locale)})
	}
	return opts
}

// PeriodAlerts evaluates the limit and savings target of period.
func PeriodAlerts(period models.Period, plans *plan.Store, totals plan.Totals, currency string) []alert.Alert {
	var alerts []alert.Alert

	if ls := plans.CheckLimitExceeded(period, totals); ls.Exceeded {
		alerts = append(alerts, alert.Alert{
			Kind:   alert.LimitExceeded,
			Period: period,
			Amount: ls.Over,
			Message: fmt.Sprintf("Spending limit for %s exceeded by %s",
				period, models.NewMoney(ls.Over, currency)),
		})
	}

	if ss := plans.CheckSavingsAchievable(period, totals); ss.Achievable {
		alerts = append(alerts, alert.Alert{
			Kind:   alert.SavingsAchievable,
			Period: period,
			Amount: ss.Target,
			Message: fmt.Sprintf("Savings target of %s for %s is achievable",
				models.NewMoney(ss.Target, currency), period),
		})
	}
	return alerts
}
