package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is the display suffix used when none is configured.
const DefaultCurrency = "₽"

// Money represents an amount together with the currency symbol it is shown
// with. The tracker never converts between currencies.
type Money struct {
	Amount   decimal.Decimal `json:"amount" yaml:"amount"`
	Currency string          `json:"currency" yaml:"currency"`
}

// NewMoney creates a new Money instance with the given amount and currency
func NewMoney(amount decimal.Decimal, currency string) Money {
	return Money{
		Amount:   amount,
		Currency: currency,
	}
}

// String returns the amount with two decimals followed by the currency.
func (m Money) String() string {
	if m.Currency == "" {
		return m.Amount.StringFixed(2)
	}
	return fmt.Sprintf("%s %s", m.Amount.StringFixed(2), m.Currency)
}

// Signed renders the amount with an explicit sign, as used in transaction lists.
func (m Money) Signed(positive bool) string {
	abs := Money{Amount: m.Amount.Abs(), Currency: m.Currency}
	if positive {
		return "+" + abs.String()
	}
	return "-" + abs.String()
}

// ParseAmount parses user input such as "12.50", "12,50" or "1 200" into a
// decimal. Thousand separators (space, apostrophe) are dropped.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	amount := strings.TrimSpace(amountStr)
	amount = strings.ReplaceAll(amount, ",", ".")
	amount = strings.ReplaceAll(amount, " ", "")
	amount = strings.ReplaceAll(amount, "'", "")
	if amount == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}

	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount string '%s': %w", amountStr, err)
	}
	return dec, nil
}
