package models

import (
	"fjacquet/finance-tracker/internal/dateutils"
	"fjacquet/finance-tracker/internal/financeerror"
)

// Period is a calendar-month key such as "2024-01". Transactions, limits,
// savings targets and notes are all grouped by it.
type Period string

// AllPeriods selects every period in filters that accept one.
const AllPeriods Period = ""

// ParsePeriod normalizes user input into a Period.
func ParsePeriod(s string) (Period, error) {
	p, err := dateutils.ParsePeriod(s)
	if err != nil {
		return "", financeerror.Invalid("date", s, "must be a period like 2024-01")
	}
	return Period(p), nil
}

// Validate reports whether p is a canonical period key.
func (p Period) Validate() error {
	if !dateutils.IsCanonicalPeriod(string(p)) {
		return financeerror.Invalid("date", string(p), "must be a period in YYYY-MM form")
	}
	return nil
}

// Label returns the localized month label, or the raw key when it cannot be parsed.
func (p Period) Label(locale string) string {
	label, err := dateutils.MonthLabel(string(p), locale)
	if err != nil {
		return string(p)
	}
	return label
}

func (p Period) String() string {
	return string(p)
}
