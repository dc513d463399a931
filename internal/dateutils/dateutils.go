// Package dateutils provides period parsing and month formatting used by the
// ledger, the stores and the selector labels.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Layouts accepted when parsing a period. The canonical form is PeriodLayout.
const (
	PeriodLayout        = "2006-01"
	DateLayoutISO       = "2006-01-02"
	DateLayoutEuropean  = "02.01.2006"
	PeriodLayoutDotted  = "01.2006"
	PeriodLayoutSlashed = "2006/01"
)

// PeriodFormats lists the layouts tried by ParsePeriod, in order.
var PeriodFormats = []string{
	PeriodLayout,
	DateLayoutISO,
	DateLayoutEuropean,
	PeriodLayoutDotted,
	PeriodLayoutSlashed,
}

// DefaultLocale is used when MonthLabel gets an unsupported locale.
const DefaultLocale = "en"

var monthNames = map[string][12]string{
	"en": {"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"},
	"ru": {"Январь", "Февраль", "Март", "Апрель", "Май", "Июнь",
		"Июль", "Август", "Сентябрь", "Октябрь", "Ноябрь", "Декабрь"},
	"fr": {"janvier", "février", "mars", "avril", "mai", "juin",
		"juillet", "août", "septembre", "octobre", "novembre", "décembre"},
	"de": {"Januar", "Februar", "März", "April", "Mai", "Juni",
		"Juli", "August", "September", "Oktober", "November", "Dezember"},
}

// ParsePeriod normalizes s to the canonical "YYYY-MM" period key. Full dates
// are truncated to their month.
func ParsePeriod(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("empty period")
	}
	for _, layout := range PeriodFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(PeriodLayout), nil
		}
	}
	return "", fmt.Errorf("unable to parse period: %s", s)
}

// IsCanonicalPeriod reports whether s is already in "YYYY-MM" form.
func IsCanonicalPeriod(s string) bool {
	t, err := time.Parse(PeriodLayout, s)
	return err == nil && t.Format(PeriodLayout) == s
}

// PeriodOf returns the period key containing t.
func PeriodOf(t time.Time) string {
	return t.Format(PeriodLayout)
}

// NormalizeLocale maps "ru-RU", "fr_CH" and friends to a supported language
// code. Unsupported locales fall back to DefaultLocale.
func NormalizeLocale(locale string) string {
	lang := strings.ToLower(strings.TrimSpace(locale))
	if i := strings.IndexAny(lang, "-_"); i >= 0 {
		lang = lang[:i]
	}
	if _, ok := monthNames[lang]; ok {
		return lang
	}
	return DefaultLocale
}

// MonthName returns the localized, nominative month name.
func MonthName(month time.Month, locale string) string {
	names := monthNames[NormalizeLocale(locale)]
	return names[month-1]
}

// MonthLabel formats a canonical period as "<month name> <year>".
func MonthLabel(period, locale string) (string, error) {
	t, err := time.Parse(PeriodLayout, period)
	if err != nil {
		return "", fmt.Errorf("invalid period %q: %w", period, err)
	}
	return fmt.Sprintf("%s %d", MonthName(t.Month(), locale), t.Year()), nil
}

// SupportedLocales returns the language codes MonthLabel knows.
func SupportedLocales() []string {
	return []string{"de", "en", "fr", "ru"}
}
