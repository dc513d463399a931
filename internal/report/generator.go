// Package report renders transaction listings and category breakdowns as
// CSV or JSON for use outside the tracker.
package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"fjacquet/finance-tracker/internal/logging"
	"fjacquet/finance-tracker/internal/models"
	"fjacquet/finance-tracker/internal/views"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// Supported formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// Supported report kinds.
const (
	KindTransactions = "transactions"
	KindBreakdown    = "breakdown"
)

// DefaultDelimiter separates CSV fields unless configured otherwise.
const DefaultDelimiter = ','

// TransactionRecord is one transaction row.
type TransactionRecord struct {
	ID       string `csv:"ID" json:"id"`
	Period   string `csv:"Period" json:"period"`
	Type     string `csv:"Type" json:"type"`
	Category string `csv:"Category" json:"category,omitempty"`
	Amount   string `csv:"Amount" json:"amount"`
}

// BreakdownRecord is one category row.
type BreakdownRecord struct {
	Category string `csv:"Category" json:"category"`
	Amount   string `csv:"Amount" json:"amount"`
	Percent  string `csv:"Percent" json:"percent"`
}

// Summary holds the period totals included in JSON reports.
type Summary struct {
	Period  string `json:"period"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
	Net     string `json:"net"`
}

// Report is the data behind one generated document.
type Report struct {
	Summary      Summary             `json:"summary"`
	Transactions []TransactionRecord `json:"transactions,omitempty"`
	Breakdown    []BreakdownRecord   `json:"breakdown,omitempty"`
}

// Generator produces reports in the supported formats.
type Generator struct {
	logger    logging.Logger
	delimiter rune
}

// NewGenerator creates a Generator. A zero delimiter means DefaultDelimiter.
func NewGenerator(logger logging.Logger, delimiter rune) *Generator {
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}
	return &Generator{
		logger:    logging.OrDiscard(logger).WithField(logging.FieldComponent, "ReportGenerator"),
		delimiter: delimiter,
	}
}

// ParseDelimiter returns the first rune of s, or DefaultDelimiter for an
// empty string.
func ParseDelimiter(s string) rune {
	if s == "" {
		return DefaultDelimiter
	}
	if s == `\t` {
		return '\t'
	}
	return []rune(s)[0]
}

// Build assembles the report data for period from transactions, which are
// expected newest first.
func Build(transactions []models.Transaction, period models.Period) Report {
	totalIncome := sum(transactions, period, models.FlowIncome)
	totalExpense := sum(transactions, period, models.FlowExpense)

	r := Report{
		Summary: Summary{
			Period:  periodName(period),
			Income:  totalIncome.StringFixed(2),
			Expense: totalExpense.StringFixed(2),
			Net:     totalIncome.Sub(totalExpense).StringFixed(2),
		},
		Transactions: []TransactionRecord{},
		Breakdown:    []BreakdownRecord{},
	}

	for _, tx := range transactions {
		if period != models.AllPeriods && tx.Date != period {
			continue
		}
		r.Transactions = append(r.Transactions, TransactionRecord{
			ID:       string(tx.ID),
			Period:   string(tx.Date),
			Type:     flowOf(tx).String(),
			Category: tx.Category,
			Amount:   tx.Amount.StringFixed(2),
		})
	}

	for _, slice := range views.ChartSlices(views.CategoryBreakdown(transactions, period)) {
		r.Breakdown = append(r.Breakdown, BreakdownRecord{
			Category: slice.Category,
			Amount:   slice.Amount.StringFixed(2),
			Percent:  slice.Percent.StringFixed(2),
		})
	}
	return r
}

// Generate renders kind of r in format. JSON reports always carry every
// section; CSV holds only the rows of kind.
func (g *Generator) Generate(r Report, kind, format string) ([]byte, error) {
	kind = strings.ToLower(kind)
	format = strings.ToLower(format)

	switch format {
	case FormatJSON:
		return g.generateJSON(r)
	case FormatCSV:
		switch kind {
		case KindTransactions, "":
			return g.generateCSV(r.Transactions)
		case KindBreakdown:
			return g.generateCSV(r.Breakdown)
		default:
			return nil, fmt.Errorf("unsupported report kind: %s", kind)
		}
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *Generator) generateJSON(r Report) ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return append(data, '\n'), nil
}

func (g *Generator) generateCSV(rows interface{}) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = g.delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(w)); err != nil {
		g.logger.WithError(err).Error("Failed to marshal CSV report")
		return nil, fmt.Errorf("error writing CSV data: %w", err)
	}
	g.logger.Debug("Generated CSV report",
		logging.F(logging.FieldFormat, FormatCSV),
		logging.F("bytes", buf.Len()))
	return buf.Bytes(), nil
}

func flowOf(tx models.Transaction) models.Flow {
	if tx.IsIncome {
		return models.FlowIncome
	}
	return models.FlowExpense
}

func sum(transactions []models.Transaction, period models.Period, flow models.Flow) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range transactions {
		if period != models.AllPeriods && tx.Date != period {
			continue
		}
		if flow.Matches(tx) {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

func periodName(period models.Period) string {
	if period == models.AllPeriods {
		return "all"
	}
	return string(period)
}
