// Package ledger owns the transaction log and the running balance.
//
// The balance invariant is
//
//	balance == sum(signed transaction amounts) - allocated savings
//
// and every mutator keeps it: adds and removals apply the signed amount, and
// savings allocations go through Adjust.
package ledger

import (
	"sort"

	"fjacquet/finance-tracker/internal/financeerror"
	"fjacquet/finance-tracker/internal/logging"
	"fjacquet/finance-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// Ledger is the authoritative transaction log. It is not safe for concurrent
// use; the tracker serializes access.
type Ledger struct {
	transactions []models.Transaction
	balance      decimal.Decimal
	allocated    decimal.Decimal
	logger       logging.Logger
	newID        func() models.TransactionID
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithIDGenerator replaces the UUID generator, mainly for deterministic tests.
func WithIDGenerator(gen func() models.TransactionID) Option {
	return func(l *Ledger) {
		if gen != nil {
			l.newID = gen
		}
	}
}

// New creates an empty ledger.
func New(logger logging.Logger, opts ...Option) *Ledger {
	l := &Ledger{
		transactions: []models.Transaction{},
		balance:      decimal.Zero,
		allocated:    decimal.Zero,
		logger:       logging.OrDiscard(logger),
		newID:        models.NewTransactionID,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// AddIncome records an income entry and increases the balance.
func (l *Ledger) AddIncome(amount decimal.Decimal, period models.Period) (models.Transaction, error) {
	return l.add(models.Transaction{
		Amount:   amount,
		IsIncome: true,
		Date:     period,
	})
}

// AddExpense records an expense entry and decreases the balance.
func (l *Ledger) AddExpense(amount decimal.Decimal, category string, period models.Period) (models.Transaction, error) {
	return l.add(models.Transaction{
		Amount:   amount,
		Category: category,
		Date:     period,
	})
}

func (l *Ledger) add(tx models.Transaction) (models.Transaction, error) {
	tx.ID = l.newID()
	if err := tx.Validate(); err != nil {
		return models.Transaction{}, err
	}

	l.transactions = append(l.transactions, tx)
	l.balance = l.balance.Add(tx.Signed())

	l.logger.Debug("Transaction recorded",
		logging.F(logging.FieldTransactionID, tx.ID),
		logging.F(logging.FieldAmount, tx.Signed().String()),
		logging.F(logging.FieldPeriod, tx.Date),
		logging.F(logging.FieldBalance, l.balance.String()))
	return tx, nil
}

// Remove deletes the transaction with the given id and reverses its effect
// on the balance.
func (l *Ledger) Remove(id models.TransactionID) (models.Transaction, error) {
	for i, tx := range l.transactions {
		if tx.ID != id {
			continue
		}
		l.transactions = append(l.transactions[:i:i], l.transactions[i+1:]...)
		l.balance = l.balance.Sub(tx.Signed())

		l.logger.Debug("Transaction removed",
			logging.F(logging.FieldTransactionID, id),
			logging.F(logging.FieldBalance, l.balance.String()))
		return tx, nil
	}
	return models.Transaction{}, financeerror.Missing("transaction", string(id))
}

// Get returns the transaction with the given id.
func (l *Ledger) Get(id models.TransactionID) (models.Transaction, bool) {
	for _, tx := range l.transactions {
		if tx.ID == id {
			return tx, true
		}
	}
	return models.Transaction{}, false
}

// Transactions returns a copy of the log in insertion order.
func (l *Ledger) Transactions() []models.Transaction {
	out := make([]models.Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out
}

// Len returns the number of transactions.
func (l *Ledger) Len() int {
	return len(l.transactions)
}

// Balance returns the current balance, savings allocations included.
func (l *Ledger) Balance() decimal.Decimal {
	return l.balance
}

// Allocated returns the total currently set aside by savings targets.
func (l *Ledger) Allocated() decimal.Decimal {
	return l.allocated
}

// Adjust moves money between the balance and the savings allocation. A
// negative delta sets money aside, a positive delta releases it.
func (l *Ledger) Adjust(delta decimal.Decimal) {
	l.balance = l.balance.Add(delta)
	l.allocated = l.allocated.Sub(delta)
}

// TotalForPeriod sums the amounts of the transactions in period that match
// flow. models.AllPeriods covers every period.
func (l *Ledger) TotalForPeriod(period models.Period, flow models.Flow) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range l.transactions {
		if period != models.AllPeriods && tx.Date != period {
			continue
		}
		if flow.Matches(tx) {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// PeriodsInUse returns the distinct transaction periods in chronological order.
func (l *Ledger) PeriodsInUse() []models.Period {
	seen := make(map[models.Period]struct{}, len(l.transactions))
	periods := make([]models.Period, 0)
	for _, tx := range l.transactions {
		if _, ok := seen[tx.Date]; ok {
			continue
		}
		seen[tx.Date] = struct{}{}
		periods = append(periods, tx.Date)
	}
	// YYYY-MM keys sort lexically in calendar order.
	sort.Slice(periods, func(i, j int) bool { return periods[i] < periods[j] })
	return periods
}

// Restore builds a ledger from already-validated transactions, recomputing
// the balance from them and the given savings allocation.
func Restore(logger logging.Logger, transactions []models.Transaction, allocated decimal.Decimal, opts ...Option) *Ledger {
	l := New(logger, opts...)
	l.transactions = make([]models.Transaction, len(transactions))
	copy(l.transactions, transactions)
	for _, tx := range l.transactions {
		l.balance = l.balance.Add(tx.Signed())
	}
	l.Adjust(allocated.Neg())
	return l
}
