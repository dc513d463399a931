// Package models provides the value types shared by the ledger, the plan and
// annotation stores, the derived views and the persistence codec.
package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"fjacquet/finance-tracker/internal/validation"
)

// TransactionID identifies a transaction. New ids are UUIDs; imported ids
// are kept verbatim.
type TransactionID string

// NewTransactionID returns a fresh random id.
func NewTransactionID() TransactionID {
	return TransactionID(uuid.NewString())
}

// Transaction is a single income or expense entry. It is immutable once
// created; the only lifecycle event after creation is deletion.
type Transaction struct {
	ID       TransactionID   `json:"id" validate:"notblank"`
	Amount   decimal.Decimal `json:"amount" validate:"positive"`
	IsIncome bool            `json:"isIncome"`
	Category string          `json:"category" validate:"category"`
	Date     Period          `json:"date" validate:"period"`
}

// Validate checks amount, category and period.
func (t Transaction) Validate() error {
	return validation.Struct(t)
}

// Signed returns +amount for income and -amount for expenses.
func (t Transaction) Signed() decimal.Decimal {
	if t.IsIncome {
		return t.Amount
	}
	return t.Amount.Neg()
}

// Flow selects income or expense transactions.
type Flow int

const (
	FlowAll Flow = iota
	FlowIncome
	FlowExpense
)

// Matches reports whether t belongs to the flow.
func (f Flow) Matches(t Transaction) bool {
	switch f {
	case FlowIncome:
		return t.IsIncome
	case FlowExpense:
		return !t.IsIncome
	default:
		return true
	}
}

func (f Flow) String() string {
	switch f {
	case FlowIncome:
		return "income"
	case FlowExpense:
		return "expense"
	default:
		return "all"
	}
}
