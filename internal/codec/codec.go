// Package codec serializes the application state to the finance-data JSON
// document and back.
//
// Deserialize is all-or-nothing: it either returns a complete, validated
// state or a *financeerror.DeserializationError, and it never touches live
// stores. Missing fields default to empty containers and zero.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"fjacquet/finance-tracker/internal/financeerror"
	"fjacquet/finance-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// DefaultFileName is the conventional export file name.
const DefaultFileName = "finance-data.json"

// Serialize encodes state as indented JSON. Map keys are sorted, so equal
// states produce identical documents.
func Serialize(state models.AppState) ([]byte, error) {
	balance := amount(state.Balance)
	w := wireState{
		Balance:      &balance,
		Transactions: make([]wireTransaction, 0, len(state.Transactions)),
		Savings:      make(map[string]amount, len(state.Savings)),
		Limits:       make(map[string]amount, len(state.Limits)),
		Notes:        make(map[string]noteList, len(state.Notes)),
		Reminders:    make([]wireReminder, 0, len(state.Reminders)),
	}

	for _, tx := range state.Transactions {
		a := amount(tx.Amount)
		w.Transactions = append(w.Transactions, wireTransaction{
			ID:       transactionID(tx.ID),
			Amount:   &a,
			IsIncome: tx.IsIncome,
			Category: tx.Category,
			Date:     string(tx.Date),
		})
	}
	for p, v := range state.Savings {
		w.Savings[string(p)] = amount(v)
	}
	for p, v := range state.Limits {
		w.Limits[string(p)] = amount(v)
	}
	for p, list := range state.Notes {
		if len(list) == 0 {
			continue
		}
		w.Notes[string(p)] = noteList(append([]string(nil), list...))
	}
	for _, r := range state.Reminders {
		w.Reminders = append(w.Reminders, wireReminder{Text: r.Text, Done: r.Done})
	}

	data, err := json.MarshalIndent(w, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal finance data: %w", err)
	}
	return append(data, '\n'), nil
}

// Deserialize decodes and validates a finance-data document.
func Deserialize(data []byte) (models.AppState, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return models.AppState{}, &financeerror.DeserializationError{Reason: "empty document"}
	}
	if trimmed[0] != '{' {
		if !json.Valid(trimmed) {
			return models.AppState{}, &financeerror.DeserializationError{Reason: "malformed JSON"}
		}
		return models.AppState{}, &financeerror.DeserializationError{Reason: "top-level value must be an object"}
	}

	var w wireState
	if err := json.Unmarshal(trimmed, &w); err != nil {
		return models.AppState{}, &financeerror.DeserializationError{Reason: "malformed JSON", Err: err}
	}

	state := models.NewAppState()
	if err := decodeTransactions(w.Transactions, &state); err != nil {
		return models.AppState{}, err
	}
	if err := decodeAmounts("savings", w.Savings, state.Savings); err != nil {
		return models.AppState{}, err
	}
	if err := decodeAmounts("limits", w.Limits, state.Limits); err != nil {
		return models.AppState{}, err
	}
	if err := decodeNotes(w.Notes, state.Notes); err != nil {
		return models.AppState{}, err
	}
	for i, r := range w.Reminders {
		if strings.TrimSpace(r.Text) == "" {
			return models.AppState{}, structural("reminder %d has no text", i)
		}
		state.Reminders = append(state.Reminders, models.Reminder{Text: r.Text, Done: r.Done})
	}

	if w.Balance != nil {
		state.Balance = decimal.Decimal(*w.Balance)
	} else {
		state.Balance = RecomputeBalance(state)
	}
	return state, nil
}

// RecomputeBalance derives the balance from transactions and savings
// allocations.
func RecomputeBalance(state models.AppState) decimal.Decimal {
	balance := decimal.Zero
	for _, tx := range state.Transactions {
		balance = balance.Add(tx.Signed())
	}
	for _, v := range state.Savings {
		balance = balance.Sub(v)
	}
	return balance
}

func decodeTransactions(in []wireTransaction, state *models.AppState) error {
	seen := make(map[models.TransactionID]struct{}, len(in))
	for i, wt := range in {
		if wt.Amount == nil {
			return structural("transaction %d has no amount", i)
		}
		period, err := models.ParsePeriod(wt.Date)
		if err != nil {
			return &financeerror.DeserializationError{Reason: fmt.Sprintf("transaction %d", i), Err: err}
		}

		id := models.TransactionID(wt.ID)
		if strings.TrimSpace(string(id)) == "" {
			id = models.NewTransactionID()
		}
		if _, dup := seen[id]; dup {
			return structural("duplicate transaction id %s", id)
		}
		seen[id] = struct{}{}

		tx := models.Transaction{
			ID:       id,
			Amount:   decimal.Decimal(*wt.Amount),
			IsIncome: wt.IsIncome,
			Category: wt.Category,
			Date:     period,
		}
		if err := tx.Validate(); err != nil {
			return &financeerror.DeserializationError{Reason: fmt.Sprintf("transaction %d", i), Err: err}
		}
		state.Transactions = append(state.Transactions, tx)
	}
	return nil
}

func decodeAmounts(field string, in map[string]amount, out map[models.Period]decimal.Decimal) error {
	for key, v := range in {
		period, err := models.ParsePeriod(key)
		if err != nil {
			return &financeerror.DeserializationError{Reason: field, Err: err}
		}
		d := decimal.Decimal(v)
		if !d.IsPositive() {
			return structural("%s for %s must be positive, got %s", field, key, d.String())
		}
		out[period] = d
	}
	return nil
}

func decodeNotes(in map[string]noteList, out map[models.Period][]string) error {
	for key, list := range in {
		period, err := models.ParsePeriod(key)
		if err != nil {
			return &financeerror.DeserializationError{Reason: "notes", Err: err}
		}
		for _, note := range list {
			if strings.TrimSpace(note) == "" {
				continue
			}
			out[period] = append(out[period], note)
		}
	}
	return nil
}

func structural(format string, args ...interface{}) error {
	return &financeerror.DeserializationError{Reason: fmt.Sprintf(format, args...)}
}
