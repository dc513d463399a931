package models

import "github.com/shopspring/decimal"

// Reminder is a global to-do item with a done flag.
type Reminder struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// AppState is the whole in-memory world and the unit of import/export.
type AppState struct {
	Balance      decimal.Decimal
	Transactions []Transaction
	Savings      map[Period]decimal.Decimal
	Limits       map[Period]decimal.Decimal
	Notes        map[Period][]string
	Reminders    []Reminder
}

// NewAppState returns an empty state with all containers allocated.
func NewAppState() AppState {
	return AppState{
		Balance:      decimal.Zero,
		Transactions: []Transaction{},
		Savings:      map[Period]decimal.Decimal{},
		Limits:       map[Period]decimal.Decimal{},
		Notes:        map[Period][]string{},
		Reminders:    []Reminder{},
	}
}
