package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var jsonNull = []byte("null")

// amount is a decimal that marshals as a bare JSON number. Quoted numbers
// are accepted on input.
type amount decimal.Decimal

func (a amount) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(a).String()), nil
}

func (a *amount) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*a = amount(decimal.Zero)
		return nil
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("amount must be a number, got %s", data)
	}
	*a = amount(d)
	return nil
}

// transactionID accepts a JSON string or number and always writes a string.
type transactionID string

func (id *transactionID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, jsonNull) {
		*id = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = transactionID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*id = transactionID(n.String())
		return nil
	}
	return fmt.Errorf("id must be a string or a number, got %s", data)
}

// noteList accepts either a single string or a list of strings per period.
type noteList []string

func (n *noteList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, jsonNull) {
		*n = nil
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if strings.TrimSpace(single) == "" {
			*n = nil
		} else {
			*n = noteList{single}
		}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("notes must be a string or a list of strings")
	}
	*n = list
	return nil
}

type wireTransaction struct {
	ID       transactionID `json:"id"`
	Amount   *amount       `json:"amount"`
	IsIncome bool          `json:"isIncome"`
	Category string        `json:"category,omitempty"`
	Date     string        `json:"date"`
}

type wireReminder struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

type wireState struct {
	Balance      *amount             `json:"balance"`
	Transactions []wireTransaction   `json:"transactions"`
	Savings      map[string]amount   `json:"savings"`
	Limits       map[string]amount   `json:"limits"`
	Notes        map[string]noteList `json:"notes"`
	Reminders    []wireReminder      `json:"reminders"`
}
