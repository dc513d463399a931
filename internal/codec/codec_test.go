package codec

import (
	"encoding/json"
	"errors"
	"testing"

	"fjacquet/finance-tracker/internal/financeerror"
	"fjacquet/finance-tracker/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleState() models.AppState {
	state := models.NewAppState()
	state.Transactions = []models.Transaction{
		{ID: "a", Amount: dec("1000"), IsIncome: true, Date: "2024-01"},
		{ID: "b", Amount: dec("200.50"), Category: "food", Date: "2024-01"},
		{ID: "c", Amount: dec("30"), Category: "transport", Date: "2024-02"},
	}
	state.Savings["2024-01"] = dec("100")
	state.Limits["2024-01"] = dec("150")
	state.Notes["2024-01"] = []string{"rent due", "bonus"}
	state.Reminders = []models.Reminder{{Text: "pay rent", Done: true}, {Text: "call bank"}}
	state.Balance = RecomputeBalance(state)
	return state
}

func TestRoundTrip(t *testing.T) {
	state := sampleState()

	data, err := Serialize(state)
	require.NoError(t, err)

	got, err := Deserialize(data)
	require.NoError(t, err)

	assert.True(t, state.Balance.Equal(got.Balance), "balance %s != %s", state.Balance, got.Balance)
	require.Len(t, got.Transactions, len(state.Transactions))
	for i, tx := range state.Transactions {
		assert.Equal(t, tx.ID, got.Transactions[i].ID)
		assert.True(t, tx.Amount.Equal(got.Transactions[i].Amount))
		assert.Equal(t, tx.IsIncome, got.Transactions[i].IsIncome)
		assert.Equal(t, tx.Category, got.Transactions[i].Category)
		assert.Equal(t, tx.Date, got.Transactions[i].Date)
	}
	assert.True(t, got.Savings["2024-01"].Equal(dec("100")))
	assert.True(t, got.Limits["2024-01"].Equal(dec("150")))
	assert.Equal(t, state.Notes, got.Notes)
	assert.Equal(t, state.Reminders, got.Reminders)
}

func TestSerializeIsDeterministic(t *testing.T) {
	first, err := Serialize(sampleState())
	require.NoError(t, err)
	second, err := Serialize(sampleState())
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestSerializeWritesNumericAmounts(t *testing.T) {
	data, err := Serialize(sampleState())
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.IsType(t, float64(0), raw["balance"])
	txs := raw["transactions"].([]interface{})
	first := txs[0].(map[string]interface{})
	assert.Equal(t, float64(1000), first["amount"])
	assert.Equal(t, "a", first["id"])
	assert.NotContains(t, first, "category", "income entries carry no category")
	assert.Equal(t, float64(150), raw["limits"].(map[string]interface{})["2024-01"])
}

func TestSerializeEmptyState(t *testing.T) {
	data, err := Serialize(models.NewAppState())
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, key := range []string{"balance", "transactions", "savings", "limits", "notes", "reminders"} {
		assert.Contains(t, raw, key)
	}
	assert.Equal(t, []interface{}{}, raw["transactions"])
}

func TestDeserializeDefaults(t *testing.T) {
	got, err := Deserialize([]byte(`{}`))
	require.NoError(t, err)

	assert.True(t, got.Balance.IsZero())
	assert.Empty(t, got.Transactions)
	assert.NotNil(t, got.Savings)
	assert.NotNil(t, got.Limits)
	assert.NotNil(t, got.Notes)
	assert.Empty(t, got.Reminders)
}

func TestDeserializeLenientInputs(t *testing.T) {
	doc := `{
		"transactions": [
			{"id": 17, "amount": 500, "isIncome": true, "date": "2024-03"},
			{"amount": "12.5", "isIncome": false, "category": "food", "date": "2024-03-14"}
		],
		"savings": {"2024-03": 100},
		"notes": {"2024-03": "single note", "2024-04": ["a", "b"], "2024-05": ""},
		"reminders": null,
		"unknown": true
	}`

	got, err := Deserialize([]byte(doc))
	require.NoError(t, err)

	require.Len(t, got.Transactions, 2)
	assert.Equal(t, models.TransactionID("17"), got.Transactions[0].ID)
	assert.NotEmpty(t, got.Transactions[1].ID, "missing ids are generated")
	assert.Equal(t, models.Period("2024-03"), got.Transactions[1].Date)
	assert.True(t, got.Transactions[1].Amount.Equal(dec("12.5")))

	assert.Equal(t, []string{"single note"}, got.Notes["2024-03"])
	assert.Equal(t, []string{"a", "b"}, got.Notes["2024-04"])
	assert.NotContains(t, got.Notes, models.Period("2024-05"))

	// No balance in the document: derived from transactions minus savings.
	assert.True(t, got.Balance.Equal(dec("387.5")), "balance %s", got.Balance)
}

func TestDeserializeKeepsDocumentBalance(t *testing.T) {
	got, err := Deserialize([]byte(`{"balance": 42, "transactions": []}`))
	require.NoError(t, err)
	assert.True(t, got.Balance.Equal(dec("42")))
}

func TestDeserializeErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `not json`},
		{"empty", ``},
		{"top-level array", `[1, 2]`},
		{"top-level null", `null`},
		{"transactions not a list", `{"transactions": {}}`},
		{"amount is a bool", `{"transactions": [{"id": "a", "amount": true, "isIncome": true, "date": "2024-01"}]}`},
		{"missing amount", `{"transactions": [{"id": "a", "isIncome": true, "date": "2024-01"}]}`},
		{"negative amount", `{"transactions": [{"id": "a", "amount": -5, "isIncome": true, "date": "2024-01"}]}`},
		{"bad date", `{"transactions": [{"id": "a", "amount": 5, "isIncome": true, "date": "January"}]}`},
		{"expense without category", `{"transactions": [{"id": "a", "amount": 5, "isIncome": false, "date": "2024-01"}]}`},
		{"expense with blank category", `{"transactions": [{"id": 1, "amount": 5, "isIncome": false, "category": "  ", "date": "2024-01"}]}`},
		{"duplicate ids", `{"transactions": [
			{"id": "a", "amount": 5, "isIncome": true, "date": "2024-01"},
			{"id": "a", "amount": 6, "isIncome": true, "date": "2024-01"}]}`},
		{"id is an object", `{"transactions": [{"id": {}, "amount": 5, "isIncome": true, "date": "2024-01"}]}`},
		{"bad limit period", `{"limits": {"soon": 10}}`},
		{"zero savings", `{"savings": {"2024-01": 0}}`},
		{"notes of numbers", `{"notes": {"2024-01": [1, 2]}}`},
		{"blank reminder", `{"reminders": [{"text": "  ", "done": false}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Deserialize([]byte(tt.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, financeerror.ErrDeserialization), "got %v", err)

			var de *financeerror.DeserializationError
			assert.True(t, errors.As(err, &de))
		})
	}
}

func TestRecomputeBalance(t *testing.T) {
	state := sampleState()
	// 1000 - 200.50 - 30 - 100 savings
	assert.True(t, RecomputeBalance(state).Equal(dec("669.5")))
}
