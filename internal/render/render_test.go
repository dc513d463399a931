package render

import (
	"bytes"
	"testing"

	"fjacquet/finance-tracker/internal/views"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextSinkRender(t *testing.T) {
	var buf bytes.Buffer
	sink := NewTextSink(&buf)

	snapshot := Snapshot{
		Period:      "2024-01",
		PeriodLabel: "January 2024",
		Balance:     "800.00 ₽",
		Currency:    "₽",
		Transactions: []TransactionRow{
			{ID: "b", Period: "2024-01", Line: "-200.00 ₽ - food"},
			{ID: "a", Period: "2024-01", IsIncome: true, Line: "+1000.00 ₽"},
		},
		Chart: views.ChartSlices([]views.CategoryTotal{
			{Category: "food", Amount: decimal.NewFromInt(200)},
		}),
		Notes:     []string{"paid rent early"},
		Reminders: []ReminderRow{{Index: 0, Text: "Pay rent", Done: true}},
		Periods:   []views.PeriodOption{{Value: "2024-01", Label: "January 2024"}},
	}

	require.NoError(t, sink.Render(snapshot))
	out := buf.String()

	assert.Contains(t, out, "800.00 ₽")
	assert.Contains(t, out, "January 2024")
	assert.Contains(t, out, "-200.00 ₽ - food")
	assert.Contains(t, out, "+1000.00 ₽")
	assert.Contains(t, out, "100.00%")
	assert.Contains(t, out, "####################")
	assert.Contains(t, out, "paid rent early")
	assert.Contains(t, out, "[x] 0.")
	assert.Contains(t, out, "2024-01 (January 2024)")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("-200.00")), bytes.Index(buf.Bytes(), []byte("+1000.00")))
}

func TestTextSinkRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextSink(&buf).Render(Snapshot{Balance: "0.00 ₽", PeriodLabel: "All periods"}))

	out := buf.String()
	assert.Contains(t, out, "0.00 ₽")
	assert.Contains(t, out, "(none)")
	assert.NotContains(t, out, "Reminders")
}
