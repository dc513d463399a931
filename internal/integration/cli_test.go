package integration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/finance-tracker/cmd/commands"
	"fjacquet/finance-tracker/cmd/root/roottest"
	"fjacquet/finance-tracker/internal/codec"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the full command tree. Resetting the flags also clears the
// persistent --data flag, so it is passed on every call.
func run(t *testing.T, env roottest.Env, args ...string) string {
	t.Helper()
	out, err := roottest.Run(t, commands.Register(), append(args, "--data", env.DataFile)...)
	require.NoError(t, err, out)
	return out
}

func TestMonthWorkflow(t *testing.T) {
	env := roottest.Setup(t)

	run(t, env, "income", "1000", "--period", "2024-01")
	run(t, env, "expense", "120", "food", "--period", "2024-01")
	run(t, env, "limit", "150", "--period", "2024-01")

	out := run(t, env, "expense", "80", "transport", "--period", "2024-01")
	assert.Contains(t, out, "! Spending limit for 2024-01 exceeded by 50.00 ₽")

	out = run(t, env, "savings", "300", "--period", "2024-01")
	assert.Contains(t, out, "balance 500.00 ₽")

	run(t, env, "note", "add", "car insurance due", "--period", "2024-01")
	run(t, env, "reminder", "add", "renew passport")
	run(t, env, "reminder", "done", "0")

	out = run(t, env, "show", "--period", "2024-01")
	assert.Contains(t, out, "500.00 ₽")
	assert.Contains(t, out, "-80.00 ₽ - transport")
	assert.Contains(t, out, "car insurance due")
	assert.Contains(t, out, "[x] 0.")

	out = run(t, env, "check", "--period", "2024-01")
	assert.Contains(t, out, "200.00 ₽ spent of 150.00 ₽, exceeded by 50.00 ₽")
	assert.Contains(t, out, "Savings: target 300.00 ₽ is achievable")

	raw, err := os.ReadFile(env.DataFile)
	require.NoError(t, err)
	state, err := codec.Deserialize(raw)
	require.NoError(t, err)
	assert.True(t, state.Balance.Equal(decimal.NewFromInt(500)))
	assert.Len(t, state.Transactions, 3)
	assert.True(t, state.Savings["2024-01"].Equal(decimal.NewFromInt(300)))
	assert.True(t, state.Limits["2024-01"].Equal(decimal.NewFromInt(150)))
	assert.Equal(t, []string{"car insurance due"}, state.Notes["2024-01"])
	require.Len(t, state.Reminders, 1)
	assert.True(t, state.Reminders[0].Done)
}

func TestExportImportAcrossDataFiles(t *testing.T) {
	env := roottest.Setup(t)

	run(t, env, "income", "500", "--period", "2024-02")
	run(t, env, "expense", "75.5", "health", "--period", "2024-02")
	exportFile := filepath.Join(env.Dir, "export.json")
	run(t, env, "export", "--output", exportFile)

	other := env
	other.DataFile = filepath.Join(env.Dir, "other", "finance-data.json")
	out := run(t, other, "import", exportFile)
	assert.Contains(t, out, "balance 424.50 ₽")

	out = run(t, other, "list", "--period", "2024-02", "--type", "expense")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "-75.50 ₽ - health")
}

func TestUnknownCommandFails(t *testing.T) {
	env := roottest.Setup(t)

	_, err := roottest.Run(t, commands.Register(), "frobnicate", "--data", env.DataFile)
	assert.Error(t, err)
}
