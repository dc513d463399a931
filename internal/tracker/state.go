package tracker

import (
	"fmt"

	"fjacquet/finance-tracker/internal/alert"
	"fjacquet/finance-tracker/internal/annotations"
	"fjacquet/finance-tracker/internal/codec"
	"fjacquet/finance-tracker/internal/ledger"
	"fjacquet/finance-tracker/internal/logging"
	"fjacquet/finance-tracker/internal/models"
	"fjacquet/finance-tracker/internal/plan"

	"github.com/shopspring/decimal"
)

// State returns a deep copy of the whole application state.
func (t *Tracker) State() models.AppState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stateLocked()
}

func (t *Tracker) stateLocked() models.AppState {
	state := models.NewAppState()
	state.Balance = t.ledger.Balance()
	state.Transactions = t.ledger.Transactions()
	state.Limits = t.plans.Limits()
	state.Savings = t.plans.SavingsTargets()
	state.Notes = t.notes.AllNotes()
	state.Reminders = t.notes.Reminders()
	return state
}

// Export serializes the current state.
func (t *Tracker) Export() ([]byte, error) {
	state := t.State()
	data, err := codec.Serialize(state)
	if err != nil {
		return nil, fmt.Errorf("failed to export state: %w", err)
	}
	t.logger.Debug("State exported",
		logging.F(logging.FieldOperation, logging.OpExport),
		logging.F(logging.FieldCount, len(state.Transactions)))
	return data, nil
}

// Import replaces the whole state with the decoded document. On any error
// the current state is left untouched and an import_failed alert is sent.
func (t *Tracker) Import(data []byte) error {
	state, err := codec.Deserialize(data)
	if err != nil {
		t.logger.WithError(err).Error("Import rejected",
			logging.F(logging.FieldOperation, logging.OpImport))
		t.alerts.Notify(alert.Alert{
			Kind:    alert.ImportFailed,
			Message: err.Error(),
		})
		return err
	}

	recomputed := codec.RecomputeBalance(state)
	if !state.Balance.Equal(recomputed) {
		t.logger.Warn("Imported balance does not match transactions and savings, using recomputed value",
			logging.F(logging.FieldBalance, state.Balance.String()),
			logging.F("recomputed", recomputed.String()))
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	allocated := decimal.Zero
	for _, v := range state.Savings {
		allocated = allocated.Add(v)
	}
	l := ledger.Restore(t.logger, state.Transactions, allocated, t.ledgerOpts...)
	t.ledger = l
	t.plans = plan.Restore(l, t.logger, state.Limits, state.Savings)
	t.notes = annotations.Restore(t.logger, state.Notes, state.Reminders)

	t.logger.Info("State imported",
		logging.F(logging.FieldOperation, logging.OpImport),
		logging.F(logging.FieldCount, len(state.Transactions)),
		logging.F(logging.FieldBalance, l.Balance().String()))
	return nil
}
