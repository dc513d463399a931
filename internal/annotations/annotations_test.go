package annotations

import (
	"testing"

	"fjacquet/finance-tracker/internal/financeerror"
	"fjacquet/finance-tracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotesAppendPerPeriod(t *testing.T) {
	s := NewStore(nil)

	require.NoError(t, s.AddNote("2024-01", "paid rent early"))
	require.NoError(t, s.AddNote("2024-01", "  bonus expected  "))
	require.NoError(t, s.AddNote("2024-02", "holiday"))

	assert.Equal(t, []string{"paid rent early", "bonus expected"}, s.Notes("2024-01"))
	assert.Equal(t, []string{"holiday"}, s.Notes("2024-02"))
	assert.Empty(t, s.Notes("2024-03"))
	assert.Equal(t, []models.Period{"2024-01", "2024-02"}, s.NotePeriods())
}

func TestAddNoteValidation(t *testing.T) {
	s := NewStore(nil)

	assert.ErrorIs(t, s.AddNote("2024-01", "   "), financeerror.ErrValidation)
	assert.ErrorIs(t, s.AddNote("", "text"), financeerror.ErrValidation)
	assert.Empty(t, s.AllNotes())
}

func TestRemoveNote(t *testing.T) {
	s := NewStore(nil)
	require.NoError(t, s.AddNote("2024-01", "a"))
	require.NoError(t, s.AddNote("2024-01", "b"))

	assert.ErrorIs(t, s.RemoveNote("2024-01", 2), financeerror.ErrNotFound)
	assert.ErrorIs(t, s.RemoveNote("2024-01", -1), financeerror.ErrNotFound)
	assert.ErrorIs(t, s.RemoveNote("2024-05", 0), financeerror.ErrNotFound)

	require.NoError(t, s.RemoveNote("2024-01", 0))
	assert.Equal(t, []string{"b"}, s.Notes("2024-01"))

	require.NoError(t, s.RemoveNote("2024-01", 0))
	assert.Empty(t, s.AllNotes(), "empty periods are dropped")
}

func TestReminderLifecycle(t *testing.T) {
	s := NewStore(nil)

	require.NoError(t, s.AddReminder("Pay rent"))
	require.NoError(t, s.MarkReminderDone(0))

	reminders := s.Reminders()
	require.Len(t, reminders, 1)
	assert.True(t, reminders[0].Done)
	assert.Equal(t, "Pay rent", reminders[0].Text)

	require.NoError(t, s.MarkReminderUndone(0))
	assert.False(t, s.Reminders()[0].Done)

	require.NoError(t, s.RemoveReminder(0))
	assert.Empty(t, s.Reminders())
}

func TestReminderIndexValidation(t *testing.T) {
	s := NewStore(nil)
	require.NoError(t, s.AddReminder("Call bank"))

	assert.ErrorIs(t, s.MarkReminderDone(1), financeerror.ErrNotFound)
	assert.ErrorIs(t, s.RemoveReminder(-1), financeerror.ErrNotFound)
	assert.ErrorIs(t, s.AddReminder(""), financeerror.ErrValidation)

	assert.Equal(t, []models.Reminder{{Text: "Call bank"}}, s.Reminders())
}

func TestRestoreCopiesInput(t *testing.T) {
	notes := map[models.Period][]string{"2024-01": {"x"}, "2024-02": {}}
	reminders := []models.Reminder{{Text: "r", Done: true}}

	s := Restore(nil, notes, reminders)
	notes["2024-01"][0] = "changed"
	reminders[0].Done = false

	assert.Equal(t, []string{"x"}, s.Notes("2024-01"))
	assert.True(t, s.Reminders()[0].Done)
	assert.Equal(t, []models.Period{"2024-01"}, s.NotePeriods())
}
