package tracker

import "fjacquet/finance-tracker/internal/models"

// AddNote appends a note to period.
func (t *Tracker) AddNote(period models.Period, text string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.notes.AddNote(period, text)
}

// Notes returns the notes of period in insertion order.
func (t *Tracker) Notes(period models.Period) []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.notes.Notes(period)
}

// RemoveNote deletes the note at index within period.
func (t *Tracker) RemoveNote(period models.Period, index int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.notes.RemoveNote(period, index)
}

// AllNotes returns every note keyed by period.
func (t *Tracker) AllNotes() map[models.Period][]string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.notes.AllNotes()
}

// AddReminder appends a reminder.
func (t *Tracker) AddReminder(text string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.notes.AddReminder(text)
}

// MarkReminderDone flags the reminder at index as done.
func (t *Tracker) MarkReminderDone(index int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.notes.MarkReminderDone(index)
}

// MarkReminderUndone clears the done flag of the reminder at index.
func (t *Tracker) MarkReminderUndone(index int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.notes.MarkReminderUndone(index)
}

// RemoveReminder deletes the reminder at index.
func (t *Tracker) RemoveReminder(index int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.notes.RemoveReminder(index)
}

// Reminders returns the reminder list.
func (t *Tracker) Reminders() []models.Reminder {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.notes.Reminders()
}

// NotePeriods lists the periods that have notes, oldest first.
func (t *Tracker) NotePeriods() []models.Period {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.notes.NotePeriods()
}
