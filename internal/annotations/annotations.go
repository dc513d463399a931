// Package annotations keeps free-text notes per period and a global
// reminder list.
package annotations

import (
	"sort"
	"strconv"
	"strings"

	"fjacquet/finance-tracker/internal/financeerror"
	"fjacquet/finance-tracker/internal/logging"
	"fjacquet/finance-tracker/internal/models"
	"fjacquet/finance-tracker/internal/validation"
)

// Store holds notes and reminders. Notes append to a per-period list; they
// are never overwritten.
type Store struct {
	notes     map[models.Period][]string
	reminders []models.Reminder
	logger    logging.Logger
}

// NewStore creates an empty annotation store.
func NewStore(logger logging.Logger) *Store {
	return &Store{
		notes:     map[models.Period][]string{},
		reminders: []models.Reminder{},
		logger:    logging.OrDiscard(logger),
	}
}

// Restore rebuilds a store from imported data.
func Restore(logger logging.Logger, notes map[models.Period][]string, reminders []models.Reminder) *Store {
	s := NewStore(logger)
	for p, list := range notes {
		if len(list) == 0 {
			continue
		}
		s.notes[p] = append([]string(nil), list...)
	}
	s.reminders = append(s.reminders, reminders...)
	return s
}

// AddNote appends text to the notes of period.
func (s *Store) AddNote(period models.Period, text string) error {
	if err := period.Validate(); err != nil {
		return err
	}
	text = strings.TrimSpace(text)
	if err := validation.Text("note", text); err != nil {
		return err
	}
	s.notes[period] = append(s.notes[period], text)
	s.logger.Debug("Note added",
		logging.F(logging.FieldPeriod, period),
		logging.F(logging.FieldCount, len(s.notes[period])))
	return nil
}

// Notes returns a copy of the notes of period, oldest first.
func (s *Store) Notes(period models.Period) []string {
	return append([]string{}, s.notes[period]...)
}

// RemoveNote deletes the note at index within period.
func (s *Store) RemoveNote(period models.Period, index int) error {
	list := s.notes[period]
	if index < 0 || index >= len(list) {
		return financeerror.Missing("note", string(period)+"#"+strconv.Itoa(index))
	}
	list = append(list[:index:index], list[index+1:]...)
	if len(list) == 0 {
		delete(s.notes, period)
	} else {
		s.notes[period] = list
	}
	return nil
}

// AllNotes returns a deep copy of every period's notes.
func (s *Store) AllNotes() map[models.Period][]string {
	out := make(map[models.Period][]string, len(s.notes))
	for p, list := range s.notes {
		out[p] = append([]string(nil), list...)
	}
	return out
}

// NotePeriods lists periods that have notes, sorted.
func (s *Store) NotePeriods() []models.Period {
	out := make([]models.Period, 0, len(s.notes))
	for p := range s.notes {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// AddReminder appends a reminder that is not yet done.
func (s *Store) AddReminder(text string) error {
	text = strings.TrimSpace(text)
	if err := validation.Text("reminder", text); err != nil {
		return err
	}
	s.reminders = append(s.reminders, models.Reminder{Text: text})
	s.logger.Debug("Reminder added", logging.F(logging.FieldCount, len(s.reminders)))
	return nil
}

// MarkReminderDone flags the reminder at index as done.
func (s *Store) MarkReminderDone(index int) error {
	return s.setDone(index, true)
}

// MarkReminderUndone clears the done flag of the reminder at index.
func (s *Store) MarkReminderUndone(index int) error {
	return s.setDone(index, false)
}

func (s *Store) setDone(index int, done bool) error {
	if err := s.checkReminderIndex(index); err != nil {
		return err
	}
	s.reminders[index].Done = done
	return nil
}

// RemoveReminder deletes the reminder at index.
func (s *Store) RemoveReminder(index int) error {
	if err := s.checkReminderIndex(index); err != nil {
		return err
	}
	s.reminders = append(s.reminders[:index:index], s.reminders[index+1:]...)
	return nil
}

func (s *Store) checkReminderIndex(index int) error {
	if index < 0 || index >= len(s.reminders) {
		return financeerror.Missing("reminder", "#"+strconv.Itoa(index))
	}
	return nil
}

// Reminders returns a copy of the reminder list.
func (s *Store) Reminders() []models.Reminder {
	return append([]models.Reminder{}, s.reminders...)
}
