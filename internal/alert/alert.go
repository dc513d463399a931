// Package alert carries warnings from the core to whoever presents them.
// Sinks must not block: the core calls Notify inline while handling a
// user action.
package alert

import (
	"sync"

	"fjacquet/finance-tracker/internal/logging"
	"fjacquet/finance-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// Kind classifies an alert.
type Kind string

const (
	LimitExceeded     Kind = "limit_exceeded"
	SavingsAchievable Kind = "savings_achievable"
	ImportFailed      Kind = "import_failed"
)

// Alert is a discrete event raised by the core.
type Alert struct {
	Kind    Kind
	Period  models.Period
	Amount  decimal.Decimal
	Message string
}

// Sink receives alerts.
type Sink interface {
	Notify(a Alert)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Alert)

// Notify calls f(a).
func (f SinkFunc) Notify(a Alert) { f(a) }

// LogSink writes alerts to a logger: warnings for budget alerts, errors for
// failed imports.
type LogSink struct {
	logger logging.Logger
}

// NewLogSink creates a sink backed by logger.
func NewLogSink(logger logging.Logger) *LogSink {
	return &LogSink{logger: logging.OrDiscard(logger)}
}

// Notify logs the alert.
func (s *LogSink) Notify(a Alert) {
	fields := []logging.Field{
		logging.F(logging.FieldAlert, string(a.Kind)),
	}
	if a.Period != "" {
		fields = append(fields, logging.F(logging.FieldPeriod, a.Period))
	}
	if !a.Amount.IsZero() {
		fields = append(fields, logging.F(logging.FieldAmount, a.Amount.StringFixed(2)))
	}
	if a.Kind == ImportFailed {
		s.logger.Error(a.Message, fields...)
		return
	}
	s.logger.Warn(a.Message, fields...)
}

// Recorder keeps every alert it receives.
type Recorder struct {
	mu     sync.Mutex
	alerts []Alert
}

// Notify records a.
func (r *Recorder) Notify(a Alert) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts = append(r.alerts, a)
}

// Alerts returns a copy of what was recorded.
func (r *Recorder) Alerts() []Alert {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Alert(nil), r.alerts...)
}

// Kinds returns the recorded kinds in order.
func (r *Recorder) Kinds() []Kind {
	alerts := r.Alerts()
	kinds := make([]Kind, len(alerts))
	for i, a := range alerts {
		kinds[i] = a.Kind
	}
	return kinds
}

// Reset drops recorded alerts.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts = nil
}

// Multi fans an alert out to several sinks.
type Multi []Sink

// Notify forwards a to every non-nil sink.
func (m Multi) Notify(a Alert) {
	for _, s := range m {
		if s != nil {
			s.Notify(a)
		}
	}
}

// Discard ignores alerts.
var Discard Sink = SinkFunc(func(Alert) {})
