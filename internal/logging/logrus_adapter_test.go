package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedAdapter(level string) (Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewLogrusAdapterWithOutput(level, "text", &buf), &buf
}

func TestNewLogrusAdapter(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		format      string
		expectLevel logrus.Level
	}{
		{name: "debug level with text format", level: "debug", format: "text", expectLevel: logrus.DebugLevel},
		{name: "info level with json format", level: "info", format: "json", expectLevel: logrus.InfoLevel},
		{name: "warn level with text format", level: "warn", format: "text", expectLevel: logrus.WarnLevel},
		{name: "invalid level falls back to warn", level: "loud", format: "text", expectLevel: logrus.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogrusAdapter(tt.level, tt.format)
			require.NotNil(t, logger)

			adapter, ok := logger.(*LogrusAdapter)
			require.True(t, ok, "logger should be a LogrusAdapter")
			assert.Equal(t, tt.expectLevel, adapter.logger.Level)

			if tt.format == "json" {
				_, ok := adapter.logger.Formatter.(*logrus.JSONFormatter)
				assert.True(t, ok, "formatter should be JSONFormatter")
			} else {
				_, ok := adapter.logger.Formatter.(*logrus.TextFormatter)
				assert.True(t, ok, "formatter should be TextFormatter")
			}
		})
	}
}

func TestNewLogrusAdapter_InvalidLevelIsReported(t *testing.T) {
	var buf bytes.Buffer
	NewLogrusAdapterWithOutput("loud", "text", &buf)
	assert.Contains(t, buf.String(), `Invalid log level \"loud\"`)
}

func TestNewLogrusAdapter_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogrusAdapterWithOutput("info", "json", &buf)

	logger.Info("limit set", F(FieldPeriod, "2024-01"), F(FieldAmount, decimal.RequireFromString("150.50")))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "limit set", entry["msg"])
	assert.Equal(t, "2024-01", entry[FieldPeriod])
	assert.Equal(t, "150.5", entry[FieldAmount])
}

func TestLogrusAdapter_FieldsAndErrors(t *testing.T) {
	logger, buf := newBufferedAdapter("debug")

	logger.
		WithField(FieldPeriod, "2024-01").
		WithError(errors.New("limit exceeded")).
		Warn("expense recorded", F(FieldCategory, "food"))

	output := buf.String()
	assert.Contains(t, output, "expense recorded")
	assert.Contains(t, output, "2024-01")
	assert.Contains(t, output, "food")
	assert.Contains(t, output, "limit exceeded")
}

func TestLogrusAdapter_LevelFiltering(t *testing.T) {
	logger, buf := newBufferedAdapter("warn")

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Error("visible")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "visible")
}

func TestConvertFields(t *testing.T) {
	fields := []Field{
		{Key: "key1", Value: "value1"},
		{Key: "key2", Value: 42},
		{Key: "key3", Value: decimal.NewFromInt(7)},
	}

	logrusFields := convertFields(fields)

	assert.Len(t, logrusFields, 3)
	assert.Equal(t, "value1", logrusFields["key1"])
	assert.Equal(t, 42, logrusFields["key2"])
	assert.Equal(t, "7", logrusFields["key3"])
}

func TestOrDiscard(t *testing.T) {
	assert.NotNil(t, OrDiscard(nil))

	mock := NewMockLogger()
	assert.Same(t, mock, OrDiscard(mock))
}

func TestMockLogger_SharedBuffer(t *testing.T) {
	mock := NewMockLogger()
	child := mock.WithField(FieldOperation, OpAddIncome)
	child.Info("income recorded")

	require.True(t, mock.HasEntry("INFO", "income recorded"))
	entries := mock.GetEntriesByLevel("INFO")
	require.Len(t, entries, 1)
	assert.Equal(t, []Field{{Key: FieldOperation, Value: OpAddIncome}}, entries[0].Fields)
}

func TestLogrusAdapter_ImplementsInterface(t *testing.T) {
	var _ Logger = (*LogrusAdapter)(nil)
	var _ Logger = (*MockLogger)(nil)
}
