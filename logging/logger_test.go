package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"debug", LogLevelDebug, false},
		{"INFO", LogLevelInfo, false},
		{"", LogLevelInfo, false},
		{"warning", LogLevelWarn, false},
		{" error ", LogLevelError, false},
		{"verbose", LogLevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			assert.Error(t, err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
	assert.Equal(t, "WARN", LogLevelWarn.String())
	assert.Equal(t, "UNKNOWN", LogLevel(42).String())
}

func TestNewLogger_JSONWithContext(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&LoggerConfig{Level: LogLevelInfo, Format: "json", Output: &buf, Component: "agent"})

	l = With(l, "run_id", "r-1")
	l.Debug("hidden")
	l.Info("agent.run.start", "iteration", 0)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "agent.run.start", entry["msg"])
	assert.Equal(t, "agent", entry["component"])
	assert.Equal(t, "r-1", entry["run_id"])
	assert.Equal(t, 0.0, entry["iteration"])
}

func TestNewLogger_Text(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&LoggerConfig{Level: LogLevelDebug, Format: "text", Output: &buf})
	l.Debug("visible", "k", "v")
	assert.Contains(t, buf.String(), "msg=visible")
	assert.Contains(t, buf.String(), "k=v")
}

type recordingLogger struct {
	NoOpLogger
	msgs []string
	args [][]any
}

func (r *recordingLogger) Info(msg string, args ...any) {
	r.msgs = append(r.msgs, msg)
	r.args = append(r.args, args)
}

func (r *recordingLogger) Warn(msg string, args ...any) { r.Info(msg, args...) }

func TestWith_WrapsPlainLogger(t *testing.T) {
	rec := &recordingLogger{}
	l := With(rec, "run_id", "abc")
	l.Info("hello", "k", 1)
	require.Len(t, rec.args, 1)
	assert.Equal(t, []any{"run_id", "abc", "k", 1}, rec.args[0])

	assert.Equal(t, NoOpLogger{}, With(nil, "a", 1))
	assert.Same(t, rec, With(rec))
}

func TestLogToolCall(t *testing.T) {
	rec := &recordingLogger{}
	LogToolCall(rec, "get_weather", time.Millisecond, "ok", nil)
	LogToolCall(rec, "divide", time.Millisecond, "error", errors.New("division by zero"))

	assert.Equal(t, []string{"agent.tool.executed", "agent.tool.failed"}, rec.msgs)
	assert.Contains(t, rec.args[1], "division by zero")
}
