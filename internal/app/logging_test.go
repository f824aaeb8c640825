package app

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogLevelDebug},
		{"INFO", LogLevelInfo},
		{"warning", LogLevelWarn},
		{"error", LogLevelError},
		{"bogus", LogLevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoggerLevelFilter(t *testing.T) {
	out := &bytes.Buffer{}
	logger := NewLogger(LogLevelWarn, out)

	logger.Debug("debug msg")
	logger.Info("info msg")
	logger.Warn("warn msg")
	logger.Error("error msg")

	s := out.String()
	if strings.Contains(s, "debug msg") || strings.Contains(s, "info msg") {
		t.Errorf("low-severity messages not filtered: %q", s)
	}
	if !strings.Contains(s, "warn msg") || !strings.Contains(s, "error msg") {
		t.Errorf("high-severity messages missing: %q", s)
	}
	if !strings.Contains(s, "[WARN]") || !strings.Contains(s, "[ERROR]") {
		t.Errorf("level tags missing: %q", s)
	}
}

func TestLoggerFieldsSorted(t *testing.T) {
	out := &bytes.Buffer{}
	logger := NewLogger(LogLevelInfo, out).
		WithField("zeta", 1).
		WithField("alpha", 2)

	logger.Info("msg")

	s := out.String()
	if !strings.Contains(s, "{alpha=2, zeta=1}") {
		t.Errorf("fields not sorted or missing: %q", s)
	}
}

func TestLoggerWithComponent(t *testing.T) {
	out := &bytes.Buffer{}
	logger := NewLogger(LogLevelInfo, out).WithComponent("dispatcher")

	logger.Info("routing")

	if !strings.Contains(out.String(), "component=dispatcher") {
		t.Errorf("component field missing: %q", out.String())
	}
}

func TestNullLoggerDiscards(t *testing.T) {
	// Must not panic with no output writer.
	NullLogger.Error("dropped")
	NullLogger.WithField("k", "v").Info("dropped")
}

func TestLoggerFormatArgs(t *testing.T) {
	out := &bytes.Buffer{}
	logger := NewLogger(LogLevelInfo, out)

	logger.Info("executed %d of %d", 2, 3)

	if !strings.Contains(out.String(), "executed 2 of 3") {
		t.Errorf("format args not applied: %q", out.String())
	}
}
