package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	l := New(&buf, "warn")
	l.Info("hidden")
	l.Warn("shown", "line", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message written at warn level: %s", out)
	}

	if !strings.Contains(out, "shown") || !strings.Contains(out, "line=3") {
		t.Errorf("warn message missing: %s", out)
	}
}

func TestLogger_SetLevelAndWith(t *testing.T) {
	var buf bytes.Buffer

	l := New(&buf, "error")
	child := l.With("component", "reader")

	l.SetLevel("debug")
	child.Debug("now visible")

	out := buf.String()
	if !strings.Contains(out, "now visible") || !strings.Contains(out, "component=reader") {
		t.Errorf("child logger did not follow level change: %s", out)
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	if l == nil {
		t.Fatal("Nop returned nil")
	}

	l.Error("discarded")
}
