// Package logging tests for the structured JSON logger.
package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

// TestLogger_LevelFiltering verifies entries below the minimum level
// are dropped.
func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelWarn)

	l.Debug("dropped")
	l.Info("dropped too")
	l.Warn("kept")
	l.Error("also kept", errors.New("boom"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d log lines, want 2: %q", len(lines), buf.String())
	}
}

// TestLogger_EntryShape verifies the JSON structure of an entry.
func TestLogger_EntryShape(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelDebug)

	l.Error("something failed", errors.New("cause"), map[string]interface{}{
		"key": "value",
	})

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry.Level != "ERROR" {
		t.Errorf("level = %q, want ERROR", entry.Level)
	}
	if entry.Message != "something failed" {
		t.Errorf("message = %q", entry.Message)
	}
	if entry.Error != "cause" {
		t.Errorf("error = %q, want cause", entry.Error)
	}
	if entry.Context["key"] != "value" {
		t.Errorf("context = %v", entry.Context)
	}
	if entry.Timestamp == "" {
		t.Error("timestamp missing")
	}
}

// TestParseLevel verifies the level mapping and the INFO fallback.
func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"DEBUG", LevelDebug},
		{"debug", LevelDebug},
		{"  warn ", LevelWarn},
		{"WARNING", LevelWarn},
		{"ERROR", LevelError},
		{"INFO", LevelInfo},
		{"", LevelInfo},
		{"bogus", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.expected {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}
