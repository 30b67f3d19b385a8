package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", DebugLevel, false},
		{"INFO", InfoLevel, false},
		{"Warn", WarnLevel, false},
		{"warning", WarnLevel, false},
		{"error", ErrorLevel, false},
		{"banana", InfoLevel, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseLevel(%q) err=%v", tt.in, err)
		}
		if !tt.wantErr && got != tt.want {
			t.Fatalf("ParseLevel(%q)=%v want %v", tt.in, got, tt.want)
		}
	}
}

func TestTextFormatterFieldsSorted(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(
		WithLevel(DebugLevel),
		WithFormatter(&TextFormatter{DisableTimestamp: true}),
		WithOutput(NewWriterOutput(&buf)),
	)
	l.Info("hello", F("b", 2), F("a", 1))
	got := buf.String()
	if !strings.HasPrefix(got, "INFO hello") {
		t.Fatalf("unexpected line: %q", got)
	}
	if !strings.Contains(got, "a=1 b=2") {
		t.Fatalf("fields not sorted: %q", got)
	}
}

func TestLevelGating(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(
		WithLevel(WarnLevel),
		WithFormatter(&TextFormatter{DisableTimestamp: true}),
		WithOutput(NewWriterOutput(&buf)),
	)
	l.Debug("dropped")
	l.Info("dropped too")
	l.Warn("kept")
	if strings.Contains(buf.String(), "dropped") {
		t.Fatalf("low-severity entries leaked: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "kept") {
		t.Fatalf("warn entry missing: %q", buf.String())
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(
		WithLevel(InfoLevel),
		WithFormatter(&JSONFormatter{}),
		WithOutput(NewWriterOutput(&buf)),
	)
	l.Info("event", F("count", 3))
	var obj map[string]any
	if err := json.Unmarshal(buf.Bytes(), &obj); err != nil {
		t.Fatalf("invalid json: %v (%q)", err, buf.String())
	}
	if obj["message"] != "event" || obj["level"] != "INFO" {
		t.Fatalf("unexpected object: %v", obj)
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(
		WithLevel(InfoLevel),
		WithFormatter(&TextFormatter{DisableTimestamp: true}),
		WithOutput(NewWriterOutput(&buf)),
	)
	l.WithComponent("engine").Info("ready")
	if !strings.Contains(buf.String(), "component=engine") {
		t.Fatalf("component field missing: %q", buf.String())
	}
}

func TestApplyConfigRejectsUnknownFormat(t *testing.T) {
	if _, err := ApplyConfig(&Config{Level: "info", Format: "xml"}); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
