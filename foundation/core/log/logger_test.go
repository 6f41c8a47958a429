// File: logger_test.go
// Title: Logger Unit Tests
// Description: Unit tests for the structured logger covering level
//              filtering, context fields, run IDs, and error integration.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial test suite

package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	viraerror "github.com/msto63/vira/foundation/core/error"
)

func newTestLogger(buf *bytes.Buffer, level Level) *Logger {
	return NewWithConfig(Config{
		Level:  level,
		Format: FormatJSON,
		Output: buf,
		Name:   "test",
	})
}

func decodeLine(t *testing.T, line string) map[string]interface{} {
	t.Helper()
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(line), &data); err != nil {
		t.Fatalf("Failed to decode log line %q: %v", line, err)
	}
	return data
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelWarn)

	logger.Debug("should not appear")
	logger.Info("should not appear")
	logger.Warn("warning message")
	logger.Error("error message")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 log lines, got %d: %q", len(lines), buf.String())
	}

	first := decodeLine(t, lines[0])
	if first["level"] != "warn" || first["message"] != "warning message" {
		t.Errorf("Unexpected first line: %v", first)
	}
}

func TestLogger_ContextFields(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelDebug).
		WithField("component", "preprocessor").
		WithRunID("run-123")

	logger.Info("processing", Fields{"file": "main.vira"})

	data := decodeLine(t, strings.TrimSpace(buf.String()))
	if data["component"] != "preprocessor" {
		t.Errorf("Expected component field, got %v", data["component"])
	}
	if data["run_id"] != "run-123" {
		t.Errorf("Expected run_id run-123, got %v", data["run_id"])
	}
	if data["file"] != "main.vira" {
		t.Errorf("Expected file field, got %v", data["file"])
	}
	if data["logger"] != "test" {
		t.Errorf("Expected logger name test, got %v", data["logger"])
	}
}

func TestLogger_CloneIsolation(t *testing.T) {
	var buf bytes.Buffer
	base := newTestLogger(&buf, LevelInfo)
	derived := base.WithField("stage", "lexer")

	base.Info("base message")

	data := decodeLine(t, strings.TrimSpace(buf.String()))
	if _, ok := data["stage"]; ok {
		t.Error("Base logger should not carry fields added to a clone")
	}

	buf.Reset()
	derived.Info("derived message")
	data = decodeLine(t, strings.TrimSpace(buf.String()))
	if data["stage"] != "lexer" {
		t.Errorf("Derived logger missing its field: %v", data)
	}
}

func TestLogger_LogError(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelTrace)

	err := viraerror.New("macro table is full").
		WithCode(viraerror.CodeMacroTableFull).
		WithDetail("capacity", 1024)
	logger.LogError(err)

	data := decodeLine(t, strings.TrimSpace(buf.String()))
	if data["error_code"] != "MACRO_TABLE_FULL" {
		t.Errorf("Expected error_code MACRO_TABLE_FULL, got %v", data["error_code"])
	}
	if data["error_severity"] != "critical" {
		t.Errorf("Expected critical severity, got %v", data["error_severity"])
	}
	if data["level"] != "error" {
		t.Errorf("Critical errors should log at error level, got %v", data["level"])
	}
	if data["error_capacity"] != float64(1024) {
		t.Errorf("Expected error_capacity detail, got %v", data["error_capacity"])
	}
}

func TestLogger_LogErrorSeverityMapping(t *testing.T) {
	tests := []struct {
		name      string
		severity  viraerror.Severity
		wantLevel string
	}{
		{name: "Low severity logs info", severity: viraerror.SeverityLow, wantLevel: "info"},
		{name: "Medium severity logs warn", severity: viraerror.SeverityMedium, wantLevel: "warn"},
		{name: "High severity logs error", severity: viraerror.SeverityHigh, wantLevel: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newTestLogger(&buf, LevelTrace)

			logger.LogError(viraerror.New("e").WithSeverity(tt.severity))

			data := decodeLine(t, strings.TrimSpace(buf.String()))
			if data["level"] != tt.wantLevel {
				t.Errorf("Expected level %s, got %v", tt.wantLevel, data["level"])
			}
		})
	}
}

func TestTimer_Stop(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelDebug)

	timer := logger.StartTimer("preprocess").WithField("file", "main.vira")
	elapsed := timer.Stop()

	if elapsed <= 0 {
		t.Error("Expected positive elapsed duration")
	}

	data := decodeLine(t, strings.TrimSpace(buf.String()))
	if data["message"] != "preprocess completed" {
		t.Errorf("Unexpected timer message: %v", data["message"])
	}
	if data["file"] != "main.vira" {
		t.Errorf("Expected file field on timer entry: %v", data)
	}
	if _, ok := data["duration"]; !ok {
		t.Error("Expected duration field on timer entry")
	}

	// Second Stop is a no-op
	if timer.Stop() != 0 {
		t.Error("Second Stop should return 0")
	}
}
