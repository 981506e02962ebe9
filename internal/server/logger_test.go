// file: internal/server/logger_test.go
// version: 2.0.0
// guid: 2e3f4a5b-6c7d-8e9f-0a1b-2c3d4e5f6a7b

package server

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })
	return &buf
}

func TestNewOperationLogger(t *testing.T) {
	logger := NewOperationLogger("inspect", "POST", "/api/v1/inspect", "req-123")

	if logger.handler != "inspect" {
		t.Errorf("expected handler 'inspect', got %q", logger.handler)
	}
	if logger.method != "POST" {
		t.Errorf("expected method 'POST', got %q", logger.method)
	}
	if logger.path != "/api/v1/inspect" {
		t.Errorf("expected path '/api/v1/inspect', got %q", logger.path)
	}
	if logger.requestID != "req-123" {
		t.Errorf("expected requestID 'req-123', got %q", logger.requestID)
	}
}

func TestOperationLogger_AddDetail(t *testing.T) {
	logger := NewOperationLogger("apply", "POST", "/api/v1/apply", "req-123")
	logger.AddDetail("operations", 3)
	logger.AddDetail("bytes", 1024)

	if logger.details["operations"] != 3 {
		t.Errorf("expected detail 'operations' to be 3, got %v", logger.details["operations"])
	}
	if got := logger.detailString(); got != " {bytes=1024 operations=3}" {
		t.Errorf("unexpected detail string %q", got)
	}
}

func TestOperationLogger_Output(t *testing.T) {
	buf := captureLog(t)
	logger := NewOperationLogger("apply", "POST", "/api/v1/apply", "req-9")

	logger.LogStart()
	logger.LogSuccess(200)
	logger.LogError(422, errors.New("malformed"))
	logger.LogWarning("careful")

	out := buf.String()
	for _, want := range []string{
		"[INFO] [START] POST /api/v1/apply [request-id: req-9]",
		"[SUCCESS] POST /api/v1/apply (200)",
		"[ERROR] POST /api/v1/apply (422)",
		"malformed",
		"[WARN] apply: careful [request-id: req-9]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in log output:\n%s", want, out)
		}
	}
}

func TestLogValidationError(t *testing.T) {
	buf := captureLog(t)
	LogValidationError("apply", "ops", "no operations given", "req-1")
	if !strings.Contains(buf.String(), `[VALIDATION-ERROR] apply field "ops": no operations given`) {
		t.Errorf("unexpected log output: %s", buf.String())
	}
}
