package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestHelpersNoopOnNilLogger(t *testing.T) {
	Info(nil, "info")
	Warn(nil, "warn")
	Error(nil, "error", errors.New("boom"))
}

func TestErrorAppendsErrorField(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	Error(logger, "lookup failed", errors.New("boom"), FieldPlayer, "Lebron James")

	out := buf.String()
	if !strings.Contains(out, "error=boom") || !strings.Contains(out, "player=\"Lebron James\"") {
		t.Fatalf("unexpected log output %q", out)
	}
}

func TestInfoAndWarnWrite(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	Info(logger, "hello", FieldCount, 2)
	Warn(logger, "careful")

	out := buf.String()
	if !strings.Contains(out, "level=INFO msg=hello count=2") || !strings.Contains(out, "level=WARN msg=careful") {
		t.Fatalf("unexpected log output %q", out)
	}
}
