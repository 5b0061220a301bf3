package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func newTestLogger(buf *bytes.Buffer, level slog.Level) *slog.Logger {
	lvl := new(slog.LevelVar)
	lvl.Set(level)
	return slog.New(newConsoleHandler(buf, lvl, false))
}

func TestConsoleHandlerRendersComponentAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := NewComponentLogger(newTestLogger(&buf, slog.LevelInfo), "pipeline")

	logger.Info("item processed", String(FieldItem, "talk.mp3"), Int("parts", 3))

	line := buf.String()
	if !strings.Contains(line, "INFO pipeline: item processed") {
		t.Fatalf("unexpected line: %q", line)
	}
	if !strings.Contains(line, "item=talk.mp3") || !strings.Contains(line, "parts=3") {
		t.Fatalf("missing attrs in line: %q", line)
	}
}

func TestConsoleHandlerQuotesValuesWithSpaces(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, slog.LevelInfo)

	logger.Warn("skip", Error(errors.New("no audio files found")))

	if !strings.Contains(buf.String(), `error="no audio files found"`) {
		t.Fatalf("error value not quoted: %q", buf.String())
	}
}

func TestConsoleHandlerHonorsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, slog.LevelWarn)

	logger.Info("hidden")
	logger.Error("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be suppressed: %q", out)
	}
	if !strings.Contains(out, "ERROR visible") {
		t.Fatalf("error line missing: %q", out)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := NewNop()
	// Must not panic and must report disabled at every level.
	logger.Info("ignored")
	if logger.Enabled(nil, slog.LevelError) { //nolint:staticcheck
		t.Fatal("noop logger should be disabled")
	}
}
