package observability

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":     slog.LevelDebug,
		"info":      slog.LevelInfo,
		"warn":      slog.LevelWarn,
		"warning":   slog.LevelWarn,
		"error":     slog.LevelError,
		"ERROR":     slog.LevelError,
		"":          slog.LevelInfo,
		"gibberish": slog.LevelInfo,
	}

	for input, want := range cases {
		if got := parseLevel(input); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestInitLoggerJSON(t *testing.T) {
	logger := InitLogger(LogConfig{Level: "debug", Format: "json"})
	if logger == nil {
		t.Fatal("expected non-nil logger")
	}
	if !logger.Enabled(nil, slog.LevelDebug) { //nolint:staticcheck // nil context is fine for Enabled
		t.Error("expected debug level to be enabled")
	}
}

func TestInitLoggerText(t *testing.T) {
	logger := InitLogger(LogConfig{Level: "warn", Format: "text"})
	if logger == nil {
		t.Fatal("expected non-nil logger")
	}
	if logger.Enabled(nil, slog.LevelInfo) { //nolint:staticcheck // nil context is fine for Enabled
		t.Error("expected info level to be disabled at warn")
	}
	if _, ok := logger.Handler().(*slog.TextHandler); !ok {
		t.Errorf("expected text handler, got %T", logger.Handler())
	}
}

func TestInitLoggerDefaultsToJSON(t *testing.T) {
	logger := InitLogger(LogConfig{})
	if _, ok := logger.Handler().(*slog.JSONHandler); !ok {
		t.Errorf("expected JSON handler by default, got %T", logger.Handler())
	}
}

func TestLoggerAttachesServiceAttribute(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, LogConfig{Format: "json", Service: "scoring-service"})

	logger.Info("decision published")

	out := buf.String()
	if !strings.Contains(out, `"service":"scoring-service"`) {
		t.Errorf("expected service attribute in output, got %s", out)
	}
	if !strings.Contains(out, "decision published") {
		t.Errorf("expected message in output, got %s", out)
	}
}
