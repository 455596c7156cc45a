package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitDisabledDiscards(t *testing.T) {
	closeFn, err := Init(Options{Enabled: false})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer closeFn()
	if L.Enabled(t.Context(), slog.LevelError) {
		t.Fatalf("disabled logger should not be enabled at any level")
	}
}

func TestInitDisableAfterEnable(t *testing.T) {
	var buf bytes.Buffer
	if _, err := Init(Options{Enabled: true, Output: &buf, Level: slog.LevelDebug}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if _, err := Init(Options{Enabled: false}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if L.Enabled(t.Context(), level) {
			t.Errorf("disabled logger enabled at %s", level)
		}
	}
	Error("dropped")
	if buf.Len() != 0 {
		t.Fatalf("disabled logger wrote %q", buf.String())
	}
}

func TestInitWritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	closeFn, err := Init(Options{Enabled: true, Output: &buf, Level: slog.LevelDebug})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer closeFn()

	Debug("parsed document", "chunks", 3)
	if !strings.Contains(buf.String(), "parsed document") || !strings.Contains(buf.String(), "chunks=3") {
		t.Fatalf("unexpected log output: %q", buf.String())
	}
}

func TestInitRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	closeFn, err := Init(Options{Enabled: true, Output: &buf, Level: slog.LevelWarn})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer closeFn()

	Info("hidden")
	Warn("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("unexpected log output: %q", buf.String())
	}
}

func TestInitLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pngctl.log")
	closeFn, err := Init(Options{Enabled: true, LogFile: path, Level: slog.LevelInfo})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	Error("write failed", "path", "x.png")
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"write failed"`) {
		t.Fatalf("expected JSON record, got %q", data)
	}
}
