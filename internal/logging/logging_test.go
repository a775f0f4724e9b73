package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tessro/cutline/internal/config"
)

func TestNewFallbackWriter(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := New(config.LogConfig{Level: "warn"}, &buf)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer func() { _ = closer.Close() }()

	logger.Info("hidden")
	logger.Warn("shown", "frame", 45)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record written at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "frame=45") {
		t.Errorf("output = %q, want warn record with frame=45", out)
	}
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "cutline.log")
	logger, closer, err := New(config.LogConfig{Level: "debug", File: path}, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Debug("reconciled", "frame", 65)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "reconciled") {
		t.Errorf("log file = %q, want reconciled record", data)
	}
}

func TestNewNilFallback(t *testing.T) {
	logger, _, err := New(config.LogConfig{}, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Error("discarded")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
		err  bool
	}{
		{"", slog.LevelInfo, false},
		{"debug", slog.LevelDebug, false},
		{"WARN", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"trace", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.err {
			t.Errorf("ParseLevel(%q) error = %v, want err %v", tt.in, err, tt.err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
