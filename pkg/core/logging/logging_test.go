package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labdash.log")

	logger, closer, err := NewFileLogger("debug", path)
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}

	logger.Info().Str("component", "test").Msg("hello")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(raw), `"message":"hello"`) {
		t.Errorf("log file contents = %q", raw)
	}
}

func TestNewFileLogger_BadPath(t *testing.T) {
	if _, _, err := NewFileLogger("info", "/nonexistent-dir/x/labdash.log"); err == nil {
		t.Error("NewFileLogger() error = nil for unwritable path")
	}
}
