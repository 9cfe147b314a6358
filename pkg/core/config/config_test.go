package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"seconds", "30s", 30 * time.Second, false},
		{"minutes", "5m", 5 * time.Minute, false},
		{"complex", "1m30s", 90 * time.Second, false},
		{"milliseconds", "2000ms", 2 * time.Second, false},
		{"invalid", "invalid", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))

			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalText() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && d.Duration != tt.expected {
				t.Errorf("UnmarshalText() = %v, want %v", d.Duration, tt.expected)
			}
		})
	}
}

func TestConfig_applyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.Server.BaseURL != "http://localhost:5000" {
		t.Errorf("Server.BaseURL = %v", cfg.Server.BaseURL)
	}
	if cfg.Server.PushPath != "/ws" {
		t.Errorf("Server.PushPath = %v", cfg.Server.PushPath)
	}
	if cfg.Timers.SyncCheckInterval.Duration != 30*time.Second {
		t.Errorf("Timers.SyncCheckInterval = %v", cfg.Timers.SyncCheckInterval.Duration)
	}
	if cfg.UI.MaxLogLines != 200 {
		t.Errorf("UI.MaxLogLines = %v", cfg.UI.MaxLogLines)
	}
	if cfg.UI.ReconnectDelay.Duration != 2*time.Second {
		t.Errorf("UI.ReconnectDelay = %v", cfg.UI.ReconnectDelay.Duration)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %v", cfg.Logging.Level)
	}
}

func TestConfig_Load(t *testing.T) {
	content := `
[server]
base_url = "http://grading.example:8080"

[lab]
id = "lab-3"
compare_enabled = true

[timers]
sync_check_interval = "45s"
initial_auto_fill = "2m"

[ui]
max_log_lines = 100
`
	dir := t.TempDir()
	path := filepath.Join(dir, "labdash.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.BaseURL != "http://grading.example:8080" {
		t.Errorf("Server.BaseURL = %v", cfg.Server.BaseURL)
	}
	if cfg.Lab.ID != "lab-3" {
		t.Errorf("Lab.ID = %v", cfg.Lab.ID)
	}
	if !cfg.Lab.CompareEnabled {
		t.Error("Lab.CompareEnabled = false")
	}
	if cfg.Timers.SyncCheckInterval.Duration != 45*time.Second {
		t.Errorf("Timers.SyncCheckInterval = %v", cfg.Timers.SyncCheckInterval.Duration)
	}
	if cfg.Timers.InitialAutoFill.Duration != 2*time.Minute {
		t.Errorf("Timers.InitialAutoFill = %v", cfg.Timers.InitialAutoFill.Duration)
	}
	if cfg.UI.MaxLogLines != 100 {
		t.Errorf("UI.MaxLogLines = %v", cfg.UI.MaxLogLines)
	}

	// Defaults still fill the gaps.
	if cfg.Server.PushPath != "/ws" {
		t.Errorf("Server.PushPath = %v", cfg.Server.PushPath)
	}
}

func TestConfig_LoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/labdash.toml"); err == nil {
		t.Error("Load() error = nil for missing file")
	}
}

func TestConfig_PushURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		path    string
		want    string
	}{
		{"http", "http://localhost:5000", "/ws", "ws://localhost:5000/ws"},
		{"https", "https://grading.example", "/ws", "wss://grading.example/ws"},
		{"custom path", "http://h:1", "/push", "ws://h:1/push"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Server: ServerConfig{BaseURL: tt.baseURL, PushPath: tt.path}}
			if got := cfg.PushURL(); got != tt.want {
				t.Errorf("PushURL() = %q, want %q", got, tt.want)
			}
		})
	}
}
