package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the complete labdash configuration.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Lab     LabConfig     `toml:"lab"`
	Timers  TimersConfig  `toml:"timers"`
	UI      UIConfig      `toml:"ui"`
	Logging LoggingConfig `toml:"logging"`
}

// ServerConfig holds the grading server endpoints.
type ServerConfig struct {
	BaseURL  string `toml:"base_url"`
	PushPath string `toml:"push_path"`
}

// LabConfig holds the lab context supplied by the instructor.
type LabConfig struct {
	// ID is the active lab identifier; may be empty for single-lab setups.
	ID string `toml:"id"`
	// FormLab overrides ID for submissions when non-empty.
	FormLab string `toml:"form_lab"`
	// CompareEnabled gates the full result breakdown client-side.
	CompareEnabled bool `toml:"compare_enabled"`
}

// TimersConfig holds the countdown anchors read once at startup.
type TimersConfig struct {
	SyncCheckInterval Duration `toml:"sync_check_interval"`
	InitialAutoFill   Duration `toml:"initial_auto_fill"`
}

// UIConfig holds dashboard display settings.
type UIConfig struct {
	MaxLogLines    int      `toml:"max_log_lines"`
	ReconnectDelay Duration `toml:"reconnect_delay"`
}

// LoggingConfig holds diagnostic logging settings.
type LoggingConfig struct {
	Level string `toml:"level"`
	// File receives log output while the TUI owns the terminal.
	File string `toml:"file"`
}

// Duration wraps time.Duration for TOML parsing.
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Load loads configuration from a TOML file.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()

	return &cfg, nil
}

// LoadFromEnv loads configuration from the LABDASH_CONFIG environment
// variable, falling back to the default search locations. With no
// config file at all, built-in defaults are used.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv("LABDASH_CONFIG")
	if path == "" {
		defaultPaths := []string{
			"./labdash.toml",
			"./configs/labdash.toml",
			filepath.Join(os.Getenv("HOME"), ".config/labdash/config.toml"),
		}
		for _, p := range defaultPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		cfg := &Config{}
		cfg.applyDefaults()
		return cfg, nil
	}

	return Load(path)
}

// applyDefaults sets default values for missing configuration.
func (c *Config) applyDefaults() {
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = "http://localhost:5000"
	}
	if c.Server.PushPath == "" {
		c.Server.PushPath = "/ws"
	}

	if c.Timers.SyncCheckInterval.Duration == 0 {
		c.Timers.SyncCheckInterval.Duration = 30 * time.Second
	}

	if c.UI.MaxLogLines == 0 {
		c.UI.MaxLogLines = 200
	}
	if c.UI.ReconnectDelay.Duration == 0 {
		c.UI.ReconnectDelay.Duration = 2 * time.Second
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.File == "" {
		c.Logging.File = "./labdash.log"
	}
}

// expandEnvVars expands environment variables in configuration values.
func (c *Config) expandEnvVars() {
	c.Server.BaseURL = os.ExpandEnv(c.Server.BaseURL)
	c.Logging.File = os.ExpandEnv(c.Logging.File)
}

// PushURL returns the websocket URL for the push channel, derived
// from the HTTP base URL the way the browser client derives it.
func (c *Config) PushURL() string {
	base := c.Server.BaseURL
	switch {
	case strings.HasPrefix(base, "https://"):
		base = "wss://" + strings.TrimPrefix(base, "https://")
	case strings.HasPrefix(base, "http://"):
		base = "ws://" + strings.TrimPrefix(base, "http://")
	}
	return base + c.Server.PushPath
}
