// Package config loads the assistant's YAML configuration file.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds everything the CLI needs to locate a sheet. Secrets are
// never stored here; the config only names the environment variables that
// carry them.
type Config struct {
	// SheetURL locates the remote attendance spreadsheet.
	SheetURL string `yaml:"sheet_url"`

	// XLSXPath optionally points at a local workbook snapshot. When set it
	// takes precedence over SheetURL.
	XLSXPath string `yaml:"xlsx_path"`

	// PrivateKeyIDEnv names the environment variable holding the service
	// account key id. Default: GOOGLE_API_PRIVATE_KEY_ID.
	PrivateKeyIDEnv string `yaml:"private_key_id_env"`

	// PrivateKeyEnv names the environment variable holding the service
	// account private key. Default: GOOGLE_API_PRIVATE_KEY.
	PrivateKeyEnv string `yaml:"private_key_env"`

	// LogLevel controls CLI verbosity: debug, info, warn, error.
	// Default: info.
	LogLevel string `yaml:"log_level"`
}

// Default returns a config with only the defaults applied. The CLI uses
// it when no config file is given and flags supply the sheet location.
func Default() *Config {
	return &Config{
		PrivateKeyIDEnv: "GOOGLE_API_PRIVATE_KEY_ID",
		PrivateKeyEnv:   "GOOGLE_API_PRIVATE_KEY",
		LogLevel:        "info",
	}
}

// Load reads and validates the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the config can locate a sheet at all.
func (c *Config) Validate() error {
	if c.SheetURL == "" && c.XLSXPath == "" {
		return fmt.Errorf("config needs sheet_url or xlsx_path")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return nil
}

// Level maps LogLevel to the slog level the CLI logger runs at.
func (c *Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
