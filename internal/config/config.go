// Package config provides configuration management for go-miniblog.
// Adapted from the go-pugleaf config layer for single-admin blog use.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

var AppVersion = "-unset-" // will be set at build time

// SettingsEnvVar names an optional TOML settings file that overrides the
// defaults at startup. Absence of the variable is not an error.
const SettingsEnvVar = "MINIBLOG_SETTINGS"

// Config holds the main configuration for go-miniblog.
// It is constructed once at startup and read-only afterwards.
type Config struct {
	// Path to the sqlite database file
	Database string `toml:"database"`

	// Static admin credentials, compared as-is against the login form
	AdminUser     string `toml:"admin_user"`
	AdminPassword string `toml:"admin_password"`

	// Secret used to sign session cookies
	SecretKey string `toml:"secret_key"`

	// Enable debug logging for sessions/auth
	Debug bool `toml:"debug"`

	// Web interface settings
	Web WebConfig `toml:"web"`

	AppVersion string `toml:"-"` // Application version, set at build time
}

// WebConfig holds web interface configuration
type WebConfig struct {
	ListenPort int    `toml:"listen_port"`
	SSL        bool   `toml:"ssl"`
	CertFile   string `toml:"cert_file"`
	KeyFile    string `toml:"key_file"`
}

// NewDefaultConfig returns a configuration with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Database:      "data/miniblog.sq3",
		AdminUser:     "admin",
		AdminPassword: "default",
		SecretKey:     "development key",
		Debug:         false,
		Web: WebConfig{
			ListenPort: 8080,
			SSL:        false,
		},
		AppVersion: AppVersion,
	}
}

// Load builds the process configuration: defaults, then the optional settings
// file named by $MINIBLOG_SETTINGS, then individual environment variables.
func Load() (*Config, error) {
	cfg := NewDefaultConfig()

	if path := os.Getenv(SettingsEnvVar); path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to load settings file %s: %w", path, err)
		}
		log.Printf("[CFG]: Loaded settings file: %s", path)
	}

	if v := os.Getenv("MINIBLOG_DATABASE"); v != "" {
		cfg.Database = v
	}
	if v := os.Getenv("MINIBLOG_ADMIN_USER"); v != "" {
		cfg.AdminUser = v
	}
	if v := os.Getenv("MINIBLOG_ADMIN_PASSWORD"); v != "" {
		cfg.AdminPassword = v
	}
	if v := os.Getenv("MINIBLOG_SECRET_KEY"); v != "" {
		cfg.SecretKey = v
	}
	if v := os.Getenv("MINIBLOG_DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid MINIBLOG_DEBUG value %q: %w", v, err)
		}
		cfg.Debug = debug
	}

	return cfg, nil
}
