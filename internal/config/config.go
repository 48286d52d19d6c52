// Package config loads eatgo's YAML configuration and applies environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the home directory.
const FileName = "config.yaml"

// EnvFileName is an optional dotenv file in the home directory whose
// variables feed the EATGO_* overrides.
const EnvFileName = ".env"

const (
	defaultBaseURL = "http://127.0.0.1:8080"
	defaultTimeout = 10 * time.Second
)

// Config holds all eatgo configuration.
type Config struct {
	// Remote API
	API APIConfig `yaml:"api"`

	// Durable client storage
	Storage StorageConfig `yaml:"storage"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// APIConfig configures the remote restaurant API.
type APIConfig struct {
	BaseURL  string `yaml:"base_url"`
	LoginURL string `yaml:"login_url"` // defaults to BaseURL
	Timeout  string `yaml:"timeout"`   // Go duration, e.g. "10s"

	// Client-side throttle; 0 disables it.
	RateLimit float64 `yaml:"rate_limit"`
	Burst     int     `yaml:"burst"`
}

// StorageConfig configures the token store.
type StorageConfig struct {
	// When set, stored values are sealed with a key derived from it.
	Passphrase string `yaml:"passphrase"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	JSON  bool   `yaml:"json"`
	File  string `yaml:"file"` // used by the interactive view; empty discards
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: defaultBaseURL,
			Timeout: defaultTimeout.String(),
			Burst:   1,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads path over the defaults and applies environment overrides. A
// missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotEnv exports the variables in path that are not already set in the
// environment. A missing file is not an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Save writes cfg to path as YAML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// applyEnvOverrides lets EATGO_* variables win over the file.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("EATGO_API_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("EATGO_LOGIN_URL"); v != "" {
		c.API.LoginURL = v
	}
	if v := os.Getenv("EATGO_PASSPHRASE"); v != "" {
		c.Storage.Passphrase = v
	}
	if v := os.Getenv("EATGO_LOG_LEVEL"); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
}

// Validate reports configuration that cannot work.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api.base_url is required")
	}
	if _, err := c.APITimeout(); err != nil {
		return err
	}
	if c.API.RateLimit < 0 {
		return errors.New("api.rate_limit must not be negative")
	}
	return nil
}

// APITimeout parses API.Timeout, falling back to the default when empty.
func (c *Config) APITimeout() (time.Duration, error) {
	if c.API.Timeout == "" {
		return defaultTimeout, nil
	}
	d, err := time.ParseDuration(c.API.Timeout)
	if err != nil {
		return 0, fmt.Errorf("api.timeout: %w", err)
	}
	return d, nil
}

// LoginBase returns the login service URL.
func (c *Config) LoginBase() string {
	if c.API.LoginURL != "" {
		return c.API.LoginURL
	}
	return c.API.BaseURL
}
