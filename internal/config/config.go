// Package config loads the client configuration from a yaml file and the
// environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/remotetodo/internal/client"
	"github.com/idilsaglam/remotetodo/internal/logging"
)

// Environment variables consulted by Load.
const (
	EnvAPIURL   = "TODO_API_URL"
	EnvLogLevel = "TODO_LOG_LEVEL"
	EnvLogFile  = "TODO_LOG_FILE"
)

type Config struct {
	APIURL         string        `yaml:"api_url"`
	LogLevel       string        `yaml:"log_level"`
	LogFile        string        `yaml:"log_file"`
	Theme          string        `yaml:"theme"`           // classic, neon, mono
	RequestTimeout time.Duration `yaml:"request_timeout"` // 0 leaves the http default
	Server         ServerConfig  `yaml:"server"`
}

// ServerConfig configures `todo serve`.
type ServerConfig struct {
	Addr     string `yaml:"addr"`
	DataFile string `yaml:"data_file"` // empty keeps todos in memory only
}

// DefaultConfig returns a Config pointing at the hosted service.
func DefaultConfig() Config {
	return Config{
		APIURL:   client.DefaultBaseURL,
		LogLevel: "info",
		LogFile:  logging.DefaultFile(),
		Theme:    "classic",
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/todo/config.yaml (or the platform
// equivalent).
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "todo", "config.yaml")
}

// Load reads configuration from path, then applies environment overrides.
// A missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvAPIURL); v != "" {
		c.APIURL = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.LogFile = v
	}
}

// applyDefaults sets default values for any unset options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.APIURL == "" {
		c.APIURL = defaults.APIURL
	}
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.Server.Addr == "" {
		c.Server.Addr = defaults.Server.Addr
	}
}

// Validate reports criterio field errors for unusable values.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("api_url", c.APIURL, isHTTPURL),
		criterio.Run("log_level", c.LogLevel, isLogLevel),
		criterio.Run("theme", c.Theme, isTheme),
		criterio.Run("request_timeout", c.RequestTimeout, isNonNegative),
	)
}

func isHTTPURL(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}

func isLogLevel(s string) error {
	if _, err := zerolog.ParseLevel(s); err != nil {
		return fmt.Errorf("unknown level %q", s)
	}
	return nil
}

func isTheme(s string) error {
	switch s {
	case "classic", "neon", "mono":
		return nil
	}
	return fmt.Errorf("unknown theme %q (want classic, neon or mono)", s)
}

func isNonNegative(d time.Duration) error {
	if d < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}
