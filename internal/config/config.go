package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all winswitch settings.
type Config struct {
	// ActivationTimeout bounds how long a caller waits for the OS to bring a
	// window forward.
	ActivationTimeout time.Duration `yaml:"activation_timeout"`

	// QueueDepth is how many activation requests may wait behind the one in
	// flight before submitters block.
	QueueDepth int `yaml:"queue_depth"`

	// ExcludeTitles hides windows whose title contains any of these
	// substrings (case-insensitive) from listings.
	ExcludeTitles []string `yaml:"exclude_titles"`

	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`

	Server ServerConfig `yaml:"server"`
}

// ServerConfig configures `winswitch serve`.
type ServerConfig struct {
	Transport string        `yaml:"transport"`
	Port      int           `yaml:"port"`
	CacheTTL  time.Duration `yaml:"cache_ttl"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		ActivationTimeout: 10 * time.Second,
		QueueDepth:        1,
		LogLevel:          "warn",
		Server: ServerConfig{
			Transport: "stdio",
			Port:      8080,
			CacheTTL:  time.Second,
		},
	}
}

// DefaultPath returns ~/.config/winswitch/config.yaml (or the OS equivalent).
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "winswitch", "config.yaml")
}

// Load builds a Config from defaults, the YAML file at path, and environment
// overrides, in that order. An empty path means DefaultPath, which may be
// absent; an explicitly named file must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return nil, err
			}
		}
	}

	if err := LoadFromEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile overlays the YAML file at path onto cfg. Keys missing from the
// file keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Validate rejects settings the rest of the program cannot work with.
func (c *Config) Validate() error {
	if c.ActivationTimeout <= 0 {
		return fmt.Errorf("activation_timeout must be positive, got %s", c.ActivationTimeout)
	}
	if c.QueueDepth < 0 {
		return fmt.Errorf("queue_depth must not be negative, got %d", c.QueueDepth)
	}
	switch c.Server.Transport {
	case "stdio", "streamable-http":
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", c.Server.Transport)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port out of range: %d", c.Server.Port)
	}
	if c.Server.CacheTTL < 0 {
		return fmt.Errorf("server cache_ttl must not be negative, got %s", c.Server.CacheTTL)
	}
	return nil
}
