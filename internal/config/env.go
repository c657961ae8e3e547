package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// LoadFromEnv applies WINSWITCH_* environment overrides to cfg.
func LoadFromEnv(cfg *Config) error {
	if v := os.Getenv("WINSWITCH_ACTIVATION_TIMEOUT"); v != "" {
		d, err := parseDuration(v)
		if err != nil {
			return fmt.Errorf("WINSWITCH_ACTIVATION_TIMEOUT: %w", err)
		}
		cfg.ActivationTimeout = d
	}

	if v := os.Getenv("WINSWITCH_QUEUE_DEPTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("WINSWITCH_QUEUE_DEPTH: %w", err)
		}
		cfg.QueueDepth = n
	}

	if v, ok := os.LookupEnv("WINSWITCH_EXCLUDE_TITLES"); ok {
		cfg.ExcludeTitles = nil
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.ExcludeTitles = append(cfg.ExcludeTitles, p)
			}
		}
	}

	if v := os.Getenv("WINSWITCH_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("WINSWITCH_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}

	if v := os.Getenv("WINSWITCH_SERVER_TRANSPORT"); v != "" {
		cfg.Server.Transport = v
	}
	if v := os.Getenv("WINSWITCH_SERVER_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("WINSWITCH_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if v := os.Getenv("WINSWITCH_SERVER_CACHE_TTL"); v != "" {
		d, err := parseDuration(v)
		if err != nil {
			return fmt.Errorf("WINSWITCH_SERVER_CACHE_TTL: %w", err)
		}
		cfg.Server.CacheTTL = d
	}

	return nil
}

// parseDuration accepts Go duration strings ("1.5s") or bare seconds ("10").
func parseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if secs, err := strconv.ParseFloat(s, 64); err == nil {
		return time.Duration(secs * float64(time.Second)), nil
	}
	return time.ParseDuration(s)
}
