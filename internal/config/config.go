// Package config holds runtime settings resolved from the environment.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/abhisek/oracle/internal/logging"
	"github.com/abhisek/oracle/internal/store"
)

// Config holds everything needed to locate the dataset and set up logging.
type Config struct {
	// Source is a local path or an http(s) URL of the SQLite snapshot.
	Source string

	// Checksum is an optional hex SHA-256 the snapshot must match.
	Checksum string

	FetchTimeout time.Duration
	LogDir       string
	LogLevel     string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	cfg := Config{
		FetchTimeout: 30 * time.Second,
		LogLevel:     "info",
	}
	if p, err := store.DefaultDBPath(); err == nil {
		cfg.Source = p
	}
	if d, err := logging.DefaultDir(); err == nil {
		cfg.LogDir = d
	}
	return cfg
}

// LoadFromEnv builds a Config from ORACLE_* variables, falling back to
// defaults for anything unset.
func LoadFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if s := os.Getenv("ORACLE_DB"); s != "" {
		cfg.Source = s
	}
	if s := os.Getenv("ORACLE_DB_SHA256"); s != "" {
		cfg.Checksum = s
	}
	if s := os.Getenv("ORACLE_FETCH_TIMEOUT"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return cfg, fmt.Errorf("parse ORACLE_FETCH_TIMEOUT: %w", err)
		}
		cfg.FetchTimeout = d
	}
	if s := os.Getenv("ORACLE_LOG_DIR"); s != "" {
		cfg.LogDir = s
	}
	if s := os.Getenv("ORACLE_LOG_LEVEL"); s != "" {
		cfg.LogLevel = s
	}

	return cfg, nil
}

// Validate reports the first setting that cannot work.
func (c Config) Validate() error {
	if c.Source == "" {
		return fmt.Errorf("dataset source is required (set --db or ORACLE_DB)")
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("fetch timeout must be positive, got %s", c.FetchTimeout)
	}
	if c.Checksum != "" && len(c.Checksum) != 64 {
		return fmt.Errorf("ORACLE_DB_SHA256 must be 64 hex characters, got %d", len(c.Checksum))
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level: %q", c.LogLevel)
	}
	return nil
}

// FetchOptions returns the store fetch settings carried by c. Remote
// sources always bypass caches.
func (c Config) FetchOptions() store.FetchOptions {
	return store.FetchOptions{
		Checksum: c.Checksum,
		Timeout:  c.FetchTimeout,
		NoCache:  store.IsRemote(c.Source),
	}
}
