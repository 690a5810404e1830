package config

import (
	"testing"
	"time"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ORACLE_DB", "https://example.com/oracle.db")
	t.Setenv("ORACLE_DB_SHA256", "")
	t.Setenv("ORACLE_FETCH_TIMEOUT", "5s")
	t.Setenv("ORACLE_LOG_DIR", "/tmp/oracle-logs")
	t.Setenv("ORACLE_LOG_LEVEL", "debug")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv: %v", err)
	}
	if cfg.Source != "https://example.com/oracle.db" {
		t.Errorf("Source = %q", cfg.Source)
	}
	if cfg.FetchTimeout != 5*time.Second {
		t.Errorf("FetchTimeout = %s", cfg.FetchTimeout)
	}
	if cfg.LogDir != "/tmp/oracle-logs" || cfg.LogLevel != "debug" {
		t.Errorf("log settings = %q %q", cfg.LogDir, cfg.LogLevel)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}

	opts := cfg.FetchOptions()
	if opts.Timeout != 5*time.Second || opts.Checksum != "" {
		t.Errorf("FetchOptions = %+v", opts)
	}
}

func TestLoadFromEnvBadTimeout(t *testing.T) {
	t.Setenv("ORACLE_FETCH_TIMEOUT", "soon")
	if _, err := LoadFromEnv(); err == nil {
		t.Fatal("expected error for unparseable timeout")
	}
}

func TestValidate(t *testing.T) {
	valid := Config{Source: "oracle.db", FetchTimeout: time.Second, LogLevel: "info"}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"no source", func(c *Config) { c.Source = "" }, true},
		{"zero timeout", func(c *Config) { c.FetchTimeout = 0 }, true},
		{"short checksum", func(c *Config) { c.Checksum = "abc" }, true},
		{"unknown level", func(c *Config) { c.LogLevel = "loud" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFetchOptionsNoCacheForRemote(t *testing.T) {
	tests := []struct {
		source string
		want   bool
	}{
		{"https://example.com/oracle.db", true},
		{"http://localhost:8080/oracle.db", true},
		{"/var/lib/oracle/oracle.db", false},
		{"oracle.db", false},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Source = tt.source
		if got := cfg.FetchOptions().NoCache; got != tt.want {
			t.Errorf("FetchOptions(%q).NoCache = %v, want %v", tt.source, got, tt.want)
		}
	}
}
