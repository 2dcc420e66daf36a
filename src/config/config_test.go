package config

import (
	"testing"

	"github.com/spf13/afero"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Engine.WindowSize != 5 {
		t.Errorf("expected window size 5, got %d", cfg.Engine.WindowSize)
	}
	if cfg.Engine.MaxMessageLength != 2000 {
		t.Errorf("expected max message length 2000, got %d", cfg.Engine.MaxMessageLength)
	}
	if cfg.Engine.ResponseDeadlineSeconds != 30 {
		t.Errorf("expected deadline 30s, got %d", cfg.Engine.ResponseDeadlineSeconds)
	}
	if cfg.Storage.DatabasePath == "" {
		t.Error("expected a default database path")
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected log level warn, got %s", cfg.Logging.Level)
	}
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	cfg, err := NewLoaderWithFs(afero.NewMemMapFs()).Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Engine.WindowSize != 5 {
		t.Errorf("expected default window size, got %d", cfg.Engine.WindowSize)
	}
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := `{"engine": {"window_size": 8}, "storage": {"database_path": "/tmp/test.db"}}`
	if err := afero.WriteFile(fs, "/etc/kopi/config.json", []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewLoaderWithFs(fs).Load("/etc/kopi/config.json")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Engine.WindowSize != 8 {
		t.Errorf("expected window size 8 from file, got %d", cfg.Engine.WindowSize)
	}
	if cfg.Storage.DatabasePath != "/tmp/test.db" {
		t.Errorf("expected database path from file, got %s", cfg.Storage.DatabasePath)
	}
	if cfg.Engine.MaxMessageLength != 2000 {
		t.Errorf("fields absent from the file keep defaults, got %d", cfg.Engine.MaxMessageLength)
	}
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	if _, err := NewLoaderWithFs(afero.NewMemMapFs()).Load("/nope.json"); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("KOPI_WINDOW_SIZE", "3")
	t.Setenv("KOPI_LOG_LEVEL", "debug")
	t.Setenv("KOPI_DATABASE_PATH", "/tmp/env.db")

	cfg, err := NewLoaderWithFs(afero.NewMemMapFs()).Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Engine.WindowSize != 3 {
		t.Errorf("expected window size 3 from env, got %d", cfg.Engine.WindowSize)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level debug from env, got %s", cfg.Logging.Level)
	}
	if cfg.Storage.DatabasePath != "/tmp/env.db" {
		t.Errorf("expected database path from env, got %s", cfg.Storage.DatabasePath)
	}
}

func TestLoadRejectsBadEnvValue(t *testing.T) {
	t.Setenv("KOPI_WINDOW_SIZE", "lots")
	if _, err := NewLoaderWithFs(afero.NewMemMapFs()).Load(""); err == nil {
		t.Error("expected error for non-numeric KOPI_WINDOW_SIZE")
	}
}

func TestValidation(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"zero window", func(c *Config) { c.Engine.WindowSize = 0 }, true},
		{"huge window", func(c *Config) { c.Engine.WindowSize = 1000 }, true},
		{"zero message cap", func(c *Config) { c.Engine.MaxMessageLength = 0 }, true},
		{"zero deadline", func(c *Config) { c.Engine.ResponseDeadlineSeconds = 0 }, true},
		{"empty database path", func(c *Config) { c.Storage.DatabasePath = "" }, true},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := v.Validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
