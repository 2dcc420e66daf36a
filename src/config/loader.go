package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/afero"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "KOPI_"

// Loader loads configuration: defaults first, then an optional JSON file,
// then environment overrides, validated at the end.
type Loader struct {
	fs        afero.Fs
	validator *Validator
}

// NewLoader creates a loader reading from the OS filesystem.
func NewLoader() *Loader {
	return NewLoaderWithFs(afero.NewOsFs())
}

// NewLoaderWithFs creates a loader reading from the given filesystem.
func NewLoaderWithFs(fs afero.Fs) *Loader {
	return &Loader{fs: fs, validator: NewValidator()}
}

// Load builds the effective configuration. An empty path means "no file";
// a missing file at an explicit path is an error.
func (l *Loader) Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := afero.ReadFile(l.fs, path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := l.applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	if err := l.validator.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (l *Loader) applyEnvOverrides(cfg *Config) error {
	if v, ok := lookupEnv("WINDOW_SIZE"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse %sWINDOW_SIZE: %w", EnvPrefix, err)
		}
		cfg.Engine.WindowSize = n
	}
	if v, ok := lookupEnv("MAX_MESSAGE_LENGTH"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse %sMAX_MESSAGE_LENGTH: %w", EnvPrefix, err)
		}
		cfg.Engine.MaxMessageLength = n
	}
	if v, ok := lookupEnv("RESPONSE_DEADLINE_SECONDS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse %sRESPONSE_DEADLINE_SECONDS: %w", EnvPrefix, err)
		}
		cfg.Engine.ResponseDeadlineSeconds = n
	}
	if v, ok := lookupEnv("DATABASE_PATH"); ok {
		cfg.Storage.DatabasePath = v
	}
	if v, ok := lookupEnv("LOG_LEVEL"); ok {
		cfg.Logging.Level = v
	}
	if v, ok := lookupEnv("TOPICS_FILE"); ok {
		cfg.TopicsFile = v
	}
	return nil
}

func lookupEnv(key string) (string, bool) {
	v, ok := os.LookupEnv(EnvPrefix + key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
