package config

// DefaultConfig returns the configuration used when no file or environment
// overrides are present.
func DefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			WindowSize:              5,
			MaxMessageLength:        2000,
			ResponseDeadlineSeconds: 30,
		},
		Storage: StorageConfig{
			DatabasePath: DefaultDatabasePath(),
		},
		Logging: LoggingConfig{
			Level: "warn",
			File:  DefaultLogPath(),
		},
	}
}
