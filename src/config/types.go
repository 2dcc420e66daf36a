package config

import "time"

// Config is the complete application configuration.
type Config struct {
	// Engine holds the debate engine settings.
	Engine EngineConfig `json:"engine"`

	// Storage holds conversation durability settings.
	Storage StorageConfig `json:"storage"`

	// Logging holds log output settings.
	Logging LoggingConfig `json:"logging"`

	// TopicsFile optionally points at a JSON topic catalog that replaces
	// the built-in one.
	TopicsFile string `json:"topics_file,omitempty"`
}

// EngineConfig bounds the engine's per-conversation resources.
type EngineConfig struct {
	// WindowSize is the number of retained exchanges per conversation.
	WindowSize int `json:"window_size" validate:"min=1,max=100"`

	// MaxMessageLength caps inbound messages and rendered replies, in
	// characters.
	MaxMessageLength int `json:"max_message_length" validate:"min=1,max=100000"`

	// ResponseDeadlineSeconds bounds one request end to end.
	ResponseDeadlineSeconds int `json:"response_deadline_seconds" validate:"min=1,max=600"`
}

// ResponseDeadline returns the deadline as a duration.
func (e EngineConfig) ResponseDeadline() time.Duration {
	return time.Duration(e.ResponseDeadlineSeconds) * time.Second
}

// StorageConfig selects where conversations are persisted.
type StorageConfig struct {
	// DatabasePath is the SQLite database file.
	DatabasePath string `json:"database_path" validate:"required"`

	// InMemory skips SQLite entirely; conversations die with the process.
	InMemory bool `json:"in_memory,omitempty"`
}

// LoggingConfig defines log output.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `json:"level" validate:"log_level"`

	// File receives JSON logs during interactive sessions, where stderr
	// belongs to the transcript.
	File string `json:"file,omitempty"`
}
