package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// DefaultDatabasePath returns the conversation database location under
// XDG_STATE_HOME.
func DefaultDatabasePath() string {
	return filepath.Join(xdg.StateHome, "kopi", "conversations.db")
}

// DefaultLogPath returns the interactive-session log file location.
func DefaultLogPath() string {
	return filepath.Join(xdg.StateHome, "kopi", "logs", "kopi.log")
}

// DefaultConfigPath returns the user configuration file location under
// XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "kopi", "config.json")
}
