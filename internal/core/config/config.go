// Package config provides configuration management for noticegate commands.
package config

import "fmt"

// Context source selectors for the evaluate command.
const (
	ContextSourceEnv  = "env"
	ContextSourceFile = "file"
)

// Config holds settings for catalog evaluation.
type Config struct {
	// NotificationsPath locates the catalog JSON file.
	NotificationsPath string

	// ContextSource selects where the RuleContext snapshot comes from:
	// "env" (process environment) or "file" (JSON snapshot at ContextPath).
	ContextSource string

	// ContextPath locates the snapshot file when ContextSource is "file".
	ContextPath string

	// ExtensionID optionally overrides the snapshot's running-extension id.
	// Empty means use whatever the provider reports.
	ExtensionID string
}

// DefaultConfig returns configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		NotificationsPath: "./notifications.json",
		ContextSource:     ContextSourceEnv,
		ContextPath:       "",
		ExtensionID:       "",
	}
}

// validateConfig checks source selector validity and path presence.
func validateConfig(cfg *Config) error {
	switch cfg.ContextSource {
	case ContextSourceEnv:
	case ContextSourceFile:
		if cfg.ContextPath == "" {
			return fmt.Errorf("context_path required when context_source is %q", ContextSourceFile)
		}
	default:
		return fmt.Errorf("context_source must be %q or %q, got %q",
			ContextSourceEnv, ContextSourceFile, cfg.ContextSource)
	}
	if cfg.NotificationsPath == "" {
		return fmt.Errorf("notifications_path must not be empty")
	}
	return nil
}
