package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoadConfig loads configuration from file using viper.
// CLI flags > environment > config file > defaults precedence.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults matching DefaultConfig
	v.SetDefault("notifications_path", "./notifications.json")
	v.SetDefault("context_source", ContextSourceEnv)
	v.SetDefault("context_path", "")
	v.SetDefault("extension_id", "")

	// Bind environment variables with NG_ prefix
	v.SetEnvPrefix("NG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Load config file if provided
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		NotificationsPath: v.GetString("notifications_path"),
		ContextSource:     v.GetString("context_source"),
		ContextPath:       v.GetString("context_path"),
		ExtensionID:       v.GetString("extension_id"),
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
