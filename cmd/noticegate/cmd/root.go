package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	configFile string
	logLevel   string
	logFormat  string

	logger *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "noticegate",
	Short: "Noticegate contextual notification rule engine",
	Long:  `Noticegate decides which contextual notifications should be shown to a user by evaluating declarative display rules against a snapshot of host state.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogger()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (json, text)")
}

// setupLogger configures the shared logger from the persistent flags.
func setupLogger() error {
	lvl, err := log.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}

	var formatter log.Formatter
	switch logFormat {
	case "json":
		formatter = log.JSONFormatter
	case "text":
		formatter = log.TextFormatter
	default:
		return fmt.Errorf("invalid log format %q (json, text)", logFormat)
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:           lvl,
		Formatter:       formatter,
		ReportTimestamp: true,
	})
	return nil
}

func Execute() error {
	return rootCmd.Execute()
}
