package cmd

import (
	"fmt"

	"github.com/solatis/noticegate/internal/core/catalog"
	"github.com/solatis/noticegate/internal/core/config"
	"github.com/solatis/noticegate/internal/core/host"
	"github.com/solatis/noticegate/internal/rules"
	"github.com/solatis/noticegate/internal/types"
	"github.com/spf13/cobra"
)

const Version = "0.1.0"

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate a notification catalog against the current host context",
	Long: `Evaluate loads a notification catalog, snapshots the host context, and
prints the id of every notification whose display rules are satisfied.`,
	RunE: runEvaluate,
}

func init() {
	rootCmd.AddCommand(evaluateCmd)
	evaluateCmd.Flags().String("notifications", "", "notification catalog file (overrides config)")
	evaluateCmd.Flags().String("context-file", "", "evaluate against a JSON context snapshot instead of the environment")
	evaluateCmd.Flags().String("extension-id", "", "override the running extension id")
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("notifications") {
		cfg.NotificationsPath, _ = cmd.Flags().GetString("notifications")
	}
	if cmd.Flags().Changed("context-file") {
		cfg.ContextPath, _ = cmd.Flags().GetString("context-file")
		cfg.ContextSource = config.ContextSourceFile
	}
	if cmd.Flags().Changed("extension-id") {
		cfg.ExtensionID, _ = cmd.Flags().GetString("extension-id")
	}

	var provider host.Provider
	switch cfg.ContextSource {
	case config.ContextSourceFile:
		provider = host.NewFileProvider(cfg.ContextPath)
	default:
		provider = host.NewEnvProvider()
	}

	snap, err := provider.Snapshot(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to snapshot host context: %w", err)
	}

	extensionID := snap.ExtensionID
	if cfg.ExtensionID != "" {
		extensionID = cfg.ExtensionID
	}

	engine, err := rules.NewEngine(extensionID, snap.RuleContext)
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	cat, err := catalog.Load(cfg.NotificationsPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	runID := types.NewRunID()
	logger.Info("evaluating catalog",
		"run_id", runID,
		"version", Version,
		"catalog", cfg.NotificationsPath,
		"notifications", len(cat.Notifications),
		"extension_id", extensionID)

	displayed := 0
	for i := range cat.Notifications {
		n := &cat.Notifications[i]
		show, err := engine.ShouldDisplayNotification(n)
		if err != nil {
			return fmt.Errorf("notification %q: %w", n.ID, err)
		}
		logger.Debug("evaluated notification", "run_id", runID, "id", n.ID, "display", show)
		if show {
			displayed++
			fmt.Fprintln(cmd.OutOrStdout(), n.ID)
		}
	}

	logger.Info("evaluation complete", "run_id", runID, "displayed", displayed)
	return nil
}
