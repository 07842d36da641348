package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/autonomy414941/devtoolbox/internal/accesslog"
	"github.com/autonomy414941/devtoolbox/internal/analytics"
	"github.com/autonomy414941/devtoolbox/internal/config"
)

var organicCmd = &cobra.Command{
	Use:   "organic",
	Short: "Organic search referral report",
	Long: `Organic reports search-engine traffic from the current and rotated
access logs: referral counts per engine, the pages they land on (with a
today-only column from the current log), and every non-empty referrer.

The rotated log is optional; when it is missing the report covers the
current log alone.`,
	Args: cobra.NoArgs,
	RunE: runOrganic,
}

func init() {
	rootCmd.AddCommand(organicCmd)
}

func runOrganic(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	current, _, err := accesslog.ReadFile(cfg.Analytics.LogPath)
	if err != nil {
		return err
	}

	// Best effort: a freshly provisioned host has no rotation yet.
	var rotated []accesslog.Entry
	if entries, _, err := accesslog.ReadFile(cfg.Analytics.RotatedLogPath); err == nil {
		rotated = entries
	} else {
		newLogger().Warn(cmd.Context(), err, "rotated log unavailable",
			"path", cfg.Analytics.RotatedLogPath)
	}

	analytics.RenderOrganic(os.Stdout, analytics.Organic(current, rotated))
	return nil
}
