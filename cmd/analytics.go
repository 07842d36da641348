package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/autonomy414941/devtoolbox/internal/accesslog"
	"github.com/autonomy414941/devtoolbox/internal/analytics"
	"github.com/autonomy414941/devtoolbox/internal/config"
)

var analyticsCmd = &cobra.Command{
	Use:     "analytics [days]",
	Aliases: []string{"a"},
	Short:   "Traffic report from the web server access log",
	Long: `Analytics parses the web server access log and prints a plain-text
traffic report for a trailing window of days (default 7): request and
unique-visitor totals, top pages (static assets excluded), top referrers
(the internal uptime monitor excluded), status code distribution, top user
agents, and an hourly request histogram.

Lines that do not parse are skipped silently; an empty window yields a
zero-count report. Only a missing log file is fatal.

Examples:
  devtoolbox analytics            # last 7 days
  devtoolbox analytics 30         # last 30 days
  devtoolbox analytics 1 --log-file ./access.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalytics,
}

var analyticsLogFile string

func init() {
	rootCmd.AddCommand(analyticsCmd)

	analyticsCmd.Flags().StringVar(&analyticsLogFile, "log-file", "", "access log path (overrides config)")
}

func runAnalytics(cmd *cobra.Command, args []string) error {
	days := 7
	if len(args) == 1 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil || parsed < 0 {
			return fmt.Errorf("invalid day count %q: expected a non-negative integer", args[0])
		}
		days = parsed
	}

	// Arguments are valid from here on; remaining failures are operational
	// and re-printing usage for them only buries the diagnostic.
	cmd.SilenceUsage = true

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logPath := cfg.Analytics.LogPath
	if analyticsLogFile != "" {
		logPath = analyticsLogFile
	}

	entries, stats, err := accesslog.ReadFile(logPath)
	if err != nil {
		return err
	}

	logger := newLogger()
	logger.Debug(cmd.Context(), "access log read",
		"path", logPath, "lines", stats.TotalLines, "skipped", stats.SkippedLines)

	filtered := accesslog.FilterWindow(entries, accesslog.WindowSince(time.Now(), days))

	report := analytics.Analyze(filtered, analytics.Options{
		TopPages:        cfg.Analytics.TopPages,
		TopReferrers:    cfg.Analytics.TopReferrers,
		TopUserAgents:   cfg.Analytics.TopUserAgents,
		AssetExtensions: cfg.Analytics.AssetExtensions,
		MonitorReferrer: cfg.Analytics.MonitorReferrer,
	})
	report.Days = days

	analytics.Render(os.Stdout, report)
	return nil
}
