package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/autonomy414941/devtoolbox/internal/config"
	"github.com/autonomy414941/devtoolbox/internal/errors"
	"github.com/autonomy414941/devtoolbox/internal/indexgen"
	"github.com/autonomy414941/devtoolbox/internal/site"
)

var indexCmd = &cobra.Command{
	Use:     "index",
	Aliases: []string{"i"},
	Short:   "Regenerate the landing page from page metadata",
	Long: `Index scans the top-level HTML pages of the site root, extracts each
page's title and meta description, groups pages into Tools, Cheat Sheets and
Guides, and rewrites index.html from the embedded template.

Examples:
  devtoolbox index                       # rewrite <site-root>/index.html
  devtoolbox index -o /tmp/preview.html  # write elsewhere for review`,
	Args: cobra.NoArgs,
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)

	indexCmd.Flags().StringP("output", "o", "", "output path (default <site-root>/index.html)")
}

func runIndex(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	collector := errors.NewCollector()
	scanner := site.NewScanner(cfg.Site.Root, cfg.Site.SkipFiles, collector)
	pages, err := scanner.ScanDir("")
	if err != nil {
		return err
	}
	reportScanErrors(cmd, collector)

	output := lookupString(cmd.Flags(), "output")
	if output == "" {
		output = filepath.Join(cfg.Site.Root, "index.html")
	}

	if err := indexgen.Write(output, pages, time.Now()); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Wrote %s with %d entries.\n", output, len(pages))
	return nil
}

// reportScanErrors surfaces tolerated per-file failures without failing the
// run.
func reportScanErrors(cmd *cobra.Command, collector *errors.Collector) {
	if !collector.HasErrors() {
		return
	}
	logger := newLogger()
	for _, scanErr := range collector.Errors() {
		logger.Warn(cmd.Context(), nil, "page skipped", "file", scanErr.File, "reason", scanErr.Message)
	}
}
