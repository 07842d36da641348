package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/autonomy414941/devtoolbox/internal/config"
	"github.com/autonomy414941/devtoolbox/internal/errors"
	"github.com/autonomy414941/devtoolbox/internal/linkcheck"
)

var linkcheckCmd = &cobra.Command{
	Use:     "linkcheck",
	Aliases: []string{"c"},
	Short:   "Check internal anchor link integrity against the live site",
	Long: `Linkcheck scans every HTML file under the site root for internal
anchor links, probes each unique target against the base URL (HEAD first,
GET when the server rejects HEAD), and reports broken and redirecting
targets with the pages that link to them.

Examples:
  devtoolbox linkcheck                          # text summary to stdout
  devtoolbox linkcheck -f json                  # full report as JSON
  devtoolbox linkcheck --json-report out.json   # also write JSON to a file
  devtoolbox linkcheck --base-url http://127.0.0.1:8080`,
	Args: cobra.NoArgs,
	RunE: runLinkcheck,
}

var (
	linkcheckFlags      *OutputFlags
	linkcheckBaseURL    string
	linkcheckTimeout    float64
	linkcheckMaxItems   int
	linkcheckJSONReport string
)

func init() {
	rootCmd.AddCommand(linkcheckCmd)

	linkcheckFlags = AddOutputFlags(linkcheckCmd, []string{"text", "json", "yaml"})
	linkcheckCmd.Flags().StringVar(&linkcheckBaseURL, "base-url", "", "base URL to probe (overrides config)")
	linkcheckCmd.Flags().Float64Var(&linkcheckTimeout, "timeout", 0, "HTTP timeout in seconds (overrides config)")
	linkcheckCmd.Flags().IntVar(&linkcheckMaxItems, "max-items", 0, "max report rows (overrides config)")
	linkcheckCmd.Flags().StringVar(&linkcheckJSONReport, "json-report", "", "write the full JSON report to this path")
}

func runLinkcheck(cmd *cobra.Command, args []string) error {
	if err := linkcheckFlags.Validate([]string{"text", "json", "yaml"}); err != nil {
		return err
	}
	cmd.SilenceUsage = true

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if _, err := os.Stat(cfg.Site.Root); err != nil {
		return fmt.Errorf("site root not found: %s", cfg.Site.Root)
	}

	baseURL := cfg.LinkCheck.BaseURL
	if linkcheckBaseURL != "" {
		baseURL = linkcheckBaseURL
	}
	timeout := cfg.LinkCheck.Timeout
	if linkcheckTimeout > 0 {
		timeout = linkcheckTimeout
	}
	if timeout < 0.2 {
		timeout = 0.2
	}
	maxItems := cfg.LinkCheck.MaxItems
	if linkcheckMaxItems > 0 {
		maxItems = linkcheckMaxItems
	}

	prober, err := linkcheck.NewProber(baseURL, time.Duration(timeout*float64(time.Second)))
	if err != nil {
		return err
	}

	collector := errors.NewCollector()
	collection, err := linkcheck.Collect(cfg.Site.Root, collector)
	if err != nil {
		return err
	}
	reportScanErrors(cmd, collector)

	report := linkcheck.Run(cmd.Context(), collection, prober, cfg.Site.Root, baseURL, maxItems)

	if linkcheckJSONReport != "" {
		f, err := os.Create(linkcheckJSONReport)
		if err != nil {
			return fmt.Errorf("creating JSON report file: %w", err)
		}
		defer f.Close()
		if err := linkcheck.EncodeJSON(f, report); err != nil {
			return err
		}
	}

	switch strings.ToLower(linkcheckFlags.Format) {
	case "json":
		return linkcheck.EncodeJSON(os.Stdout, report)
	case "yaml":
		return linkcheck.EncodeYAML(os.Stdout, report)
	default:
		linkcheck.Render(os.Stdout, report)
		return nil
	}
}
