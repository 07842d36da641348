package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/autonomy414941/devtoolbox/internal/config"
	"github.com/autonomy414941/devtoolbox/internal/errors"
	"github.com/autonomy414941/devtoolbox/internal/site"
	"github.com/autonomy414941/devtoolbox/internal/sitemap"
)

var sitemapCmd = &cobra.Command{
	Use:     "sitemap",
	Aliases: []string{"m"},
	Short:   "Regenerate sitemap.xml",
	Long: `Sitemap rewrites sitemap.xml for the site. Blog posts take their
<lastmod> from article published/modified metadata so only genuinely updated
posts look fresh to crawlers; all other pages use the file mtime (UTC date).

The command refuses to run when a required root file (search engine
verification page) is missing from the site root.`,
	Args: cobra.NoArgs,
	RunE: runSitemap,
}

func init() {
	rootCmd.AddCommand(sitemapCmd)

	sitemapCmd.Flags().StringP("output", "o", "", "output path (default <site-root>/sitemap.xml)")
}

func runSitemap(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	collector := errors.NewCollector()
	scanner := site.NewScanner(cfg.Site.Root, nil, collector)
	builder := sitemap.NewBuilder(scanner, cfg.Site.BaseURL, cfg.Site.RequiredFiles)

	output := lookupString(cmd.Flags(), "output")
	if output == "" {
		output = filepath.Join(cfg.Site.Root, "sitemap.xml")
	}

	count, err := builder.WriteFile(output)
	if err != nil {
		return err
	}
	reportScanErrors(cmd, collector)

	fmt.Fprintf(os.Stdout, "Wrote %s with %d URLs\n", output, count)
	return nil
}
