// Package cmd provides the command-line interface for devtoolbox with
// configuration management supporting multiple configuration sources.
//
// Configuration System:
//
//	The CLI supports flexible configuration through multiple sources with clear precedence:
//	1. Command-line flags (--config, --site-root, etc.) - highest priority
//	2. DEVTOOLBOX_CONFIG_FILE environment variable - custom config file path
//	3. Individual environment variables (DEVTOOLBOX_SITE_ROOT, etc.)
//	4. Configuration files (.devtoolbox.yml) - lowest priority
//
// Environment Variables:
//
//	DEVTOOLBOX_CONFIG_FILE: Path to custom configuration file
//	DEVTOOLBOX_SITE_ROOT: Override site root directory
//	DEVTOOLBOX_ANALYTICS_LOG_PATH: Override access log path
//	And so on following the DEVTOOLBOX_<SECTION>_<OPTION> pattern
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/autonomy414941/devtoolbox/internal/logging"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "devtoolbox",
	Short: "Maintenance CLI for the DevToolbox documentation site",
	Long: `Devtoolbox maintains a static documentation site of developer tools,
cheat sheets and guides: it regenerates the landing page and sitemap from
page metadata, checks internal link integrity, reports on access-log
traffic, and serves a local live-reloading preview.

Quick Start:
  devtoolbox analytics 7          Traffic report for the last week
  devtoolbox index                Regenerate index.html
  devtoolbox sitemap              Regenerate sitemap.xml
  devtoolbox linkcheck            Probe internal links on the live site
  devtoolbox serve                Preview the site with live reload

Command Aliases (for faster typing):
  analytics (a), index (i), sitemap (m), linkcheck (c), serve (s)`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .devtoolbox.yml, can also use DEVTOOLBOX_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("site-root", "", "static site root directory")
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("site.root", rootCmd.PersistentFlags().Lookup("site-root"))
}

// newLogger builds the run logger from the --log-level flag.
func newLogger() logging.Logger {
	cfg := logging.DefaultConfig()
	cfg.Level = logging.ParseLevel(viper.GetString("log-level"))
	return logging.NewLogger(cfg)
}

// initConfig initializes the configuration system with support for multiple
// config sources, in priority order: --config flag, DEVTOOLBOX_CONFIG_FILE
// environment variable, then a .devtoolbox.yml in the current directory.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("DEVTOOLBOX_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".devtoolbox")
	}

	// Enable automatic environment variable binding with DEVTOOLBOX_ prefix
	// Examples: DEVTOOLBOX_SITE_ROOT, DEVTOOLBOX_SERVE_PORT
	viper.SetEnvPrefix("DEVTOOLBOX")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// A missing or malformed config file is not fatal; defaults apply.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
