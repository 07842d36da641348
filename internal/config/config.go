// Package config provides configuration management for the devtoolbox CLI
// using Viper for flexible configuration loading from files, environment
// variables, and command-line flags.
//
// The configuration system supports YAML files and environment variable
// overrides with the DEVTOOLBOX_ prefix. It manages the static site layout
// (root directory, base URL), access-log analytics settings, link checker
// settings, and the preview server.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Site      SiteConfig      `yaml:"site"`
	Analytics AnalyticsConfig `yaml:"analytics"`
	LinkCheck LinkCheckConfig `yaml:"linkcheck"`
	Serve     ServeConfig     `yaml:"serve"`
}

type SiteConfig struct {
	Root          string   `yaml:"root"`
	BaseURL       string   `yaml:"base_url"`
	SkipFiles     []string `yaml:"skip_files"`
	RequiredFiles []string `yaml:"required_files"`
}

type AnalyticsConfig struct {
	LogPath         string   `yaml:"log_path"`
	RotatedLogPath  string   `yaml:"rotated_log_path"`
	AssetExtensions []string `yaml:"asset_extensions"`
	MonitorReferrer string   `yaml:"monitor_referrer"`
	TopPages        int      `yaml:"top_pages"`
	TopReferrers    int      `yaml:"top_referrers"`
	TopUserAgents   int      `yaml:"top_user_agents"`
}

type LinkCheckConfig struct {
	BaseURL  string  `yaml:"base_url"`
	Timeout  float64 `yaml:"timeout"`
	MaxItems int     `yaml:"max_items"`
}

type ServeConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	// Viper's Unmarshal does not map snake_case keys onto Go field names,
	// so every multi-word option is read back explicitly. Defaults apply
	// when the option is absent from all sources.
	config.Site.Root = stringOr("site.root", config.Site.Root, ".")
	config.Site.BaseURL = stringOr("site.base_url", config.Site.BaseURL, "https://devtoolbox.dedyn.io")
	config.Site.SkipFiles = sliceOr("site.skip_files", config.Site.SkipFiles,
		[]string{"index.html", "google5ab7b13e25381f31.html"})
	config.Site.RequiredFiles = sliceOr("site.required_files", config.Site.RequiredFiles,
		[]string{"google5ab7b13e25381f31.html"})

	config.Analytics.LogPath = stringOr("analytics.log_path", config.Analytics.LogPath,
		"/var/log/nginx/access.log")
	config.Analytics.RotatedLogPath = stringOr("analytics.rotated_log_path",
		config.Analytics.RotatedLogPath, config.Analytics.LogPath+".1")
	config.Analytics.AssetExtensions = sliceOr("analytics.asset_extensions",
		config.Analytics.AssetExtensions, []string{
			".css", ".js", ".png", ".jpg", ".jpeg", ".gif", ".svg",
			".ico", ".woff", ".woff2", ".ttf", ".map", ".webp",
		})
	config.Analytics.MonitorReferrer = stringOr("analytics.monitor_referrer",
		config.Analytics.MonitorReferrer, "192.168.100.10")
	config.Analytics.TopPages = intOr("analytics.top_pages", config.Analytics.TopPages, 20)
	config.Analytics.TopReferrers = intOr("analytics.top_referrers", config.Analytics.TopReferrers, 10)
	config.Analytics.TopUserAgents = intOr("analytics.top_user_agents", config.Analytics.TopUserAgents, 10)

	// The probe base URL defaults to localhost because checks run on the
	// same host that serves the site.
	config.LinkCheck.BaseURL = stringOr("linkcheck.base_url", config.LinkCheck.BaseURL, "http://localhost")
	if viper.IsSet("linkcheck.timeout") {
		config.LinkCheck.Timeout = viper.GetFloat64("linkcheck.timeout")
	}
	if config.LinkCheck.Timeout <= 0 {
		config.LinkCheck.Timeout = 5.0
	}
	config.LinkCheck.MaxItems = intOr("linkcheck.max_items", config.LinkCheck.MaxItems, 20)

	config.Serve.Host = stringOr("serve.host", config.Serve.Host, "localhost")
	config.Serve.Port = intOr("serve.port", config.Serve.Port, 8090)

	return &config, nil
}

func stringOr(key, current, fallback string) string {
	if viper.IsSet(key) {
		if v := viper.GetString(key); v != "" {
			return v
		}
	}
	if current != "" {
		return current
	}
	return fallback
}

func intOr(key string, current, fallback int) int {
	if viper.IsSet(key) {
		if v := viper.GetInt(key); v != 0 {
			return v
		}
	}
	if current != 0 {
		return current
	}
	return fallback
}

func sliceOr(key string, current, fallback []string) []string {
	if viper.IsSet(key) {
		if v := viper.GetStringSlice(key); len(v) > 0 {
			return v
		}
	}
	if len(current) > 0 {
		return current
	}
	return fallback
}
