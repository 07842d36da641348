package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		setup func()
		check func(t *testing.T, cfg *Config)
	}{
		{
			name:  "defaults",
			setup: func() { viper.Reset() },
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, ".", cfg.Site.Root)
				assert.Equal(t, "https://devtoolbox.dedyn.io", cfg.Site.BaseURL)
				assert.Contains(t, cfg.Site.SkipFiles, "index.html")
				assert.Equal(t, "/var/log/nginx/access.log", cfg.Analytics.LogPath)
				assert.Equal(t, "/var/log/nginx/access.log.1", cfg.Analytics.RotatedLogPath)
				assert.Contains(t, cfg.Analytics.AssetExtensions, ".css")
				assert.Equal(t, 20, cfg.Analytics.TopPages)
				assert.Equal(t, 10, cfg.Analytics.TopReferrers)
				assert.Equal(t, 5.0, cfg.LinkCheck.Timeout)
				assert.Equal(t, 20, cfg.LinkCheck.MaxItems)
				assert.Equal(t, "localhost", cfg.Serve.Host)
				assert.Equal(t, 8090, cfg.Serve.Port)
			},
		},
		{
			name: "custom site settings",
			setup: func() {
				viper.Reset()
				viper.Set("site.root", "/var/www/web-ceo")
				viper.Set("site.base_url", "https://example.org")
				viper.Set("site.skip_files", []string{"index.html", "draft.html"})
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/var/www/web-ceo", cfg.Site.Root)
				assert.Equal(t, "https://example.org", cfg.Site.BaseURL)
				assert.Equal(t, []string{"index.html", "draft.html"}, cfg.Site.SkipFiles)
			},
		},
		{
			name: "custom analytics settings",
			setup: func() {
				viper.Reset()
				viper.Set("analytics.log_path", "/tmp/access.log")
				viper.Set("analytics.monitor_referrer", "10.9.8.7")
				viper.Set("analytics.top_pages", 50)
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/tmp/access.log", cfg.Analytics.LogPath)
				assert.Equal(t, "/tmp/access.log.1", cfg.Analytics.RotatedLogPath)
				assert.Equal(t, "10.9.8.7", cfg.Analytics.MonitorReferrer)
				assert.Equal(t, 50, cfg.Analytics.TopPages)
			},
		},
		{
			name: "custom serve settings",
			setup: func() {
				viper.Reset()
				viper.Set("serve.host", "0.0.0.0")
				viper.Set("serve.port", 3000)
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "0.0.0.0", cfg.Serve.Host)
				assert.Equal(t, 3000, cfg.Serve.Port)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			cfg, err := Load()
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}
