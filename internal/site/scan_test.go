package site

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autonomy414941/devtoolbox/internal/errors"
)

const toolPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <title>  JSON Formatter &amp; Validator | DevToolbox </title>
  <meta name="description" content="Format and validate
  JSON in the browser.">
</head>
<body><h1>JSON Formatter</h1></body>
</html>`

const blogPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <title>Regex Pitfalls</title>
  <meta property="article:published_time" content="2026-03-10">
  <script type="application/ld+json">
  {"@type": "BlogPosting", "dateModified": "2026-05-02"}
  </script>
</head>
<body></body>
</html>`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestScanDirMetadata(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "json-formatter.html", toolPage)
	writeFile(t, dir, "index.html", "<html></html>")
	writeFile(t, dir, "notes.txt", "not html")

	scanner := NewScanner(dir, []string{"index.html"}, errors.NewCollector())
	pages, err := scanner.ScanDir("")
	require.NoError(t, err)
	require.Len(t, pages, 1)

	page := pages[0]
	assert.Equal(t, "json-formatter.html", page.Filename)
	assert.Equal(t, "JSON Formatter & Validator", page.Title)
	assert.Equal(t, "Format and validate JSON in the browser.", page.Description)
	assert.Equal(t, CategoryTools, page.Category)
	assert.Equal(t, "/json-formatter", page.Route)
	assert.False(t, scanner.Errors().HasErrors())
}

func TestScanDirArticleDates(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "blog/regex-pitfalls.html", blogPage)

	scanner := NewScanner(dir, nil, errors.NewCollector())
	pages, err := scanner.ScanDir("blog")
	require.NoError(t, err)
	require.Len(t, pages, 1)

	assert.Equal(t, "2026-03-10", pages[0].Published)
	assert.Equal(t, "2026-05-02", pages[0].Modified)
	assert.Equal(t, "2026-05-02", pages[0].LastMod(), "later of the two dates wins")
}

func TestScanDirFallbacks(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "docker-compose-cheatsheet.html", "<html><body>no metadata</body></html>")

	scanner := NewScanner(dir, nil, errors.NewCollector())
	pages, err := scanner.ScanDir("")
	require.NoError(t, err)
	require.Len(t, pages, 1)

	assert.Equal(t, "Docker Compose Cheatsheet", pages[0].Title)
	assert.Equal(t, "Practical developer resource from DevToolbox.", pages[0].Description)
	assert.Equal(t, CategoryCheatsheet, pages[0].Category)
}

func TestScanAll(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "index.html", "<html></html>")
	writeFile(t, dir, "tools/base64.html", "<html></html>")
	writeFile(t, dir, "blog/index.html", "<html></html>")

	scanner := NewScanner(dir, nil, errors.NewCollector())
	pages, err := scanner.ScanAll()
	require.NoError(t, err)
	assert.Len(t, pages, 3)
}

func TestScanDirMissing(t *testing.T) {
	scanner := NewScanner(filepath.Join(t.TempDir(), "nope"), nil, errors.NewCollector())
	_, err := scanner.ScanDir("")
	assert.Error(t, err)
}

func TestLastModMtimeFallback(t *testing.T) {
	mtime := time.Date(2026, time.July, 4, 18, 0, 0, 0, time.UTC)
	page := Page{ModTime: mtime}
	assert.Equal(t, "2026-07-04", page.LastMod())
}

func TestGuessCategory(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"json-formatter.html", CategoryTools},
		{"sql-query-builder.html", CategoryTools},
		{"pomodoro-timer.html", CategoryTools},
		{"git-commands.html", CategoryCheatsheet},
		{"docker-cheatsheet.html", CategoryCheatsheet},
		{"kubernetes-networking.html", CategoryGuides},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, GuessCategory(tt.filename))
		})
	}
}

func TestRouteFor(t *testing.T) {
	root := "/var/www/site"
	tests := []struct {
		file string
		want string
	}{
		{"/var/www/site/index.html", "/"},
		{"/var/www/site/blog/index.html", "/blog/"},
		{"/var/www/site/tools/base64.html", "/tools/base64"},
		{"/var/www/site/about.html", "/about"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			route, err := RouteFor(root, tt.file)
			require.NoError(t, err)
			assert.Equal(t, tt.want, route)
		})
	}
}

func TestFallbackTitle(t *testing.T) {
	assert.Equal(t, "Query Builder", FallbackTitle("query-builder.html"))
	assert.Equal(t, "Base64", FallbackTitle("base64.html"))
}
