package linkcheck

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autonomy414941/devtoolbox/internal/errors"
)

func TestNormalizeInternal(t *testing.T) {
	tests := []struct {
		name string
		href string
		want string
		ok   bool
	}{
		{name: "root relative", href: "/tools/base64", want: "/tools/base64", ok: true},
		{name: "trailing whitespace", href: " /about ", want: "/about", ok: true},
		{name: "query dropped", href: "/tools/base64?ref=home", want: "/tools/base64", ok: true},
		{name: "fragment dropped", href: "/guide#setup", want: "/guide", ok: true},
		{name: "duplicate slashes collapsed", href: "//tools//base64", want: "", ok: false},
		{name: "double slash inside path", href: "/tools//base64", want: "/tools/base64", ok: true},
		{name: "bare fragment", href: "#top", ok: false},
		{name: "empty", href: "", ok: false},
		{name: "absolute http", href: "http://example.com/", ok: false},
		{name: "absolute https mixed case", href: "HTTPS://example.com/", ok: false},
		{name: "mailto", href: "mailto:hi@example.com", ok: false},
		{name: "tel", href: "tel:+15551234", ok: false},
		{name: "javascript", href: "javascript:void(0)", ok: false},
		{name: "data uri", href: "data:text/plain,hi", ok: false},
		{name: "relative path", href: "tools/base64", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeInternal(tt.href)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestCollect(t *testing.T) {
	dir := t.TempDir()
	page := `<html><body>
<a href="/tools/base64">base64</a>
<a href="/tools/base64?from=home">base64 again</a>
<a href="https://example.com/">external</a>
<a href="#section">fragment</a>
<a href="/about">about</a>
</body></html>`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte(page), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.html"), []byte(`<a href="/about">about</a>`), 0o644))

	collection, err := Collect(dir, errors.NewCollector())
	require.NoError(t, err)

	assert.Equal(t, 2, collection.ScannedFiles)
	assert.Equal(t, 4, collection.ScannedLinks)
	assert.Equal(t, 2, collection.Counts["/tools/base64"])
	assert.Equal(t, 2, collection.Counts["/about"])
	assert.ElementsMatch(t, []string{"/", "/other"}, collection.Sources["/about"])
}

func newProbeServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/head-hostile", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/moved", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/ok", http.StatusMovedPermanently)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestProber(t *testing.T) {
	server := newProbeServer(t)
	prober, err := NewProber(server.URL, 2*time.Second)
	require.NoError(t, err)
	ctx := context.Background()

	status, _ := prober.Probe(ctx, "/ok")
	assert.Equal(t, http.StatusOK, status)

	status, _ = prober.Probe(ctx, "/head-hostile")
	assert.Equal(t, http.StatusOK, status, "falls back to GET when HEAD is rejected")

	status, location := prober.Probe(ctx, "/moved")
	assert.Equal(t, http.StatusMovedPermanently, status, "redirects are reported, not followed")
	assert.Equal(t, "/ok", location)

	status, _ = prober.Probe(ctx, "/missing")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestProberBadBaseURL(t *testing.T) {
	_, err := NewProber("ftp://example.com", time.Second)
	assert.Error(t, err)

	_, err = NewProber("http://", time.Second)
	assert.Error(t, err)
}

func TestProberUnreachable(t *testing.T) {
	prober, err := NewProber("http://127.0.0.1:1", 200*time.Millisecond)
	require.NoError(t, err)

	status, detail := prober.Probe(context.Background(), "/")
	assert.Equal(t, 0, status)
	assert.NotEmpty(t, detail)
}

func TestRun(t *testing.T) {
	server := newProbeServer(t)
	prober, err := NewProber(server.URL, 2*time.Second)
	require.NoError(t, err)

	collection := &Collection{
		Counts: map[string]int{
			"/ok":      5,
			"/missing": 3,
			"/gone":    3,
			"/moved":   2,
		},
		Sources: map[string][]string{
			"/missing": {"/", "/blog/"},
		},
		ScannedFiles: 4,
		ScannedLinks: 13,
	}

	report := Run(context.Background(), collection, prober, "/var/www/site", server.URL, 20)

	assert.Equal(t, 4, report.ScannedFiles)
	assert.Equal(t, 13, report.ScannedLinks)
	assert.Equal(t, 4, report.UniqueTargets)
	assert.Equal(t, 1, report.OKTargets)
	assert.Equal(t, 2, report.BrokenTargets)
	assert.Equal(t, 1, report.RedirectTargets)
	assert.Equal(t, 6, report.BrokenInstances)
	assert.InDelta(t, 46.1538, report.BrokenRatioPct, 0.001)

	// Broken targets sort by count descending, then path.
	require.Len(t, report.TopBroken, 2)
	assert.Equal(t, "/gone", report.TopBroken[0].Path)
	assert.Equal(t, "/missing", report.TopBroken[1].Path)
	assert.Equal(t, []string{"/", "/blog/"}, report.TopBroken[1].Sources)

	require.Len(t, report.TopRedirects, 1)
	assert.Equal(t, "/moved", report.TopRedirects[0].Path)
	assert.Equal(t, "/ok", report.TopRedirects[0].Detail)
}

func TestRunMaxItems(t *testing.T) {
	server := newProbeServer(t)
	prober, err := NewProber(server.URL, 2*time.Second)
	require.NoError(t, err)

	collection := &Collection{
		Counts: map[string]int{
			"/a": 1, "/b": 1, "/c": 1,
		},
		Sources:      map[string][]string{},
		ScannedLinks: 3,
	}

	report := Run(context.Background(), collection, prober, "/var/www/site", server.URL, 2)
	assert.Len(t, report.TopBroken, 2)
	assert.Equal(t, 3, report.BrokenTargets)
}
