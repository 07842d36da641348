// Package linkcheck verifies internal anchor link integrity for the live
// site: it collects hrefs from every HTML file under the site root,
// normalizes the internal ones, probes each unique target against a base
// URL and reports broken and redirecting targets.
package linkcheck

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/autonomy414941/devtoolbox/internal/errors"
	"github.com/autonomy414941/devtoolbox/internal/site"
)

// maxSourcesPerTarget caps how many referring routes are kept per target in
// the report.
const maxSourcesPerTarget = 8

// Collection is the set of internal link targets found in a site tree.
type Collection struct {
	// Counts maps a normalized internal path to the number of anchor
	// instances pointing at it.
	Counts map[string]int
	// Sources maps a path to the routes of pages linking to it.
	Sources map[string][]string
	// ScannedFiles and ScannedLinks count the pass.
	ScannedFiles int
	ScannedLinks int
}

// Collect walks the site root and gathers internal anchor targets.
// Unreadable files are recorded in the collector and skipped.
func Collect(root string, collector *errors.Collector) (*Collection, error) {
	c := &Collection{
		Counts:  make(map[string]int),
		Sources: make(map[string][]string),
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".html") {
			return nil
		}
		c.ScannedFiles++

		f, openErr := os.Open(path)
		if openErr != nil {
			collector.AddFile(path, openErr)
			return nil
		}
		hrefs := extractAnchors(f)
		f.Close()

		route, routeErr := site.RouteFor(root, path)
		if routeErr != nil {
			collector.AddFile(path, routeErr)
			return nil
		}

		for _, href := range hrefs {
			normalized, ok := NormalizeInternal(href)
			if !ok {
				continue
			}
			c.ScannedLinks++
			c.Counts[normalized]++
			if len(c.Sources[normalized]) < maxSourcesPerTarget && !containsString(c.Sources[normalized], route) {
				c.Sources[normalized] = append(c.Sources[normalized], route)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func extractAnchors(r io.Reader) []string {
	var hrefs []string
	z := html.NewTokenizer(r)
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			return hrefs
		}
		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			continue
		}
		name, hasAttr := z.TagName()
		if string(name) != "a" || !hasAttr {
			continue
		}
		for {
			key, val, more := z.TagAttr()
			if string(key) == "href" && len(val) > 0 {
				hrefs = append(hrefs, string(val))
			}
			if !more {
				break
			}
		}
	}
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

var slashRunRe = regexp.MustCompile(`/{2,}`)

var externalPrefixes = []string{
	"http://", "https://", "//", "mailto:", "tel:", "javascript:", "data:",
}

// NormalizeInternal reduces an href to a probe-able internal path. It
// returns false for fragments, external URLs and non-rooted paths.
func NormalizeInternal(rawHref string) (string, bool) {
	href := strings.TrimSpace(rawHref)
	if href == "" || strings.HasPrefix(href, "#") {
		return "", false
	}

	lowered := strings.ToLower(href)
	for _, prefix := range externalPrefixes {
		if strings.HasPrefix(lowered, prefix) {
			return "", false
		}
	}

	// Drop query and fragment; the server routes on the path alone.
	if i := strings.IndexAny(href, "?#"); i >= 0 {
		href = href[:i]
	}
	if href == "" {
		href = "/"
	}
	if !strings.HasPrefix(href, "/") {
		return "", false
	}

	return slashRunRe.ReplaceAllString(href, "/"), true
}
