// Package site scans a static site tree for HTML pages and extracts the
// metadata shared by the index, sitemap and linkcheck commands: titles, meta
// descriptions, article dates, categories and URL routes.
//
// Scans are best effort. A page that cannot be read or tokenized is recorded
// in the scan error collector and skipped; one broken file must not block
// regenerating the index for the other two hundred.
package site

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/autonomy414941/devtoolbox/internal/errors"
)

// dateModified inside JSON-LD blocks; JSON-LD is script content, not markup,
// so the tokenizer cannot see into it.
var dateModifiedRe = regexp.MustCompile(`"dateModified"\s*:\s*"(\d{4}-\d{2}-\d{2})"`)

var titleCaser = cases.Title(language.English)

// Scanner walks a site root and produces Pages.
type Scanner struct {
	root      string
	skip      map[string]struct{}
	collector *errors.Collector
}

// NewScanner creates a scanner rooted at root. Files whose base name is in
// skipFiles are ignored. Scan failures are reported to collector.
func NewScanner(root string, skipFiles []string, collector *errors.Collector) *Scanner {
	skip := make(map[string]struct{}, len(skipFiles))
	for _, name := range skipFiles {
		skip[name] = struct{}{}
	}
	if collector == nil {
		collector = errors.NewCollector()
	}
	return &Scanner{root: root, skip: skip, collector: collector}
}

// Root returns the scanner's site root.
func (s *Scanner) Root() string {
	return s.root
}

// Errors returns the collector holding tolerated scan failures.
func (s *Scanner) Errors() *errors.Collector {
	return s.collector
}

// ScanDir scans the HTML files directly inside dir (relative to the site
// root, "" for the root itself), sorted by filename.
func (s *Scanner) ScanDir(dir string) ([]Page, error) {
	full := filepath.Join(s.root, dir)
	dirEntries, err := os.ReadDir(full)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", full, err)
	}

	var pages []Page
	for _, de := range dirEntries {
		if de.IsDir() || !strings.HasSuffix(de.Name(), ".html") {
			continue
		}
		if _, skipped := s.skip[de.Name()]; skipped {
			continue
		}
		page, err := s.scanFile(filepath.Join(full, de.Name()))
		if err != nil {
			s.collector.AddFile(de.Name(), err)
			continue
		}
		pages = append(pages, page)
	}
	sort.Slice(pages, func(i, j int) bool {
		return pages[i].Filename < pages[j].Filename
	})
	return pages, nil
}

// ScanAll walks the whole site tree for HTML files, sorted by path.
func (s *Scanner) ScanAll() ([]Page, error) {
	var pages []Page
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".html") {
			return nil
		}
		page, scanErr := s.scanFile(path)
		if scanErr != nil {
			s.collector.AddFile(path, scanErr)
			return nil
		}
		pages = append(pages, page)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking site root %s: %w", s.root, err)
	}
	sort.Slice(pages, func(i, j int) bool {
		return pages[i].FilePath < pages[j].FilePath
	})
	return pages, nil
}

func (s *Scanner) scanFile(path string) (Page, error) {
	f, err := os.Open(path)
	if err != nil {
		return Page{}, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return Page{}, err
	}

	meta := extractMeta(f)

	name := filepath.Base(path)
	title := meta.title
	if title == "" {
		title = FallbackTitle(name)
	}
	description := meta.description
	if description == "" {
		description = "Practical developer resource from DevToolbox."
	}

	route, err := RouteFor(s.root, path)
	if err != nil {
		return Page{}, err
	}

	return Page{
		FilePath:    path,
		Filename:    name,
		Route:       route,
		Title:       title,
		Description: description,
		Category:    GuessCategory(name),
		Published:   meta.published,
		Modified:    meta.modified,
		ModTime:     info.ModTime(),
	}, nil
}

type pageMeta struct {
	title       string
	description string
	published   string
	modified    string
}

// extractMeta tokenizes an HTML document and pulls out the title, meta
// description, article:published_time and JSON-LD dateModified. Tokenizer
// errors terminate extraction with whatever was found so far; partial
// metadata from a damaged page beats none.
func extractMeta(r io.Reader) pageMeta {
	var meta pageMeta
	z := html.NewTokenizer(r)
	inTitle := false

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return meta

		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			switch tok.Data {
			case "title":
				if tt == html.StartTagToken && meta.title == "" {
					inTitle = true
				}
			case "meta":
				var name, property, content string
				for _, a := range tok.Attr {
					switch a.Key {
					case "name":
						name = a.Val
					case "property":
						property = a.Val
					case "content":
						content = a.Val
					}
				}
				if name == "description" && meta.description == "" {
					meta.description = cleanupText(content)
				}
				if property == "article:published_time" && meta.published == "" {
					if len(content) >= 10 {
						meta.published = content[:10]
					}
				}
			case "script":
				isJSONLD := false
				for _, a := range tok.Attr {
					if a.Key == "type" && a.Val == "application/ld+json" {
						isJSONLD = true
					}
				}
				if isJSONLD && tt == html.StartTagToken {
					if z.Next() == html.TextToken && meta.modified == "" {
						if m := dateModifiedRe.FindStringSubmatch(string(z.Text())); m != nil {
							meta.modified = m[1]
						}
					}
				}
			}

		case html.TextToken:
			if inTitle {
				meta.title = cleanupTitle(string(z.Text()))
				inTitle = false
			}

		case html.EndTagToken:
			if z.Token().Data == "title" {
				inTitle = false
			}
		}
	}
}

var whitespaceRe = regexp.MustCompile(`\s+`)

func cleanupText(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// cleanupTitle collapses whitespace and drops the "| DevToolbox" style
// branding suffix.
func cleanupTitle(s string) string {
	s = cleanupText(s)
	if i := strings.IndexByte(s, '|'); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	return s
}

// FallbackTitle derives a display title from a filename when the page has no
// usable <title>: "query-builder.html" becomes "Query Builder".
func FallbackTitle(filename string) string {
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	return titleCaser.String(strings.ReplaceAll(stem, "-", " "))
}
