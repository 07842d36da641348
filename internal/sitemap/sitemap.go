// Package sitemap builds and writes sitemap.xml for the site.
//
// The goal is keeping <lastmod> accurate without marking every URL as
// "today": blog posts prefer their article published/modified metadata,
// everything else uses the file mtime (UTC date).
package sitemap

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/autonomy414941/devtoolbox/internal/site"
)

// Entry is one <url> element of the sitemap.
type Entry struct {
	Loc        string
	LastMod    string
	ChangeFreq string
	Priority   string
}

// Builder assembles sitemap entries from a scanned site tree.
type Builder struct {
	SiteRoot      string
	BaseURL       string
	RequiredFiles []string

	scanner *site.Scanner
}

// NewBuilder creates a sitemap builder over the given site scanner.
func NewBuilder(scanner *site.Scanner, baseURL string, requiredFiles []string) *Builder {
	return &Builder{
		SiteRoot:      scanner.Root(),
		BaseURL:       strings.TrimSuffix(baseURL, "/"),
		RequiredFiles: requiredFiles,
		scanner:       scanner,
	}
}

// rootPage is a fixed top-level page with its crawl hints.
type rootPage struct {
	route      string
	file       string
	changefreq string
	priority   string
}

var rootPages = []rootPage{
	{"/", "index.html", "daily", "1.0"},
	{"/about", "about.html", "monthly", "0.6"},
	{"/api", "api.html", "monthly", "0.6"},
	{"/changelog", "changelog.html", "weekly", "0.6"},
	{"/blog", "blog/index.html", "weekly", "0.9"},
	{"/tools", "tools/index.html", "weekly", "0.8"},
	{"/cheatsheets", "cheatsheets/index.html", "weekly", "0.8"},
}

// Build produces the sitemap entries in a stable order: fixed root pages,
// then tools, cheat sheets and blog posts each sorted by filename, then the
// feed. It refuses to build when a required root file (search engine
// verification page) is missing, so a broken deploy cannot be published.
func (b *Builder) Build() ([]Entry, error) {
	var missing []string
	for _, name := range b.RequiredFiles {
		if _, err := os.Stat(filepath.Join(b.SiteRoot, name)); err != nil {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf(
			"required root file(s) missing: %s; restore before publishing",
			strings.Join(missing, ", "),
		)
	}

	var entries []Entry

	for _, rp := range rootPages {
		date, err := b.mtimeDate(rp.file)
		if err != nil {
			// Optional top-level pages may legitimately not exist yet.
			continue
		}
		entries = append(entries, Entry{
			Loc:        b.BaseURL + rp.route,
			LastMod:    date,
			ChangeFreq: rp.changefreq,
			Priority:   rp.priority,
		})
	}

	sectionEntries, err := b.sectionPages("tools", "monthly", "0.5", false)
	if err != nil {
		return nil, err
	}
	entries = append(entries, sectionEntries...)

	sectionEntries, err = b.sectionPages("cheatsheets", "monthly", "0.5", false)
	if err != nil {
		return nil, err
	}
	entries = append(entries, sectionEntries...)

	sectionEntries, err = b.sectionPages("blog", "monthly", "0.6", true)
	if err != nil {
		return nil, err
	}
	entries = append(entries, sectionEntries...)

	if date, err := b.mtimeDate("feed.xml"); err == nil {
		entries = append(entries, Entry{
			Loc:        b.BaseURL + "/feed.xml",
			LastMod:    date,
			ChangeFreq: "daily",
			Priority:   "0.4",
		})
	}

	return entries, nil
}

// sectionPages lists the non-index pages of one site section. When useMeta
// is set the lastmod comes from article metadata (blog posts), otherwise
// from the file mtime.
func (b *Builder) sectionPages(dir, changefreq, priority string, useMeta bool) ([]Entry, error) {
	if _, err := os.Stat(filepath.Join(b.SiteRoot, dir)); err != nil {
		return nil, nil
	}

	pages, err := b.scanner.ScanDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}

	var entries []Entry
	for _, p := range pages {
		if p.Filename == "index.html" {
			continue
		}
		lastmod := p.ModTime.UTC().Format("2006-01-02")
		if useMeta {
			lastmod = p.LastMod()
		}
		stem := strings.TrimSuffix(p.Filename, ".html")
		entries = append(entries, Entry{
			Loc:        fmt.Sprintf("%s/%s/%s", b.BaseURL, dir, stem),
			LastMod:    lastmod,
			ChangeFreq: changefreq,
			Priority:   priority,
		})
	}
	return entries, nil
}

func (b *Builder) mtimeDate(rel string) (string, error) {
	info, err := os.Stat(filepath.Join(b.SiteRoot, rel))
	if err != nil {
		return "", err
	}
	return info.ModTime().UTC().Format("2006-01-02"), nil
}

type xmlURL struct {
	XMLName    xml.Name `xml:"url"`
	Loc        string   `xml:"loc"`
	LastMod    string   `xml:"lastmod"`
	ChangeFreq string   `xml:"changefreq"`
	Priority   string   `xml:"priority"`
}

type xmlURLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []xmlURL
}

// WriteXML renders entries as a sitemap.org urlset document.
func WriteXML(w io.Writer, entries []Entry) error {
	set := xmlURLSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, e := range entries {
		set.URLs = append(set.URLs, xmlURL{
			Loc:        e.Loc,
			LastMod:    e.LastMod,
			ChangeFreq: e.ChangeFreq,
			Priority:   e.Priority,
		})
	}

	if _, err := io.WriteString(w, "<?xml version='1.0' encoding='utf-8'?>\n"); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("encoding sitemap: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// WriteFile builds the sitemap and writes it to path.
func (b *Builder) WriteFile(path string) (int, error) {
	entries, err := b.Build()
	if err != nil {
		return 0, err
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("creating sitemap file: %w", err)
	}
	defer f.Close()

	if err := WriteXML(f, entries); err != nil {
		return 0, err
	}
	return len(entries), nil
}
