// Package indexgen renders the landing page for the site from scanned page
// metadata. Pages are grouped into their categories, sorted by title, and
// rendered through an embedded html/template.
package indexgen

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/autonomy414941/devtoolbox/internal/site"
)

type card struct {
	Href        string
	Title       string
	Description string
	Filename    string
	Category    string
	Search      string
}

type section struct {
	Title string
	ID    string
	Cards []card
}

type pageData struct {
	Sections    []section
	Total       int
	GeneratedAt string
}

var indexTmpl = template.Must(template.New("index").Parse(indexTemplate))

// Generate renders the index page for the given pages. It returns an error
// when there is nothing to index; writing an empty landing page over the
// existing one would be a regression, not a result.
func Generate(pages []site.Page, now time.Time) ([]byte, error) {
	if len(pages) == 0 {
		return nil, fmt.Errorf("no HTML pages found to index")
	}

	groups := make(map[string][]site.Page)
	for _, p := range pages {
		groups[p.Category] = append(groups[p.Category], p)
	}

	data := pageData{
		Total:       len(pages),
		GeneratedAt: now.UTC().Format("2006-01-02 15:04 UTC"),
	}
	for _, category := range site.CategoryOrder {
		categoryPages := groups[category]
		if len(categoryPages) == 0 {
			continue
		}
		sort.Slice(categoryPages, func(i, j int) bool {
			return strings.ToLower(categoryPages[i].Title) < strings.ToLower(categoryPages[j].Title)
		})

		sec := section{
			Title: category,
			ID:    strings.ToLower(strings.ReplaceAll(category, " ", "-")),
		}
		for _, p := range categoryPages {
			sec.Cards = append(sec.Cards, card{
				Href:        p.Filename,
				Title:       p.Title,
				Description: p.Description,
				Filename:    p.Filename,
				Category:    p.Category,
				Search:      strings.ToLower(p.Title + " " + p.Description + " " + p.Filename + " " + p.Category),
			})
		}
		data.Sections = append(data.Sections, sec)
	}

	var buf bytes.Buffer
	if err := indexTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering index template: %w", err)
	}
	return buf.Bytes(), nil
}

// Write renders the index and writes it to path.
func Write(path string, pages []site.Page, now time.Time) error {
	out, err := Generate(pages, now)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("writing index page: %w", err)
	}
	return nil
}
