package site

import "time"

// Page describes one HTML page of the site tree with the metadata the
// generators care about.
type Page struct {
	// FilePath is the absolute path of the source file.
	FilePath string
	// Filename is the base name, e.g. "json-formatter.html".
	Filename string
	// Route is the URL path the server maps the file to, e.g. "/tools/json-formatter".
	Route string
	// Title is the <title> text, trimmed of the "| DevToolbox" style suffix.
	Title string
	// Description is the meta description content.
	Description string
	// Category is one of "Tools", "Cheat Sheets" or "Guides".
	Category string
	// Published and Modified are YYYY-MM-DD dates from article metadata,
	// empty when the page does not carry them.
	Published string
	Modified  string
	// ModTime is the file modification time.
	ModTime time.Time
}

// LastMod returns the best YYYY-MM-DD last-modified date for the page:
// the later of the published and modified metadata dates when either is
// present, the file mtime (UTC) otherwise.
func (p Page) LastMod() string {
	best := p.Published
	if p.Modified > best {
		best = p.Modified
	}
	if best != "" {
		return best
	}
	return p.ModTime.UTC().Format("2006-01-02")
}
