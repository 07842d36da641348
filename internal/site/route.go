package site

import (
	"fmt"
	"path/filepath"
	"strings"
)

// RouteFor maps an HTML file to the URL path the web server serves it at.
// The server strips ".html" and maps index files to directory routes:
//
//	index.html        -> /
//	blog/index.html   -> /blog/
//	tools/base64.html -> /tools/base64
func RouteFor(root, file string) (string, error) {
	rel, err := filepath.Rel(root, file)
	if err != nil {
		return "", fmt.Errorf("relativizing %s: %w", file, err)
	}
	rel = filepath.ToSlash(rel)

	if rel == "index.html" {
		return "/", nil
	}
	if strings.HasSuffix(rel, "/index.html") {
		return "/" + strings.TrimSuffix(rel, "index.html"), nil
	}
	return "/" + strings.TrimSuffix(rel, ".html"), nil
}
