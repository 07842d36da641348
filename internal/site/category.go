package site

import "strings"

// Category names in their fixed display order.
const (
	CategoryTools      = "Tools"
	CategoryCheatsheet = "Cheat Sheets"
	CategoryGuides     = "Guides"
)

// CategoryOrder is the section order used by the index page.
var CategoryOrder = []string{CategoryTools, CategoryCheatsheet, CategoryGuides}

var toolTokens = []string{"formatter", "query-builder", "timer"}
var cheatsheetTokens = []string{"cheatsheet", "commands"}

// GuessCategory buckets a page by filename. The site's pages follow a
// naming convention rather than carrying category metadata.
func GuessCategory(filename string) string {
	lower := strings.ToLower(filename)
	for _, token := range toolTokens {
		if strings.Contains(lower, token) {
			return CategoryTools
		}
	}
	for _, token := range cheatsheetTokens {
		if strings.Contains(lower, token) {
			return CategoryCheatsheet
		}
	}
	return CategoryGuides
}
