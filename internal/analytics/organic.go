package analytics

import (
	"regexp"

	"github.com/autonomy414941/devtoolbox/internal/accesslog"
)

var searchEngineRe = regexp.MustCompile(
	`(bing\.com|google\.com|duckduckgo|yahoo\.com|ecosia|qwant|aol\.com|brave|yandex)`,
)

// OrganicPage is a page ranked by organic search referrals, with a separate
// count for the current (unrotated) log.
type OrganicPage struct {
	Path  string
	Count int
	Today int
}

// OrganicReport summarizes organic search traffic across the current and
// rotated access logs.
type OrganicReport struct {
	Engines      []RankedItem
	EngineTotal  int
	TopPages     []OrganicPage
	Referrers    []RankedItem
	MaxPages     int
	MaxReferrers int
}

// Organic computes the organic search referral report. current holds entries
// from the live log, rotated from the previous rotation; only current counts
// toward the per-page "today" column.
func Organic(current, rotated []accesslog.Entry) OrganicReport {
	engines := make(map[string]int)
	pages := make(map[string]int)
	today := make(map[string]int)
	referrers := make(map[string]int)

	tally := func(entries []accesslog.Entry, isCurrent bool) {
		for _, e := range entries {
			if !e.HasReferrer() {
				continue
			}
			referrers[e.Referrer]++
			m := searchEngineRe.FindStringSubmatch(e.Referrer)
			if m == nil {
				continue
			}
			engines[m[1]]++
			if e.Path != "" {
				pages[e.Path]++
				if isCurrent {
					today[e.Path]++
				}
			}
		}
	}
	tally(current, true)
	tally(rotated, false)

	report := OrganicReport{
		Engines:      topN(engines, 0),
		Referrers:    topN(referrers, 30),
		MaxPages:     30,
		MaxReferrers: 30,
	}
	for _, item := range report.Engines {
		report.EngineTotal += item.Count
	}

	ranked := topN(pages, 30)
	report.TopPages = make([]OrganicPage, len(ranked))
	for i, item := range ranked {
		report.TopPages[i] = OrganicPage{
			Path:  item.Name,
			Count: item.Count,
			Today: today[item.Name],
		}
	}

	return report
}
