// Package analytics computes summary statistics over filtered access-log
// entries and renders them as plain-text reports. It is pure frequency
// counting with fixed cutoffs; ranking order is count descending with a
// lexicographic tie-break so reports are stable across runs.
package analytics

import (
	"sort"
	"strings"

	"github.com/autonomy414941/devtoolbox/internal/accesslog"
)

// RankedItem is a name/count pair for top-N lists.
type RankedItem struct {
	Name  string
	Count int
}

// StatusCount is a status-code/count pair.
type StatusCount struct {
	Code  int
	Count int
}

// HourCount is a request count for one hour-of-day bucket ("00".."23").
type HourCount struct {
	Hour  string
	Count int
}

// Report holds the aggregates for one analytics run.
type Report struct {
	Days          int
	Total         int
	UniqueClients int
	TopPages      []RankedItem
	TopReferrers  []RankedItem
	StatusCodes   []StatusCount
	TopUserAgents []RankedItem
	Hourly        []HourCount
}

// Options controls ranking cutoffs and exclusions.
type Options struct {
	// TopPages, TopReferrers and TopUserAgents cap the ranked lists.
	TopPages      int
	TopReferrers  int
	TopUserAgents int
	// AssetExtensions lists path suffixes excluded from the page ranking.
	AssetExtensions []string
	// MonitorReferrer excludes referrers containing this substring; the
	// internal uptime monitor would otherwise dominate the ranking.
	MonitorReferrer string
}

// Analyze computes a Report over the filtered entries.
//
// The hourly histogram is derived from parsed timestamps, so a log in an
// unexpected layout contributes nothing to it: its lines never survive
// parsing. That yields an empty histogram rather than an error, which is the
// intended best-effort posture.
func Analyze(entries []accesslog.Entry, opts Options) Report {
	report := Report{
		Total: len(entries),
	}

	clients := make(map[string]int)
	pages := make(map[string]int)
	referrers := make(map[string]int)
	statuses := make(map[int]int)
	agents := make(map[string]int)
	hours := make(map[string]int)

	for _, e := range entries {
		if e.RemoteAddr != "" {
			clients[e.RemoteAddr]++
		}

		if e.Path != "" && !isStaticAsset(e.Path, opts.AssetExtensions) {
			pages[e.Path]++
		}

		if e.HasReferrer() && !isMonitorReferrer(e.Referrer, opts.MonitorReferrer) {
			referrers[e.Referrer]++
		}

		statuses[e.Status]++

		if e.UserAgent != "" && e.UserAgent != "-" {
			agents[e.UserAgent]++
		}

		if !e.Time.IsZero() {
			hours[e.Time.Format("15")]++
		}
	}

	report.UniqueClients = len(clients)
	report.TopPages = topN(pages, opts.TopPages)
	report.TopReferrers = topN(referrers, opts.TopReferrers)
	report.StatusCodes = statusCounts(statuses)
	report.TopUserAgents = topN(agents, opts.TopUserAgents)
	report.Hourly = hourCounts(hours)

	return report
}

func isStaticAsset(path string, extensions []string) bool {
	// Query strings do not change what file was served.
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	lower := strings.ToLower(path)
	for _, ext := range extensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

func isMonitorReferrer(referrer, monitor string) bool {
	return monitor != "" && strings.Contains(referrer, monitor)
}

func topN(counts map[string]int, n int) []RankedItem {
	items := make([]RankedItem, 0, len(counts))
	for name, count := range counts {
		items = append(items, RankedItem{Name: name, Count: count})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		return items[i].Name < items[j].Name
	})
	if n > 0 && len(items) > n {
		items = items[:n]
	}
	return items
}

func statusCounts(counts map[int]int) []StatusCount {
	items := make([]StatusCount, 0, len(counts))
	for code, count := range counts {
		items = append(items, StatusCount{Code: code, Count: count})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		return items[i].Code < items[j].Code
	})
	return items
}

func hourCounts(counts map[string]int) []HourCount {
	items := make([]HourCount, 0, len(counts))
	for hour, count := range counts {
		items = append(items, HourCount{Hour: hour, Count: count})
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Hour < items[j].Hour
	})
	return items
}
