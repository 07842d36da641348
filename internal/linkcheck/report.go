package linkcheck

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

// Target is one unique internal link target with its probe result.
type Target struct {
	Path    string   `json:"path" yaml:"path"`
	Status  int      `json:"status" yaml:"status"`
	Count   int      `json:"count" yaml:"count"`
	Sources []string `json:"sources" yaml:"sources"`
	// Detail carries the redirect Location or the transport error.
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// Report summarizes a full link check run.
type Report struct {
	GeneratedAt     string   `json:"generated_at" yaml:"generated_at"`
	SiteRoot        string   `json:"site_root" yaml:"site_root"`
	BaseURL         string   `json:"base_url" yaml:"base_url"`
	ScannedFiles    int      `json:"scanned_html_files" yaml:"scanned_html_files"`
	ScannedLinks    int      `json:"scanned_internal_link_instances" yaml:"scanned_internal_link_instances"`
	UniqueTargets   int      `json:"unique_internal_targets" yaml:"unique_internal_targets"`
	OKTargets       int      `json:"ok_target_count" yaml:"ok_target_count"`
	RedirectTargets int      `json:"redirect_target_count" yaml:"redirect_target_count"`
	BrokenTargets   int      `json:"broken_target_count" yaml:"broken_target_count"`
	BrokenInstances int      `json:"broken_link_instances" yaml:"broken_link_instances"`
	RedirectCount   int      `json:"redirect_link_instances" yaml:"redirect_link_instances"`
	BrokenRatioPct  float64  `json:"broken_link_ratio_pct" yaml:"broken_link_ratio_pct"`
	TopBroken       []Target `json:"top_broken_targets" yaml:"top_broken_targets"`
	TopRedirects    []Target `json:"top_redirect_targets" yaml:"top_redirect_targets"`
}

// Run probes every collected target and assembles the report. maxItems caps
// the broken/redirect listings.
func Run(ctx context.Context, collection *Collection, prober *Prober, siteRoot, baseURL string, maxItems int) Report {
	if maxItems < 1 {
		maxItems = 1
	}

	paths := make([]string, 0, len(collection.Counts))
	for path := range collection.Counts {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var broken, redirects []Target
	okCount := 0
	brokenInstances := 0
	redirectInstances := 0

	for _, path := range paths {
		status, detail := prober.Probe(ctx, path)
		target := Target{
			Path:    path,
			Status:  status,
			Count:   collection.Counts[path],
			Sources: collection.Sources[path],
			Detail:  detail,
		}
		switch {
		case status == 0 || status >= 400:
			broken = append(broken, target)
			brokenInstances += target.Count
		case status >= 300:
			redirects = append(redirects, target)
			redirectInstances += target.Count
		default:
			okCount++
		}
	}

	byCountThenPath := func(targets []Target) func(i, j int) bool {
		return func(i, j int) bool {
			if targets[i].Count != targets[j].Count {
				return targets[i].Count > targets[j].Count
			}
			return targets[i].Path < targets[j].Path
		}
	}
	sort.Slice(broken, byCountThenPath(broken))
	sort.Slice(redirects, byCountThenPath(redirects))

	ratio := 0.0
	if collection.ScannedLinks > 0 {
		ratio = math.Round(float64(brokenInstances)/float64(collection.ScannedLinks)*100*10000) / 10000
	}

	report := Report{
		GeneratedAt:     time.Now().UTC().Format(time.RFC3339),
		SiteRoot:        siteRoot,
		BaseURL:         baseURL,
		ScannedFiles:    collection.ScannedFiles,
		ScannedLinks:    collection.ScannedLinks,
		UniqueTargets:   len(collection.Counts),
		OKTargets:       okCount,
		RedirectTargets: len(redirects),
		BrokenTargets:   len(broken),
		BrokenInstances: brokenInstances,
		RedirectCount:   redirectInstances,
		BrokenRatioPct:  ratio,
		TopBroken:       truncate(broken, maxItems),
		TopRedirects:    truncate(redirects, maxItems),
	}
	return report
}

func truncate(targets []Target, n int) []Target {
	if len(targets) > n {
		return targets[:n]
	}
	return targets
}

// Render writes the human-readable summary.
func Render(w io.Writer, r Report) {
	fmt.Fprintf(w, "scanned_html_files: %d\n", r.ScannedFiles)
	fmt.Fprintf(w, "scanned_internal_link_instances: %d\n", r.ScannedLinks)
	fmt.Fprintf(w, "unique_internal_targets: %d\n", r.UniqueTargets)
	fmt.Fprintf(w, "broken_target_count: %d\n", r.BrokenTargets)
	fmt.Fprintf(w, "broken_link_instances: %d\n", r.BrokenInstances)
	fmt.Fprintf(w, "broken_link_ratio_pct: %g\n", r.BrokenRatioPct)

	if len(r.TopBroken) > 0 {
		fmt.Fprintln(w, "top_broken_targets:")
		for _, target := range r.TopBroken {
			fmt.Fprintf(w, "  %d  %d  %s\n", target.Count, target.Status, target.Path)
		}
	}
}

// EncodeJSON writes the full report as indented JSON.
func EncodeJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// EncodeYAML writes the full report as YAML.
func EncodeYAML(w io.Writer, r Report) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(r)
}
