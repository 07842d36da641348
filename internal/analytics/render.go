package analytics

import (
	"fmt"
	"io"
)

// Render writes the traffic report as titled plain-text sections in a fixed
// order: summary, top pages, top referrers, status codes, user agents,
// hourly distribution. Every section is rendered even when empty so a zero
// report still shows its shape.
func Render(w io.Writer, r Report) {
	fmt.Fprintf(w, "=== TRAFFIC REPORT (last %d days) ===\n\n", r.Days)

	fmt.Fprintln(w, "SUMMARY")
	fmt.Fprintf(w, "  Total requests:  %d\n", r.Total)
	fmt.Fprintf(w, "  Unique visitors: %d\n", r.UniqueClients)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "TOP PAGES")
	for _, item := range r.TopPages {
		fmt.Fprintf(w, "  %6d  %s\n", item.Count, item.Name)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "TOP REFERRERS")
	for _, item := range r.TopReferrers {
		fmt.Fprintf(w, "  %6d  %s\n", item.Count, item.Name)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "STATUS CODES")
	for _, item := range r.StatusCodes {
		fmt.Fprintf(w, "  %6d  %d\n", item.Count, item.Code)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "USER AGENTS")
	for _, item := range r.TopUserAgents {
		fmt.Fprintf(w, "  %6d  %s\n", item.Count, item.Name)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "HOURLY DISTRIBUTION")
	for _, item := range r.Hourly {
		fmt.Fprintf(w, "  %s:00  %d\n", item.Hour, item.Count)
	}
}

// RenderOrganic writes the organic search referral report.
func RenderOrganic(w io.Writer, r OrganicReport) {
	fmt.Fprintln(w, "=== SEARCH ENGINE REFERRALS (2-day) ===")
	for _, item := range r.Engines {
		fmt.Fprintf(w, "  %s: %d\n", item.Name, item.Count)
	}
	fmt.Fprintf(w, "  TOTAL: %d\n", r.EngineTotal)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "=== TOP PAGES BY ORGANIC REFERRALS (2-day) ===")
	for _, page := range r.TopPages {
		fmt.Fprintf(w, "  %3d (today:%2d)  %s\n", page.Count, page.Today, page.Path)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "=== ALL NON-EMPTY REFERRERS (2-day) ===")
	for _, item := range r.Referrers {
		fmt.Fprintf(w, "  %3d  %s\n", item.Count, item.Name)
	}
}
