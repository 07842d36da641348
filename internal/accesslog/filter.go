package accesslog

import "time"

// WindowSince returns the cutoff instant for a trailing window of the given
// number of days, measured back from now.
func WindowSince(now time.Time, days int) time.Time {
	return now.Add(-time.Duration(days) * 24 * time.Hour)
}

// FilterWindow returns the entries whose timestamp is at or after since.
// Entry order is preserved. An empty result is not an error; it just yields
// a zero-count report downstream.
func FilterWindow(entries []Entry, since time.Time) []Entry {
	filtered := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if !e.Time.Before(since) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
