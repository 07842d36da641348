//go:build property

package accesslog

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestFilterWindowProperties validates the windowing invariants over
// arbitrary entry ages and window sizes.
func TestFilterWindowProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(4242)
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	now := time.Date(2026, time.August, 12, 12, 0, 0, 0, time.UTC)

	// Property: every retained entry lies within the window
	properties.Property("retained entries are inside the window", prop.ForAll(
		func(ageMinutes []int64, days int) bool {
			entries := make([]Entry, len(ageMinutes))
			for i, age := range ageMinutes {
				entries[i] = Entry{Time: now.Add(-time.Duration(age) * time.Minute)}
			}

			since := WindowSince(now, days)
			for _, e := range FilterWindow(entries, since) {
				if e.Time.Before(since) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Int64Range(0, 60*24*365)),
		gen.IntRange(0, 365),
	))

	// Property: filtering never invents entries and is idempotent
	properties.Property("filter is shrinking and idempotent", prop.ForAll(
		func(ageMinutes []int64, days int) bool {
			entries := make([]Entry, len(ageMinutes))
			for i, age := range ageMinutes {
				entries[i] = Entry{Time: now.Add(-time.Duration(age) * time.Minute)}
			}

			since := WindowSince(now, days)
			once := FilterWindow(entries, since)
			twice := FilterWindow(once, since)
			return len(once) <= len(entries) && len(twice) == len(once)
		},
		gen.SliceOf(gen.Int64Range(0, 60*24*365)),
		gen.IntRange(0, 365),
	))

	properties.TestingRun(t)
}
