package accesslog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func entryAt(ts time.Time) Entry {
	return Entry{RemoteAddr: "203.0.113.7", Time: ts, Path: "/", Status: 200}
}

func TestFilterWindow(t *testing.T) {
	now := time.Date(2026, time.August, 12, 12, 0, 0, 0, time.UTC)

	entries := []Entry{
		entryAt(now.Add(-10 * 24 * time.Hour)),
		entryAt(now.Add(-6 * 24 * time.Hour)),
		entryAt(now.Add(-time.Hour)),
		entryAt(now),
	}

	tests := []struct {
		name string
		days int
		want int
	}{
		{name: "seven day window", days: 7, want: 3},
		{name: "one day window", days: 1, want: 2},
		{name: "zero day window keeps only now", days: 0, want: 1},
		{name: "wide window keeps all", days: 30, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := FilterWindow(entries, WindowSince(now, tt.days))
			assert.Len(t, filtered, tt.want)
		})
	}
}

func TestFilterWindowBoundaryInclusive(t *testing.T) {
	now := time.Date(2026, time.August, 12, 12, 0, 0, 0, time.UTC)
	boundary := entryAt(now.Add(-7 * 24 * time.Hour))

	filtered := FilterWindow([]Entry{boundary}, WindowSince(now, 7))
	assert.Len(t, filtered, 1, "entry exactly at the cutoff is retained")
}

func TestFilterWindowEmpty(t *testing.T) {
	filtered := FilterWindow(nil, WindowSince(time.Now(), 7))
	assert.Empty(t, filtered)
}

func TestFilterWindowPreservesOrder(t *testing.T) {
	now := time.Now()
	entries := []Entry{
		{Time: now.Add(-2 * time.Hour), Path: "/a"},
		{Time: now.Add(-1 * time.Hour), Path: "/b"},
		{Time: now.Add(-3 * time.Hour), Path: "/c"},
	}

	filtered := FilterWindow(entries, WindowSince(now, 1))
	assert.Equal(t, []string{"/a", "/b", "/c"}, []string{filtered[0].Path, filtered[1].Path, filtered[2].Path})
}
