package accesslog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLine = `203.0.113.7 - - [12/Aug/2026:14:03:21 +0000] "GET /tools/json-formatter HTTP/1.1" 200 5120 "https://www.google.com/" "Mozilla/5.0 (X11; Linux x86_64)"`

func TestParseLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantErr bool
		check   func(t *testing.T, e Entry)
	}{
		{
			name: "valid combined line",
			line: sampleLine,
			check: func(t *testing.T, e Entry) {
				assert.Equal(t, "203.0.113.7", e.RemoteAddr)
				assert.Equal(t, "GET", e.Method)
				assert.Equal(t, "/tools/json-formatter", e.Path)
				assert.Equal(t, "HTTP/1.1", e.Protocol)
				assert.Equal(t, 200, e.Status)
				assert.Equal(t, int64(5120), e.Bytes)
				assert.Equal(t, "https://www.google.com/", e.Referrer)
				assert.Equal(t, "Mozilla/5.0 (X11; Linux x86_64)", e.UserAgent)
				assert.Equal(t, 14, e.Time.Hour())
			},
		},
		{
			name: "empty referrer dash",
			line: `198.51.100.4 - - [12/Aug/2026:03:15:00 +0000] "GET / HTTP/2.0" 200 - "-" "curl/8.0"`,
			check: func(t *testing.T, e Entry) {
				assert.False(t, e.HasReferrer())
				assert.Equal(t, int64(0), e.Bytes)
			},
		},
		{
			name: "damaged request field",
			line: `198.51.100.4 - - [12/Aug/2026:03:15:00 +0000] "\x16\x03" 400 0 "-" "-"`,
			check: func(t *testing.T, e Entry) {
				assert.Equal(t, 400, e.Status)
				assert.Empty(t, e.Method)
			},
		},
		{
			name:    "not a log line",
			line:    "definitely not an access log line",
			wantErr: true,
		},
		{
			name:    "bad timestamp",
			line:    `203.0.113.7 - - [2026-08-12T14:03:21Z] "GET / HTTP/1.1" 200 12 "-" "-"`,
			wantErr: true,
		},
		{
			name:    "empty line",
			line:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := ParseLine(tt.line)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, entry)
		})
	}
}

func TestParseLineTimestampZone(t *testing.T) {
	entry, err := ParseLine(`10.1.1.1 - - [01/Jan/2026:23:59:59 +0200] "GET /about HTTP/1.1" 200 10 "-" "-"`)
	require.NoError(t, err)

	expected := time.Date(2026, time.January, 1, 23, 59, 59, 0, time.FixedZone("", 2*60*60))
	assert.True(t, entry.Time.Equal(expected))
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "access.log")
	content := sampleLine + "\n" +
		"garbage line\n" +
		`198.51.100.4 - - [12/Aug/2026:03:15:00 +0000] "GET /about HTTP/1.1" 304 - "-" "Mozilla/5.0"` + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	entries, stats, err := ReadFile(path)
	require.NoError(t, err)

	assert.Len(t, entries, 2)
	assert.Equal(t, 3, stats.TotalLines)
	assert.Equal(t, 1, stats.SkippedLines)
}

func TestReadFileMissing(t *testing.T) {
	_, _, err := ReadFile(filepath.Join(t.TempDir(), "nope.log"))
	assert.Error(t, err)
}

func TestReadFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.log")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	entries, stats, err := ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Equal(t, 0, stats.TotalLines)
}
