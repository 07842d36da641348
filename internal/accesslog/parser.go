// Package accesslog parses and filters web-server access logs in the
// combined log format:
//
//	remote_addr - remote_user [time_local] "request" status bytes "referer" "user_agent"
//
// Parsing is best effort. Lines that do not match the format, or whose
// timestamp does not parse, are skipped and counted rather than treated as
// errors; a reporting pass over a live log has to tolerate the occasional
// garbage line.
package accesslog

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// combined log format, e.g.
// 203.0.113.7 - - [12/Aug/2026:14:03:21 +0000] "GET /tools/json-formatter HTTP/1.1" 200 5120 "https://www.google.com/" "Mozilla/5.0 ..."
var combinedRe = regexp.MustCompile(
	`^(\S+) \S+ \S+ \[([^\]]+)\] "([^"]*)" (\d{3}) (\S+) "([^"]*)" "([^"]*)"`,
)

const timeLayout = "02/Jan/2006:15:04:05 -0700"

// ErrMalformedLine is returned by ParseLine for lines that do not match the
// combined log format.
var ErrMalformedLine = errors.New("malformed log line")

// ParseLine parses a single combined-format log line.
func ParseLine(line string) (Entry, error) {
	m := combinedRe.FindStringSubmatch(line)
	if m == nil {
		return Entry{}, ErrMalformedLine
	}

	ts, err := time.Parse(timeLayout, m[2])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", m[2], err)
	}

	entry := Entry{
		RemoteAddr: m[1],
		Time:       ts,
		Referrer:   m[6],
		UserAgent:  m[7],
	}

	status, err := strconv.Atoi(m[4])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing status %q: %w", m[4], err)
	}
	entry.Status = status

	// Bytes is "-" for bodyless responses.
	if m[5] != "-" {
		if n, err := strconv.ParseInt(m[5], 10, 64); err == nil {
			entry.Bytes = n
		}
	}

	// The request field is "METHOD /path PROTO"; damaged requests can have
	// fewer fields, keep whatever is there.
	reqParts := strings.Fields(m[3])
	switch len(reqParts) {
	case 3:
		entry.Method, entry.Path, entry.Protocol = reqParts[0], reqParts[1], reqParts[2]
	case 2:
		entry.Method, entry.Path = reqParts[0], reqParts[1]
	case 1:
		entry.Path = reqParts[0]
	}

	return entry, nil
}

// ReadStats describes what a ReadFile pass consumed.
type ReadStats struct {
	TotalLines   int
	SkippedLines int
}

// ReadFile parses every line of the log file at path. Malformed lines are
// skipped and counted in the returned stats. A missing or unreadable file is
// the one fatal condition.
func ReadFile(path string) ([]Entry, ReadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ReadStats{}, fmt.Errorf("opening log file: %w", err)
	}
	defer f.Close()

	var (
		entries []Entry
		stats   ReadStats
	)

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		stats.TotalLines++
		entry, err := ParseLine(scanner.Text())
		if err != nil {
			stats.SkippedLines++
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("reading log file: %w", err)
	}

	return entries, stats, nil
}
