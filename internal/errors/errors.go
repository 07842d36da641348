// Package errors provides error collection for best-effort site scans.
// Individual files that fail to read or parse are recorded here and reported
// at the end of a run instead of aborting it.
package errors

import (
	"fmt"
	"sync"
	"time"
)

// ScanError represents a tolerated per-file failure during a site scan.
type ScanError struct {
	File      string
	Message   string
	Severity  Severity
	Timestamp time.Time
}

// Severity represents the severity of a scan error
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns the string representation of the severity
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Error implements the error interface
func (se *ScanError) Error() string {
	return fmt.Sprintf("%s: %s: %s", se.File, se.Severity, se.Message)
}

// Collector accumulates scan errors from a run.
type Collector struct {
	scanErrors []ScanError
	mutex      sync.RWMutex
}

// NewCollector creates a new error collector
func NewCollector() *Collector {
	return &Collector{
		scanErrors: make([]ScanError, 0),
	}
}

// Add adds a scan error to the collector
func (c *Collector) Add(err ScanError) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	err.Timestamp = time.Now()
	c.scanErrors = append(c.scanErrors, err)
}

// AddFile records a warning-severity failure for a file.
func (c *Collector) AddFile(file string, err error) {
	if err == nil {
		return
	}
	c.Add(ScanError{File: file, Message: err.Error(), Severity: SeverityWarning})
}

// Errors returns all collected scan errors
func (c *Collector) Errors() []ScanError {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	// Return a copy to avoid race conditions
	result := make([]ScanError, len(c.scanErrors))
	copy(result, c.scanErrors)
	return result
}

// HasErrors returns true if there are any errors
func (c *Collector) HasErrors() bool {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.scanErrors) > 0
}

// Len returns the number of collected errors
func (c *Collector) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.scanErrors)
}

// Clear clears all errors
func (c *Collector) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.scanErrors = c.scanErrors[:0]
}
