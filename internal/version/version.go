// Package version holds build metadata injected at link time.
package version

import "fmt"

// Set via -ldflags at release build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String returns the full version line.
func String() string {
	return fmt.Sprintf("devtoolbox %s (commit %s, built %s)", Version, Commit, Date)
}
