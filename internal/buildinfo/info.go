// Package buildinfo carries release metadata injected at link time.
package buildinfo

import "fmt"

var (
	// Version is set via ldflags during release builds.
	Version = "dev"
	// Commit is set via ldflags during release builds.
	Commit = "none"
	// Date is set via ldflags during release builds.
	Date = "unknown"
)

// String renders the full version line shown by --version.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
