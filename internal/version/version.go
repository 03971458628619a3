// Package version reports build version information, preferring
// ldflags-injected values over module build info.
package version

import (
	"fmt"
	"runtime/debug"
)

// Overridden at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Get returns the version string.
func Get() string {
	if Version != "dev" {
		return Version
	}

	// Fall back to the module version when installed via go install
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}

	return Version
}

// GetFull returns the version together with commit and build date.
func GetFull() string {
	return fmt.Sprintf("notepm-mcp-server version %s (commit: %s, built: %s)", Get(), Commit, Date)
}
