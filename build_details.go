package oasmodel

import (
	"fmt"
	"runtime"
)

var (
	// version and commit are set via ldflags at release time.
	version = "dev"
	commit  = "unknown"
)

// Version returns the compiled version or 'dev' if run from source
func Version() string {
	return version
}

// Commit returns the git commit the binary was built from, or "unknown".
func Commit() string {
	return commit
}

// UserAgent returns the identifier used by the MCP server and CLI,
// "oasmodel/<version>".
func UserAgent() string {
	return fmt.Sprintf("oasmodel/%s", version)
}

// BuildInfo returns a multi-line summary for `oasmodel version`.
func BuildInfo() string {
	return fmt.Sprintf("oasmodel %s\nCommit: %s\nGo: %s %s/%s",
		version, commit, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
