// Package version holds build metadata stamped in by the linker:
//
//	go build -ldflags "-X github.com/dkoosis/statstable/internal/version.Version=v1.2.0"
package version

import "fmt"

var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// String formats the metadata for --version output.
func String() string {
	return fmt.Sprintf("statstable %s (commit %s, built %s)", Version, CommitHash, BuildDate)
}
