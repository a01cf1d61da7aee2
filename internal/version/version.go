// Package version carries build metadata stamped in with -ldflags.
package version

import "fmt"

var (
	// Version is the current generator version
	Version = "dev"
	// GitSHA is the git commit SHA
	GitSHA = "unknown"
	// BuildTime is the build timestamp
	BuildTime = "unknown"
)

// String returns the one-line form printed by -version.
func String() string {
	return fmt.Sprintf("amazer %s (%s, built %s)", Version, GitSHA, BuildTime)
}
