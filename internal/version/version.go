// Package version exposes build metadata set via -ldflags.
package version

var (
	// Version is the semantic version or git tag of this build.
	Version = "dev"
	// Commit is the short git commit hash of this build.
	Commit = "unknown"
)
