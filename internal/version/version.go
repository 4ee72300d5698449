// Package version holds build metadata, overridden with -ldflags at release.
package version

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)
