// Package version carries build metadata stamped in via -ldflags.
package version

var (
	Version   = "dev"
	GitSHA    = "unknown"
	BuildTime = "unknown"
)
