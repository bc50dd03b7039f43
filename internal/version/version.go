// Package version provides build version information for the framework
// and the doctor tool.
package version

// Version is the build version string, set by ldflags during build.
var Version = "v1.3.0-dev"

// BuildTime is the build timestamp, set by ldflags during build.
var BuildTime = "unknown"
