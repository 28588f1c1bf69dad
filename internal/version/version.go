// Package version holds the build version, overridden at link time with
// -ldflags "-X github.com/rfrench3/initialize-repository/internal/version.Version=...".
package version

// Version is the initialize-repository version string.
var Version = "dev"
