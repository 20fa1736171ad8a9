// Package version holds the application version string.
package version

// Version is the current application version.
// Overridden at build time via -ldflags "-X moonlander/pkg/version.Version=...".
var Version = "1.0.0"
