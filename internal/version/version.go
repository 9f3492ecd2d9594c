// Package version holds the build version string reported by
// cmd/reversigo's -version flag.
package version

// Version is the engine's release identifier. Overridable at build
// time with -ldflags "-X github.com/frankkopp/reversigo/internal/version.Version=...".
var Version = "dev"
