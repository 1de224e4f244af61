// Package version reports the build version stamped in at link time.
package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Set with -ldflags "-X github.com/tosinajy/carrier-code-verify/internal/shared/version.Version=1.2.0".
var (
	Version = "dev"
	Commit  = ""
)

// Normalize ensures version string has "v" prefix for semver compatibility.
func Normalize(version string) string {
	version = strings.TrimSpace(version)
	if version == "" {
		return ""
	}
	if !strings.HasPrefix(version, "v") {
		return "v" + version
	}
	return version
}

// Current returns the canonical semver of the build, or "dev" for unstamped builds.
func Current() string {
	v := Normalize(Version)
	if !semver.IsValid(v) {
		return "dev"
	}
	return semver.Canonical(v)
}

// String is the human readable build identifier used by the CLI and /health.
func String() string {
	if Commit == "" {
		return Current()
	}
	return Current() + " (" + Commit + ")"
}
