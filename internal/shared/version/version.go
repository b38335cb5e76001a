// Package version reports the build version of the service.
package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Set at build time with -ldflags "-X .../version.Current=v1.2.3".
var (
	Current   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Normalize ensures version string has "v" prefix for semver compatibility.
// Examples: "1.2.3" -> "v1.2.3", "v1.2.3" -> "v1.2.3"
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

// IsRelease reports whether v is a valid semantic version.
func IsRelease(v string) bool {
	return semver.IsValid(Normalize(v))
}

// String returns the canonical build version, or the raw value for
// development builds.
func String() string {
	if IsRelease(Current) {
		return semver.Canonical(Normalize(Current))
	}
	return Current
}

type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
}

func Get() Info {
	return Info{Version: String(), Commit: Commit, BuildTime: BuildTime}
}
