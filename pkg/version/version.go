// Package version exposes the library version derived from build metadata.
//
// Priority: -ldflags override > VCS info from debug.BuildInfo > "dev" fallback.
//
// Usage:
//
//	version.GitCommit  // "a3f8c2d1" or "dev"
//	version.Full()     // "jsonmask/a3f8c2d1" or "jsonmask/dev"
package version

import "runtime/debug"

// AppName is the name used in version strings and startup logs.
const AppName = "jsonmask"

// gitCommitOverride is set via -ldflags at build time when .git is
// unavailable. Empty string means no override.
var gitCommitOverride string

// GitCommit is the short git commit hash (8 chars) from build info.
// Set to "dev" when build info is unavailable (e.g., `go test`, non-git builds).
var GitCommit = resolveCommit(gitCommitOverride, readBuildInfo)

func readBuildInfo() (*debug.BuildInfo, bool) {
	return debug.ReadBuildInfo()
}

func resolveCommit(override string, buildInfo func() (*debug.BuildInfo, bool)) string {
	if override != "" {
		return shortHash(override)
	}
	info, ok := buildInfo()
	if !ok || info == nil {
		return "dev"
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			return shortHash(s.Value)
		}
	}
	return "dev"
}

func shortHash(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}

// Full returns "jsonmask/<commit>" for use in logging.
func Full() string {
	return AppName + "/" + GitCommit
}
