// Package version reports the nesgo binary's build provenance, the way
// cmd/nesgo's -version flag surfaces it.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"time"
)

// Set at build time via -ldflags; left at their defaults for `go run`/tests.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// BuildInfo is the build provenance reported by -version.
type BuildInfo struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
	Platform  string
}

// GetBuildInfo fills in VCS fields from the binary's embedded build info
// when -ldflags didn't set them explicitly.
func GetBuildInfo() BuildInfo {
	info := BuildInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range bi.Settings {
			switch setting.Key {
			case "vcs.revision":
				if info.GitCommit == "unknown" {
					info.GitCommit = setting.Value
				}
			case "vcs.time":
				if info.BuildTime == "unknown" {
					info.BuildTime = setting.Value
				}
			}
		}
	}

	return info
}

// GetDetailedVersion formats build provenance for the -version flag.
func GetDetailedVersion() string {
	info := GetBuildInfo()

	s := fmt.Sprintf("nesgo version %s", info.Version)
	if info.GitCommit != "unknown" {
		commit := info.GitCommit
		if len(commit) >= 7 {
			commit = commit[:7]
		}
		s += fmt.Sprintf(" (commit %s)", commit)
	}
	if info.BuildTime != "unknown" {
		if t, err := time.Parse(time.RFC3339, info.BuildTime); err == nil {
			s += fmt.Sprintf(" built on %s", t.Format("2006-01-02 15:04:05"))
		} else {
			s += fmt.Sprintf(" built on %s", info.BuildTime)
		}
	}
	s += fmt.Sprintf(" with %s for %s", info.GoVersion, info.Platform)
	return s
}
