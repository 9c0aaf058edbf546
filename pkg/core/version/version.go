// ============================================================================
// topdown - LL(1) Predictive Parser
// ============================================================================
//
// Package:     version
// Description: Build and component version information
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Component versions
const (
	Scanner = "1.0.0"
	Parser  = "1.0.0"
	Tree    = "1.0.0"
)

// Build information, overridden via -ldflags "-X ..."
var (
	Version   = "0.1.0"
	GitCommit = "development"
	BuildDate = "unknown"
)

// BuildInfo describes the running binary
type BuildInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Info returns the build information of the running binary
func Info() BuildInfo {
	return BuildInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "scanner":
		return Scanner
	case "parser":
		return Parser
	case "tree":
		return Tree
	default:
		return Version
	}
}

// String renders the build information as a multi-line report
func (b BuildInfo) String() string {
	return fmt.Sprintf("topdown v%s\n  Git Commit: %s\n  Build Date: %s\n  Go Version: %s\n  OS/Arch:    %s\n"+
		"  Components: scanner %s, parser %s, tree %s\n",
		b.Version, b.GitCommit, b.BuildDate, b.GoVersion, b.Platform,
		ComponentVersion("scanner"), ComponentVersion("parser"), ComponentVersion("tree"))
}
