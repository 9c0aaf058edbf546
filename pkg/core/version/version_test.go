package version

import (
	"regexp"
	"runtime"
	"strings"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestComponentVersions(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"Scanner", Scanner},
		{"Parser", Parser},
		{"Tree", Tree},
		{"Version", Version},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !semverRegex.MatchString(tt.version) {
				t.Errorf("%s version %q does not match semver format (x.y.z)", tt.name, tt.version)
			}
		})
	}
}

func TestComponentVersion(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"scanner", Scanner},
		{"parser", Parser},
		{"tree", Tree},
		{"unknown", Version},
		{"", Version},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComponentVersion(tt.name); got != tt.expected {
				t.Errorf("ComponentVersion(%q) = %q, want %q", tt.name, got, tt.expected)
			}
		})
	}
}

func TestInfo(t *testing.T) {
	info := Info()

	if info.Version != Version {
		t.Errorf("Info().Version = %q, want %q", info.Version, Version)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("Info().GoVersion = %q, want %q", info.GoVersion, runtime.Version())
	}
	if !strings.Contains(info.Platform, "/") {
		t.Errorf("Info().Platform = %q, want os/arch", info.Platform)
	}
	if s := info.String(); !strings.HasPrefix(s, "topdown v"+Version) {
		t.Errorf("String() = %q", s)
	}
	if s := info.String(); !strings.Contains(s, "Components: scanner "+Scanner+", parser "+Parser+", tree "+Tree) {
		t.Errorf("String() lacks component versions: %q", s)
	}
}
