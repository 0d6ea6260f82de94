// Package version reports polyium's build version.
package version

import (
	"fmt"
	"log/slog"
	"runtime/debug"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/mod/semver"
)

const devVersion = "0.0.0-dev"

var (
	// Version is the release version (set during build)
	Version = devVersion

	// GitCommit is the git commit hash (set during build)
	GitCommit = "unknown"

	// BuildDate is the build date (set during build)
	BuildDate = "unknown"
)

const modulePath = "github.com/polyium/polyium"

var (
	once     sync.Once
	resolved string
)

// Tuple is a version reduced to its major, minor and micro numbers.
type Tuple struct {
	Major, Minor, Micro int
}

func (t Tuple) String() string {
	return fmt.Sprintf("%d.%d.%d", t.Major, t.Minor, t.Micro)
}

// Parse reduces a semantic version to a Tuple. The "v" prefix is optional
// and pre-release or build suffixes are dropped. Unparseable input yields
// 0.0.0.
func Parse(s string) Tuple {
	v := s
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		slog.Warn("Unable to parse version", "version", s)
		return Tuple{}
	}

	core := strings.TrimPrefix(semver.Canonical(v), "v")
	core, _, _ = strings.Cut(core, "-")
	core, _, _ = strings.Cut(core, "+")

	var parts [3]int
	for i, field := range strings.SplitN(core, ".", 3) {
		n, err := strconv.Atoi(field)
		if err != nil {
			slog.Warn("Unable to parse version", "version", s, "error", err)
			return Tuple{}
		}
		parts[i] = n
	}
	return Tuple{Major: parts[0], Minor: parts[1], Micro: parts[2]}
}

// Short returns the version string. Builds without ldflags fall back to the
// module version recorded in the binary.
func Short() string {
	once.Do(func() {
		resolved = Version
		if Version != devVersion {
			return
		}
		bi, ok := debug.ReadBuildInfo()
		if !ok {
			return
		}
		if bi.Main.Path == modulePath && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			resolved = strings.TrimPrefix(bi.Main.Version, "v")
		}
	})
	return resolved
}

// Current returns Short as a Tuple.
func Current() Tuple {
	return Parse(Short())
}

// Info returns formatted version information
func Info() string {
	return fmt.Sprintf("polyium version %s (commit: %s, built: %s)",
		Short(), GitCommit, BuildDate)
}
