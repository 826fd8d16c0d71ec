// Package buildinfo reports which quotecraft build is running.
//
// Release builds stamp the values with ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/quotecraft/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/quotecraft/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/quotecraft/pkg/buildinfo.Date=$(date -u +%Y-%m-%d)"
//
// Binaries from "go install" carry no ldflags; for those the module version
// and VCS settings embedded by the Go toolchain are used instead.
package buildinfo

import (
	"fmt"
	"runtime/debug"
	"strings"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info is a resolved snapshot of the build values.
type Info struct {
	Version, Commit, Date string
}

// Current returns the stamped values, filling unstamped ones from the
// binary's embedded build information when available.
func Current() Info {
	info := Info{Version: Version, Commit: Commit, Date: Date}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch {
		case s.Key == "vcs.revision" && info.Commit == "none":
			info.Commit = s.Value
		case s.Key == "vcs.time" && info.Date == "unknown":
			info.Date = s.Value
		}
	}
	return info
}

func (i Info) lines() string {
	var b strings.Builder
	fmt.Fprintf(&b, "commit: %s\n", i.Commit)
	fmt.Fprintf(&b, "built: %s", i.Date)
	return b.String()
}

// String formats the build values one per line.
func String() string {
	i := Current()
	return "version: " + i.Version + "\n" + i.lines()
}

// Template is the cobra version template: "<name> version <v>" followed by
// the commit and build date.
func Template() string {
	i := Current()
	return "{{.Name}} version " + i.Version + "\n" + i.lines() + "\n"
}
