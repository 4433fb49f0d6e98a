// Package version reports build metadata for the printcode binary.
package version

import (
	"fmt"
	"runtime"
)

// Set at link time, e.g.
//
//	go build -ldflags "-X printcode/pkg/version.Version=0.3.0 -X printcode/pkg/version.Commit=$(git rev-parse --short HEAD)"
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

// Info is a snapshot of the link-time variables plus the Go runtime in use.
type Info struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
	Platform  string // GOOS/GOARCH
}

// Get collects the current build metadata.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String formats i as the one-line banner printed by "printcode version".
func (i Info) String() string {
	return fmt.Sprintf("printcode %s (commit %s, built %s, %s %s)",
		i.Version, i.GitCommit, i.BuildTime, i.GoVersion, i.Platform)
}
