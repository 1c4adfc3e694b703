// Package version carries build metadata stamped in via ldflags.
package version

import (
	"fmt"
	"runtime"

	"github.com/aryankumar/kubetab/internal/row"
)

var (
	// Version is the semantic version (set at build time via ldflags)
	Version = "dev"
	// Commit is the git commit hash (set at build time via ldflags)
	Commit = "unknown"
	// BuildTime is the build timestamp (set at build time via ldflags)
	BuildTime = "unknown"
	// GoVersion is the Go version used to build (set at build time via ldflags)
	GoVersion = runtime.Version()
)

// Info contains version information
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

// Get returns the version information
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: GoVersion,
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns a formatted version string
func (i Info) String() string {
	return fmt.Sprintf("kubetab\n  Version:    %s\n  Commit:     %s\n  Build Time: %s\n  Go Version: %s\n  Platform:   %s",
		i.Version, i.Commit, i.BuildTime, i.GoVersion, i.Platform)
}

// Row returns version info as a record for the output formatters
func (i Info) Row() row.Row {
	return row.New(
		row.Str("version", i.Version),
		row.Str("commit", i.Commit),
		row.Str("buildTime", i.BuildTime),
		row.Str("goVersion", i.GoVersion),
		row.Str("platform", i.Platform),
	)
}
