package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the leo version and build revision",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(versionLine(version, readBuildInfo()))
	},
}

func readBuildInfo() *debug.BuildInfo {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}
	return info
}

// versionLine appends the VCS revision for builds without an ldflags
// version, so `go install` binaries can still be told apart.
func versionLine(v string, info *debug.BuildInfo) string {
	line := "leo " + v
	if info == nil {
		return line
	}
	var rev string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if len(rev) > 12 {
		rev = rev[:12]
	}
	if rev != "" {
		if dirty {
			rev += "-dirty"
		}
		line += fmt.Sprintf(" (%s)", rev)
	}
	return line + " " + info.GoVersion
}
