// =============================================================================
// QBO Payload Converter - Version Command
// =============================================================================
//
// This file defines the 'version' command. It reports the release version
// stamped with ldflags, and falls back to what the Go toolchain embedded in
// the binary (module version, VCS revision) when no stamp was given.
//
// COMMAND USAGE:
//   qbo-convert version [--deps]
//
// OUTPUT:
//   qbo-convert v1.2.0
//   Module:     github.com/ginjaninja78/qbo-request-builder
//   Revision:   3f2c1a9 (modified)
//   Built:      2024-01-31T10:00:00Z
//   Output:     payload, batch (max 30 items per batch)
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/qbo-request-builder/internal/config"
	"github.com/ginjaninja78/qbo-request-builder/pkg/qbo"
)

// Release stamps, set with:
//   go build -ldflags "-X 'github.com/ginjaninja78/qbo-request-builder/cmd.Version=v1.2.0' \
//     -X 'github.com/ginjaninja78/qbo-request-builder/cmd.BuildDate=2024-01-31T10:00:00Z'"
var (
	Version   = ""
	BuildDate = ""
)

// showDeps lists module dependencies as well.
var showDeps bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		info, ok := debug.ReadBuildInfo()
		newVersionInfo(info, ok).write(cmd.OutOrStdout(), showDeps)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolVar(&showDeps, "deps", false, "Also list module dependencies")
}

// versionInfo is what the version command reports.
type versionInfo struct {
	Version  string
	Module   string
	Revision string
	Modified bool
	Built    string
	Deps     []string
}

// newVersionInfo merges the ldflags stamps with the embedded build info.
// Stamps win when set.
func newVersionInfo(info *debug.BuildInfo, ok bool) versionInfo {
	v := versionInfo{Version: Version, Built: BuildDate}
	if ok && info != nil {
		v.Module = info.Main.Path
		if v.Version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			v.Version = info.Main.Version
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				v.Revision = s.Value
			case "vcs.time":
				if v.Built == "" {
					v.Built = s.Value
				}
			case "vcs.modified":
				v.Modified = s.Value == "true"
			}
		}
		for _, dep := range info.Deps {
			path, version := dep.Path, dep.Version
			if dep.Replace != nil {
				path, version = dep.Replace.Path, dep.Replace.Version
			}
			v.Deps = append(v.Deps, path+" "+version)
		}
	}
	if v.Version == "" {
		v.Version = "dev"
	}
	if len(v.Revision) > 7 {
		v.Revision = v.Revision[:7]
	}
	return v
}

func (v versionInfo) write(w io.Writer, deps bool) {
	fmt.Fprintf(w, "qbo-convert %s\n", v.Version)
	if v.Module != "" {
		fmt.Fprintf(w, "Module:     %s\n", v.Module)
	}
	if v.Revision != "" {
		rev := v.Revision
		if v.Modified {
			rev += " (modified)"
		}
		fmt.Fprintf(w, "Revision:   %s\n", rev)
	}
	if v.Built != "" {
		fmt.Fprintf(w, "Built:      %s\n", v.Built)
	}
	fmt.Fprintf(w, "Output:     %s, %s (max %d items per batch)\n",
		config.OutputModePayload, config.OutputModeBatch, qbo.MaxBatchItems)

	if deps && len(v.Deps) > 0 {
		fmt.Fprintf(w, "Dependencies:\n  %s\n", strings.Join(v.Deps, "\n  "))
	}
}
