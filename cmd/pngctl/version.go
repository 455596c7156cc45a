package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Set with -ldflags "-X main.version=..." on release builds.
var (
	version = "dev"
	commit  = ""
)

func init() {
	rootCmd.AddCommand(newVersionCmd())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion()
		},
	}
}

type versionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	GoVersion string `json:"go_version,omitempty"`
	Library   string `json:"pngkit,omitempty"`
}

// buildVersion fills the fields ldflags left unset from the module build info.
func buildVersion() versionInfo {
	v := versionInfo{Version: version, Commit: commit}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return v
	}
	v.GoVersion = bi.GoVersion
	if v.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		v.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" && v.Commit == "" {
			v.Commit = s.Value
		}
	}
	for _, dep := range bi.Deps {
		if dep.Path == "github.com/joshuapare/pngkit" {
			v.Library = dep.Version
		}
	}
	return v
}

func runVersion() error {
	v := buildVersion()
	if jsonOut {
		return printJSON(v)
	}
	fmt.Printf("pngctl %s\n", v.Version)
	if v.Commit != "" {
		fmt.Printf("  commit: %s\n", v.Commit)
	}
	if v.Library != "" {
		fmt.Printf("  pngkit: %s\n", v.Library)
	}
	if v.GoVersion != "" {
		fmt.Printf("  go: %s\n", v.GoVersion)
	}
	return nil
}
