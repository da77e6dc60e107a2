package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "cordiale", displayVersion(resolveVersion()))
	},
}

// resolveVersion prefers the ldflags value, then the module version
// recorded by go install.
func resolveVersion() string {
	if version != "(devel)" && version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return version
}

// displayVersion canonicalizes release versions ("1.2" becomes "v1.2.0")
// and marks prereleases. Anything that is not semver is shown as is.
func displayVersion(v string) string {
	sv := v
	if len(sv) > 0 && sv[0] != 'v' {
		sv = "v" + sv
	}
	if !semver.IsValid(sv) {
		return v
	}
	out := semver.Canonical(sv)
	if semver.Prerelease(sv) != "" {
		out += " (prerelease)"
	}
	return out
}
