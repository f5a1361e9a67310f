// Package version reports the build identity of the running binary.
package version

import (
	"fmt"
	"runtime/debug"
)

// The value of these vars are set through linker options.
var gitCommit = "Local build"
var buildDate = "Moments ago"
var gitTag = "Unknown"

// Version returns the version string of this build.
func Version() string {
	return fmt.Sprintf("%s. Built at: %s", BuildData(), buildDate)
}

// BuildData returns the git tag and commit of the current build. Builds without linker
// options fall back to the vcs revision recorded by the go tool, when there is one.
func BuildData() string {
	commit := gitCommit
	if info, ok := debug.ReadBuildInfo(); ok && commit == "Local build" {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				commit = s.Value
			}
		}
	}
	return fmt.Sprintf("blobkzg/%s/%s", gitTag, commit)
}
