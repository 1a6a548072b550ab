// File: version.go
// Title: Version Management
// Description: Release versions of the stringy components and the build
//              metadata stamped in by the linker.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2025-03-02 v0.2.0: Per-component versions for the library, CLI and playground

package version

import (
	"fmt"
	"runtime"
)

// Version constants for the stringy components
const (
	// Library is the version of the stringx package
	Library = "0.3.0"

	// CLI is the version of the stringy command
	CLI = "0.2.0"

	// Playground is the version of the interactive TUI
	Playground = "0.1.0"
)

// Build metadata, set with -ldflags "-X ...version.GitCommit=..."
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a component name. Unknown names
// get the library version.
func ComponentVersion(name string) string {
	switch name {
	case "cli", "stringy":
		return CLI
	case "playground", "tui":
		return Playground
	default:
		return Library
	}
}

// Info describes the running binary.
type Info struct {
	Component string
	Version   string
	Library   string
	GitCommit string
	BuildDate string
	GoVersion string
	Platform  string
}

// Current returns the build information for component.
func Current(component string) Info {
	return Info{
		Component: component,
		Version:   ComponentVersion(component),
		Library:   Library,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String renders the multi-line report printed by "stringy version".
func (i Info) String() string {
	return fmt.Sprintf("%s v%s\n  Library:    v%s\n  Git Commit: %s\n  Build Date: %s\n  Go Version: %s\n  OS/Arch:    %s\n",
		i.Component, i.Version, i.Library, i.GitCommit, i.BuildDate, i.GoVersion, i.Platform)
}
