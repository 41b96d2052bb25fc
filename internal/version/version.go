// Package version provides version information for nom.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version is the current version of nom.
// Set at build time via: -ldflags "-X github.com/xdg/nom/internal/version.Version=v1.0.0"
// Defaults to "dev" for development builds.
var Version = "dev"

// String returns the version line printed by "nom --version".
func String() string {
	return fmt.Sprintf("%s (%s, %s/%s)", Resolve(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// Resolve returns the nom version: the ldflags version, then the module
// version recorded by "go install", then "dev".
func Resolve() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}
