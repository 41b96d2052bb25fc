// Package fsutil provides the file helpers build programs lean on:
// creating, removing, moving, listing, reading and writing files.
//
// Every helper that fails writes one [ERROR] line to the diagnostic log
// naming the operation, the path, and the host error, then returns the
// error to the caller. Nothing here is fatal.
package fsutil

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/xdg/nom/internal/buffer"
)

// Path joins elems with the host path separator. Unlike filepath.Join it
// does not clean the result, so "./" prefixes survive.
func Path(elems ...string) string {
	return buffer.ConcatSep(os.PathSeparator, elems...)
}

// ExpandHome replaces a leading ~ in path with the user's home directory.
// If the home directory cannot be determined, the path is returned unchanged.
func ExpandHome(path string) string {
	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
