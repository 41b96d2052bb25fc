package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xdg/nom/internal/clog"
	"github.com/xdg/nom/internal/fsutil"
)

// DefaultBuildFile is the build file name looked up in the working directory.
const DefaultBuildFile = "nom.yaml"

// buildFileNames are tried in order by FindBuildFile.
var buildFileNames = []string{DefaultBuildFile, "nom.yml", "nom.toml"}

// FindBuildFile returns the first of nom.yaml, nom.yml and nom.toml that
// exists in dir. If none does, it returns the nom.yaml path so the caller
// reports a missing file under the expected name.
func FindBuildFile(dir string) string {
	for _, name := range buildFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return filepath.Join(dir, DefaultBuildFile)
}

// Dir returns the nom configuration directory path.
// By default, this is ~/.config/nom/. If the XDG_CONFIG_HOME
// environment variable is set, it uses $XDG_CONFIG_HOME/nom/ instead.
// The returned path always has a trailing slash.
func Dir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = "~/.config"
	}
	return fsutil.ExpandHome(base) + "/nom/"
}

// EnsureDir creates the nom configuration directory if it doesn't exist.
func EnsureDir() error {
	if err := os.MkdirAll(Dir(), 0o700); err != nil {
		return fmt.Errorf("ensure config dir: %w", err)
	}
	return nil
}

// DefaultLogFile is the log.file value that selects the standard log
// location.
const DefaultLogFile = "default"

// LogFilePath resolves a log.file or --log-file value: DefaultLogFile
// becomes clog.DefaultLogPath and a leading ~ is expanded.
func LogFilePath(path string) string {
	if path == DefaultLogFile {
		return clog.DefaultLogPath()
	}
	return fsutil.ExpandHome(path)
}

// UserConfigPath returns the full path to the user configuration file.
func UserConfigPath() string {
	return Dir() + "config.yaml"
}
