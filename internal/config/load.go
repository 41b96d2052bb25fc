package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/xdg/nom/internal/clog"
	"github.com/xdg/nom/internal/version"
)

// LoadUserConfig loads the user configuration from the default path.
// If the file doesn't exist, it returns DefaultUserConfig().
// If the file exists but cannot be read, parsed or validated, it returns an error.
func LoadUserConfig() (*UserConfig, error) {
	path := UserConfigPath()
	clog.Debug("config: loading user config from %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			clog.Debug("config: %s not found, using defaults", path)
			return DefaultUserConfig(), nil
		}
		return nil, fmt.Errorf("read user config: %w", err)
	}

	cfg, err := ParseUserConfig(data)
	if err != nil {
		return nil, fmt.Errorf("load user config: %w", err)
	}

	if err := ValidateUserConfig(cfg); err != nil {
		return nil, fmt.Errorf("load user config: %w", err)
	}

	cfg.Log.File = LogFilePath(cfg.Log.File)
	return cfg, nil
}

// LoadBuildFile reads and parses the build file at path without merging
// or validating it. Files ending in .toml are TOML, anything else YAML.
// A missing build file is an error.
func LoadBuildFile(path string) (*BuildFile, error) {
	clog.Debug("config: loading build file from %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read build file: %w", err)
	}

	bf, err := parseBuildFileFor(path, data)
	if err != nil {
		return nil, fmt.Errorf("load build file %s: %w", path, err)
	}

	bf.Log.File = LogFilePath(bf.Log.File)
	return bf, nil
}

// Load reads the build file at path, merges it over the user configuration
// and the defaults for goos, validates the result, and checks that this
// nom satisfies the file's requires constraint.
func Load(path, goos string) (*BuildFile, error) {
	user, err := LoadUserConfig()
	if err != nil {
		return nil, err
	}

	bf, err := LoadBuildFile(path)
	if err != nil {
		return nil, err
	}

	merged := Merge(user, bf, goos)
	if err := ValidateBuildFile(merged); err != nil {
		return nil, fmt.Errorf("load build file %s: %w", path, err)
	}
	if err := CheckRequires(merged.Requires, version.Resolve()); err != nil {
		return nil, fmt.Errorf("load build file %s: %w", path, err)
	}
	return merged, nil
}
