// Package config provides the build-file and user configuration types for
// nom. Build files are YAML or TOML; the user config is YAML.
package config

// BuildFile describes a build as an ordered list of commands.
// It is typically stored as nom.yaml in the project directory.
type BuildFile struct {
	// Requires is a semver constraint on the nom version, e.g. ">= 0.3".
	Requires string `yaml:"requires,omitempty" toml:"requires,omitempty"`

	Log   LogConfig         `yaml:"log,omitempty" toml:"log,omitempty"`
	Vars  map[string]string `yaml:"vars,omitempty" toml:"vars,omitempty"`
	Steps []Step            `yaml:"steps,omitempty" toml:"steps,omitempty"`
}

// Step is one entry of a build. A step runs a command, given as Cmd or
// Sh, or waits for earlier asynchronous steps. Exactly one of Cmd, Sh
// and Wait is set.
type Step struct {
	Name string `yaml:"name" toml:"name"`

	// Cmd is the argument list; Cmd[0] names the program. Elements may
	// reference ${VAR} from Vars or the environment; $$ is a literal $.
	Cmd []string `yaml:"cmd,omitempty" toml:"cmd,omitempty"`

	// Sh is a single command written as shell words. Quotes, variable
	// references and globs are expanded when the step runs; pipes,
	// redirections and command substitution are not supported.
	Sh string `yaml:"sh,omitempty" toml:"sh,omitempty"`

	// Async launches the command without waiting for it.
	Async bool `yaml:"async,omitempty" toml:"async,omitempty"`

	// Wait lists earlier async steps to wait for, in order.
	Wait []string `yaml:"wait,omitempty" toml:"wait,omitempty"`

	// Platforms restricts the step to the listed GOOS values.
	Platforms []string `yaml:"platforms,omitempty" toml:"platforms,omitempty"`
}

// LogConfig contains diagnostic logging settings.
type LogConfig struct {
	Level string `yaml:"level,omitempty" toml:"level,omitempty"`
	File  string `yaml:"file,omitempty" toml:"file,omitempty"`
}

// UserConfig holds per-user defaults.
// It is stored at ~/.config/nom/config.yaml.
type UserConfig struct {
	Log    LogConfig         `yaml:"log,omitempty"`
	Vars   map[string]string `yaml:"vars,omitempty"`
	Editor string            `yaml:"editor,omitempty"`
}

// IsWait reports whether the step waits rather than runs a command.
func (s Step) IsWait() bool {
	return len(s.Wait) > 0
}

// RunsOn reports whether the step applies to goos.
func (s Step) RunsOn(goos string) bool {
	if len(s.Platforms) == 0 {
		return true
	}
	for _, p := range s.Platforms {
		if p == goos {
			return true
		}
	}
	return false
}
