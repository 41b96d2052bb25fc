package config

// DefaultUserConfig returns a UserConfig with all defaults populated.
func DefaultUserConfig() *UserConfig {
	return &UserConfig{
		Log: LogConfig{
			Level: "info",
		},
		Editor: "vi",
	}
}

// DefaultVars returns the variables every build starts with on goos.
func DefaultVars(goos string) map[string]string {
	vars := map[string]string{
		"CC":  "cc",
		"EXE": "",
	}
	if goos == "windows" {
		vars["CC"] = "gcc"
		vars["EXE"] = ".exe"
	}
	return vars
}

// defaultConfigTemplate is written by WriteDefaultUserConfig.
const defaultConfigTemplate = `# nom user configuration
#
# Settings here apply to every build. A build file's own log and vars
# sections take precedence.

log:
  # Minimum level for the diagnostic log: debug, info, warn, error
  level: info
  # Optional file that receives a timestamped copy of every log line;
  # "default" means $XDG_STATE_HOME/nom/nom.log
  # file: default

# Variables available to every build file as ${NAME}
# vars:
#   CC: clang

# Editor used by 'nom config edit'
editor: vi
`
