package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ErrNoSteps is reported for a build file without steps.
var ErrNoSteps = errors.New("at least one step is required")

// validLogLevels lists the accepted log.level values.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// ValidateUserConfig validates a user configuration.
func ValidateUserConfig(cfg *UserConfig) error {
	var errs []error
	if err := validateLog(cfg.Log); err != nil {
		errs = append(errs, err)
	}
	errs = append(errs, validateVars(cfg.Vars)...)
	return errors.Join(errs...)
}

// ValidateBuildFile validates a merged build file. It checks that step
// names are unique, that each step has exactly one of cmd, sh or wait,
// that wait targets name earlier async steps, and that every command
// expands against the build's variables.
func ValidateBuildFile(bf *BuildFile) error {
	var errs []error
	if err := validateLog(bf.Log); err != nil {
		errs = append(errs, err)
	}
	errs = append(errs, validateVars(bf.Vars)...)

	if bf.Requires != "" {
		if _, err := semver.NewConstraint(bf.Requires); err != nil {
			errs = append(errs, fmt.Errorf("requires: invalid constraint %q: %w", bf.Requires, err))
		}
	}

	if len(bf.Steps) == 0 {
		errs = append(errs, fmt.Errorf("steps: %w", ErrNoSteps))
	}

	seen := map[string]int{}
	async := map[string]bool{}
	for i, step := range bf.Steps {
		field := fmt.Sprintf("steps[%d]", i)
		if step.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name: cannot be empty", field))
		} else if j, dup := seen[step.Name]; dup {
			errs = append(errs, fmt.Errorf("%s.name: %q already used by steps[%d]", field, step.Name, j))
		} else {
			seen[step.Name] = i
		}

		forms := 0
		for _, set := range []bool{len(step.Cmd) > 0, step.Sh != "", step.IsWait()} {
			if set {
				forms++
			}
		}
		switch {
		case forms > 1:
			errs = append(errs, fmt.Errorf("%s: cmd, sh and wait are mutually exclusive", field))
		case forms == 0:
			errs = append(errs, fmt.Errorf("%s: one of cmd, sh or wait is required", field))
		}

		if step.Async && step.IsWait() {
			errs = append(errs, fmt.Errorf("%s.async: a wait step cannot be async", field))
		}

		for _, target := range step.Wait {
			if !async[target] {
				errs = append(errs, fmt.Errorf("%s.wait: %q is not an earlier async step", field, target))
			}
		}

		if len(step.Cmd) > 0 {
			if step.Cmd[0] == "" {
				errs = append(errs, fmt.Errorf("%s.cmd[0]: program cannot be empty", field))
			}
			for k, arg := range step.Cmd {
				if strings.IndexByte(arg, 0) >= 0 {
					errs = append(errs, fmt.Errorf("%s.cmd[%d]: contains a NUL byte", field, k))
				}
			}
			if _, err := ExpandArgs(step.Cmd, bf.Vars); err != nil {
				errs = append(errs, fmt.Errorf("%s.cmd: %w", field, err))
			}
		}

		if step.Sh != "" {
			if strings.IndexByte(step.Sh, 0) >= 0 {
				errs = append(errs, fmt.Errorf("%s.sh: contains a NUL byte", field))
			} else if _, err := ShellFields(step.Sh, bf.Vars, false); err != nil {
				errs = append(errs, fmt.Errorf("%s.sh: %w", field, err))
			}
		}

		for k, p := range step.Platforms {
			if p == "" {
				errs = append(errs, fmt.Errorf("%s.platforms[%d]: cannot be empty", field, k))
			}
		}

		if step.Async && step.Name != "" {
			async[step.Name] = true
		}
	}

	return errors.Join(errs...)
}

func validateLog(log LogConfig) error {
	if log.Level != "" && !validLogLevels[log.Level] {
		return fmt.Errorf("log.level: invalid value %q, must be one of: debug, info, warn, error", log.Level)
	}
	return nil
}

func validateVars(vars map[string]string) []error {
	var errs []error
	for name := range vars {
		if name == "" || strings.ContainsAny(name, "${}= \t") {
			errs = append(errs, fmt.Errorf("vars: invalid variable name %q", name))
		}
	}
	return errs
}
