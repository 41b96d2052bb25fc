package config

import (
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/xdg/nom/internal/clog"
)

// CheckRequires reports an error when current does not satisfy the
// constraint in requires. Development builds, whose version is not a
// semantic version, satisfy every constraint.
func CheckRequires(requires, current string) error {
	if requires == "" {
		return nil
	}

	c, err := semver.NewConstraint(requires)
	if err != nil {
		return fmt.Errorf("requires: invalid constraint %q: %w", requires, err)
	}

	v, err := semver.NewVersion(current)
	if err != nil {
		clog.Debug("config: not checking requires %q against development version %s", requires, current)
		return nil
	}

	if ok, errs := c.Validate(v); !ok {
		return fmt.Errorf("requires: nom %s does not satisfy %q: %v", current, requires, errs[0])
	}
	return nil
}
