package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/xdg/nom/internal/build"
	"github.com/xdg/nom/internal/process"
)

// ExitCodeError asks main to exit with Code. Err, when set, is the
// message to show; a nil Err means the failure was already reported.
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

func (e *ExitCodeError) Unwrap() error { return e.Err }

// outcomeError converts a failed outcome into an ExitCodeError mirroring
// the child's status. The runner has already logged the failure.
func outcomeError(out process.Outcome) error {
	if out.OK() {
		return nil
	}
	if code := out.ExitCode(); code > 0 {
		return &ExitCodeError{Code: code}
	}
	if out.Kind == process.KindNotLaunched {
		return &ExitCodeError{Code: process.LaunchExitCode(out.Err)}
	}
	return &ExitCodeError{Code: 1}
}

// buildError converts an Execute error into one main can act on.
func buildError(err error) error {
	var stepErr *build.StepError
	if errors.As(err, &stepErr) {
		return &ExitCodeError{Code: stepErr.ExitCode(), Err: err}
	}
	return err
}

// missingBuildFileError gives a friendlier message when nom.yaml is absent.
func missingBuildFileError(path string, err error) error {
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("no build file at %s; create one or pass --file", path)
	}
	return err
}
