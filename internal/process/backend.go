package process

import (
	"errors"
	"io/fs"
	"syscall"
)

// ExecFailedCode is the conventional exit status for a command that was
// found but could not be executed.
const ExecFailedCode = 126

// NotFoundCode is the conventional exit status for a command that could
// not be found.
const NotFoundCode = 127

// ErrExecFailed marks a launch where the program was found but the host
// refused to execute it.
var ErrExecFailed = errors.New("command found but not executable")

// ExecFailed reports whether err is a launch failure for a program that
// exists but cannot be executed: missing permission or an invalid image.
func ExecFailed(err error) bool {
	return errors.Is(err, ErrExecFailed) ||
		errors.Is(err, fs.ErrPermission) ||
		errors.Is(err, syscall.ENOEXEC)
}

// LaunchExitCode maps a launch failure to a shell-style status:
// ExecFailedCode when the program exists but cannot run, NotFoundCode
// otherwise.
func LaunchExitCode(err error) int {
	if ExecFailed(err) {
		return ExecFailedCode
	}
	return NotFoundCode
}

// Backend creates and reaps processes on one kind of host. There are two
// implementations, selected at build time: a POSIX backend built on
// fork/exec and wait4, and a Windows backend built on CreateProcess and
// WaitForSingleObject.
type Backend interface {
	// Name identifies the backend in diagnostics.
	Name() string

	// Launch starts argv with the parent's standard streams. line is the
	// rendered command line, which hosts without an argv-based process API
	// use directly.
	Launch(argv []string, line string) (Native, error)

	// Wait blocks until the process terminates and classifies how.
	// It releases any native resources held for the process.
	Wait(n Native) Outcome

	// Release frees native resources without waiting.
	Release(n Native) error
}
