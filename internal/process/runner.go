// Package process turns argument lists into child processes and reports
// how they ended.
//
// Start launches without blocking and returns a Handle. Wait blocks until
// that process terminates, with no timeout, and classifies the result as
// an Outcome. Run does both. Children inherit the parent's standard
// streams; nothing is captured.
//
// Failures are returned, never raised: a failed launch yields
// InvalidHandle, and every failure is also written to the diagnostic log
// as a single [ERROR] line.
package process

import (
	"fmt"

	"github.com/xdg/nom/internal/buffer"
	"github.com/xdg/nom/internal/clog"
	"github.com/xdg/nom/internal/cmdline"
)

// LaunchError describes a command that could not be started.
type LaunchError struct {
	Program string
	Err     error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("could not create child process %s: %v", e.Program, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// Runner launches and waits on processes through a Backend.
type Runner struct {
	backend Backend
	log     *clog.Logger
}

// NewRunner returns a Runner using backend and log. A nil backend selects
// DefaultBackend; a nil log uses the global clog logger at call time.
func NewRunner(backend Backend, log *clog.Logger) *Runner {
	if backend == nil {
		backend = DefaultBackend()
	}
	return &Runner{backend: backend, log: log}
}

// Backend returns the backend the runner launches processes with.
func (r *Runner) Backend() Backend {
	return r.backend
}

func (r *Runner) logger() *clog.Logger {
	if r.log != nil {
		return r.log
	}
	return clog.Default()
}

// Start logs the rendered command at info level and launches it without
// waiting. On failure it returns InvalidHandle and the reason.
func (r *Runner) Start(args *buffer.Args) (*Handle, error) {
	log := r.logger()

	if err := args.Validate(); err != nil {
		log.Error("Could not run command: %v", err)
		return InvalidHandle, &LaunchError{Program: args.Program(), Err: err}
	}

	var sb buffer.Builder
	defer sb.Release()
	cmdline.Render(args, &sb)
	line := sb.CString()

	log.Info("Running Cmd: %s", line)

	native, err := r.backend.Launch(args.Strings(), line)
	if err != nil {
		launchErr := &LaunchError{Program: args.Program(), Err: err}
		log.Error("%v", launchErr)
		return InvalidHandle, launchErr
	}

	log.Debug("started %s backend pid %d", r.backend.Name(), native.Pid)
	return &Handle{native: native, cmd: line, valid: true}, nil
}

// Wait blocks until the process behind h terminates and returns its
// outcome. An invalid handle fails at once without blocking. A handle can
// be waited on only once.
func (r *Runner) Wait(h *Handle) Outcome {
	if !h.Valid() {
		return NotLaunched(ErrInvalidHandle)
	}

	log := r.logger()
	if !h.consume() {
		log.Error("could not wait on command (pid %d): %v", h.native.Pid, ErrHandleConsumed)
		return WaitFailed(ErrHandleConsumed)
	}

	out := r.backend.Wait(h.native)
	switch out.Kind {
	case KindSuccess:
		log.Debug("pid %d exited cleanly", h.native.Pid)
	case KindWaitFailed:
		log.Error("could not wait on command (pid %d): %v", h.native.Pid, out.Err)
	default:
		log.Error("%s", out)
	}
	return out
}

// Release gives up a handle without waiting on it. The process keeps
// running. On POSIX hosts it is never reaped by this process, so once it
// exits it remains a zombie until nom itself exits.
func (r *Runner) Release(h *Handle) error {
	if !h.Valid() {
		return ErrInvalidHandle
	}
	if !h.consume() {
		return ErrHandleConsumed
	}
	return r.backend.Release(h.native)
}

// Run starts args and waits for it. A failed launch is returned as a
// KindNotLaunched outcome without waiting.
func (r *Runner) Run(args *buffer.Args) Outcome {
	h, err := r.Start(args)
	if err != nil {
		return NotLaunched(err)
	}
	return r.Wait(h)
}

var std = NewRunner(nil, nil)

// Start launches args with the default runner.
func Start(args *buffer.Args) (*Handle, error) {
	return std.Start(args)
}

// Wait waits on h with the default runner.
func Wait(h *Handle) Outcome {
	return std.Wait(h)
}

// Release gives up h with the default runner.
func Release(h *Handle) error {
	return std.Release(h)
}

// Run starts args and waits for it with the default runner.
func Run(args *buffer.Args) Outcome {
	return std.Run(args)
}
