//go:build unix

package process

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

type posixBackend struct{}

// DefaultBackend returns the backend for the host the binary was built for.
func DefaultBackend() Backend {
	return posixBackend{}
}

func (posixBackend) Name() string { return "posix" }

// Launch resolves argv[0] through PATH and forks a child that execs it.
// The child never returns to the caller's code: if exec fails the failure
// is reported here, before the handle exists. Once PATH lookup has
// succeeded, any exec failure wraps ErrExecFailed.
func (posixBackend) Launch(argv []string, _ string) (Native, error) {
	path, err := exec.LookPath(argv[0])
	if err != nil {
		return Native{}, err
	}

	pid, err := syscall.ForkExec(path, argv, &syscall.ProcAttr{
		Env:   os.Environ(),
		Files: []uintptr{os.Stdin.Fd(), os.Stdout.Fd(), os.Stderr.Fd()},
	})
	if err != nil {
		return Native{}, fmt.Errorf("exec %s: %w: %w", path, ErrExecFailed, err)
	}

	return Native{Pid: pid}, nil
}

func (posixBackend) Wait(n Native) Outcome {
	for {
		var ws unix.WaitStatus
		_, err := unix.Wait4(n.Pid, &ws, 0, nil)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return WaitFailed(fmt.Errorf("pid %d: %w", n.Pid, err))
		}

		switch {
		case ws.Exited():
			return Exited(ws.ExitStatus())
		case ws.Signaled():
			sig := ws.Signal()
			return Signaled(int(sig), unix.SignalName(sig))
		}
		// Stopped or continued: keep waiting for termination.
	}
}

// Release is a no-op: a POSIX pid holds no descriptor. A released child
// is not reaped, so it lingers as a zombie after exiting until this
// process exits and init collects it.
func (posixBackend) Release(Native) error {
	return nil
}
