package process

import "fmt"

// Kind classifies how a process ended, or why it never ran.
type Kind int

const (
	// KindSuccess means the process exited with code 0.
	KindSuccess Kind = iota
	// KindExited means the process exited with a nonzero code.
	KindExited
	// KindSignaled means the process was terminated by a signal (POSIX only).
	KindSignaled
	// KindWaitFailed means the host wait call itself failed.
	KindWaitFailed
	// KindNotLaunched means there was no process to wait on.
	KindNotLaunched
)

// String returns a short lowercase name for the kind.
func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindExited:
		return "exited"
	case KindSignaled:
		return "signaled"
	case KindWaitFailed:
		return "wait-failed"
	case KindNotLaunched:
		return "not-launched"
	default:
		return "unknown"
	}
}

// Outcome is the classified result of waiting on a process.
type Outcome struct {
	Kind Kind

	// Code is the exit code for KindExited.
	Code int

	// Signal and SignalName describe the terminating signal for KindSignaled.
	Signal     int
	SignalName string

	// Err holds the host error for KindWaitFailed and KindNotLaunched.
	Err error
}

// Success returns an outcome for a process that exited with code 0.
func Success() Outcome {
	return Outcome{Kind: KindSuccess}
}

// Exited returns an outcome for a process that exited with code.
// A zero code yields Success.
func Exited(code int) Outcome {
	if code == 0 {
		return Success()
	}
	return Outcome{Kind: KindExited, Code: code}
}

// Signaled returns an outcome for a process terminated by a signal.
func Signaled(sig int, name string) Outcome {
	return Outcome{Kind: KindSignaled, Signal: sig, SignalName: name}
}

// WaitFailed returns an outcome for a failed host wait call.
func WaitFailed(err error) Outcome {
	return Outcome{Kind: KindWaitFailed, Err: err}
}

// NotLaunched returns an outcome for a command that never started.
func NotLaunched(err error) Outcome {
	return Outcome{Kind: KindNotLaunched, Err: err}
}

// OK reports whether the process exited with code 0.
func (o Outcome) OK() bool {
	return o.Kind == KindSuccess
}

// ExitCode maps the outcome to a shell-style exit status: the exit code,
// 128 plus the signal number, or -1 when there is no status to report.
func (o Outcome) ExitCode() int {
	switch o.Kind {
	case KindSuccess:
		return 0
	case KindExited:
		return o.Code
	case KindSignaled:
		return 128 + o.Signal
	default:
		return -1
	}
}

// String describes the outcome in the words used by the diagnostic log.
func (o Outcome) String() string {
	switch o.Kind {
	case KindSuccess:
		return "command succeeded"
	case KindExited:
		return fmt.Sprintf("command exited with exit code %d", o.Code)
	case KindSignaled:
		name := o.SignalName
		if name == "" {
			name = fmt.Sprintf("signal %d", o.Signal)
		}
		return "command process was terminated by " + name
	case KindWaitFailed:
		return fmt.Sprintf("could not wait on command: %v", o.Err)
	case KindNotLaunched:
		return fmt.Sprintf("command was not launched: %v", o.Err)
	default:
		return "unknown outcome"
	}
}
