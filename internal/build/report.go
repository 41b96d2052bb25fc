package build

import (
	"fmt"
	"time"

	"github.com/xdg/nom/internal/process"
)

// Status is the final state of one step.
type Status int

const (
	// StatusPending steps were never reached because the build halted.
	StatusPending Status = iota
	StatusOK
	StatusFailed
	StatusSkipped
	// StatusPlanned steps were rendered by a dry run.
	StatusPlanned
	// StatusAbandoned async steps were still running when the build
	// halted and were released without waiting.
	StatusAbandoned
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusOK:
		return "ok"
	case StatusFailed:
		return "failed"
	case StatusSkipped:
		return "skipped"
	case StatusPlanned:
		return "planned"
	case StatusAbandoned:
		return "abandoned"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// StepResult records what happened to one step.
type StepResult struct {
	Name     string
	Command  string
	Status   Status
	Outcome  process.Outcome
	Duration time.Duration
	Pid      int

	// Reason is set for skipped steps.
	Reason string
}

// Report is the result of executing a Plan, one entry per step in plan
// order.
type Report struct {
	// ID identifies this build in diagnostic logs.
	ID       string
	Steps    []StepResult
	Duration time.Duration
}

// OK reports whether no step failed.
func (r *Report) OK() bool {
	return r.Failed() == nil
}

// Failed returns the first failed step, or nil.
func (r *Report) Failed() *StepResult {
	for i := range r.Steps {
		if r.Steps[i].Status == StatusFailed {
			return &r.Steps[i]
		}
	}
	return nil
}

// Count returns how many steps ended with status s.
func (r *Report) Count(s Status) int {
	n := 0
	for _, step := range r.Steps {
		if step.Status == s {
			n++
		}
	}
	return n
}

// String renders a one-line summary of the report.
func (r *Report) String() string {
	return fmt.Sprintf("%d ok, %d failed, %d skipped in %s",
		r.Count(StatusOK), r.Count(StatusFailed), r.Count(StatusSkipped), r.Duration.Round(time.Millisecond))
}

// StepError is returned by Execute when a step fails.
type StepError struct {
	Step    string
	Outcome process.Outcome
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %s: %s", e.Step, e.Outcome)
}

func (e *StepError) Unwrap() error {
	return e.Outcome.Err
}

// ExitCode returns the status the CLI should exit with: the child's exit
// code, 128+N for signal N, process.ExecFailedCode when the program was
// found but could not be executed, or 1 when the step never produced one.
func (e *StepError) ExitCode() int {
	if code := e.Outcome.ExitCode(); code > 0 {
		return code
	}
	if e.Outcome.Kind == process.KindNotLaunched && process.ExecFailed(e.Outcome.Err) {
		return process.ExecFailedCode
	}
	return 1
}
