package build

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/xdg/nom/internal/buffer"
	"github.com/xdg/nom/internal/clog"
	"github.com/xdg/nom/internal/cmdline"
	"github.com/xdg/nom/internal/process"
)

// Runner launches and waits on processes. *process.Runner implements it.
type Runner interface {
	Start(args *buffer.Args) (*process.Handle, error)
	Wait(h *process.Handle) process.Outcome
	Release(h *process.Handle) error
}

// Executor runs plans through a Runner.
type Executor struct {
	runner Runner
	log    *clog.Logger
	dryRun bool
	now    func() time.Time
}

// Option configures an Executor.
type Option func(*Executor)

// WithDryRun renders each step without launching anything.
func WithDryRun(dry bool) Option {
	return func(e *Executor) { e.dryRun = dry }
}

// WithLogger sets the diagnostic logger. The default is the global clog logger.
func WithLogger(l *clog.Logger) Option {
	return func(e *Executor) { e.log = l }
}

// NewExecutor returns an Executor using r. A nil r uses the default
// process runner.
func NewExecutor(r Runner, opts ...Option) *Executor {
	if r == nil {
		r = process.NewRunner(nil, nil)
	}
	e := &Executor{runner: r, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = clog.Default()
	}
	return e
}

// pending is an async step that has been launched but not waited on.
type pending struct {
	index  int
	handle *process.Handle
	start  time.Time
}

// run holds the state of one Execute call.
type run struct {
	e       *Executor
	report  *Report
	args    *buffer.Args
	pending map[string]*pending
	order   []string
}

// Execute runs plan in order. Synchronous steps block until done; async
// steps are launched and joined by wait steps, and any still outstanding
// are waited on at the end in launch order.
//
// The build halts at the first failed step, which is returned as a
// *StepError alongside the report. Async steps still running at that
// point are released without waiting. ctx is checked before each step;
// a running child is never interrupted.
func (e *Executor) Execute(ctx context.Context, plan *Plan) (*Report, error) {
	r := &run{
		e:       e,
		report:  &Report{ID: uuid.New().String(), Steps: make([]StepResult, len(plan.Steps))},
		args:    buffer.NewArgs(),
		pending: map[string]*pending{},
	}
	defer r.args.Release()

	started := e.now()
	e.log.Debug("build %s: %d step(s) for %s", r.report.ID, len(plan.Steps), plan.GOOS)
	err := r.execute(ctx, plan)
	r.report.Duration = e.now().Sub(started)
	e.log.Debug("build %s: finished in %s", r.report.ID, r.report.Duration)
	return r.report, err
}

func (r *run) execute(ctx context.Context, plan *Plan) error {
	for i, step := range plan.Steps {
		res := &r.report.Steps[i]
		res.Name = step.Name

		if step.Skip != "" {
			res.Status = StatusSkipped
			res.Reason = step.Skip
			res.Command = r.describe(step)
			r.e.log.Debug("build: skipping %s: %s", step.Name, step.Skip)
			continue
		}

		if err := ctx.Err(); err != nil {
			r.abandon()
			return err
		}

		if !step.IsWait() {
			argv, err := plan.Argv(step)
			if err != nil {
				r.e.log.Error("Could not run step %s: %v", step.Name, err)
				err = r.fail(i, process.NotLaunched(err), r.e.now())
				r.abandon()
				return err
			}
			r.args.Clear()
			r.args.Append(argv...)
			res.Command = cmdline.String(r.args)
		}

		if r.e.dryRun {
			res.Status = StatusPlanned
			if step.IsWait() {
				r.e.log.Info("Would wait for: %v", step.Wait)
			} else {
				r.e.log.Info("Would run: %s", res.Command)
			}
			continue
		}

		var err error
		switch {
		case step.IsWait():
			err = r.join(i, step.Wait)
		case step.Async:
			err = r.launch(i)
		default:
			err = r.runSync(i)
		}
		if err != nil {
			r.abandon()
			return err
		}
	}

	return r.drain()
}

// describe renders a step that will not run without expanding globs.
func (r *run) describe(step Step) string {
	if step.Sh != "" {
		return step.Sh
	}
	if step.Args == nil {
		return ""
	}
	r.args.Clear()
	r.args.Append(step.Args...)
	return cmdline.String(r.args)
}

// runSync runs the command currently held in r.args to completion.
func (r *run) runSync(i int) error {
	res := &r.report.Steps[i]
	start := r.e.now()

	h, err := r.e.runner.Start(r.args)
	if err != nil {
		return r.fail(i, process.NotLaunched(err), start)
	}
	res.Pid = h.Pid()

	out := r.e.runner.Wait(h)
	if !out.OK() {
		return r.fail(i, out, start)
	}
	res.Status = StatusOK
	res.Outcome = out
	res.Duration = r.e.now().Sub(start)
	return nil
}

// launch starts an async step and records its handle.
func (r *run) launch(i int) error {
	res := &r.report.Steps[i]
	start := r.e.now()

	h, err := r.e.runner.Start(r.args)
	if err != nil {
		return r.fail(i, process.NotLaunched(err), start)
	}
	res.Pid = h.Pid()

	r.pending[res.Name] = &pending{index: i, handle: h, start: start}
	r.order = append(r.order, res.Name)
	r.e.log.Debug("build: %s running in background (pid %d)", res.Name, h.Pid())
	return nil
}

// join waits for the named async steps in order. Names already waited on,
// or skipped, are ignored.
func (r *run) join(i int, names []string) error {
	res := &r.report.Steps[i]
	start := r.e.now()

	for _, name := range names {
		p, ok := r.pending[name]
		if !ok {
			r.e.log.Debug("build: %s: nothing to wait for in %s", res.Name, name)
			continue
		}
		if err := r.await(name, p); err != nil {
			res.Status = StatusFailed
			res.Duration = r.e.now().Sub(start)
			return err
		}
	}

	res.Status = StatusOK
	res.Duration = r.e.now().Sub(start)
	return nil
}

// drain waits for every outstanding async step in launch order. All are
// waited even after a failure; the first failure is returned.
func (r *run) drain() error {
	var first error
	for _, name := range r.order {
		p, ok := r.pending[name]
		if !ok {
			continue
		}
		if err := r.await(name, p); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (r *run) await(name string, p *pending) error {
	delete(r.pending, name)
	out := r.e.runner.Wait(p.handle)
	if !out.OK() {
		return r.fail(p.index, out, p.start)
	}
	res := &r.report.Steps[p.index]
	res.Status = StatusOK
	res.Outcome = out
	res.Duration = r.e.now().Sub(p.start)
	return nil
}

func (r *run) fail(i int, out process.Outcome, start time.Time) error {
	res := &r.report.Steps[i]
	res.Status = StatusFailed
	res.Outcome = out
	res.Duration = r.e.now().Sub(start)
	return &StepError{Step: res.Name, Outcome: out}
}

// abandon releases async steps that are still running after the build
// halted.
func (r *run) abandon() {
	for _, name := range r.order {
		p, ok := r.pending[name]
		if !ok {
			continue
		}
		delete(r.pending, name)
		res := &r.report.Steps[p.index]
		res.Status = StatusAbandoned
		res.Duration = r.e.now().Sub(p.start)
		r.e.log.Warn("abandoning %s (pid %d): build halted", name, p.handle.Pid())
		if err := r.e.runner.Release(p.handle); err != nil {
			r.e.log.Warn("release %s: %v", name, err)
		}
	}
}
