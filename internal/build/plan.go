// Package build runs a build file: an ordered list of commands, some of
// which may be launched without waiting and joined later.
//
// A Plan is the build file resolved for one platform, with variables
// expanded. An Executor runs a Plan through a process runner, halting on
// the first failed step, and returns a Report.
package build

import (
	"fmt"
	"strings"

	"github.com/xdg/nom/internal/config"
)

// Step is one resolved build step.
type Step struct {
	Name string

	// Args is the expanded argument list of a cmd step.
	Args []string

	// Sh is the command line of an sh step. It is expanded just before
	// the step runs so globs see files made by earlier steps.
	Sh string

	Async bool
	Wait  []string

	// Skip is non-empty when the step will not run, and says why.
	Skip string
}

// IsWait reports whether the step joins earlier async steps.
func (s Step) IsWait() bool {
	return len(s.Wait) > 0
}

// Plan is an ordered list of steps ready to execute on GOOS.
type Plan struct {
	GOOS  string
	Vars  map[string]string
	Steps []Step
}

// Argv returns the argument list step s runs with.
func (p *Plan) Argv(s Step) ([]string, error) {
	if s.Sh != "" {
		return config.ShellFields(s.Sh, p.Vars, true)
	}
	return s.Args, nil
}

// NewPlan resolves a validated build file for goos. Commands have their
// variables expanded; steps for other platforms are kept but marked
// skipped so they still show up in the report.
func NewPlan(bf *config.BuildFile, goos string) (*Plan, error) {
	plan := &Plan{GOOS: goos, Vars: bf.Vars, Steps: make([]Step, 0, len(bf.Steps))}

	for _, s := range bf.Steps {
		step := Step{
			Name:  s.Name,
			Sh:    s.Sh,
			Async: s.Async,
			Wait:  append([]string(nil), s.Wait...),
		}
		if !s.RunsOn(goos) {
			step.Skip = "not for " + goos
		}
		if len(s.Cmd) > 0 {
			args, err := config.ExpandArgs(s.Cmd, bf.Vars)
			if err != nil {
				return nil, fmt.Errorf("step %s: %w", s.Name, err)
			}
			step.Args = args
		}
		plan.Steps = append(plan.Steps, step)
	}

	return plan, nil
}

// Select keeps only the named steps, marking the rest skipped. Async
// steps named by a selected wait step are selected too. Unknown names
// are an error.
func (p *Plan) Select(names ...string) error {
	if len(names) == 0 {
		return nil
	}

	index := make(map[string]int, len(p.Steps))
	for i, s := range p.Steps {
		index[s.Name] = i
	}

	keep := make(map[string]bool, len(names))
	var unknown []string
	for _, name := range names {
		i, ok := index[name]
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		keep[name] = true
		for _, dep := range p.Steps[i].Wait {
			keep[dep] = true
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("unknown step(s): %s", strings.Join(unknown, ", "))
	}

	for i := range p.Steps {
		if !keep[p.Steps[i].Name] && p.Steps[i].Skip == "" {
			p.Steps[i].Skip = "not selected"
		}
	}
	return nil
}
