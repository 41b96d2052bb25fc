package cmd

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/xdg/nom/internal/build"
	"github.com/xdg/nom/internal/clog"
	"github.com/xdg/nom/internal/process"
	"github.com/xdg/nom/internal/term"
)

// stubBackend pretends to run commands. Outcomes are keyed by program.
type stubBackend struct {
	mu        sync.Mutex
	pid       int
	programs  map[int]string
	ran       []string
	outcomes  map[string]process.Outcome
	launchErr map[string]error
}

func newStubBackend() *stubBackend {
	return &stubBackend{
		programs:  map[int]string{},
		outcomes:  map[string]process.Outcome{},
		launchErr: map[string]error{},
	}
}

func (b *stubBackend) Name() string { return "stub" }

func (b *stubBackend) Launch(argv []string, line string) (process.Native, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.launchErr[argv[0]]; err != nil {
		return process.Native{}, err
	}
	b.pid++
	b.programs[b.pid] = argv[0]
	b.ran = append(b.ran, line)
	return process.Native{Pid: b.pid}, nil
}

func (b *stubBackend) Wait(n process.Native) process.Outcome {
	b.mu.Lock()
	defer b.mu.Unlock()
	if out, ok := b.outcomes[b.programs[n.Pid]]; ok {
		return out
	}
	return process.Success()
}

func (b *stubBackend) Release(process.Native) error { return nil }

// withConfigHome points the user config directory at a fresh temp dir.
func withConfigHome(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

type result struct {
	stdout string
	logs   string
	err    error
}

// executeCommand runs the root command with args against a stub backend
// and captures terminal output and log lines.
func executeCommand(t *testing.T, backend *stubBackend, args ...string) result {
	t.Helper()

	debugFlag, silentFlag, logFileFlag = false, false, ""
	runFile, runDryRun, runSteps = "", false, nil
	showQuote = false

	var stdout, logs bytes.Buffer
	term.SetOutput(&stdout)
	term.SetErrOutput(&stdout)
	old := clog.ReplaceGlobal(clog.TestLogger(&logs))
	oldRunner := newRunner
	newRunner = func() build.Runner { return process.NewRunner(backend, nil) }
	t.Cleanup(func() {
		term.Reset()
		clog.ReplaceGlobal(old)
		newRunner = oldRunner
	})

	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stdout)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()

	return result{stdout: stdout.String(), logs: logs.String(), err: err}
}

func assertContains(t *testing.T, what, got string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(got, w) {
			t.Errorf("%s missing %q\ngot:\n%s", what, w, got)
		}
	}
}
