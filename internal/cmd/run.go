package cmd

import (
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/xdg/nom/internal/build"
	"github.com/xdg/nom/internal/clog"
	"github.com/xdg/nom/internal/config"
	"github.com/xdg/nom/internal/process"
	"github.com/xdg/nom/internal/term"
)

var (
	runFile   string
	runDryRun bool
	runSteps  []string
)

// newRunner is replaced in tests.
var newRunner = func() build.Runner {
	return process.NewRunner(nil, nil)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the steps of a build file",
	Long: `Run the steps of a build file (nom.yaml, nom.yml or nom.toml) in order.

Each step's command is logged and run with the terminal attached. The build
stops at the first step that fails, and nom exits with that step's exit code.
Steps marked async run in the background until a wait step or the end of the
build. Steps whose platforms do not include this OS are skipped.`,
	Example: `  nom run
  nom run --file release.yaml --step package
  nom run --dry-run`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVarP(&runFile, "file", "f", "", "build file to run (default: nom.yaml, nom.yml or nom.toml)")
	runCmd.Flags().BoolVarP(&runDryRun, "dry-run", "n", false, "print commands without running them")
	runCmd.Flags().StringSliceVar(&runSteps, "step", nil, "run only the named steps (repeatable)")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	path := runFile
	if path == "" {
		path = config.FindBuildFile(".")
	}

	bf, err := config.Load(path, runtime.GOOS)
	if err != nil {
		return missingBuildFileError(path, err)
	}
	if err := applyLogConfig(bf.Log); err != nil {
		return err
	}

	plan, err := build.NewPlan(bf, runtime.GOOS)
	if err != nil {
		return err
	}
	if err := plan.Select(runSteps...); err != nil {
		return err
	}

	executor := build.NewExecutor(newRunner(), build.WithDryRun(runDryRun))
	report, err := executor.Execute(cmd.Context(), plan)
	printReport(report)
	return buildError(err)
}

// applyLogConfig applies file settings that the command line did not
// already override.
func applyLogConfig(log config.LogConfig) error {
	if !debugFlag && log.Level != "" {
		clog.SetLevel(clog.ParseLevel(log.Level))
	}
	if logFileFlag == "" && log.File != "" {
		f, err := clog.OpenLogFile(log.File)
		if err != nil {
			return err
		}
		clog.SetFileOutput(f)
	}
	return nil
}

// printReport writes one status line per step and a summary.
func printReport(r *build.Report) {
	if r == nil {
		return
	}
	term.Println()
	for _, s := range r.Steps {
		switch s.Status {
		case build.StatusOK:
			term.Status("ok", "%s (%s)", s.Name, s.Duration.Round(time.Millisecond))
		case build.StatusFailed:
			term.Status("FAIL", "%s: %s", s.Name, s.Outcome)
		case build.StatusSkipped:
			term.Status("skip", "%s (%s)", s.Name, s.Reason)
		case build.StatusPlanned:
			term.Status("plan", "%s: %s", s.Name, planned(s))
		default:
			term.Status("--", "%s (%s)", s.Name, s.Status)
		}
	}
	term.Println(r.String())
	if n := r.Count(build.StatusAbandoned); n > 0 {
		term.Warn("%d async step(s) were still running and have been abandoned", n)
	}
}

func planned(s build.StepResult) string {
	if s.Command == "" {
		return "wait"
	}
	return fmt.Sprintf("%q", s.Command)
}
