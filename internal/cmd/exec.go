package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xdg/nom/internal/buffer"
	"github.com/xdg/nom/internal/process"
)

var execCmd = &cobra.Command{
	Use:   "exec -- PROGRAM [ARG...]",
	Short: "Run one command the way a build step would",
	Long: `Run a single command synchronously: log it, run it with the terminal
attached and wait for it.

nom exits with the command's exit code, 128+N if it was killed by signal N,
126 if it was found but could not be executed, or 127 if it could not be
started at all.`,
	Example: `  nom exec -- cc -o hello hello.c`,
	Args:    cobra.MinimumNArgs(1),
	RunE:    runExec,
}

func init() {
	rootCmd.AddCommand(execCmd)
}

func runExec(cmd *cobra.Command, args []string) error {
	argv := buffer.NewArgs(args...)
	defer argv.Release()

	r := newRunner()
	h, err := r.Start(argv)
	if err != nil {
		return &ExitCodeError{Code: process.LaunchExitCode(err)}
	}
	return outcomeError(r.Wait(h))
}
