// Package cmd implements the CLI commands for nom.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/xdg/nom/internal/clog"
	"github.com/xdg/nom/internal/config"
	"github.com/xdg/nom/internal/term"
	"github.com/xdg/nom/internal/version"
)

var (
	debugFlag   bool
	silentFlag  bool
	logFileFlag string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "nom",
	Short: "Run builds described as plain command lists",
	Long: `nom runs a build as an ordered list of commands instead of a separate
build-description language.

Each command is logged before it runs, inherits the terminal, and must exit 0
for the build to continue. Commands can be started in the background and
joined later.`,
	Version:           version.String(),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupOutput,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&debugFlag, "debug", false, "log debug messages")
	flags.BoolVarP(&silentFlag, "silent", "s", false, "suppress normal output (warnings and errors are still shown)")
	flags.StringVar(&logFileFlag, "log-file", "", "also append log lines to this file (\"default\" for the standard location)")
}

// setupOutput applies the global flags to the terminal and the logger.
func setupOutput(cmd *cobra.Command, args []string) error {
	term.SetSilent(silentFlag)
	logFile := ""
	if logFileFlag != "" {
		logFile = config.LogFilePath(logFileFlag)
	}
	return clog.Configure(logFile, debugFlag)
}

// Execute runs the root command and returns any error. An interrupt stops
// a build from starting further steps; the terminal delivers it to running
// children directly.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}
