package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xdg/nom/internal/buffer"
	"github.com/xdg/nom/internal/cmdline"
	"github.com/xdg/nom/internal/config"
	"github.com/xdg/nom/internal/term"
)

var showCmd = &cobra.Command{
	Use:   "show -- PROGRAM [ARG...]",
	Short: "Print a command line as nom would log it",
	Long: `Print the command line nom would log before running the given command.

Arguments are joined with single spaces and are not quoted, so the output is
for reading, not for pasting into a shell. With --quote, arguments are quoted
for bash instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runShow,
}

var showQuote bool

func init() {
	showCmd.Flags().BoolVarP(&showQuote, "quote", "q", false, "quote arguments for pasting into bash")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	if showQuote {
		line, err := config.Quote(args)
		if err != nil {
			return err
		}
		term.Println(line)
		return nil
	}

	argv := buffer.NewArgs(args...)
	defer argv.Release()
	term.Println(cmdline.String(argv))
	return nil
}
