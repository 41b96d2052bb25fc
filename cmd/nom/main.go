// Package main is the entry point for the nom CLI.
package main

import (
	"errors"
	"os"

	"github.com/xdg/nom/internal/clog"
	"github.com/xdg/nom/internal/cmd"
	"github.com/xdg/nom/internal/term"
)

func main() {
	err := cmd.Execute()
	_ = clog.Close()
	if err == nil {
		return
	}

	var exitErr *cmd.ExitCodeError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			term.Error("%v", exitErr.Err)
		}
		os.Exit(exitErr.Code)
	}
	term.Error("%v", err)
	os.Exit(1)
}
