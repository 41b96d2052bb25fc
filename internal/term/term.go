// Package term provides user-facing terminal output for the nom CLI.
// Diagnostic logging lives in internal/clog; this package prints results
// meant for the person at the terminal, such as build summaries.
//
// Print, Printf and Println go to stdout and are suppressed by --silent.
// Warn and Error go to stderr and are always shown.
package term

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	xterm "golang.org/x/term"
)

// Status marker colours, as ANSI palette indexes.
var (
	colorOK   = lipgloss.Color("2")
	colorFail = lipgloss.Color("1")
	colorDim  = lipgloss.Color("8")
)

var (
	mu     sync.Mutex
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
	silent bool
	color  = detectColor(os.Stdout)
)

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return xterm.IsTerminal(int(f.Fd()))
}

// detectColor enables ANSI colour for terminals unless NO_COLOR is set.
func detectColor(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return IsTerminal(w)
}

// SetSilent enables or disables silent mode.
func SetSilent(s bool) {
	mu.Lock()
	defer mu.Unlock()
	silent = s
}

// IsSilent returns whether silent mode is enabled.
func IsSilent() bool {
	mu.Lock()
	defer mu.Unlock()
	return silent
}

// SetColor forces colour output on or off.
func SetColor(on bool) {
	mu.Lock()
	defer mu.Unlock()
	color = on
}

// SetOutput sets the writer for stdout output.
// Pass nil to use os.Stdout. Colour is re-detected for the new writer.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = os.Stdout
	}
	stdout = w
	color = detectColor(w)
}

// SetErrOutput sets the writer for stderr output.
// Pass nil to use os.Stderr.
func SetErrOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		stderr = os.Stderr
	} else {
		stderr = w
	}
}

// Print formats and writes to stdout.
func Print(a ...any) {
	mu.Lock()
	defer mu.Unlock()
	if silent {
		return
	}
	_, _ = fmt.Fprint(stdout, a...)
}

// Printf formats according to a format specifier and writes to stdout.
func Printf(format string, a ...any) {
	mu.Lock()
	defer mu.Unlock()
	if silent {
		return
	}
	_, _ = fmt.Fprintf(stdout, format, a...)
}

// Println formats and writes to stdout with a trailing newline.
func Println(a ...any) {
	mu.Lock()
	defer mu.Unlock()
	if silent {
		return
	}
	_, _ = fmt.Fprintln(stdout, a...)
}

// Status prints one summary line with a fixed-width marker: "ok",
// "FAIL" or "skip". The marker is coloured when stdout is a terminal.
func Status(marker, format string, a ...any) {
	mu.Lock()
	defer mu.Unlock()
	if silent {
		return
	}
	label := fmt.Sprintf("%-4s", marker)
	if color {
		label = markerStyle(marker).Render(label)
	}
	_, _ = fmt.Fprintf(stdout, "%s  %s\n", label, fmt.Sprintf(format, a...))
}

// markerStyle returns the style for a status marker. The renderer is
// pinned to the basic ANSI profile; whether to colour at all is decided
// by the caller.
func markerStyle(marker string) lipgloss.Style {
	r := lipgloss.NewRenderer(stdout)
	r.SetColorProfile(termenv.ANSI)
	style := r.NewStyle()
	switch marker {
	case "ok":
		return style.Foreground(colorOK)
	case "FAIL":
		return style.Foreground(colorFail).Bold(true)
	default:
		return style.Foreground(colorDim)
	}
}

// Warn writes a warning message to stderr with "Warning: " prefix.
func Warn(format string, a ...any) {
	mu.Lock()
	defer mu.Unlock()
	_, _ = fmt.Fprintf(stderr, "Warning: %s\n", fmt.Sprintf(format, a...))
}

// Error writes an error message to stderr with "Error: " prefix.
func Error(format string, a ...any) {
	mu.Lock()
	defer mu.Unlock()
	_, _ = fmt.Fprintf(stderr, "Error: %s\n", fmt.Sprintf(format, a...))
}

// Reset restores the package defaults.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	stdout = os.Stdout
	stderr = os.Stderr
	silent = false
	color = detectColor(os.Stdout)
}

// Discard drops all output. Useful in tests.
func Discard() {
	mu.Lock()
	defer mu.Unlock()
	stdout = io.Discard
	stderr = io.Discard
	color = false
}
