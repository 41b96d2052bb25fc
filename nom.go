// Package nom lets a build be written as an ordinary Go program instead of
// a separate build description. A build program assembles argument lists,
// runs them as child processes, and decides what to do when one fails:
//
//	cc := nom.NewCmd("cc", "-Wall", "-o", "main", "main.c")
//	defer cc.Release()
//	if !nom.Run(cc) {
//		os.Exit(1)
//	}
//
// Every command is logged as "[INFO ] Running Cmd: ..." before it starts.
// Children inherit the program's standard streams.
package nom

import (
	"github.com/xdg/nom/internal/buffer"
	"github.com/xdg/nom/internal/clog"
	"github.com/xdg/nom/internal/fsutil"
	"github.com/xdg/nom/internal/process"
)

type (
	// Cmd is an argument list: the program followed by its arguments.
	// Clear it to reuse its storage for the next command; Release it once
	// when done.
	Cmd = buffer.Args

	// Builder assembles text, such as paths and command lines, without an
	// allocation per append.
	Builder = buffer.Builder

	// Handle refers to a started process. Wait on it exactly once.
	Handle = process.Handle

	// Outcome says how a process ended.
	Outcome = process.Outcome
)

// InvalidHandle is what Start returns when a process could not be created.
var InvalidHandle = process.InvalidHandle

// NewCmd returns an argument list holding args.
func NewCmd(args ...string) *Cmd {
	return buffer.NewArgs(args...)
}

// Start launches cmd without waiting for it. On failure the error has
// already been logged and the handle is InvalidHandle.
func Start(cmd *Cmd) (*Handle, error) {
	return process.Start(cmd)
}

// Wait blocks until the process behind h ends and reports how. Waiting on
// InvalidHandle returns a failed outcome at once.
func Wait(h *Handle) Outcome {
	return process.Wait(h)
}

// Run starts cmd, waits for it, and reports whether it exited 0.
func Run(cmd *Cmd) bool {
	return process.Run(cmd).OK()
}

// Concat joins strs with nothing between them.
func Concat(strs ...string) string {
	return buffer.Concat(strs...)
}

// Path joins elems with the host path separator.
func Path(elems ...string) string {
	return fsutil.Path(elems...)
}

// Mkdir creates each directory in paths.
func Mkdir(paths ...string) error { return fsutil.Mkdir(paths...) }

// Touch creates each file in paths, truncating any that already exist.
func Touch(paths ...string) error { return fsutil.Touch(paths...) }

// RemoveFile deletes each file in paths.
func RemoveFile(paths ...string) error { return fsutil.RemoveFile(paths...) }

// RemoveDir deletes each directory in paths and everything under it.
func RemoveDir(paths ...string) error { return fsutil.RemoveDir(paths...) }

// Move renames path to newPath.
func Move(path, newPath string) error { return fsutil.Move(path, newPath) }

// Rename is an alias for Move.
func Rename(path, newPath string) error { return fsutil.Rename(path, newPath) }

// ReadDir lists the names in dir.
func ReadDir(dir string) ([]string, error) { return fsutil.ReadDir(dir) }

// DirFiles lists the regular files in dir.
func DirFiles(dir string) ([]string, error) { return fsutil.DirFiles(dir) }

// DirDirs lists the directories in dir.
func DirDirs(dir string) ([]string, error) { return fsutil.DirDirs(dir) }

// ReadFile returns the contents of path.
func ReadFile(path string) ([]byte, error) { return fsutil.ReadFile(path) }

// WriteFile writes data to path, replacing it unless appendMode is set.
func WriteFile(path string, data []byte, appendMode bool) error {
	return fsutil.WriteFile(path, data, appendMode)
}

// Exists reports whether path exists.
func Exists(path string) bool { return fsutil.Exists(path) }

// Info logs an informational line.
func Info(format string, args ...any) { clog.Info(format, args...) }

// Warn logs a warning line.
func Warn(format string, args ...any) { clog.Warn(format, args...) }

// Error logs an error line.
func Error(format string, args ...any) { clog.Error(format, args...) }
