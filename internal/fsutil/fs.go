package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/xdg/nom/internal/clog"
)

// failed logs a failed operation and returns err wrapped with the same words.
func failed(op, path string, err error) error {
	clog.Error("Unable to %s: %s Error: %v", op, path, err)
	return fmt.Errorf("%s %s: %w", op, path, err)
}

// Mkdir creates each directory with 0755 permissions. It stops at the
// first failure. Missing parents are an error, as with mkdir(2).
func Mkdir(paths ...string) error {
	for _, p := range paths {
		if err := os.Mkdir(p, 0o755); err != nil {
			return failed("Make Dir", p, unwrapPath(err))
		}
	}
	return nil
}

// Touch creates each file, truncating any that already exist.
func Touch(paths ...string) error {
	for _, p := range paths {
		f, err := os.Create(p)
		if err != nil {
			return failed("Make File", p, unwrapPath(err))
		}
		if err := f.Close(); err != nil {
			return failed("Make File", p, err)
		}
	}
	return nil
}

// RemoveFile removes each file.
func RemoveFile(paths ...string) error {
	for _, p := range paths {
		if err := os.Remove(p); err != nil {
			return failed("Remove File", p, unwrapPath(err))
		}
	}
	return nil
}

// RemoveDir removes each directory and everything below it. A directory
// that does not exist is an error.
func RemoveDir(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Lstat(p); err != nil {
			return failed("Remove Dir", p, unwrapPath(err))
		}
		if err := os.RemoveAll(p); err != nil {
			return failed("Remove Dir", p, unwrapPath(err))
		}
	}
	return nil
}

// Move renames path to newPath.
func Move(path, newPath string) error {
	if err := os.Rename(path, newPath); err != nil {
		return failed("Move File", path+" to "+newPath, unwrapLink(err))
	}
	return nil
}

// Rename is an alias for Move.
func Rename(path, newPath string) error {
	return Move(path, newPath)
}

// ReadDir returns the names of every entry in dir, sorted.
func ReadDir(dir string) ([]string, error) {
	return readDir(dir, func(fs.DirEntry) bool { return true })
}

// DirFiles returns the names of the regular files in dir, sorted.
func DirFiles(dir string) ([]string, error) {
	return readDir(dir, func(e fs.DirEntry) bool { return e.Type().IsRegular() })
}

// DirDirs returns the names of the subdirectories of dir, sorted.
func DirDirs(dir string) ([]string, error) {
	return readDir(dir, fs.DirEntry.IsDir)
}

func readDir(dir string, keep func(fs.DirEntry) bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, failed("Open Dir", dir, unwrapPath(err))
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if keep(e) {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// ReadFile returns the contents of path.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, failed("Read File", path, unwrapPath(err))
	}
	return data, nil
}

// WriteFile writes data to path. With appendMode the data is added to the
// end of an existing file; otherwise the file is truncated first. Either
// way the file is created if missing.
func WriteFile(path string, data []byte, appendMode bool) error {
	flags := os.O_WRONLY | os.O_CREATE
	if appendMode {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return failed("Write File", path, unwrapPath(err))
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return failed("Write File", path, err)
	}
	if err := f.Close(); err != nil {
		return failed("Write File", path, err)
	}
	return nil
}

// Exists reports whether path names an existing file or directory.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// unwrapPath strips the *fs.PathError wrapper so the logged message does
// not repeat the path.
func unwrapPath(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}

func unwrapLink(err error) error {
	var le *os.LinkError
	if errors.As(err, &le) {
		return le.Err
	}
	return err
}
