package buffer

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// ErrEmptyArgs is returned when an argument list has no program.
var ErrEmptyArgs = errors.New("empty argument list")

// Args is an ordered list of strings forming one process invocation.
// The first element names the program, the rest are its arguments.
//
// Args can be cleared and reused between commands; its storage is kept
// until Release.
type Args struct {
	buf Buffer[string]
}

// NewArgs returns an argument list holding args.
func NewArgs(args ...string) *Args {
	a := &Args{}
	a.buf.Append(args...)
	return a
}

// Append adds one or more arguments and returns a for chaining.
func (a *Args) Append(args ...string) *Args {
	a.buf.Append(args...)
	return a
}

// AppendArgs appends every element of other.
func (a *Args) AppendArgs(other *Args) *Args {
	a.buf.Append(other.buf.items...)
	return a
}

// Len returns the number of arguments, including the program.
func (a *Args) Len() int { return a.buf.Len() }

// Cap returns the storage capacity.
func (a *Args) Cap() int { return a.buf.Cap() }

// At returns the argument at index i.
func (a *Args) At(i int) string { return a.buf.At(i) }

// All iterates over the arguments in order.
func (a *Args) All() iter.Seq2[int, string] { return a.buf.All() }

// Program returns the first argument, or "" if the list is empty.
func (a *Args) Program() string {
	if a.buf.Len() == 0 {
		return ""
	}
	return a.buf.At(0)
}

// Strings returns a copy of the arguments.
func (a *Args) Strings() []string { return a.buf.Slice() }

// Clear empties the list and keeps its storage.
func (a *Args) Clear() { a.buf.Clear() }

// Release frees the storage. It must be called exactly once.
func (a *Args) Release() { a.buf.Release() }

// Validate checks that the list names a program and that no argument
// contains a NUL byte, which cannot be passed to a child process.
func (a *Args) Validate() error {
	if a.buf.Len() == 0 {
		return ErrEmptyArgs
	}
	for i, arg := range a.buf.items {
		if strings.IndexByte(arg, 0) >= 0 {
			return fmt.Errorf("argument %d contains a NUL byte: %q", i, arg)
		}
	}
	return nil
}
