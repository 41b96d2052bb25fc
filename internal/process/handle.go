package process

import (
	"errors"
	"sync/atomic"
)

var (
	// ErrInvalidHandle is reported when waiting on a handle from a failed launch.
	ErrInvalidHandle = errors.New("invalid process handle")

	// ErrHandleConsumed is reported when a handle is waited on or released twice.
	ErrHandleConsumed = errors.New("process handle already consumed")
)

// Native identifies a process to a Backend. Pid is always set for a live
// process; Handle carries the native process handle on hosts that have one.
type Native struct {
	Pid    int
	Handle uintptr
}

// Handle refers to a launched process. It is consumed exactly once, by
// Wait or by Release.
type Handle struct {
	native   Native
	cmd      string
	valid    bool
	consumed atomic.Bool
}

// InvalidHandle is returned by Start when the process could not be created.
// Waiting on it fails immediately.
var InvalidHandle = &Handle{}

// Valid reports whether h refers to a launched process.
func (h *Handle) Valid() bool {
	return h != nil && h.valid
}

// Pid returns the process id, or -1 for an invalid handle.
func (h *Handle) Pid() int {
	if !h.Valid() {
		return -1
	}
	return h.native.Pid
}

// Command returns the rendered command line the process was started with.
func (h *Handle) Command() string {
	if h == nil {
		return ""
	}
	return h.cmd
}

// consume marks the handle used. It returns false if it already was.
func (h *Handle) consume() bool {
	return h.consumed.CompareAndSwap(false, true)
}
