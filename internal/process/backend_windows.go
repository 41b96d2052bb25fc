//go:build windows

package process

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

type windowsBackend struct{}

// DefaultBackend returns the backend for the host the binary was built for.
func DefaultBackend() Backend {
	return windowsBackend{}
}

func (windowsBackend) Name() string { return "windows" }

// Launch creates the process from the rendered command line. CreateProcess
// resolves the program through the standard search order, PATH included.
// The child inherits the console's standard handles.
func (windowsBackend) Launch(_ []string, line string) (Native, error) {
	cmdline, err := windows.UTF16PtrFromString(line)
	if err != nil {
		return Native{}, err
	}

	si := &windows.StartupInfo{Flags: windows.STARTF_USESTDHANDLES}
	si.Cb = uint32(unsafe.Sizeof(*si))
	if si.StdInput, err = windows.GetStdHandle(windows.STD_INPUT_HANDLE); err != nil {
		return Native{}, fmt.Errorf("stdin handle: %w", err)
	}
	if si.StdOutput, err = windows.GetStdHandle(windows.STD_OUTPUT_HANDLE); err != nil {
		return Native{}, fmt.Errorf("stdout handle: %w", err)
	}
	if si.StdErr, err = windows.GetStdHandle(windows.STD_ERROR_HANDLE); err != nil {
		return Native{}, fmt.Errorf("stderr handle: %w", err)
	}

	var pi windows.ProcessInformation
	if err := windows.CreateProcess(nil, cmdline, nil, nil, true, 0, nil, nil, si, &pi); err != nil {
		return Native{}, err
	}
	_ = windows.CloseHandle(pi.Thread)

	return Native{Pid: int(pi.ProcessId), Handle: uintptr(pi.Process)}, nil
}

func (windowsBackend) Wait(n Native) Outcome {
	h := windows.Handle(n.Handle)
	defer windows.CloseHandle(h)

	event, err := windows.WaitForSingleObject(h, windows.INFINITE)
	if err != nil {
		return WaitFailed(fmt.Errorf("pid %d: %w", n.Pid, err))
	}
	if event == windows.WAIT_FAILED {
		return WaitFailed(fmt.Errorf("pid %d: wait failed", n.Pid))
	}

	var code uint32
	if err := windows.GetExitCodeProcess(h, &code); err != nil {
		return WaitFailed(fmt.Errorf("pid %d: exit code: %w", n.Pid, err))
	}

	return Exited(int(code))
}

func (windowsBackend) Release(n Native) error {
	return windows.CloseHandle(windows.Handle(n.Handle))
}
