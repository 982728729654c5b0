//go:build !windows

package execution

import (
	"fmt"
	"os"
	"syscall"
)

func decodeExit(ps *os.ProcessState) ChildStatus {
	if ps == nil {
		return ChildStatus{ExitCode: -1}
	}

	status := ChildStatus{ExitCode: ps.ExitCode()}
	if ws, ok := ps.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		sig := ws.Signal()
		status.Signaled = true
		status.Signal = int(sig)
		status.ExitCode = 128 + int(sig)
		status.Reason = fmt.Sprintf("Terminated by signal %d (%s)", int(sig), signalName(sig))
	}
	return status
}

func signalName(sig syscall.Signal) string {
	switch sig {
	case syscall.SIGSEGV:
		return "SIGSEGV"
	case syscall.SIGABRT:
		return "SIGABRT"
	case syscall.SIGFPE:
		return "SIGFPE"
	case syscall.SIGILL:
		return "SIGILL"
	case syscall.SIGBUS:
		return "SIGBUS"
	case syscall.SIGKILL:
		return "SIGKILL"
	case syscall.SIGTERM:
		return "SIGTERM"
	default:
		return "Unknown"
	}
}

// POSIX exit codes carry no platform-specific meaning.
func platformExitReason(int) string {
	return ""
}
