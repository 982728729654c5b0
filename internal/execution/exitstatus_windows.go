//go:build windows

package execution

import (
	"fmt"
	"os"
)

func decodeExit(ps *os.ProcessState) ChildStatus {
	if ps == nil {
		return ChildStatus{ExitCode: -1}
	}
	return ChildStatus{ExitCode: ps.ExitCode()}
}

// platformExitReason decodes NTSTATUS exception codes a crashed process
// exits with.
func platformExitReason(code int) string {
	status := uint32(code)
	switch status {
	case 0xC0000005:
		return "Access Violation (EXCEPTION_ACCESS_VIOLATION)"
	case 0xC0000094:
		return "Integer Division by Zero (EXCEPTION_INT_DIVIDE_BY_ZERO)"
	case 0xC000008C:
		return "Array Bounds Exceeded (EXCEPTION_ARRAY_BOUNDS_EXCEEDED)"
	case 0xC00000FD:
		return "Stack Overflow (EXCEPTION_STACK_OVERFLOW)"
	case 0xC000001D:
		return "Illegal Instruction (EXCEPTION_ILLEGAL_INSTRUCTION)"
	case 0xC0000409:
		return "Assertion failed (abort() called)"
	}
	if status >= 0xC0000000 && status <= 0xDFFFFFFF {
		return fmt.Sprintf("Windows Exception (0x%08X)", status)
	}
	return ""
}
