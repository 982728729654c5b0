package execution

import (
	"fmt"
	"time"

	"ezc/internal/domain"
)

// ChildResult is how the parent classifies a finished child.
type ChildResult int

const (
	ChildPassed ChildResult = iota
	ChildFailed
	ChildAbnormal
)

// ChildStatus describes how an isolated child terminated.
type ChildStatus struct {
	ExitCode int
	Signaled bool
	Signal   int
	TimedOut bool
	Elapsed  time.Duration
	// Reason is the decoded termination cause; empty for normal exits.
	Reason string
}

// Result classifies the status. Anything other than a clean pass or a
// contained failure is abnormal.
func (s ChildStatus) Result() ChildResult {
	if s.Signaled || s.TimedOut {
		return ChildAbnormal
	}
	switch s.ExitCode {
	case domain.ExitPassed:
		return ChildPassed
	case domain.ExitFailed:
		return ChildFailed
	default:
		return ChildAbnormal
	}
}

// Describe returns the best known explanation for an abnormal exit.
func (s ChildStatus) Describe() string {
	if s.Reason != "" {
		return s.Reason
	}
	return DescribeExitCode(s.ExitCode)
}

// DescribeExitCode decodes a child's exit code.
func DescribeExitCode(code int) string {
	if reason := platformExitReason(code); reason != "" {
		return reason
	}
	switch code {
	case domain.ExitGoRuntimeCrash:
		return "Go runtime fatal error or unrecovered panic (e.g. stack overflow or a panic on another goroutine)"
	case domain.ExitWorkerNotFound:
		return "worker could not locate its target test"
	case domain.ExitWorkerUsage:
		return "worker rejected its flags or configuration"
	case -1:
		return "Unknown (no exit status)"
	}
	return fmt.Sprintf("Unknown (exit code %d)", code)
}
