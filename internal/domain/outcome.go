package domain

import "time"

// State is the lifecycle position of a single test body invocation.
type State int

const (
	NotStarted State = iota
	Running
	CompletedNormally
	AbortedByFatalAssertion
	AbortedByPanic
	AbortedByFault
	// FailedInChild is a contained failure reported by an isolated child
	// through its exit status; the parent knows nothing more about it.
	FailedInChild
	// ProcessCrashed is an isolated child that died outside the containment layer.
	ProcessCrashed
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case Running:
		return "running"
	case CompletedNormally:
		return "completed"
	case AbortedByFatalAssertion:
		return "fatal_assertion"
	case AbortedByPanic:
		return "panic"
	case AbortedByFault:
		return "runtime_fault"
	case FailedInChild:
		return "failed_in_child"
	case ProcessCrashed:
		return "process_crash"
	default:
		return "unknown"
	}
}

// Aborted reports whether the body stopped before returning on its own.
func (s State) Aborted() bool {
	return s == AbortedByFatalAssertion || s == AbortedByPanic || s == AbortedByFault
}

// Outcome is the result of running one test once.
type Outcome struct {
	State            State
	Failed           bool
	Assertions       int
	FailedAssertions int
	Elapsed          time.Duration
	// Detail holds the classification line for panics, faults and crashes.
	Detail string
	// ExitCode is set for outcomes produced by an isolated child.
	ExitCode int
	// Isolated marks outcomes whose assertion counters live in another process.
	Isolated bool
}

// Passed reports whether the test passed.
func (o Outcome) Passed() bool {
	return !o.Failed
}

// ElapsedMillis returns the elapsed time in whole milliseconds.
func (o Outcome) ElapsedMillis() int64 {
	return o.Elapsed.Milliseconds()
}
