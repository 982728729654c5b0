package execution

import (
	"time"

	"ezc/internal/containment"
	"ezc/internal/domain"
	"ezc/internal/registry"
)

// Executor runs one test in the current process and returns its outcome.
type Executor interface {
	Execute(test *registry.Test, announce bool) domain.Outcome
}

// Reporter is the console output driven by the execution layer.
type Reporter interface {
	containment.Printer
	RunStarted(count, repeat int, isolated bool, shuffleSeed *uint64)
	Iteration(i, n int)
	TestStarted(name string)
	Terminated(state domain.State)
	TestFinished(name string, outcome domain.Outcome)
	Fallback()
	Abnormal(name string, exitCode int, reason string, elapsed time.Duration)
	NoTests()
	Summary(stats domain.Stats, elapsed time.Duration, failed []string)
	Error(format string, args ...any)
}
