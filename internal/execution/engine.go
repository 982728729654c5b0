package execution

import (
	"time"

	"ezc/internal/cleanup"
	"ezc/internal/containment"
	"ezc/internal/domain"
	"ezc/internal/registry"
)

// Engine drives the lifecycle of one test at a time: fixture setup, the
// guarded body, the cleanup stack, fixture teardown and reporting.
type Engine struct {
	registry *registry.Registry
	reporter Reporter
	cleanups *cleanup.Stack
}

// NewEngine creates a new Engine with its own cleanup stack.
func NewEngine(reg *registry.Registry, reporter Reporter) *Engine {
	return &Engine{
		registry: reg,
		reporter: reporter,
		cleanups: cleanup.New(cleanup.DefaultCapacity),
	}
}

// RunOne executes test and prints its RUN line first.
func (e *Engine) RunOne(test *registry.Test) domain.Outcome {
	return e.Execute(test, true)
}

// Execute runs test. When announce is false the RUN line is assumed to be
// printed already, as the orchestrator does before spawning a child.
//
// Setup is not guarded: a setup that panics takes the process down.
func (e *Engine) Execute(test *registry.Test, announce bool) domain.Outcome {
	name := test.FullName()

	e.cleanups.Clear()
	if announce {
		e.reporter.TestStarted(name)
	}

	t := containment.NewT(name, e.reporter, e.cleanups)
	fixture := e.registry.FindFixture(test.Suite)

	start := time.Now()
	if fixture != nil && fixture.Setup != nil {
		fixture.Setup()
	}

	state := containment.Run(t, test.Body)

	e.cleanups.RunAll()
	e.cleanups.Clear()

	if fixture != nil && fixture.Teardown != nil {
		fixture.Teardown()
	}
	elapsed := time.Since(start)

	outcome := domain.Outcome{
		State:            state,
		Failed:           t.Failed() || state.Aborted(),
		Assertions:       t.Assertions(),
		FailedAssertions: t.FailedAssertions(),
		Elapsed:          elapsed,
		Detail:           t.Detail(),
	}

	e.reporter.Terminated(state)
	e.reporter.TestFinished(name, outcome)
	return outcome
}
