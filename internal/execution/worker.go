package execution

import (
	"errors"
	"fmt"

	"ezc/internal/domain"
	"ezc/internal/results"
)

// ErrWorkerNotFound is reported by a worker whose ordinal matches no test.
var ErrWorkerNotFound = errors.New("worker test not found")

// RunWorker is the child side of process isolation: it resolves the test
// at ordinal among the selected tests, runs it in-process and returns an
// exit code the parent can classify.
func (o *Orchestrator) RunWorker(ordinal int) int {
	item, ok := o.selector.Nth(o.registry, o.config.Filter, ordinal)
	if !ok {
		err := fmt.Errorf("%w: index %d (total enabled: %d)",
			ErrWorkerNotFound, ordinal, o.selector.Count(o.registry, o.config.Filter))
		o.reporter.Error("%v", err)
		return domain.ExitWorkerNotFound
	}

	// The child keeps its own counters; nothing here is shared with the parent.
	agg := results.NewAggregator(false)
	o.results = agg
	agg.StartPass()
	outcome := o.executor.Execute(item.Test, false)
	agg.Record(item.Test.Suite, item.Test.Name, outcome)

	return agg.ExitCode()
}
