package execution

import (
	"context"
	"errors"
	"io"
	"time"

	"ezc/internal/config"
	"ezc/internal/discovery"
	"ezc/internal/domain"
	"ezc/internal/registry"
	"ezc/internal/results"
	"ezc/internal/storage"
	"ezc/internal/ui"
)

// DecideIsolation applies the isolation policy: an explicit mode wins,
// otherwise isolate only when more than one test runs and no debugger is
// attached.
func DecideIsolation(count int, mode config.IsolationMode, debugger bool) bool {
	switch mode {
	case config.IsolationOn:
		return true
	case config.IsolationOff:
		return false
	}
	return count > 1 && !debugger
}

// Orchestrator runs the selected tests sequentially, in child processes
// when isolation is on, and aggregates their outcomes.
type Orchestrator struct {
	config    *config.Config
	registry  *registry.Registry
	selector  *discovery.Selector
	executor  Executor
	spawner   Spawner
	reporter  Reporter
	scheduler Scheduler
	formatter *ui.Formatter
	storage   storage.Storage
	debugger  func() bool

	progressOut io.Writer
	results     *results.Aggregator
}

// NewOrchestrator creates a new Orchestrator
func NewOrchestrator(cfg *config.Config, reg *registry.Registry, reporter Reporter, spawner Spawner) *Orchestrator {
	return &Orchestrator{
		config:   cfg,
		registry: reg,
		selector: discovery.NewSelector(),
		executor: NewEngine(reg, reporter),
		spawner:  spawner,
		reporter: reporter,
		debugger: DebuggerAttached,
	}
}

// SetScheduler overrides the scheduler derived from the configuration.
func (o *Orchestrator) SetScheduler(s Scheduler) {
	o.scheduler = s
}

// SetProgress shows a progress bar on out while tests run.
func (o *Orchestrator) SetProgress(out io.Writer) {
	o.progressOut = out
}

// SetFormatter sets the formatter used by list mode.
func (o *Orchestrator) SetFormatter(f *ui.Formatter) {
	o.formatter = f
}

// SetStorage exports the run report through st when the run finishes.
func (o *Orchestrator) SetStorage(st storage.Storage) {
	o.storage = st
}

// SetDebuggerProbe replaces the debugger detection.
func (o *Orchestrator) SetDebuggerProbe(probe func() bool) {
	o.debugger = probe
}

// Results returns the aggregator of the last run, or nil.
func (o *Orchestrator) Results() *results.Aggregator {
	return o.results
}

// Run dispatches on the configuration: worker mode, list mode or a full run.
func (o *Orchestrator) Run(ctx context.Context) int {
	switch {
	case o.config.IsWorker():
		return o.RunWorker(o.config.Worker)
	case o.config.ListOnly:
		return o.List()
	default:
		return o.RunAll(ctx)
	}
}

// List prints the selected tests without running them.
func (o *Orchestrator) List() int {
	items := o.selector.Select(o.registry, o.config.Filter)
	tests := make([]ui.ListedTest, 0, len(items))
	for _, item := range items {
		tests = append(tests, ui.ListedTest{Suite: item.Test.Suite, Name: item.Test.Name})
	}
	if o.formatter != nil {
		o.formatter.PrintTestList(tests)
	}
	return domain.ExitPassed
}

// RunAll runs every selected test repeat times and returns the exit code.
func (o *Orchestrator) RunAll(ctx context.Context) int {
	items := o.selector.Select(o.registry, o.config.Filter)
	if len(items) == 0 {
		o.reporter.NoTests()
		return domain.ExitPassed
	}

	isolated := DecideIsolation(len(items), o.config.Isolation, o.debugger())
	scheduler := o.scheduler
	if scheduler == nil {
		scheduler = o.defaultScheduler()
	}

	var shuffleSeed *uint64
	if s, ok := scheduler.(*ShuffleScheduler); ok {
		seed := s.Seed()
		shuffleSeed = &seed
	}

	repeat := o.config.Repeat
	if repeat < 1 {
		repeat = 1
	}

	o.reporter.RunStarted(len(items), repeat, isolated, shuffleSeed)

	var progress *ui.ProgressBar
	if o.progressOut != nil {
		progress = ui.NewProgressBar(len(items)*repeat, o.progressOut)
	}

	order := scheduler.Order(items)
	agg := results.NewAggregator(isolated)
	o.results = agg

	start := time.Now()
	for pass := 1; pass <= repeat; pass++ {
		if repeat > 1 {
			o.reporter.Iteration(pass, repeat)
		}
		agg.StartPass()

		for _, item := range order {
			var outcome domain.Outcome
			if isolated {
				outcome = o.runIsolated(ctx, item)
			} else {
				outcome = o.executor.Execute(item.Test, true)
			}
			agg.Record(item.Test.Suite, item.Test.Name, outcome)

			if progress != nil {
				stats := agg.Stats()
				progress.Update(stats.PassedTests, stats.FailedTests)
			}
		}
	}
	elapsed := time.Since(start)

	if progress != nil {
		progress.Finish()
	}

	o.reporter.Summary(agg.Stats(), elapsed, agg.FailedTests())

	if o.storage != nil {
		meta := domain.RunMeta{
			Filter:    o.config.Filter,
			Repeat:    repeat,
			Shuffled:  shuffleSeed != nil,
			Isolation: isolated,
		}
		if shuffleSeed != nil {
			meta.Seed = *shuffleSeed
		}
		report := agg.Report(meta, elapsed, time.Now())
		if err := o.storage.Save(&report); err != nil {
			o.reporter.Error("failed to write report: %v", err)
		}
	}

	return agg.ExitCode()
}

// runIsolated runs item in a child. The parent prints the RUN line because
// the child may die before printing anything, and stays silent when the
// child exits normally since the child already reported its result.
func (o *Orchestrator) runIsolated(ctx context.Context, item discovery.Item) domain.Outcome {
	name := item.Test.FullName()
	o.reporter.TestStarted(name)

	status, err := o.spawner.Spawn(ctx, item)
	if err != nil {
		if !errors.Is(err, ErrSpawn) {
			err = errors.Join(ErrSpawn, err)
		}
		o.reporter.Error("%v", err)
		o.reporter.Fallback()
		return o.executor.Execute(item.Test, false)
	}

	switch status.Result() {
	case ChildPassed:
		return domain.Outcome{
			State:    domain.CompletedNormally,
			Elapsed:  status.Elapsed,
			Isolated: true,
		}
	case ChildFailed:
		return domain.Outcome{
			State:    domain.FailedInChild,
			Failed:   true,
			Elapsed:  status.Elapsed,
			ExitCode: status.ExitCode,
			Isolated: true,
		}
	default:
		reason := status.Describe()
		o.reporter.Abnormal(name, status.ExitCode, reason, status.Elapsed)
		return domain.Outcome{
			State:    domain.ProcessCrashed,
			Failed:   true,
			Elapsed:  status.Elapsed,
			ExitCode: status.ExitCode,
			Detail:   reason,
			Isolated: true,
		}
	}
}

func (o *Orchestrator) defaultScheduler() Scheduler {
	if !o.config.Shuffle {
		return NewInOrderScheduler()
	}
	seed := o.config.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return NewShuffleScheduler(seed)
}
