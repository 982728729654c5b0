// Package results accumulates test outcomes into run statistics.
package results

import (
	"time"

	"ezc/internal/domain"
)

// Aggregator accumulates outcomes across every pass of a run. Counters are
// cumulative; the per-test records and the failed list describe the most
// recent pass only.
type Aggregator struct {
	stats   domain.Stats
	records []domain.TestRecord
	failed  []string
	passes  int
}

// NewAggregator creates an Aggregator. When isolated is true the assertion
// counters are reported as unavailable.
func NewAggregator(isolated bool) *Aggregator {
	a := &Aggregator{}
	a.stats.Reset(!isolated)
	return a
}

// StartPass begins a new pass over the test list.
func (a *Aggregator) StartPass() {
	a.passes++
	a.records = nil
	a.failed = nil
}

// Record adds the outcome of suite.test.
func (a *Aggregator) Record(suite, test string, outcome domain.Outcome) {
	name := domain.QualifiedName(suite, test)

	a.stats.TotalTests++
	if outcome.Passed() {
		a.stats.PassedTests++
	} else {
		a.stats.FailedTests++
		a.failed = append(a.failed, name)
	}
	a.stats.TotalAssertions += outcome.Assertions
	a.stats.FailedAssertions += outcome.FailedAssertions

	record := domain.TestRecord{
		Name:      name,
		Suite:     suite,
		Test:      test,
		Passed:    outcome.Passed(),
		State:     outcome.State.String(),
		ElapsedMS: outcome.ElapsedMillis(),
		Detail:    outcome.Detail,
		ExitCode:  outcome.ExitCode,
	}
	if !outcome.Isolated {
		failedAssertions := outcome.FailedAssertions
		record.FailedAssertions = &failedAssertions
	}
	a.records = append(a.records, record)
}

// Stats returns a copy of the counters.
func (a *Aggregator) Stats() domain.Stats {
	return a.stats
}

// Passes returns the number of passes started.
func (a *Aggregator) Passes() int {
	return a.passes
}

// FailedTests returns the names that failed in the last pass, in run order.
func (a *Aggregator) FailedTests() []string {
	out := make([]string, len(a.failed))
	copy(out, a.failed)
	return out
}

// Records returns the outcomes of the last pass.
func (a *Aggregator) Records() []domain.TestRecord {
	out := make([]domain.TestRecord, len(a.records))
	copy(out, a.records)
	return out
}

// ExitCode returns the process exit code for the run.
func (a *Aggregator) ExitCode() int {
	if a.stats.FailedTests > 0 {
		return domain.ExitFailed
	}
	return domain.ExitPassed
}

// Report builds the exportable report. Counters from the aggregator
// overwrite the ones in meta.
func (a *Aggregator) Report(meta domain.RunMeta, duration time.Duration, finished time.Time) domain.RunReport {
	meta.TotalTests = a.stats.TotalTests
	meta.PassedTests = a.stats.PassedTests
	meta.FailedTests = a.stats.FailedTests
	meta.TotalAssertions = nil
	meta.FailedAssertions = nil
	if a.stats.AssertionsAvailable {
		total, failed := a.stats.TotalAssertions, a.stats.FailedAssertions
		meta.TotalAssertions = &total
		meta.FailedAssertions = &failed
	}
	meta.Duration = duration.String()
	meta.DurationSeconds = duration.Seconds()
	meta.Timestamp = finished.Format(time.RFC3339)

	failed := a.FailedTests()
	if failed == nil {
		failed = []string{}
	}
	return domain.RunReport{
		Meta:   meta,
		Tests:  a.Records(),
		Failed: failed,
	}
}
