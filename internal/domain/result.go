package domain

// Stats holds the counters for one run.
type Stats struct {
	TotalTests       int
	PassedTests      int
	FailedTests      int
	TotalAssertions  int
	FailedAssertions int
	// AssertionsAvailable is false when tests ran in isolated children and the
	// assertion counters could not be collected.
	AssertionsAvailable bool
}

// Reset clears every counter.
func (s *Stats) Reset(assertionsAvailable bool) {
	*s = Stats{AssertionsAvailable: assertionsAvailable}
}

// PassedAssertions returns the number of assertions that held.
func (s Stats) PassedAssertions() int {
	return s.TotalAssertions - s.FailedAssertions
}

// AllPassed reports whether every test that ran passed.
func (s Stats) AllPassed() bool {
	return s.FailedTests == 0 && s.TotalTests == s.PassedTests
}

// TestRecord is one test's outcome as exported in a run report.
type TestRecord struct {
	Name             string `json:"name"`
	Suite            string `json:"suite"`
	Test             string `json:"test"`
	Passed           bool   `json:"passed"`
	State            string `json:"state"`
	ElapsedMS        int64  `json:"elapsed_ms"`
	FailedAssertions *int   `json:"failed_assertions,omitempty"`
	Detail           string `json:"detail,omitempty"`
	ExitCode         int    `json:"exit_code,omitempty"`
	Resolved         bool   `json:"resolved,omitempty"` // Toggled in the report viewer
}

// RunMeta contains metadata about a test run
type RunMeta struct {
	TotalTests       int     `json:"total_tests"`
	PassedTests      int     `json:"passed_tests"`
	FailedTests      int     `json:"failed_tests"`
	TotalAssertions  *int    `json:"total_assertions"`  // null when unavailable
	FailedAssertions *int    `json:"failed_assertions"` // null when unavailable
	Filter           string  `json:"filter"`
	Repeat           int     `json:"repeat"`
	Shuffled         bool    `json:"shuffled"`
	Seed             uint64  `json:"seed,omitempty"`
	Isolation        bool    `json:"isolation"`
	Duration         string  `json:"duration"`
	DurationSeconds  float64 `json:"duration_seconds"`
	Timestamp        string  `json:"timestamp"`
}

// RunReport is the complete exported report of a run.
type RunReport struct {
	Meta   RunMeta      `json:"meta"`
	Tests  []TestRecord `json:"tests"`
	Failed []string     `json:"failed"`
}

// FailedIndexes returns the positions in Tests of records that did not pass.
func (r *RunReport) FailedIndexes() []int {
	var idx []int
	for i, rec := range r.Tests {
		if !rec.Passed {
			idx = append(idx, i)
		}
	}
	return idx
}
