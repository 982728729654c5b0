package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"ezc/internal/domain"
)

// Colour preferences accepted by NewReporter.
const (
	ColorAuto = "auto"
	ColorYes  = "yes"
	ColorNo   = "no"
)

// Reporter prints the run transcript. Test output goes to out, warnings and
// errors that are not part of a test result go to errOut.
type Reporter struct {
	out    io.Writer
	errOut io.Writer

	green  *color.Color
	red    *color.Color
	yellow *color.Color
	cyan   *color.Color
}

// NewReporter creates a Reporter. mode is one of ColorAuto, ColorYes or
// ColorNo; auto leaves terminal detection to fatih/color.
func NewReporter(out, errOut io.Writer, mode string) *Reporter {
	r := &Reporter{
		out:    out,
		errOut: errOut,
		green:  color.New(color.FgGreen),
		red:    color.New(color.FgRed),
		yellow: color.New(color.FgYellow),
		cyan:   color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{r.green, r.red, r.yellow, r.cyan} {
		switch mode {
		case ColorYes:
			c.EnableColor()
		case ColorNo:
			c.DisableColor()
		}
	}
	return r
}

// Out returns the writer test output goes to.
func (r *Reporter) Out() io.Writer {
	return r.out
}

// RunStarted prints the start line of a run.
func (r *Reporter) RunStarted(count, repeat int, isolated bool, shuffleSeed *uint64) {
	r.green.Fprint(r.out, "[==========] ")
	fmt.Fprintf(r.out, "Running %d test(s)", count)
	if repeat > 1 {
		fmt.Fprintf(r.out, " (%d iteration(s))", repeat)
	}
	if isolated {
		fmt.Fprint(r.out, " [Process Isolation: ON]")
	} else {
		fmt.Fprint(r.out, " [Process Isolation: OFF]")
	}
	if shuffleSeed != nil {
		fmt.Fprintf(r.out, " [Shuffle Seed: %d]", *shuffleSeed)
	}
	fmt.Fprintln(r.out)
}

// Iteration prints the separator before pass i of n.
func (r *Reporter) Iteration(i, n int) {
	r.cyan.Fprint(r.out, "\n[----------] ")
	fmt.Fprintf(r.out, "Iteration %d/%d\n", i, n)
}

// TestStarted prints the RUN line.
func (r *Reporter) TestStarted(name string) {
	r.green.Fprint(r.out, "[ RUN      ] ")
	fmt.Fprintln(r.out, name)
}

// AssertionFailure prints a failed assertion with its source location.
func (r *Reporter) AssertionFailure(file string, line int, message string) {
	r.red.Fprintf(r.out, "%s:%d: Failure\n", file, line)
	fmt.Fprintf(r.out, "  %s\n", message)
}

// Note prints an indented diagnostic line belonging to the current test.
func (r *Reporter) Note(format string, args ...any) {
	fmt.Fprintf(r.out, "  "+format+"\n", args...)
}

// Warn prints a non-fatal warning.
func (r *Reporter) Warn(format string, args ...any) {
	r.yellow.Fprintf(r.errOut, "Warning: "+format+"\n", args...)
}

// Error prints an error that does not belong to a test result.
func (r *Reporter) Error(format string, args ...any) {
	r.red.Fprintf(r.errOut, "Error: "+format+"\n", args...)
}

// Terminated explains why a test body stopped early.
func (r *Reporter) Terminated(state domain.State) {
	switch state {
	case domain.AbortedByFatalAssertion:
		fmt.Fprintln(r.out, "  (test terminated by ASSERT failure)")
	case domain.AbortedByPanic:
		fmt.Fprintln(r.out, "  (test terminated by panic)")
	case domain.AbortedByFault:
		fmt.Fprintln(r.out, "  (test terminated by runtime fault)")
	}
}

// TestFinished prints the OK or FAILED line of a test.
func (r *Reporter) TestFinished(name string, outcome domain.Outcome) {
	if outcome.Passed() {
		r.green.Fprint(r.out, "[       OK ] ")
	} else {
		r.red.Fprint(r.out, "[  FAILED  ] ")
	}
	fmt.Fprintf(r.out, "%s (%d ms)\n", name, outcome.ElapsedMillis())
}

// Fallback announces that a test runs in-process because no child could be
// spawned.
func (r *Reporter) Fallback() {
	r.yellow.Fprint(r.out, "[ FALLBACK ] ")
	fmt.Fprintln(r.out, "Process isolation failed, running in-process")
}

// Abnormal reports a child that terminated outside the containment layer.
func (r *Reporter) Abnormal(name string, exitCode int, reason string, elapsed time.Duration) {
	fmt.Fprintf(r.out, "  Test terminated abnormally with exit code %d\n", exitCode)
	if reason != "" {
		fmt.Fprintf(r.out, "  Reason: %s\n", reason)
	}
	r.red.Fprint(r.out, "[  FAILED  ] ")
	fmt.Fprintf(r.out, "%s (%d ms)\n", name, elapsed.Milliseconds())
}

// NoTests is printed when the filter selects nothing.
func (r *Reporter) NoTests() {
	r.yellow.Fprintln(r.out, "No tests to run")
}

// Summary prints the closing block of a run.
func (r *Reporter) Summary(stats domain.Stats, elapsed time.Duration, failed []string) {
	fmt.Fprintln(r.out)
	r.green.Fprint(r.out, "[==========] ")
	fmt.Fprintf(r.out, "%d test(s) ran (%d ms total)\n", stats.TotalTests, elapsed.Milliseconds())

	r.green.Fprint(r.out, "[  PASSED  ] ")
	fmt.Fprintf(r.out, "%d test(s)\n", stats.PassedTests)

	if stats.FailedTests > 0 {
		r.red.Fprint(r.out, "[  FAILED  ] ")
		fmt.Fprintf(r.out, "%d test(s), listed below:\n", stats.FailedTests)
		for _, name := range failed {
			r.red.Fprint(r.out, "[  FAILED  ] ")
			fmt.Fprintln(r.out, name)
		}
	}

	if stats.AssertionsAvailable {
		fmt.Fprintf(r.out, "\nAssertions: %d total, %d passed, %d failed\n",
			stats.TotalAssertions, stats.PassedAssertions(), stats.FailedAssertions)
	} else {
		fmt.Fprintln(r.out, "\nAssertions: N/A (process isolation mode - assertion counts not available)")
	}

	if stats.AllPassed() {
		r.green.Fprintf(r.out, "ALL %d TESTS PASSED!\n", stats.TotalTests)
	}
}
