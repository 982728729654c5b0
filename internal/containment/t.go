// Package containment runs test bodies so that fatal assertions, panics and
// runtime faults end the body instead of the process.
package containment

import (
	"fmt"
	"path/filepath"
	"runtime"

	"ezc/internal/cleanup"
)

// Printer receives the lines a test produces while it runs.
type Printer interface {
	// AssertionFailure reports a failed assertion at file:line.
	AssertionFailure(file string, line int, message string)
	// Note prints an indented informational line.
	Note(format string, args ...any)
	// Warn prints a warning that does not affect the test result.
	Warn(format string, args ...any)
}

// Body is a test function.
type Body func(t *T)

// abortSignal is the panic value a failing fatal assertion raises.
// Only the checkpoint around the body recovers it.
type abortSignal struct{}

// T is handed to a test body. It records assertion results for one
// execution of one test and gives the body access to the cleanup stack.
type T struct {
	name     string
	printer  Printer
	cleanups *cleanup.Stack
	helpers  map[string]struct{}

	assertions       int
	failedAssertions int
	failed           bool
	detail           string
}

// NewT creates the per-execution state for the named test.
func NewT(name string, printer Printer, cleanups *cleanup.Stack) *T {
	return &T{
		name:     name,
		printer:  printer,
		cleanups: cleanups,
		helpers:  make(map[string]struct{}),
	}
}

// Name returns the qualified name of the running test.
func (t *T) Name() string {
	return t.name
}

// Helper marks the calling function as an assertion helper; failure
// locations skip it.
func (t *T) Helper() {
	var pc [1]uintptr
	if runtime.Callers(2, pc[:]) == 0 {
		return
	}
	frame, _ := runtime.CallersFrames(pc[:]).Next()
	t.helpers[frame.Function] = struct{}{}
}

// Failed reports whether the test has failed so far.
func (t *T) Failed() bool {
	return t.failed || t.failedAssertions > 0
}

// Assertions returns the number of assertions evaluated so far.
func (t *T) Assertions() int {
	return t.assertions
}

// FailedAssertions returns the number of assertions that did not hold.
func (t *T) FailedAssertions() int {
	return t.failedAssertions
}

// Logf prints an indented line as part of the test output.
func (t *T) Logf(format string, args ...any) {
	t.printer.Note(format, args...)
}

// Errorf records a non-fatal failure and lets the body continue.
func (t *T) Errorf(format string, args ...any) {
	t.Helper()
	t.check(false, false, format, args...)
}

// Fatalf records a failure and aborts the rest of the body.
func (t *T) Fatalf(format string, args ...any) {
	t.Helper()
	t.check(false, true, format, args...)
}

// FailNow aborts the rest of the body, marking the test failed.
func (t *T) FailNow() {
	t.failed = true
	panic(abortSignal{})
}

// Defer registers fn(data) to run after the body, in LIFO order, however
// the body ends. A full stack is a warning, not a failure.
func (t *T) Defer(fn cleanup.Func, data any) bool {
	if err := t.cleanups.Push(fn, data); err != nil {
		t.printer.Warn("%s: %v", t.name, err)
		return false
	}
	return true
}

// Cleanup registers fn to run after the body.
func (t *T) Cleanup(fn func()) bool {
	return t.Defer(func(any) { fn() }, nil)
}

// check counts one assertion and, when ok is false, records and prints the
// failure. Fatal failures then unwind to the checkpoint.
func (t *T) check(ok, fatal bool, format string, args ...any) bool {
	t.assertions++
	if ok {
		return true
	}
	t.failedAssertions++
	file, line := t.caller()
	t.printer.AssertionFailure(file, line, fmt.Sprintf(format, args...))
	if fatal {
		t.failed = true
		panic(abortSignal{})
	}
	return false
}

// Detail returns the classification of the panic or fault that ended the
// body, if any.
func (t *T) Detail() string {
	return t.detail
}

func (t *T) markFailed() {
	t.failed = true
}

// classify prints the one-line classification of an intercepted condition.
func (t *T) classify(format string, args ...any) {
	t.detail = fmt.Sprintf(format, args...)
	t.printer.Note("%s", t.detail)
}

// caller finds the first stack frame outside the containment internals and
// registered helpers.
func (t *T) caller() (string, int) {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if _, helper := t.helpers[frame.Function]; !helper {
			return filepath.Base(frame.File), frame.Line
		}
		if !more {
			break
		}
	}
	return "???", 0
}
