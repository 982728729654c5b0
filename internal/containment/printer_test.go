package containment

import (
	"fmt"
	"testing"

	"ezc/internal/cleanup"
)

type failureLine struct {
	file    string
	line    int
	message string
}

// recordingPrinter collects everything a test body prints.
type recordingPrinter struct {
	failures []failureLine
	notes    []string
	warnings []string
}

func (p *recordingPrinter) AssertionFailure(file string, line int, message string) {
	p.failures = append(p.failures, failureLine{file, line, message})
}

func (p *recordingPrinter) Note(format string, args ...any) {
	p.notes = append(p.notes, fmt.Sprintf(format, args...))
}

func (p *recordingPrinter) Warn(format string, args ...any) {
	p.warnings = append(p.warnings, fmt.Sprintf(format, args...))
}

func newTestT(t *testing.T) (*T, *recordingPrinter) {
	t.Helper()
	p := &recordingPrinter{}
	return NewT("Suite.Case", p, cleanup.New(4)), p
}
