package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"ezc/internal/domain"
)

func newTestReporter() (*Reporter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return NewReporter(&out, &errOut, ColorNo), &out, &errOut
}

func TestReporter_RunStarted(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		repeat   int
		isolated bool
		seed     *uint64
		expected string
	}{
		{"single pass", 3, 1, false, nil, "[==========] Running 3 test(s) [Process Isolation: OFF]\n"},
		{"repeat", 2, 4, true, nil, "[==========] Running 2 test(s) (4 iteration(s)) [Process Isolation: ON]\n"},
		{"shuffled", 1, 1, true, func() *uint64 { s := uint64(9); return &s }(), "[==========] Running 1 test(s) [Process Isolation: ON] [Shuffle Seed: 9]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, out, _ := newTestReporter()
			r.RunStarted(tt.count, tt.repeat, tt.isolated, tt.seed)
			if out.String() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, out.String())
			}
		})
	}
}

func TestReporter_TestLines(t *testing.T) {
	r, out, _ := newTestReporter()

	r.TestStarted("Math.Add")
	r.AssertionFailure("math_test.go", 12, "Expected: 1 == 2")
	r.Terminated(domain.AbortedByFatalAssertion)
	r.TestFinished("Math.Add", domain.Outcome{Failed: true, Elapsed: 5 * time.Millisecond})
	r.TestFinished("Math.Sub", domain.Outcome{})

	expected := "[ RUN      ] Math.Add\n" +
		"math_test.go:12: Failure\n" +
		"  Expected: 1 == 2\n" +
		"  (test terminated by ASSERT failure)\n" +
		"[  FAILED  ] Math.Add (5 ms)\n" +
		"[       OK ] Math.Sub (0 ms)\n"
	if out.String() != expected {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestReporter_Terminated(t *testing.T) {
	tests := []struct {
		state    domain.State
		expected string
	}{
		{domain.AbortedByFatalAssertion, "ASSERT failure"},
		{domain.AbortedByPanic, "panic"},
		{domain.AbortedByFault, "runtime fault"},
		{domain.CompletedNormally, ""},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			r, out, _ := newTestReporter()
			r.Terminated(tt.state)
			if tt.expected == "" {
				if out.Len() != 0 {
					t.Errorf("expected no output, got %q", out.String())
				}
				return
			}
			if !strings.Contains(out.String(), "(test terminated by "+tt.expected+")") {
				t.Errorf("unexpected output %q", out.String())
			}
		})
	}
}

func TestReporter_Abnormal(t *testing.T) {
	r, out, _ := newTestReporter()
	r.Abnormal("Crash.Segv", 139, "Terminated by signal 11 (SIGSEGV)", 3*time.Millisecond)

	expected := "  Test terminated abnormally with exit code 139\n" +
		"  Reason: Terminated by signal 11 (SIGSEGV)\n" +
		"[  FAILED  ] Crash.Segv (3 ms)\n"
	if out.String() != expected {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestReporter_WarnGoesToErrOut(t *testing.T) {
	r, out, errOut := newTestReporter()
	r.Warn("cleanup stack full (max %d)", 32)

	if out.Len() != 0 {
		t.Errorf("warnings must not go to test output, got %q", out.String())
	}
	if errOut.String() != "Warning: cleanup stack full (max 32)\n" {
		t.Errorf("unexpected warning %q", errOut.String())
	}
}

func TestReporter_Summary(t *testing.T) {
	t.Run("with failures", func(t *testing.T) {
		r, out, _ := newTestReporter()
		stats := domain.Stats{TotalTests: 3, PassedTests: 1, FailedTests: 2, TotalAssertions: 7, FailedAssertions: 2, AssertionsAvailable: true}
		r.Summary(stats, 12*time.Millisecond, []string{"A.x", "B.y"})

		s := out.String()
		for _, want := range []string{
			"[==========] 3 test(s) ran (12 ms total)\n",
			"[  PASSED  ] 1 test(s)\n",
			"[  FAILED  ] 2 test(s), listed below:\n[  FAILED  ] A.x\n[  FAILED  ] B.y\n",
			"Assertions: 7 total, 5 passed, 2 failed\n",
		} {
			if !strings.Contains(s, want) {
				t.Errorf("missing %q in:\n%s", want, s)
			}
		}
		if strings.Contains(s, "ALL") {
			t.Errorf("unexpected all-passed banner:\n%s", s)
		}
	})

	t.Run("isolated and passing", func(t *testing.T) {
		r, out, _ := newTestReporter()
		stats := domain.Stats{TotalTests: 2, PassedTests: 2}
		r.Summary(stats, time.Millisecond, nil)

		s := out.String()
		if !strings.Contains(s, "Assertions: N/A (process isolation mode - assertion counts not available)") {
			t.Errorf("expected N/A marker:\n%s", s)
		}
		if !strings.Contains(s, "ALL 2 TESTS PASSED!") {
			t.Errorf("expected all-passed banner:\n%s", s)
		}
	})
}

func TestReporter_Fallback(t *testing.T) {
	r, out, _ := newTestReporter()
	r.Fallback()
	if out.String() != "[ FALLBACK ] Process isolation failed, running in-process\n" {
		t.Errorf("unexpected output %q", out.String())
	}
}
