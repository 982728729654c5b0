package containment

import (
	"math"
	"testing"
)

func TestAssertions_NonFatalForms(t *testing.T) {
	var nilPtr *int
	value := 42

	tests := []struct {
		name string
		run  func(ct *T) bool
		want bool
	}{
		{"true", func(ct *T) bool { return ct.ExpectTrue(1 == 1) }, true},
		{"false", func(ct *T) bool { return ct.ExpectFalse(1 == 2) }, true},
		{"nil typed pointer", func(ct *T) bool { return ct.ExpectNil(nilPtr) }, true},
		{"nil on value", func(ct *T) bool { return ct.ExpectNil(value) }, false},
		{"not nil", func(ct *T) bool { return ct.ExpectNotNil(&value) }, true},
		{"zero buffer", func(ct *T) bool { return ct.ExpectZero(make([]byte, 10)) }, true},
		{"not zero buffer", func(ct *T) bool { return ct.ExpectNotZero([]byte{0, 0, 'X'}) }, true},
		{"float equal", func(ct *T) bool { return ct.ExpectFloatEqual(1.0/3.0, 0.333333) }, true},
		{"double equal", func(ct *T) bool { return ct.ExpectDoubleEqual(math.Pi, 3.141592653589793) }, true},
		{"double not equal", func(ct *T) bool { return ct.ExpectDoubleEqual(1.0, 1.001) }, false},
		{"near", func(ct *T) bool { return ct.ExpectNear(3.14159, 3.14160, 0.001) }, true},
		{"not near", func(ct *T) bool { return ct.ExpectNear(1, 2, 0.5) }, false},
		{"equal strings", func(ct *T) bool { return ExpectEqual(ct, "hello", "hello") }, true},
		{"not equal", func(ct *T) bool { return ExpectNotEqual(ct, 42, 43) }, true},
		{"less", func(ct *T) bool { return ExpectLess(ct, -1, 0) }, true},
		{"less or equal", func(ct *T) bool { return ExpectLessOrEqual(ct, 10, 10) }, true},
		{"greater", func(ct *T) bool { return ExpectGreater(ct, 5, 10) }, false},
		{"greater or equal", func(ct *T) bool { return ExpectGreaterOrEqual(ct, 10, 10) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ct, p := newTestT(t)
			if got := tt.run(ct); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
			if ct.Assertions() != 1 {
				t.Errorf("expected 1 assertion counted, got %d", ct.Assertions())
			}
			if failed := len(p.failures) == 1; failed == tt.want {
				t.Errorf("failure lines %v do not match result %v", p.failures, tt.want)
			}
		})
	}
}

func TestAssertions_FatalFormsAbort(t *testing.T) {
	tests := []struct {
		name string
		body Body
	}{
		{"AssertFalse", func(t *T) { t.AssertFalse(true) }},
		{"AssertNil", func(t *T) { t.AssertNil(1) }},
		{"AssertNotNil", func(t *T) { t.AssertNotNil(nil) }},
		{"AssertZero", func(t *T) { t.AssertZero([]byte{1}) }},
		{"AssertNotZero", func(t *T) { t.AssertNotZero([]byte{0}) }},
		{"AssertFloatEqual", func(t *T) { t.AssertFloatEqual(1, 2) }},
		{"AssertDoubleEqual", func(t *T) { t.AssertDoubleEqual(1, 2) }},
		{"AssertNear", func(t *T) { t.AssertNear(1, 2, 0.1) }},
		{"AssertEqual", func(t *T) { AssertEqual(t, 1, 2) }},
		{"AssertNotEqual", func(t *T) { AssertNotEqual(t, "a", "a") }},
		{"AssertLess", func(t *T) { AssertLess(t, 2, 1) }},
		{"AssertLessOrEqual", func(t *T) { AssertLessOrEqual(t, 2, 1) }},
		{"AssertGreater", func(t *T) { AssertGreater(t, 1, 2) }},
		{"AssertGreaterOrEqual", func(t *T) { AssertGreaterOrEqual(t, 1, 2) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ct, p := newTestT(t)
			after := false

			Run(ct, func(t *T) {
				tt.body(t)
				after = true
			})

			if after {
				t.Error("body continued after a fatal assertion")
			}
			if len(p.failures) != 1 {
				t.Errorf("expected one failure line, got %d", len(p.failures))
			}
		})
	}
}

func TestAssertions_FailureLocationSkipsHelpers(t *testing.T) {
	ct, p := newTestT(t)
	helper := func(ct *T) {
		ct.Helper()
		ExpectEqual(ct, "a", "b")
	}

	helper(ct)

	if len(p.failures) != 1 {
		t.Fatalf("expected one failure, got %d", len(p.failures))
	}
	if p.failures[0].file != "assert_test.go" {
		t.Errorf("expected assert_test.go, got %s", p.failures[0].file)
	}
	if p.failures[0].message != "Expected: a == b" {
		t.Errorf("unexpected message %q", p.failures[0].message)
	}
}

func TestApproxEqual(t *testing.T) {
	tests := []struct {
		a, b, eps float64
		want      bool
	}{
		{1, 1, DoubleEpsilon, true},
		{math.Inf(1), math.Inf(1), DoubleEpsilon, true},
		{0, 1e-11, DoubleEpsilon, true},
		{1e6, 1e6 + 1e-5, DoubleEpsilon, true},
		{1, 1.1, FloatEpsilon, false},
	}

	for _, tt := range tests {
		if got := ApproxEqual(tt.a, tt.b, tt.eps); got != tt.want {
			t.Errorf("ApproxEqual(%g, %g, %g) = %v, want %v", tt.a, tt.b, tt.eps, got, tt.want)
		}
	}
}
