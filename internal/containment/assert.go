package containment

import (
	"cmp"
	"math"
	"reflect"
)

// Default tolerances for FloatEqual and DoubleEqual.
const (
	FloatEpsilon  = 1e-6
	DoubleEpsilon = 1e-10
)

// ExpectTrue checks that cond holds.
func (t *T) ExpectTrue(cond bool) bool {
	t.Helper()
	return t.check(cond, false, "Expected: true\n  Actual: false")
}

// AssertTrue is the fatal form of ExpectTrue.
func (t *T) AssertTrue(cond bool) bool {
	t.Helper()
	return t.check(cond, true, "Expected: true\n  Actual: false")
}

// ExpectFalse checks that cond does not hold.
func (t *T) ExpectFalse(cond bool) bool {
	t.Helper()
	return t.check(!cond, false, "Expected: false\n  Actual: true")
}

// AssertFalse is the fatal form of ExpectFalse.
func (t *T) AssertFalse(cond bool) bool {
	t.Helper()
	return t.check(!cond, true, "Expected: false\n  Actual: true")
}

// ExpectNil checks that v is nil, including typed nil pointers, maps,
// slices, channels and functions.
func (t *T) ExpectNil(v any) bool {
	t.Helper()
	return t.check(isNil(v), false, "Expected: nil\n  Actual: %v", v)
}

// AssertNil is the fatal form of ExpectNil.
func (t *T) AssertNil(v any) bool {
	t.Helper()
	return t.check(isNil(v), true, "Expected: nil\n  Actual: %v", v)
}

// ExpectNotNil checks that v is not nil.
func (t *T) ExpectNotNil(v any) bool {
	t.Helper()
	return t.check(!isNil(v), false, "Expected: not nil\n  Actual: nil")
}

// AssertNotNil is the fatal form of ExpectNotNil.
func (t *T) AssertNotNil(v any) bool {
	t.Helper()
	return t.check(!isNil(v), true, "Expected: not nil\n  Actual: nil")
}

// ExpectZero checks that every byte of buf is zero.
func (t *T) ExpectZero(buf []byte) bool {
	t.Helper()
	return t.check(allZero(buf), false, "Expected: all %d bytes zero", len(buf))
}

// AssertZero is the fatal form of ExpectZero.
func (t *T) AssertZero(buf []byte) bool {
	t.Helper()
	return t.check(allZero(buf), true, "Expected: all %d bytes zero", len(buf))
}

// ExpectNotZero checks that at least one byte of buf is non-zero.
func (t *T) ExpectNotZero(buf []byte) bool {
	t.Helper()
	return t.check(!allZero(buf), false, "Expected: a non-zero byte in %d bytes", len(buf))
}

// AssertNotZero is the fatal form of ExpectNotZero.
func (t *T) AssertNotZero(buf []byte) bool {
	t.Helper()
	return t.check(!allZero(buf), true, "Expected: a non-zero byte in %d bytes", len(buf))
}

// ExpectFloatEqual compares two float32 values within FloatEpsilon.
func (t *T) ExpectFloatEqual(a, b float32) bool {
	t.Helper()
	return t.check(ApproxEqual(float64(a), float64(b), FloatEpsilon), false,
		"Expected: %g ≈ %g (epsilon %g)", a, b, FloatEpsilon)
}

// AssertFloatEqual is the fatal form of ExpectFloatEqual.
func (t *T) AssertFloatEqual(a, b float32) bool {
	t.Helper()
	return t.check(ApproxEqual(float64(a), float64(b), FloatEpsilon), true,
		"Expected: %g ≈ %g (epsilon %g)", a, b, FloatEpsilon)
}

// ExpectDoubleEqual compares two float64 values within DoubleEpsilon.
func (t *T) ExpectDoubleEqual(a, b float64) bool {
	t.Helper()
	return t.check(ApproxEqual(a, b, DoubleEpsilon), false,
		"Expected: %g ≈ %g (epsilon %g)", a, b, DoubleEpsilon)
}

// AssertDoubleEqual is the fatal form of ExpectDoubleEqual.
func (t *T) AssertDoubleEqual(a, b float64) bool {
	t.Helper()
	return t.check(ApproxEqual(a, b, DoubleEpsilon), true,
		"Expected: %g ≈ %g (epsilon %g)", a, b, DoubleEpsilon)
}

// ExpectNear checks |a-b| <= absErr.
func (t *T) ExpectNear(a, b, absErr float64) bool {
	t.Helper()
	return t.check(math.Abs(a-b) <= absErr, false,
		"Expected: |%g - %g| <= %g\n  Actual difference: %g", a, b, absErr, math.Abs(a-b))
}

// AssertNear is the fatal form of ExpectNear.
func (t *T) AssertNear(a, b, absErr float64) bool {
	t.Helper()
	return t.check(math.Abs(a-b) <= absErr, true,
		"Expected: |%g - %g| <= %g\n  Actual difference: %g", a, b, absErr, math.Abs(a-b))
}

// ExpectEqual checks a == b.
func ExpectEqual[V comparable](t *T, a, b V) bool {
	t.Helper()
	return t.check(a == b, false, "Expected: %v == %v", a, b)
}

// AssertEqual is the fatal form of ExpectEqual.
func AssertEqual[V comparable](t *T, a, b V) bool {
	t.Helper()
	return t.check(a == b, true, "Expected: %v == %v", a, b)
}

// ExpectNotEqual checks a != b.
func ExpectNotEqual[V comparable](t *T, a, b V) bool {
	t.Helper()
	return t.check(a != b, false, "Expected: %v != %v", a, b)
}

// AssertNotEqual is the fatal form of ExpectNotEqual.
func AssertNotEqual[V comparable](t *T, a, b V) bool {
	t.Helper()
	return t.check(a != b, true, "Expected: %v != %v", a, b)
}

// ExpectLess checks a < b.
func ExpectLess[V cmp.Ordered](t *T, a, b V) bool {
	t.Helper()
	return t.check(a < b, false, "Expected: %v < %v", a, b)
}

// AssertLess is the fatal form of ExpectLess.
func AssertLess[V cmp.Ordered](t *T, a, b V) bool {
	t.Helper()
	return t.check(a < b, true, "Expected: %v < %v", a, b)
}

// ExpectLessOrEqual checks a <= b.
func ExpectLessOrEqual[V cmp.Ordered](t *T, a, b V) bool {
	t.Helper()
	return t.check(a <= b, false, "Expected: %v <= %v", a, b)
}

// AssertLessOrEqual is the fatal form of ExpectLessOrEqual.
func AssertLessOrEqual[V cmp.Ordered](t *T, a, b V) bool {
	t.Helper()
	return t.check(a <= b, true, "Expected: %v <= %v", a, b)
}

// ExpectGreater checks a > b.
func ExpectGreater[V cmp.Ordered](t *T, a, b V) bool {
	t.Helper()
	return t.check(a > b, false, "Expected: %v > %v", a, b)
}

// AssertGreater is the fatal form of ExpectGreater.
func AssertGreater[V cmp.Ordered](t *T, a, b V) bool {
	t.Helper()
	return t.check(a > b, true, "Expected: %v > %v", a, b)
}

// ExpectGreaterOrEqual checks a >= b.
func ExpectGreaterOrEqual[V cmp.Ordered](t *T, a, b V) bool {
	t.Helper()
	return t.check(a >= b, false, "Expected: %v >= %v", a, b)
}

// AssertGreaterOrEqual is the fatal form of ExpectGreaterOrEqual.
func AssertGreaterOrEqual[V cmp.Ordered](t *T, a, b V) bool {
	t.Helper()
	return t.check(a >= b, true, "Expected: %v >= %v", a, b)
}

// ApproxEqual combines relative and absolute tolerance.
func ApproxEqual(a, b, epsilon float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	largest := math.Max(math.Abs(a), math.Abs(b))
	return diff <= epsilon*largest || diff < epsilon
}

func allZero(buf []byte) bool {
	for _, b := range buf {
		if b != 0 {
			return false
		}
	}
	return true
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
