package ezc

import (
	"cmp"

	"ezc/internal/containment"
)

// Methods on T cover the rest of the vocabulary: True, False, Nil, NotNil,
// Zero, NotZero, FloatEqual, DoubleEqual, Near.

// ExpectEqual checks a == b.
func ExpectEqual[V comparable](t *T, a, b V) bool {
	t.Helper()
	return containment.ExpectEqual(t, a, b)
}

// AssertEqual is the fatal form of ExpectEqual.
func AssertEqual[V comparable](t *T, a, b V) bool {
	t.Helper()
	return containment.AssertEqual(t, a, b)
}

// ExpectNotEqual checks a != b.
func ExpectNotEqual[V comparable](t *T, a, b V) bool {
	t.Helper()
	return containment.ExpectNotEqual(t, a, b)
}

// AssertNotEqual is the fatal form of ExpectNotEqual.
func AssertNotEqual[V comparable](t *T, a, b V) bool {
	t.Helper()
	return containment.AssertNotEqual(t, a, b)
}

// ExpectLess checks a < b.
func ExpectLess[V cmp.Ordered](t *T, a, b V) bool {
	t.Helper()
	return containment.ExpectLess(t, a, b)
}

// AssertLess is the fatal form of ExpectLess.
func AssertLess[V cmp.Ordered](t *T, a, b V) bool {
	t.Helper()
	return containment.AssertLess(t, a, b)
}

// ExpectLessOrEqual checks a <= b.
func ExpectLessOrEqual[V cmp.Ordered](t *T, a, b V) bool {
	t.Helper()
	return containment.ExpectLessOrEqual(t, a, b)
}

// AssertLessOrEqual is the fatal form of ExpectLessOrEqual.
func AssertLessOrEqual[V cmp.Ordered](t *T, a, b V) bool {
	t.Helper()
	return containment.AssertLessOrEqual(t, a, b)
}

// ExpectGreater checks a > b.
func ExpectGreater[V cmp.Ordered](t *T, a, b V) bool {
	t.Helper()
	return containment.ExpectGreater(t, a, b)
}

// AssertGreater is the fatal form of ExpectGreater.
func AssertGreater[V cmp.Ordered](t *T, a, b V) bool {
	t.Helper()
	return containment.AssertGreater(t, a, b)
}

// ExpectGreaterOrEqual checks a >= b.
func ExpectGreaterOrEqual[V cmp.Ordered](t *T, a, b V) bool {
	t.Helper()
	return containment.ExpectGreaterOrEqual(t, a, b)
}

// AssertGreaterOrEqual is the fatal form of ExpectGreaterOrEqual.
func AssertGreaterOrEqual[V cmp.Ordered](t *T, a, b V) bool {
	t.Helper()
	return containment.AssertGreaterOrEqual(t, a, b)
}
