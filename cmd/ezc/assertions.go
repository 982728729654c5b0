package main

import (
	"math"
	"strings"

	"ezc/pkg/ezc"
)

func init() {
	ezc.Test("BasicAssertions", "ExpectTrue", func(t *ezc.T) {
		t.ExpectTrue(1 == 1)
		t.ExpectTrue(len("ezc") > 0)
	})
	ezc.Test("BasicAssertions", "ExpectFalse", func(t *ezc.T) {
		t.ExpectFalse(1 == 2)
		t.ExpectFalse(strings.Contains("ezc", "x"))
	})
	ezc.Test("BasicAssertions", "ExpectEqual", func(t *ezc.T) {
		ezc.ExpectEqual(t, 42, 42)
		ezc.ExpectEqual(t, 'A', 'A')
		ezc.ExpectEqual(t, int64(1)<<40, int64(1)<<40)
	})
	ezc.Test("BasicAssertions", "ExpectNotEqual", func(t *ezc.T) {
		ezc.ExpectNotEqual(t, 1, 2)
		ezc.ExpectNotEqual(t, "a", "b")
	})
	ezc.Test("BasicAssertions", "ExpectOrdering", func(t *ezc.T) {
		ezc.ExpectLess(t, 1, 2)
		ezc.ExpectLessOrEqual(t, 2, 2)
		ezc.ExpectGreater(t, 3, 2)
		ezc.ExpectGreaterOrEqual(t, 3, 3)
	})

	ezc.Test("StringAssertions", "ExpectEqual", func(t *ezc.T) {
		greeting := strings.Join([]string{"Hello", "World"}, ", ")
		ezc.ExpectEqual(t, greeting, "Hello, World")
	})
	ezc.Test("StringAssertions", "ExpectNotEqual", func(t *ezc.T) {
		ezc.ExpectNotEqual(t, "Hello", "hello")
	})

	ezc.Test("PointerAssertions", "ExpectNil", func(t *ezc.T) {
		var p *int
		var m map[string]int
		t.ExpectNil(p)
		t.ExpectNil(m)
		t.ExpectNil(nil)
	})
	ezc.Test("PointerAssertions", "ExpectNotNil", func(t *ezc.T) {
		value := 7
		t.ExpectNotNil(&value)
	})

	ezc.Test("MemoryAssertions", "ExpectZero", func(t *ezc.T) {
		t.ExpectZero(make([]byte, 64))
	})
	ezc.Test("MemoryAssertions", "ExpectNotZero", func(t *ezc.T) {
		buf := make([]byte, 64)
		buf[63] = 1
		t.ExpectNotZero(buf)
	})

	ezc.Test("FloatAssertions", "ExpectFloatEqual", func(t *ezc.T) {
		t.ExpectFloatEqual(float32(0.1)+float32(0.2), float32(0.3))
	})
	ezc.Test("FloatAssertions", "ExpectDoubleEqual", func(t *ezc.T) {
		t.ExpectDoubleEqual(math.Sqrt(2)*math.Sqrt(2), 2.0)
	})
	ezc.Test("FloatAssertions", "ExpectNear", func(t *ezc.T) {
		t.ExpectNear(math.Pi, 3.14159, 0.00001)
	})

	ezc.Test("FatalAssertions", "AssertTrue", func(t *ezc.T) {
		t.AssertTrue(true)
		t.AssertFalse(false)
	})
	ezc.Test("FatalAssertions", "AssertComparisons", func(t *ezc.T) {
		ezc.AssertEqual(t, 10, 10)
		ezc.AssertNotEqual(t, 10, 11)
		ezc.AssertLess(t, 1, 2)
		ezc.AssertLessOrEqual(t, 2, 2)
		ezc.AssertGreater(t, 3, 2)
		ezc.AssertGreaterOrEqual(t, 3, 3)
	})
	ezc.Test("FatalAssertions", "AssertPointers", func(t *ezc.T) {
		value := 1
		t.AssertNil(nil)
		t.AssertNotNil(&value)
	})
	ezc.Test("FatalAssertions", "AssertFloats", func(t *ezc.T) {
		t.AssertFloatEqual(1.5, 1.5)
		t.AssertDoubleEqual(2.25, 2.25)
		t.AssertNear(1.0, 1.0005, 0.001)
	})
	ezc.Test("FatalAssertions", "AssertMemory", func(t *ezc.T) {
		buf := make([]byte, 16)
		t.AssertZero(buf)
		buf[0] = 0xff
		t.AssertNotZero(buf)
	})

	ezc.Test("EdgeCases", "ZeroValues", func(t *ezc.T) {
		ezc.ExpectEqual(t, 0, 0)
		ezc.ExpectLessOrEqual(t, 0, 0)
		ezc.ExpectGreaterOrEqual(t, 0, 0)
		t.ExpectFloatEqual(0, 0)
		t.ExpectDoubleEqual(0, 0)
	})
	ezc.Test("EdgeCases", "NegativeValues", func(t *ezc.T) {
		ezc.ExpectLess(t, -10, 0)
		ezc.ExpectGreater(t, -1, -5)
		t.ExpectFloatEqual(-3.14, -3.14)
		t.ExpectDoubleEqual(-2.718, -2.718)
	})
	ezc.Test("EdgeCases", "LargeValues", func(t *ezc.T) {
		ezc.ExpectEqual(t, int64(math.MaxInt64), int64(math.MaxInt64))
		ezc.ExpectGreater(t, uint64(math.MaxUint64), uint64(0))
	})
	ezc.Test("EdgeCases", "EmptyStrings", func(t *ezc.T) {
		ezc.ExpectEqual(t, "", "")
		ezc.ExpectNotEqual(t, "", "not empty")
	})
}
