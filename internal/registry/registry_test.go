package registry

import (
	"errors"
	"testing"

	"ezc/internal/containment"
)

func noop(*containment.T) {}

func TestRegistry_RegisterPreservesOrder(t *testing.T) {
	r := New()
	names := []struct{ suite, name string }{
		{"B", "one"}, {"A", "two"}, {"B", "three"},
	}
	for _, n := range names {
		if _, err := r.Register(n.suite, n.name, noop); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	tests := r.Tests()
	if len(tests) != len(names) {
		t.Fatalf("expected %d tests, got %d", len(names), len(tests))
	}
	for i, n := range names {
		if tests[i].Suite != n.suite || tests[i].Name != n.name {
			t.Errorf("position %d: expected %s.%s, got %s", i, n.suite, n.name, tests[i].FullName())
		}
		if !tests[i].Enabled {
			t.Errorf("%s should be enabled by default", tests[i].FullName())
		}
	}
}

func TestRegistry_CapacityExceeded(t *testing.T) {
	r := NewWithCapacity(2, 1)
	r.Register("S", "a", noop)
	r.Register("S", "b", noop)

	_, err := r.Register("S", "c", noop)
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}
	if r.Len() != 2 {
		t.Errorf("expected registry to keep 2 tests, got %d", r.Len())
	}

	r.BindSetup("S", func() {})
	if err := r.BindTeardown("Other", func() {}); !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("expected fixture capacity error, got %v", err)
	}
	if err := r.BindTeardown("S", func() {}); err != nil {
		t.Errorf("updating an existing fixture must not need capacity: %v", err)
	}
}

func TestRegistry_FixtureBindingMerges(t *testing.T) {
	tests := []struct {
		name       string
		setupFirst bool
	}{
		{"setup then teardown", true},
		{"teardown then setup", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New()
			setupCalled, teardownCalled := false, false
			setup := func() { setupCalled = true }
			teardown := func() { teardownCalled = true }

			if tt.setupFirst {
				r.BindSetup("Suite", setup)
				r.BindTeardown("Suite", teardown)
			} else {
				r.BindTeardown("Suite", teardown)
				r.BindSetup("Suite", setup)
			}

			if r.Fixtures() != 1 {
				t.Fatalf("expected exactly one fixture binding, got %d", r.Fixtures())
			}
			fixture := r.FindFixture("Suite")
			if fixture == nil || fixture.Setup == nil || fixture.Teardown == nil {
				t.Fatalf("expected both setup and teardown bound, got %+v", fixture)
			}
			fixture.Setup()
			fixture.Teardown()
			if !setupCalled || !teardownCalled {
				t.Error("bound functions were not the ones registered")
			}
		})
	}
}

func TestRegistry_RebindReplaces(t *testing.T) {
	r := New()
	which := ""
	r.BindSetup("Suite", func() { which = "first" })
	r.BindSetup("Suite", func() { which = "second" })

	r.FindFixture("Suite").Setup()

	if which != "second" {
		t.Errorf("expected latest setup to win, got %s", which)
	}
	if r.Fixtures() != 1 {
		t.Errorf("expected one binding, got %d", r.Fixtures())
	}
}

func TestRegistry_FindFixtureAbsent(t *testing.T) {
	r := New()
	if r.FindFixture("Missing") != nil {
		t.Error("expected nil for unknown suite")
	}
}

func TestRegistry_Disable(t *testing.T) {
	r := New()
	r.Register("S", "a", noop)

	if !r.Disable("S", "a") {
		t.Fatal("expected Disable to find the test")
	}
	if r.Tests()[0].Enabled {
		t.Error("test should be disabled")
	}
	if r.Disable("S", "missing") {
		t.Error("expected Disable to report a missing test")
	}
}
