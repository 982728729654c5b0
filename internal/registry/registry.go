// Package registry holds registered tests and per-suite fixtures.
package registry

import (
	"errors"
	"fmt"

	"ezc/internal/containment"
	"ezc/internal/domain"
)

const (
	// DefaultMaxTests is the default number of tests a Registry accepts.
	DefaultMaxTests = 1024
	// DefaultMaxFixtures is the default number of suites with fixtures.
	DefaultMaxFixtures = 64
)

// ErrCapacityExceeded is returned when a registration would exceed the
// registry's capacity.
var ErrCapacityExceeded = errors.New("registry capacity exceeded")

// Test is one registered test unit.
type Test struct {
	Suite   string
	Name    string
	Body    containment.Body
	Enabled bool
}

// FullName returns "{suite}.{name}".
func (t *Test) FullName() string {
	return domain.QualifiedName(t.Suite, t.Name)
}

// Fixture holds the optional setup and teardown of one suite.
type Fixture struct {
	Suite    string
	Setup    func()
	Teardown func()
}

// Registry is an ordered set of tests plus fixtures keyed by suite.
// Registration order is the default run order and defines worker ordinals.
type Registry struct {
	tests       []*Test
	fixtures    []*Fixture
	maxTests    int
	maxFixtures int
}

// New creates a Registry with the default capacities.
func New() *Registry {
	return NewWithCapacity(DefaultMaxTests, DefaultMaxFixtures)
}

// NewWithCapacity creates a Registry with explicit capacities.
func NewWithCapacity(maxTests, maxFixtures int) *Registry {
	return &Registry{
		maxTests:    maxTests,
		maxFixtures: maxFixtures,
	}
}

// Register appends a test. It fails once the registry is full; tests
// registered before that remain usable.
func (r *Registry) Register(suite, name string, body containment.Body) (*Test, error) {
	if len(r.tests) >= r.maxTests {
		return nil, fmt.Errorf("%w: maximum number of tests (%d) reached, %s not registered",
			ErrCapacityExceeded, r.maxTests, domain.QualifiedName(suite, name))
	}
	test := &Test{
		Suite:   suite,
		Name:    name,
		Body:    body,
		Enabled: true,
	}
	r.tests = append(r.tests, test)
	return test, nil
}

// BindSetup sets the setup of suite, keeping any teardown already bound.
func (r *Registry) BindSetup(suite string, setup func()) error {
	fixture, err := r.fixtureFor(suite)
	if err != nil {
		return err
	}
	fixture.Setup = setup
	return nil
}

// BindTeardown sets the teardown of suite, keeping any setup already bound.
func (r *Registry) BindTeardown(suite string, teardown func()) error {
	fixture, err := r.fixtureFor(suite)
	if err != nil {
		return err
	}
	fixture.Teardown = teardown
	return nil
}

// FindFixture returns the fixture bound to suite, or nil.
func (r *Registry) FindFixture(suite string) *Fixture {
	for _, fixture := range r.fixtures {
		if fixture.Suite == suite {
			return fixture
		}
	}
	return nil
}

// Disable excludes a test from every run. It reports whether the test exists.
func (r *Registry) Disable(suite, name string) bool {
	for _, test := range r.tests {
		if test.Suite == suite && test.Name == name {
			test.Enabled = false
			return true
		}
	}
	return false
}

// Tests returns the tests in registration order.
func (r *Registry) Tests() []*Test {
	tests := make([]*Test, len(r.tests))
	copy(tests, r.tests)
	return tests
}

// Len returns the number of registered tests.
func (r *Registry) Len() int {
	return len(r.tests)
}

// Fixtures returns the number of suites with a fixture binding.
func (r *Registry) Fixtures() int {
	return len(r.fixtures)
}

func (r *Registry) fixtureFor(suite string) (*Fixture, error) {
	if fixture := r.FindFixture(suite); fixture != nil {
		return fixture, nil
	}
	if len(r.fixtures) >= r.maxFixtures {
		return nil, fmt.Errorf("%w: maximum number of fixtures (%d) reached, suite %s not bound",
			ErrCapacityExceeded, r.maxFixtures, suite)
	}
	fixture := &Fixture{Suite: suite}
	r.fixtures = append(r.fixtures, fixture)
	return fixture, nil
}
