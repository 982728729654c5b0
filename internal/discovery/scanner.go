package discovery

import (
	"ezc/internal/registry"
)

// Item is one selected test together with its worker ordinal: the
// position of the test among the enabled, filter-matching tests in
// registration order.
type Item struct {
	Test    *registry.Test
	Ordinal int
}

// Selector derives the ordered work list from a registry and a filter.
// The derivation is deterministic so a child process re-registering the
// same tests finds the same test at a given ordinal.
type Selector struct {
	filter *Filter
}

// NewSelector creates a new Selector
func NewSelector() *Selector {
	return &Selector{filter: NewFilter()}
}

// Select returns every enabled test matching expr in registration order.
func (s *Selector) Select(reg *registry.Registry, expr string) []Item {
	var items []Item
	for _, test := range reg.Tests() {
		if !s.selected(test, expr) {
			continue
		}
		items = append(items, Item{Test: test, Ordinal: len(items)})
	}
	return items
}

// Nth returns the selected test at ordinal.
func (s *Selector) Nth(reg *registry.Registry, expr string, ordinal int) (Item, bool) {
	if ordinal < 0 {
		return Item{}, false
	}

	count := 0
	for _, test := range reg.Tests() {
		if !s.selected(test, expr) {
			continue
		}
		if count == ordinal {
			return Item{Test: test, Ordinal: ordinal}, true
		}
		count++
	}
	return Item{}, false
}

// Count returns the number of selected tests.
func (s *Selector) Count(reg *registry.Registry, expr string) int {
	return len(s.Select(reg, expr))
}

func (s *Selector) selected(test *registry.Test, expr string) bool {
	return test.Enabled && s.filter.MatchesTest(expr, test.Suite, test.Name)
}
