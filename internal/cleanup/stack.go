// Package cleanup holds the per-test stack of deferred resource releases.
package cleanup

import (
	"errors"
	"fmt"
)

// DefaultCapacity is the number of pending cleanups a test may register.
const DefaultCapacity = 32

// ErrStackFull is returned by Push when the stack is at capacity.
var ErrStackFull = errors.New("cleanup stack full")

// Func releases a resource. It must not panic.
type Func func(data any)

type entry struct {
	fn   Func
	data any
}

// Stack runs registered cleanups in reverse registration order.
// There is one Stack per execution context.
type Stack struct {
	entries  []entry
	capacity int
}

// New creates a Stack holding at most capacity entries.
func New(capacity int) *Stack {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Stack{
		entries:  make([]entry, 0, capacity),
		capacity: capacity,
	}
}

// Push registers fn to be called with data when the test finishes.
func (s *Stack) Push(fn Func, data any) error {
	if len(s.entries) >= s.capacity {
		return fmt.Errorf("%w (max %d)", ErrStackFull, s.capacity)
	}
	s.entries = append(s.entries, entry{fn: fn, data: data})
	return nil
}

// RunAll pops and invokes every entry, most recently pushed first.
// Each entry is removed before it runs so it can never run twice.
func (s *Stack) RunAll() {
	for len(s.entries) > 0 {
		top := s.entries[len(s.entries)-1]
		s.entries = s.entries[:len(s.entries)-1]
		if top.fn != nil {
			top.fn(top.data)
		}
	}
}

// Clear drops all entries without invoking them.
func (s *Stack) Clear() {
	s.entries = s.entries[:0]
}

// Len returns the number of pending entries.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Capacity returns the maximum number of entries.
func (s *Stack) Capacity() int {
	return s.capacity
}
