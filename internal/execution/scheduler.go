package execution

import (
	"math/rand/v2"

	"ezc/internal/discovery"
)

// Scheduler decides the order selected tests run in. The order is computed
// once per run and reused for every repeat pass.
type Scheduler interface {
	Order(items []discovery.Item) []discovery.Item
}

// InOrderScheduler keeps registration order
type InOrderScheduler struct{}

// NewInOrderScheduler creates a new InOrderScheduler
func NewInOrderScheduler() *InOrderScheduler {
	return &InOrderScheduler{}
}

// Order returns a copy of items in the same order
func (s *InOrderScheduler) Order(items []discovery.Item) []discovery.Item {
	out := make([]discovery.Item, len(items))
	copy(out, items)
	return out
}

// ShuffleScheduler permutes the order with a seeded generator so a run can
// be replayed with the same seed. Items keep their ordinals.
type ShuffleScheduler struct {
	seed uint64
}

// NewShuffleScheduler creates a new ShuffleScheduler
func NewShuffleScheduler(seed uint64) *ShuffleScheduler {
	return &ShuffleScheduler{seed: seed}
}

// Seed returns the seed the permutation is derived from
func (s *ShuffleScheduler) Seed() uint64 {
	return s.seed
}

// Order returns a shuffled copy of items
func (s *ShuffleScheduler) Order(items []discovery.Item) []discovery.Item {
	out := make([]discovery.Item, len(items))
	copy(out, items)

	rng := rand.New(rand.NewPCG(s.seed, s.seed^0x9e3779b97f4a7c15))
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
