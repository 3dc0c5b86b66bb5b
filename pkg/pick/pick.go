// Package pick makes reproducible random choices over collections of page elements.
package pick

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Picker is a seedable random source. A zero seed selects a time based one.
// Safe for concurrent use, though a scenario normally owns its own picker.
type Picker struct {
	seed uint64
	mu   sync.Mutex
	rnd  *rand.Rand
}

// New makes a picker seeded with seed, or with the current time if seed is 0.
func New(seed uint64) *Picker {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano()) //nolint:gosec // not security sensitive
	}
	return &Picker{seed: seed, rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))} //nolint:gosec // test data selection
}

// Seed returns the effective seed, log it to replay a run.
func (p *Picker) Seed() uint64 { return p.seed }

func (p *Picker) intN(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rnd.IntN(n)
}

func (p *Picker) perm(n int) []int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rnd.Perm(n)
}

// Subset returns a random non-empty subset of items: its size is uniform in [1, len(items)]
// and members are drawn without replacement, in no particular order.
// Empty input gives an empty result.
func Subset[T any](p *Picker, items []T) []T {
	if len(items) == 0 {
		return []T{}
	}
	size := p.intN(len(items)) + 1
	res := make([]T, 0, size)
	for _, i := range p.perm(len(items))[:size] {
		res = append(res, items[i])
	}
	return res
}

// One returns a uniformly chosen element, ok is false for empty input.
func One[T any](p *Picker, items []T) (item T, ok bool) {
	if len(items) == 0 {
		return item, false
	}
	return items[p.intN(len(items))], true
}
