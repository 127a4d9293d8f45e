package wfc

import "math/rand"

// Selector chooses an index in [0, max) when the branching step needs to
// pick one of a cell's remaining candidate values. Implementations need
// not be uniform, but must be deterministic for a fixed seed so two runs
// with identical inputs produce byte-identical output.
type Selector interface {
	Pick(max int) int
}

// LCGSelector is the default selector: a linear-congruential generator
// seeded at construction, advancing by the classic glibc constants
// (seed*1103515245 + 12345) and keeping 31 bits of visible state. It is
// intentionally low-quality and fast — the "default" selector, not the
// "good" one.
type LCGSelector struct {
	state uint64
}

// NewLCGSelector builds an LCGSelector seeded with seed.
func NewLCGSelector(seed uint64) *LCGSelector {
	return &LCGSelector{state: seed}
}

// Reseed restarts the generator from seed. Solver.Run calls Reseed on any
// configured Selector that implements this optional interface, passing
// through whatever seed the caller gave Run.
func (s *LCGSelector) Reseed(seed uint64) { s.state = seed }

// Pick returns a deterministic index in [0, max). max must be positive.
func (s *LCGSelector) Pick(max int) int {
	s.state = (s.state*1103515245 + 12345) & 0x7fffffff
	return int(s.state % uint64(max))
}

// RandSelector is the higher-quality alternative selector: it wraps
// math/rand's generator rather than hand-rolling a Mersenne Twister, for
// "a better PRNG than a bespoke LCG" without importing a third-party
// generator for it.
type RandSelector struct {
	r *rand.Rand
}

// NewRandSelector builds a RandSelector seeded with seed. A seed of 0 is
// used verbatim; this engine always receives an explicit seed from
// Solver.Run, so there is no "caller meant no seed" case to special-case.
func NewRandSelector(seed uint64) *RandSelector {
	return &RandSelector{r: rand.New(rand.NewSource(int64(seed)))}
}

// Reseed restarts the generator from seed.
func (s *RandSelector) Reseed(seed uint64) { s.r = rand.New(rand.NewSource(int64(seed))) }

// Pick returns a uniformly distributed index in [0, max).
func (s *RandSelector) Pick(max int) int { return s.r.Intn(max) }

// seeder is the optional interface a Selector may implement to accept a
// fresh seed at the start of a Run call.
type seeder interface {
	Reseed(seed uint64)
}
