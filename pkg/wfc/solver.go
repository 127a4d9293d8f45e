package wfc

import "fmt"

// defaultMaxIterations is the default iteration bound, kept when a caller
// passes no WithMaxIterations option or passes it zero or a negative value.
const defaultMaxIterations = 16384

// InitialStateRule lets a caller further constrain (or force) values once
// the wave has been seeded from the world, before the main loop starts.
// It is invoked with the same Constrainer and Selector the main loop uses,
// so it can push cells exactly the way any propagation rule would.
type InitialStateRule func(world World, c *Constrainer, selector Selector)

// SolverOption configures a Solver at construction time, the usual
// functional-options pattern for optional construction-time behavior.
type SolverOption func(*Solver)

// WithInitialStateRule installs a rule run once, after seeding and before
// the main loop, to let a caller constrain or force values.
func WithInitialStateRule(rule InitialStateRule) SolverOption {
	return func(s *Solver) { s.initialStateRule = rule }
}

// WithCallbacks installs the optional event hooks.
func WithCallbacks(cb Callbacks) SolverOption {
	return func(s *Solver) { s.callbacks = cb }
}

// WithMaxIterations overrides the default iteration bound of 16384.
func WithMaxIterations(n int) SolverOption {
	return func(s *Solver) {
		if n > 0 {
			s.maxIterations = n
		}
	}
}

// Solver is the outer engine: seeding, propagation, contradiction
// detection, minimum-entropy branching with backtracking. A Solver is
// configured once (variable-id map, rule table, selector, optional
// initial-state rule and callbacks) and can Run any number of times; each
// Run is independent and re-entrant, but a single Solver value must not
// have Run called on it from two goroutines concurrently.
type Solver struct {
	idMap            IDMap
	rules            RuleTable
	selector         Selector
	initialStateRule InitialStateRule
	callbacks        Callbacks
	maxIterations    int
}

// NewSolver builds a Solver bound to idMap, rules, and selector, applying
// any options.
func NewSolver(idMap IDMap, rules RuleTable, selector Selector, opts ...SolverOption) *Solver {
	s := &Solver{
		idMap:         idMap,
		rules:         rules,
		selector:      selector,
		maxIterations: defaultMaxIterations,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// run carries the state shared across every recursive call within a single
// Run invocation: the world, the arena and queue every branch allocates
// and checkpoints from, and the iteration counter the whole search shares.
// It is unexported and rebuilt fresh on every Run rather than reused,
// since Run calls are independent and re-entrant but not concurrent with
// each other.
type run struct {
	solver     *Solver
	world      World
	arena      *Arena
	queue      *Queue
	iterations int
}

// Run seeds a wave from world's pre-assigned cells, optionally applies the
// configured initial-state rule, then drives propagation and branching to
// either a complete assignment (written back into world, returning true)
// or a reported failure (world contents are then unspecified beyond any
// best-effort contradiction write-back, returning false and an error).
//
// seed reseeds the configured Selector if it implements the optional
// Reseed(uint64) method (both LCGSelector and RandSelector do); a Selector
// that doesn't is used exactly as already constructed.
func (s *Solver) Run(world World, seed uint64) (bool, error) {
	if sd, ok := s.selector.(seeder); ok {
		sd.Reseed(seed)
	}

	n := world.Size()
	v := s.idMap.Size()
	wordsPerCell := wordsFor(v)
	// Sized generously for one full wave plus a handful of branch clones
	// before the arena needs to grow on its own.
	arena := NewArena(n*wordsPerCell*4 + 64)
	queue := newQueue(n)

	wave := newWaveIn(arena, n, v)
	c := newConstrainer(wave, queue)

	r := &run{solver: s, world: world, arena: arena, queue: queue}
	c.onDecide = func(cell int) { r.fireDecided(wave, cell, 0) }

	for i := 0; i < n; i++ {
		if val := world.GetValue(i); val != nil {
			if idx, ok := s.idMap.IndexOf(val); ok {
				c.decide(i, idx)
			}
		}
	}

	if s.initialStateRule != nil {
		s.initialStateRule(world, c, s.selector)
	}

	ok, err := r.solve(wave, c, 0)
	if ok {
		r.writeBack(wave)
		return true, nil
	}
	r.writeBackBestEffort(wave)
	return false, err
}

// solve is one pass of the main loop: drain the queue, check for
// contradiction or completion, and otherwise branch. Each call is one
// "iteration" against the shared bound; recursive calls from branch()
// advance the same counter, since the bound exists to guard against a
// pathological rule table regardless of how deep the search tree goes.
func (r *run) solve(wave *Wave, c *Constrainer, depth int) (bool, error) {
	r.iterations++
	if r.iterations > r.solver.maxIterations {
		return false, fmt.Errorf("%w: %w", ErrUnsatisfiable, ErrIterationBound)
	}

	for !r.queue.Empty() {
		cell := r.queue.Pop()
		if wave.IsContradicted(cell) {
			// Leave the queue; the contradiction check below reports it.
			break
		}
		k := wave.VariableID(cell)
		value := r.solver.idMap.ValueOf(k)
		r.solver.rules.Apply(r.world, cell, k, value, c)
	}

	if wave.HasContradiction() {
		r.writeBackBestEffort(wave)
		r.solver.callbacks.fireContradiction(StateView{World: r.world, Iteration: r.iterations, BranchDepth: depth})
		return false, ErrUnsatisfiable
	}

	if wave.IsFullyCollapsed() {
		return true, nil
	}

	r.writeBackCollapsed(wave)
	r.solver.callbacks.fireBranch(StateView{World: r.world, Iteration: r.iterations, BranchDepth: depth})
	return r.branch(wave, c, depth)
}

// branch picks the minimum-entropy (>1) cell, enumerates its candidate
// values, and tries each via a checkpointed, cloned wave until one
// recurses to success or every candidate is exhausted.
func (r *run) branch(wave *Wave, c *Constrainer, depth int) (bool, error) {
	cell := minEntropyCell(wave)
	if cell < 0 {
		return false, ErrUnsatisfiable
	}

	p := candidateIndices(wave, cell)
	e := len(p)

	var lastErr error = ErrUnsatisfiable
	for e > 0 {
		i := r.solver.selector.Pick(e)
		v := p[i]

		frame := r.arena.Frame()
		qcp := r.queue.Checkpoint()

		clone := wave.Clone(r.arena)
		cc := newConstrainer(clone, r.queue)
		cc.onDecide = func(decided int) { r.fireDecided(clone, decided, depth+1) }
		cc.decide(cell, v)

		ok, err := r.solve(clone, cc, depth+1)
		if ok {
			wave.CopyFrom(clone)
			frame.Release()
			return true, nil
		}
		lastErr = err

		// Release in LIFO order relative to how the checkpoints were
		// opened above (frame, then queue checkpoint): queue first, arena
		// frame second.
		r.queue.Restore(qcp)
		frame.Release()
		wave.ExcludeIndex(cell, v)

		p[i] = p[e-1]
		e--
	}

	return false, lastErr
}

// minEntropyCell scans cells in ascending id order and returns the first
// one whose entropy is strictly greater than one, preferring the smallest
// such entropy. Returns -1 if no cell qualifies.
func minEntropyCell(wave *Wave) int {
	best := -1
	bestEntropy := 0
	for cell := 0; cell < wave.Size(); cell++ {
		ent := wave.Entropy(cell)
		if ent <= 1 {
			continue
		}
		if best == -1 || ent < bestEntropy {
			best = cell
			bestEntropy = ent
		}
	}
	return best
}

// candidateIndices extracts cell's possible variable indices in ascending
// order by repeatedly taking and clearing the lowest set bit.
func candidateIndices(wave *Wave, cell int) []int {
	mask := wave.Mask(cell)
	words := make([]uint64, len(mask))
	copy(words, mask)

	out := make([]int, 0, popcount(words))
	for {
		idx := countrZero(words)
		if idx < 0 {
			break
		}
		out = append(out, idx)
		words[idx/64] &^= uint64(1) << (idx % 64)
	}
	return out
}

// writeBack writes every cell's collapsed value into the world. Called
// only after a fully successful solve, so every cell is singleton.
func (r *run) writeBack(wave *Wave) {
	for cell := 0; cell < wave.Size(); cell++ {
		k := wave.VariableID(cell)
		r.world.SetValue(cell, r.solver.idMap.ValueOf(k))
	}
}

// fireDecided refreshes the world from every currently-collapsed cell and
// fires OnCellCollapsed for cell. Called only from the two places the
// engine itself chooses a value for a cell -- seeding from the world's
// pre-assigned cells, and a branch's candidate selection -- never from
// ordinary rule-driven propagation.
func (r *run) fireDecided(wave *Wave, cell, depth int) {
	r.writeBackCollapsed(wave)
	r.solver.callbacks.fireCollapsed(StateView{World: r.world, Iteration: r.iterations, Cell: cell, BranchDepth: depth})
}

// writeBackCollapsed writes every currently-collapsed cell's value into
// the world, leaving cells that have not yet collapsed untouched. Used
// before OnBranch fires, so a callback's StateView.World reflects the
// wave as it actually stands rather than only the initial seed.
func (r *run) writeBackCollapsed(wave *Wave) {
	for cell := 0; cell < wave.Size(); cell++ {
		if wave.IsCollapsed(cell) {
			r.world.SetValue(cell, r.solver.idMap.ValueOf(wave.VariableID(cell)))
		}
	}
}

// writeBackBestEffort runs on contradiction: cells that are already
// collapsed get their real value; cells that are not get the value of
// their domain's lowest set bit; cells with an entirely empty domain are
// left untouched, since no candidate value exists to write.
func (r *run) writeBackBestEffort(wave *Wave) {
	for cell := 0; cell < wave.Size(); cell++ {
		k := wave.VariableID(cell)
		if k < 0 {
			continue
		}
		r.world.SetValue(cell, r.solver.idMap.ValueOf(k))
	}
}
