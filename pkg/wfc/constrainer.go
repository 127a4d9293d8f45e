package wfc

// Constrainer is the sole mutator exposed to rule functions. It wraps a
// wave and a queue, and implements the observed-transition protocol: after
// every narrowing mutation (Exclude, Only and their Mask counterparts) it
// checks whether the touched cell just became collapsed (entropy 1) and,
// if so, pushes it for propagation. Include and IncludeMask never push,
// even when re-admitting a value turns an empty domain into a single one.
// Transitions into contradiction (entropy 0) are never queued — the
// solver's main loop detects those once the queue drains.
//
// Rules narrow domains through this small intersect/union surface rather
// than touching solver state directly.
type Constrainer struct {
	wave  *Wave
	queue *Queue
	// scratch is a reusable mask-sized buffer for building maskForIndices
	// results without allocating on every call.
	scratch []uint64
	// onDecide, when set, fires after decide collapses a cell. It is never
	// invoked by Exclude/Only/Include and their Mask counterparts, since
	// those serve rule functions narrowing domains as a side effect of
	// propagation, not the engine's own seed- or branch-time decisions.
	onDecide func(cell int)
}

func newConstrainer(wave *Wave, queue *Queue) *Constrainer {
	return &Constrainer{wave: wave, queue: queue, scratch: make([]uint64, wave.wordsPerCell)}
}

func (c *Constrainer) maskFor(indices ...int) []uint64 {
	for i := range c.scratch {
		c.scratch[i] = 0
	}
	maskForIndices(c.scratch, indices...)
	return c.scratch
}

// pushIfNewlyCollapsed pushes cell to the queue if the mutation that just
// ran on it caused the transition into collapsed, and reports whether it
// did.
func (c *Constrainer) pushIfNewlyCollapsed(cell int, wasCollapsed bool) bool {
	if !wasCollapsed && c.wave.IsCollapsed(cell) {
		c.queue.Push(cell)
		return true
	}
	return false
}

// decide collapses cell to exactly index and unconditionally pushes it for
// propagation and fires onDecide, whether or not the domain already
// happened to be down to that single index (e.g. a branch's last
// remaining candidate, narrowed to singleton by eliminating every other
// one). Unlike Only, decide never skips the push on the strength of an
// already-collapsed domain -- it is always the cell's own decision point.
// At seed time each cell is decided at most once, so the queue holds only
// other seeded cells; at branch time the prior pass has drained the queue.
// Either way the push can never collide with an existing pending entry.
func (c *Constrainer) decide(cell, index int) {
	c.wave.Collapse(cell, c.maskFor(index))
	c.queue.Push(cell)
	if c.onDecide != nil {
		c.onDecide(cell)
	}
}

// Exclude removes the given variable indices from cell's domain:
// wave.Collapse(cell, ~maskFor(indices)).
func (c *Constrainer) Exclude(cell int, indices ...int) {
	wasCollapsed := c.wave.IsCollapsed(cell)
	c.wave.Exclude(cell, c.maskFor(indices...))
	c.pushIfNewlyCollapsed(cell, wasCollapsed)
}

// ExcludeMask removes every index set in mask from cell's domain. It is
// the mask-already-built counterpart to Exclude, used by AdjacencyTable
// where the allowed-neighbor mask is precomputed rather than built per
// call from a list of indices.
func (c *Constrainer) ExcludeMask(cell int, mask []uint64) {
	wasCollapsed := c.wave.IsCollapsed(cell)
	c.wave.Exclude(cell, mask)
	c.pushIfNewlyCollapsed(cell, wasCollapsed)
}

// Only restricts cell's domain to exactly the given variable indices:
// wave.Collapse(cell, maskFor(indices)).
func (c *Constrainer) Only(cell int, indices ...int) {
	wasCollapsed := c.wave.IsCollapsed(cell)
	c.wave.Collapse(cell, c.maskFor(indices...))
	c.pushIfNewlyCollapsed(cell, wasCollapsed)
}

// OnlyMask restricts cell's domain to exactly the indices set in mask.
func (c *Constrainer) OnlyMask(cell int, mask []uint64) {
	wasCollapsed := c.wave.IsCollapsed(cell)
	c.wave.Collapse(cell, mask)
	c.pushIfNewlyCollapsed(cell, wasCollapsed)
}

// Include re-admits the given variable indices into cell's domain, but
// only if cell is not already collapsed. This is a no-op on an already
// collapsed cell — load-bearing semantics for initial-state rules that
// exclude everywhere and then re-include selectively.
func (c *Constrainer) Include(cell int, indices ...int) {
	if c.wave.IsCollapsed(cell) {
		return
	}
	c.wave.Enable(cell, c.maskFor(indices...))
}

// IncludeMask is the mask-already-built counterpart to Include.
func (c *Constrainer) IncludeMask(cell int, mask []uint64) {
	if c.wave.IsCollapsed(cell) {
		return
	}
	c.wave.Enable(cell, mask)
}
