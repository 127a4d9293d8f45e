package wfc

// World is the abstract container of cells the solver reads seed values
// from and writes the final assignment back into. Cells are indexed
// [0, Size()). Any topology lookups a rule function needs (neighbor ids,
// coordinates, row/column/box membership, ...) are opaque to the engine —
// they live on the concrete World implementation and are reached by the
// rule closures that capture it, not through this interface.
type World interface {
	// Size returns the number of cells, N.
	Size() int

	// GetValue returns the value currently stored at cell i, or nil if
	// the cell has no pre-assigned value. Used only during seeding.
	GetValue(i int) any

	// SetValue stores v as cell i's value. Called only by the solver
	// itself, which may write a cell many times in one run: when refreshing
	// the world before an event callback, on contradiction (best-effort),
	// and when writing back the solved wave.
	SetValue(i int, v any)
}
