// Package wfc implements a generic Wave Function Collapse constraint
// solver: a wave of bit-domain cells, constraint propagation, minimum-
// entropy branching with backtracking, and the scoped arena and
// propagation queue that back them.
//
// The engine is deliberately ignorant of any concrete world: it consumes
// a World, a variable-id map, a rule table, and a value selector, all
// defined by interfaces in this package, and drives them to either a
// complete assignment or a reported failure.
package wfc
