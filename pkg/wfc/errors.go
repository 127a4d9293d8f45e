package wfc

import (
	"errors"
	"fmt"
)

// ErrUnsatisfiable is returned by Run when no assignment satisfies every
// rule: a contradiction survived every branch, the entropy scan found no
// branchable cell while cells remained non-singleton, or the iteration
// bound was exhausted.
var ErrUnsatisfiable = errors.New("wfc: unsatisfiable")

// ErrIterationBound is wrapped into ErrUnsatisfiable when the solver's
// configured MaxIterations is exhausted before the wave either succeeds
// or contradicts. It guards against pathological rule tables that never
// reach a fixpoint.
var ErrIterationBound = errors.New("wfc: iteration bound exceeded")

// EngineFatal reports a violated invariant or an allocator failure: these
// are bugs in the engine or its caller, not an unsatisfiable problem.
// Invariant checks (duplicate queue pushes, pushes past the queue's
// capacity, pop from an empty queue) always panic with this type. Variable
// indices are not range-checked by the engine.
type EngineFatal struct {
	Op  string
	Err error
}

func (e *EngineFatal) Error() string {
	return "wfc: fatal: " + e.Op + ": " + e.Err.Error()
}

func (e *EngineFatal) Unwrap() error { return e.Err }

func errUnknownValue(value any) error {
	return fmt.Errorf("value %v not present in id map", value)
}
