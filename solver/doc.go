// Package solver defines the boundary toward the external numerical
// solver and enforces its one-at-a-time invariant.
//
// The solver keeps process-global internal state and is not reentrant:
// at most one solve may be in flight at any moment, regardless of
// whether it was entered through the file path or the in-memory path.
// Gate wraps any Solver implementation and serializes both entry points
// behind a single slot, honoring context cancellation while a caller
// waits for the slot. Encoding a problem needs no such guard — both
// encoders are pure functions of a validated model — only the solver
// call itself does.
package solver
