package solver

import (
	"context"
	"fmt"

	"golang.org/x/sync/semaphore"

	"govlp/vlp"
)

// Solver is implemented by bindings to the external numerical solver.
// SolveFile consumes a problem previously written in the textual VLP
// format; SolveMemory consumes the in-memory coordinate structure.
// Implementations need not be safe for concurrent use — wrap them in a
// Gate.
type Solver interface {
	SolveFile(ctx context.Context, path string) error
	SolveMemory(ctx context.Context, problem *vlp.Memory) error
}

// Gate serializes access to a Solver: both entry points share one slot,
// held for the duration of the inner call. A Gate is itself a Solver and
// is safe for concurrent use.
type Gate struct {
	slot  *semaphore.Weighted
	inner Solver
}

// NewGate wraps inner in a serialization gate.
// inner must be non-nil; a nil Solver is a programmer error and panics.
func NewGate(inner Solver) *Gate {
	if inner == nil {
		panic("solver: NewGate called with nil Solver")
	}
	return &Gate{slot: semaphore.NewWeighted(1), inner: inner}
}

// SolveFile runs the inner file-mode solve while holding the slot.
// Waiting for the slot ends early when ctx is canceled; the inner call
// then never starts.
func (g *Gate) SolveFile(ctx context.Context, path string) error {
	if err := g.slot.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("solver: waiting for solver slot: %w", err)
	}
	defer g.slot.Release(1)
	return g.inner.SolveFile(ctx, path)
}

// SolveMemory runs the inner in-process solve while holding the slot.
func (g *Gate) SolveMemory(ctx context.Context, problem *vlp.Memory) error {
	if err := g.slot.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("solver: waiting for solver slot: %w", err)
	}
	defer g.slot.Release(1)
	return g.inner.SolveMemory(ctx, problem)
}
