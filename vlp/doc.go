// Package vlp holds the canonical in-memory representation of a Vector
// Linear Program and its two solver-facing encodings.
//
// A Problem aggregates the constraint matrix B, the objective matrix P,
// row and column bounds, the ordering cone, an optional duality
// parameter and the optimization direction. Validate resolves every
// optional field to its default, checks all cross-entity invariants in
// one place, and returns an immutable Validated handle. Both encoders
// are pure functions of that handle and never re-validate:
//
//   - EncodeText / WriteFile render the textual VLP format, 1-based,
//     consumed by the solver's file-mode entry point;
//   - EncodeMemory produces the 0-based sparse coordinate structure
//     consumed by the solver's in-process entry point.
//
// For every row and column the letter the text encoder emits equals the
// classification of the memory encoder's resolved (lower, upper) pair,
// and all text indices are the memory indices plus one. Encoding may run
// concurrently across models; serializing the solver invocation itself
// is the solver package's concern.
package vlp
