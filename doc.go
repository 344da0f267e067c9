// Package govlp models Vector Linear Programs (VLPs) — linear programs
// with several objectives ordered by a polyhedral cone — and encodes them
// for an external Benson-type solver.
//
// A VLP is described by a constraint matrix B, an objective matrix P,
// interval bounds on constraint rows and decision variables, an optional
// ordering cone (primal or dual generators), an optional duality
// parameter, and an optimization direction. govlp owns the in-memory
// representation of such a problem, the validation rules that make it
// well-formed, and the two solver-facing projections of it: the textual
// VLP file format (1-based indices) and an in-memory sparse coordinate
// structure (0-based indices). The two projections are guaranteed to
// agree on dimensions, coordinates and bound classification.
//
// Everything is organized under five subpackages:
//
//	bound/  — classification of (lower, upper) intervals into the five
//	          bound kinds the VLP format distinguishes
//	sparse/ — triplet (row, column, value) extraction and a coordinate
//	          store with structural-zero semantics
//	cone/   — resolution of the ordering cone from primal or dual
//	          generator matrices
//	vlp/    — the problem aggregate, its validation, and the text and
//	          memory encoders
//	solver/ — the serialization gate for the non-reentrant external
//	          solver invocation
//
// Quick example:
//
//	p := vlp.Problem{
//		B:        mat.NewDense(2, 2, []float64{2, 1, 1, 2}),
//		P:        mat.NewDense(2, 2, []float64{1, 0, 0, 1}),
//		RowUpper: []float64{4, 4},
//		ColLower: []float64{0, 0},
//	}
//	v, err := p.Validate()
//	// v.WriteFile("problem.vlp") or v.EncodeMemory()
//
// Encoding is pure and may run concurrently; invoking the solver itself
// must be serialized through solver.Gate.
package govlp
