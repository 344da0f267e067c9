// Package cone resolves the ordering cone of a VLP from generator
// matrices.
//
// The cone may be given by primal generators Y or by generators Z of its
// dual — never both. Supplying neither (or matrices with zero columns,
// which count as absent) selects the default cone, the non-negative
// orthant on objective space, and produces an empty encoding. A supplied
// generator matrix must have one row per objective.
package cone
