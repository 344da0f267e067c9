// Package bound classifies scalar (lower, upper) intervals into the five
// bound kinds the VLP format distinguishes: free, upper-only, lower-only,
// double-bounded and fixed.
//
// The same classification applies to constraint rows (the range of a
// constraint) and to decision-variable columns (the box bound of a
// variable). The mapping is positional in the VLP format — one letter per
// kind — so Classify reproduces the exact four-way finiteness switch the
// solver expects, with the fixed case taking precedence over it.
//
// Absent bounds are represented by NoLower (−Inf) and NoUpper (+Inf);
// an absent bound vector is equivalent to a vector of the appropriate
// infinity, never an error.
package bound
