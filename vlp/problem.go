package vlp

import (
	"gonum.org/v1/gonum/mat"

	"govlp/bound"
	"govlp/cone"
	"govlp/sparse"
)

// Direction selects the optimization sense. The external representation
// is +1 for minimization and -1 for maximization.
type Direction int

const (
	// Minimize seeks cone-minimal objective vectors.
	Minimize Direction = 1
	// Maximize seeks cone-maximal objective vectors.
	Maximize Direction = -1
)

// Token returns the header token of d: "min" or "max".
func (d Direction) Token() string {
	if d == Maximize {
		return "max"
	}
	return "min"
}

// Problem is the builder for a VLP instance. Fill in the fields and call
// Validate; every optional field is resolved to its default there, so a
// zero value means "absent", never "forgotten".
//
//	minimize (w.r.t. the cone)  P*x
//	subject to                  RowLower ≤ B*x ≤ RowUpper
//	                            ColLower ≤  x  ≤ ColUpper
//
// B and P may be dense gonum matrices or sparse.COO stores; they must
// share their column count (the decision-variable space).
type Problem struct {
	// B is the m×n constraint matrix. Required.
	B mat.Matrix
	// P is the q×n objective matrix. Required.
	P mat.Matrix

	// RowLower and RowUpper bound the constraint rows. A nil vector, or
	// the entries beyond a short vector's length, default to -Inf / +Inf.
	// A vector longer than m fails validation.
	RowLower []float64
	RowUpper []float64

	// ColLower and ColUpper bound the decision variables, with the same
	// defaulting against n.
	ColLower []float64
	ColUpper []float64

	// Cone names the ordering cone's generators; the zero value selects
	// the non-negative orthant.
	Cone cone.Spec

	// C is the optional duality parameter, one entry per objective. The
	// solver requires it to lie in the cone's relative interior; only
	// its length is checked here.
	C []float64

	// Dir is the optimization direction; the zero value resolves to
	// Minimize.
	Dir Direction
}

// Validated is the opaque, immutable result of Problem.Validate. All
// invariants hold by construction; the encoders trust it and never
// re-validate.
type Validated struct {
	m, n, q int
	dir     Direction

	bTriplets []sparse.Triplet
	pTriplets []sparse.Triplet

	rowLower, rowUpper []float64
	colLower, colUpper []float64
	rowKinds, colKinds []bound.Kind

	cone cone.Encoding
	c    []float64
}

// M reports the number of constraint rows.
func (v *Validated) M() int { return v.m }

// N reports the number of decision variables.
func (v *Validated) N() int { return v.n }

// Q reports the number of objectives.
func (v *Validated) Q() int { return v.q }

// Dir reports the resolved optimization direction.
func (v *Validated) Dir() Direction { return v.dir }
