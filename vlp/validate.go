package vlp

import (
	"fmt"

	"govlp/bound"
	"govlp/cone"
	"govlp/sparse"
)

// Validate checks every invariant of p in a fixed order, failing fast on
// the first violation, and returns the immutable handle both encoders
// consume. Validate is a pure function — it takes its receiver by value
// and never mutates it; absent bounds resolve to the appropriate
// infinities and a zero direction resolves to Minimize.
func (p Problem) Validate() (*Validated, error) {
	if p.B == nil {
		return nil, fmt.Errorf("constraint matrix B: %w", ErrMissingMatrix)
	}
	if p.P == nil {
		return nil, fmt.Errorf("objective matrix P: %w", ErrMissingMatrix)
	}

	m, n := p.B.Dims()
	q, cols := p.P.Dims()
	if cols != n {
		return nil, fmt.Errorf("B has %d columns, P has %d: %w", n, cols, ErrDimensionMismatch)
	}

	if len(p.C) != 0 && len(p.C) != q {
		return nil, fmt.Errorf("duality parameter has length %d, want %d: %w", len(p.C), q, ErrDimensionMismatch)
	}

	if err := checkBoundLengths("row", p.RowLower, p.RowUpper, m); err != nil {
		return nil, err
	}
	if err := checkBoundLengths("column", p.ColLower, p.ColUpper, n); err != nil {
		return nil, err
	}

	rowLower, rowUpper, rowKinds, err := resolveBounds("row", p.RowLower, p.RowUpper, m)
	if err != nil {
		return nil, err
	}
	colLower, colUpper, colKinds, err := resolveBounds("column", p.ColLower, p.ColUpper, n)
	if err != nil {
		return nil, err
	}

	coneEnc, err := cone.Resolve(p.Cone, q)
	if err != nil {
		return nil, err
	}

	dir := p.Dir
	if dir == 0 {
		dir = Minimize
	}
	if dir != Minimize && dir != Maximize {
		return nil, fmt.Errorf("got %d: %w", int(p.Dir), ErrInvalidDirection)
	}

	var c []float64
	if len(p.C) != 0 {
		c = make([]float64, q)
		copy(c, p.C)
	}

	return &Validated{
		m: m, n: n, q: q,
		dir:       dir,
		bTriplets: sparse.Extract(p.B),
		pTriplets: sparse.Extract(p.P),
		rowLower:  rowLower, rowUpper: rowUpper,
		colLower: colLower, colUpper: colUpper,
		rowKinds: rowKinds, colKinds: colKinds,
		cone: coneEnc,
		c:    c,
	}, nil
}

// checkBoundLengths rejects bound vectors longer than their dimension.
// Shorter vectors are fine: missing entries resolve to infinities.
func checkBoundLengths(label string, lower, upper []float64, count int) error {
	if len(lower) > count {
		return fmt.Errorf("%s lower bounds have length %d, want at most %d: %w",
			label, len(lower), count, ErrDimensionMismatch)
	}
	if len(upper) > count {
		return fmt.Errorf("%s upper bounds have length %d, want at most %d: %w",
			label, len(upper), count, ErrDimensionMismatch)
	}
	return nil
}

// resolveBounds expands the optional lower/upper vectors to length count,
// padding missing entries with the appropriate infinity, and classifies
// every resulting pair. label names the dimension in error messages.
// Lengths have been checked by the time this runs.
func resolveBounds(label string, lower, upper []float64, count int) ([]float64, []float64, []bound.Kind, error) {
	lo := make([]float64, count)
	hi := make([]float64, count)
	kinds := make([]bound.Kind, count)
	for i := 0; i < count; i++ {
		lo[i], hi[i] = bound.NoLower, bound.NoUpper
		if i < len(lower) {
			lo[i] = lower[i]
		}
		if i < len(upper) {
			hi[i] = upper[i]
		}
		k, err := bound.Classify(lo[i], hi[i])
		if err != nil {
			return nil, nil, nil, fmt.Errorf("%s %d: (%g, %g): %w", label, i+1, lo[i], hi[i], err)
		}
		kinds[i] = k
	}
	return lo, hi, kinds, nil
}
