package cone

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"govlp/sparse"
)

// ErrInvalidCone covers every ill-formed cone specification: primal and
// dual generators supplied together, or a generator matrix whose row
// count differs from the number of objectives.
var ErrInvalidCone = errors.New("cone: invalid cone specification")

// Kind discriminates how the ordering cone was specified.
type Kind int

const (
	// None selects the default cone (non-negative orthant).
	None Kind = iota
	// Primal: the cone is spanned by the columns of Y.
	Primal
	// Dual: the columns of Z generate the dual cone.
	Dual
)

// Keyword returns the header token for k, or "" for None.
func (k Kind) Keyword() string {
	switch k {
	case Primal:
		return "cone"
	case Dual:
		return "dualcone"
	}
	return ""
}

// Spec names the generator matrices of the ordering cone. A nil matrix,
// like one with zero columns, counts as absent.
type Spec struct {
	// Primal holds the primal generators Y, one column per generator.
	Primal mat.Matrix
	// Dual holds the dual generators Z, one column per generator.
	Dual mat.Matrix
}

// Encoding is the resolved cone: which matrix was chosen, its column
// count, and its coordinate entries. The zero value encodes the default
// cone.
type Encoding struct {
	Kind     Kind
	Columns  int
	Triplets []sparse.Triplet
}

// columns reports the column count of m, treating nil as empty.
func columns(m mat.Matrix) int {
	if m == nil {
		return 0
	}
	_, c := m.Dims()
	return c
}

// Resolve chooses between the primal and dual generators of s and
// extracts the coordinate form of the chosen matrix.
//
// Exactly one of the two matrices may have a positive column count;
// both present is ErrInvalidCone. The chosen matrix must have
// `objectives` rows. Neither present yields the zero Encoding.
func Resolve(s Spec, objectives int) (Encoding, error) {
	yc, zc := columns(s.Primal), columns(s.Dual)
	if yc > 0 && zc > 0 {
		return Encoding{}, fmt.Errorf("primal and dual generators are mutually exclusive: %w", ErrInvalidCone)
	}

	var kind Kind
	var gen mat.Matrix
	var cols int
	switch {
	case yc > 0:
		kind, gen, cols = Primal, s.Primal, yc
	case zc > 0:
		kind, gen, cols = Dual, s.Dual, zc
	default:
		return Encoding{}, nil
	}

	if r, _ := gen.Dims(); r != objectives {
		return Encoding{}, fmt.Errorf("generator matrix has %d rows, want one per objective (%d): %w", r, objectives, ErrInvalidCone)
	}

	return Encoding{Kind: kind, Columns: cols, Triplets: sparse.Extract(gen)}, nil
}
