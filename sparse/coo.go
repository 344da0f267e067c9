package sparse

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// ErrOutOfRange indicates an index outside the declared shape.
var ErrOutOfRange = errors.New("sparse: index out of range")

// ErrBadShape is returned when a COO is created with a negative dimension.
var ErrBadShape = errors.New("sparse: invalid shape")

// Triplet is one structural entry of a sparse matrix in coordinate form.
// Row and Col are 0-based.
type Triplet struct {
	Row, Col int
	Val      float64
}

// COO is an append-only coordinate store. Every appended entry is
// structural: a zero value appended explicitly stays in the store and is
// reported by Extract. COO satisfies gonum's mat.Matrix, so it can be
// used anywhere a dense matrix can.
type COO struct {
	rows, cols int
	entries    []Triplet
}

// NewCOO returns an empty rows×cols coordinate store.
// Dimensions may be zero (an empty matrix) but not negative.
func NewCOO(rows, cols int) (*COO, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}
	return &COO{rows: rows, cols: cols}, nil
}

// Append records value v at (i, j) as a structural entry.
// Returns ErrOutOfRange when (i, j) lies outside the declared shape.
func (c *COO) Append(i, j int, v float64) error {
	if i < 0 || i >= c.rows || j < 0 || j >= c.cols {
		return ErrOutOfRange
	}
	c.entries = append(c.entries, Triplet{Row: i, Col: j, Val: v})
	return nil
}

// NNZ reports the number of structural entries.
func (c *COO) NNZ() int { return len(c.entries) }

// Dims implements mat.Matrix.
func (c *COO) Dims() (r, cols int) { return c.rows, c.cols }

// At implements mat.Matrix. Duplicate entries at the same coordinate
// accumulate, following the usual coordinate-format convention.
// At panics when (i, j) is out of range, matching gonum's contract.
func (c *COO) At(i, j int) float64 {
	if i < 0 || i >= c.rows || j < 0 || j >= c.cols {
		panic(ErrOutOfRange)
	}
	var sum float64
	for _, e := range c.entries {
		if e.Row == i && e.Col == j {
			sum += e.Val
		}
	}
	return sum
}

// T implements mat.Matrix.
func (c *COO) T() mat.Matrix { return mat.Transpose{Matrix: c} }
