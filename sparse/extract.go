package sparse

import "gonum.org/v1/gonum/mat"

// Extract returns the coordinate form of m.
//
// A *COO yields its structural entries in insertion order, explicit
// zeros included. Any other mat.Matrix is treated as dense: a row-major
// scan collecting entries whose value is not numerically zero. A nil
// matrix yields no triplets.
func Extract(m mat.Matrix) []Triplet {
	if m == nil {
		return nil
	}
	if c, ok := m.(*COO); ok {
		out := make([]Triplet, len(c.entries))
		copy(out, c.entries)
		return out
	}
	rows, cols := m.Dims()
	var out []Triplet
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v := m.At(i, j); v != 0 {
				out = append(out, Triplet{Row: i, Col: j, Val: v})
			}
		}
	}
	return out
}
