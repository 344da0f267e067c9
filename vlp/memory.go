package vlp

import (
	"govlp/cone"
	"govlp/sparse"
)

// Memory is the in-memory projection of a validated problem, consumed by
// the solver's in-process entry point. Coordinates are 0-based (no +1
// shift) and bounds are two parallel resolved arrays per dimension; the
// per-index bound letter of the text format is re-derivable from them
// via bound.Classify.
type Memory struct {
	// M, N, Q count constraint rows, decision variables and objectives.
	M, N, Q int
	// Nz and NzObj count the structural nonzeros of B and P.
	Nz, NzObj int
	// OptDir is +1 for minimization, -1 for maximization.
	OptDir int

	// ARows, ACols, AVals hold the constraint matrix coordinates.
	ARows, ACols []int
	AVals        []float64

	// PRows, PCols, PVals hold the objective matrix coordinates.
	PRows, PCols []int
	PVals        []float64

	// RowLower and RowUpper have length M; ColLower and ColUpper length N.
	RowLower, RowUpper []float64
	ColLower, ColUpper []float64

	// ConeKind and ConeCols describe the resolved ordering cone; the
	// KRows, KCols, KVals coordinates are empty for the default cone.
	ConeKind     cone.Kind
	ConeCols     int
	KRows, KCols []int
	KVals        []float64

	// C is the duality parameter, nil when none was given.
	C []float64
}

// EncodeMemory projects v into its coordinate structure. All slices are
// freshly allocated; the caller cannot alias the handle's state.
func (v *Validated) EncodeMemory() *Memory {
	mem := &Memory{
		M: v.m, N: v.n, Q: v.q,
		Nz:       len(v.bTriplets),
		NzObj:    len(v.pTriplets),
		OptDir:   int(v.dir),
		RowLower: copyFloats(v.rowLower),
		RowUpper: copyFloats(v.rowUpper),
		ColLower: copyFloats(v.colLower),
		ColUpper: copyFloats(v.colUpper),
		ConeKind: v.cone.Kind,
		ConeCols: v.cone.Columns,
		C:        copyFloats(v.c),
	}
	mem.ARows, mem.ACols, mem.AVals = splitTriplets(v.bTriplets)
	mem.PRows, mem.PCols, mem.PVals = splitTriplets(v.pTriplets)
	mem.KRows, mem.KCols, mem.KVals = splitTriplets(v.cone.Triplets)
	return mem
}

func splitTriplets(ts []sparse.Triplet) ([]int, []int, []float64) {
	rows := make([]int, len(ts))
	cols := make([]int, len(ts))
	vals := make([]float64, len(ts))
	for i, t := range ts {
		rows[i], cols[i], vals[i] = t.Row, t.Col, t.Val
	}
	return rows, cols, vals
}

func copyFloats(src []float64) []float64 {
	if src == nil {
		return nil
	}
	out := make([]float64, len(src))
	copy(out, src)
	return out
}
