// Package sparse provides the triplet (row, column, value) coordinate
// form shared by all matrices of a VLP: the constraint matrix, the
// objective matrix and the cone generator matrices.
//
// Two input shapes are supported. Any dense gonum mat.Matrix is scanned
// row-major and its numeric zeros are skipped. A COO store built with
// this package keeps every appended entry as a structural nonzero —
// explicit zeros included — and Extract returns exactly those entries in
// insertion order, mirroring the round-trip behavior of a sparse store.
//
// Extraction order is deterministic for a given input but is not a
// contract consumers may rely on beyond reproducibility.
package sparse
