package vlp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"govlp/bound"
	"govlp/cone"
	"govlp/sparse"
)

// textWriter buffers the sink and latches the first write failure so the
// emission code stays free of per-line error plumbing.
type textWriter struct {
	w   *bufio.Writer
	err error
}

func (tw *textWriter) printf(format string, args ...any) {
	if tw.err != nil {
		return
	}
	if _, err := fmt.Fprintf(tw.w, format, args...); err != nil {
		tw.err = &WriteError{Op: "write", Err: err}
	}
}

// EncodeText renders v in the textual VLP format onto w.
//
// All row, column and objective indices are emitted 1-based. The header
// carries the direction token, m, n, the constraint nonzero count, q,
// the objective nonzero count, and a cone clause when the cone is not
// the default. Every row gets exactly one 'i' line and every column one
// 'j' line; the output terminates with a bare 'e' line. A sink failure
// surfaces as a *WriteError (matching ErrIO) with the cause attached.
func (v *Validated) EncodeText(w io.Writer) error {
	tw := &textWriter{w: bufio.NewWriter(w)}

	tw.printf("p vlp %s %d %d %d %d %d", v.dir.Token(), v.m, v.n, len(v.bTriplets), v.q, len(v.pTriplets))
	if v.cone.Kind != cone.None {
		tw.printf(" %s %d %d", v.cone.Kind.Keyword(), v.cone.Columns, len(v.cone.Triplets))
	}
	tw.printf("\n")

	writeTriplets(tw, 'a', v.bTriplets)
	writeTriplets(tw, 'o', v.pTriplets)
	writeTriplets(tw, 'k', v.cone.Triplets)
	for i, ci := range v.c {
		tw.printf("k %d 0 %g\n", i+1, ci)
	}

	writeBounds(tw, 'i', v.rowKinds, v.rowLower, v.rowUpper)
	writeBounds(tw, 'j', v.colKinds, v.colLower, v.colUpper)
	tw.printf("e\n")

	if tw.err != nil {
		return tw.err
	}
	if err := tw.w.Flush(); err != nil {
		return &WriteError{Op: "flush", Err: err}
	}
	return nil
}

// writeTriplets emits one coordinate line per triplet, shifted to
// 1-based indices.
func writeTriplets(tw *textWriter, tag byte, ts []sparse.Triplet) {
	for _, t := range ts {
		tw.printf("%c %d %d %g\n", tag, t.Row+1, t.Col+1, t.Val)
	}
}

// writeBounds emits one bound line per index. The letter is positional
// in the format: f carries no value, u/l/s one, d two.
func writeBounds(tw *textWriter, tag byte, kinds []bound.Kind, lower, upper []float64) {
	for i, k := range kinds {
		switch k {
		case bound.Free:
			tw.printf("%c %d f\n", tag, i+1)
		case bound.UpperOnly:
			tw.printf("%c %d u %g\n", tag, i+1, upper[i])
		case bound.LowerOnly:
			tw.printf("%c %d l %g\n", tag, i+1, lower[i])
		case bound.Double:
			tw.printf("%c %d d %g %g\n", tag, i+1, lower[i], upper[i])
		case bound.Fixed:
			tw.printf("%c %d s %g\n", tag, i+1, lower[i])
		}
	}
}

// WriteFile encodes v into the file at path. The file is created,
// written and closed within this call on every exit path; on failure a
// partially written file may remain, but the handle is always released.
func (v *Validated) WriteFile(path string) (err error) {
	f, cerr := os.Create(path)
	if cerr != nil {
		return &WriteError{Op: "create", Path: path, Err: cerr}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &WriteError{Op: "close", Path: path, Err: cerr}
		}
	}()

	if werr := v.EncodeText(f); werr != nil {
		var we *WriteError
		if errors.As(werr, &we) {
			we.Path = path
		}
		return werr
	}
	return nil
}
