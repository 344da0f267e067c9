package vlp

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Validate. Match with errors.Is; messages
// carry the offending dimension or index where one exists.
var (
	// ErrMissingMatrix indicates an absent constraint or objective matrix.
	ErrMissingMatrix = errors.New("vlp: constraint and objective matrices are required")

	// ErrDimensionMismatch indicates inconsistent dimensions between the
	// matrices, the duality parameter, or a bound vector.
	ErrDimensionMismatch = errors.New("vlp: dimension mismatch")

	// ErrInvalidDirection indicates an optimization direction outside
	// {Minimize, Maximize}.
	ErrInvalidDirection = errors.New("vlp: optimization direction must be Minimize (1) or Maximize (-1)")

	// ErrIO marks a failure of the text sink. The concrete error is a
	// *WriteError carrying the underlying cause.
	ErrIO = errors.New("vlp: write failed")
)

// WriteError reports a failed operation on the text encoder's sink.
// It matches ErrIO under errors.Is and unwraps to the underlying cause.
type WriteError struct {
	Op   string // "create", "write", "flush" or "close"
	Path string // file path; empty when encoding to a caller-supplied writer
	Err  error
}

func (e *WriteError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("vlp: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("vlp: %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes the underlying cause.
func (e *WriteError) Unwrap() error { return e.Err }

// Is reports ErrIO so callers can match the class without the cause.
func (e *WriteError) Is(target error) bool { return target == ErrIO }
