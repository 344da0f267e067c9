package bound

import (
	"errors"
	"math"
)

// ErrInvalidBound indicates a contradictory interval: lower > upper,
// equal infinite bounds, or a NaN on either side.
var ErrInvalidBound = errors.New("bound: invalid interval")

// NoLower is the resolved value of an absent lower bound.
var NoLower = math.Inf(-1)

// NoUpper is the resolved value of an absent upper bound.
var NoUpper = math.Inf(1)

// Kind is the five-way classification of a (lower, upper) interval.
type Kind int

const (
	// Free: no finite bound on either side.
	Free Kind = iota
	// UpperOnly: finite upper bound, no lower bound.
	UpperOnly
	// LowerOnly: finite lower bound, no upper bound.
	LowerOnly
	// Double: finite bounds on both sides, lower < upper.
	Double
	// Fixed: lower == upper, both finite.
	Fixed
)

// Letter returns the one-letter tag the VLP format uses for k.
func (k Kind) Letter() byte {
	switch k {
	case Free:
		return 'f'
	case UpperOnly:
		return 'u'
	case LowerOnly:
		return 'l'
	case Double:
		return 'd'
	case Fixed:
		return 's'
	}
	return '?'
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Free:
		return "free"
	case UpperOnly:
		return "upper"
	case LowerOnly:
		return "lower"
	case Double:
		return "double"
	case Fixed:
		return "fixed"
	}
	return "unknown"
}

// Classify maps an interval to its Kind.
//
// Equality of finite bounds yields Fixed before the finiteness switch
// runs; otherwise the kind is 2*isFinite(lower) + isFinite(upper) mapped
// to Free, UpperOnly, LowerOnly, Double. Intervals with lower > upper,
// equal infinite bounds, or a NaN component fail with ErrInvalidBound.
func Classify(lower, upper float64) (Kind, error) {
	if math.IsNaN(lower) || math.IsNaN(upper) {
		return Free, ErrInvalidBound
	}
	if lower > upper {
		return Free, ErrInvalidBound
	}
	if lower == upper {
		if math.IsInf(lower, 0) {
			return Free, ErrInvalidBound
		}
		return Fixed, nil
	}
	code := 0
	if !math.IsInf(lower, 0) {
		code += 2
	}
	if !math.IsInf(upper, 0) {
		code++
	}
	switch code {
	case 0:
		return Free, nil
	case 1:
		return UpperOnly, nil
	case 2:
		return LowerOnly, nil
	default:
		return Double, nil
	}
}
