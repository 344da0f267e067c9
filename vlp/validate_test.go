package vlp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/mat"

	"govlp/bound"
	"govlp/cone"
	"govlp/vlp"
)

// ValidateSuite exercises Problem.Validate invariant by invariant.
type ValidateSuite struct {
	suite.Suite
}

// base returns a well-formed two-constraint, two-objective problem.
func (s *ValidateSuite) base() vlp.Problem {
	return vlp.Problem{
		B:        mat.NewDense(2, 2, []float64{1, 1, 1, 0}),
		P:        mat.NewDense(2, 2, []float64{1, 0, 0, 1}),
		RowUpper: []float64{2, 1},
		ColLower: []float64{0, 0},
	}
}

func (s *ValidateSuite) TestWellFormed() {
	p := s.base()
	v, err := p.Validate()
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, v.M())
	require.Equal(s.T(), 2, v.N())
	require.Equal(s.T(), 2, v.Q())
	require.Equal(s.T(), vlp.Minimize, v.Dir(), "zero direction resolves to Minimize")
}

func (s *ValidateSuite) TestMissingMatrices() {
	p := s.base()
	p.B = nil
	_, err := p.Validate()
	require.ErrorIs(s.T(), err, vlp.ErrMissingMatrix)

	p = s.base()
	p.P = nil
	_, err = p.Validate()
	require.ErrorIs(s.T(), err, vlp.ErrMissingMatrix)
}

func (s *ValidateSuite) TestColumnMismatch() {
	p := s.base()
	p.P = mat.NewDense(1, 3, []float64{1, 0, 0})
	_, err := p.Validate()
	require.ErrorIs(s.T(), err, vlp.ErrDimensionMismatch)
}

// TestDualityParameterLength covers the q-length rule: a 3-entry c on a
// 2-objective model must be rejected.
func (s *ValidateSuite) TestDualityParameterLength() {
	p := s.base()
	p.C = []float64{0.5, 0.5, 0.5}
	_, err := p.Validate()
	require.ErrorIs(s.T(), err, vlp.ErrDimensionMismatch)

	p.C = []float64{0.5, 0.5}
	_, err = p.Validate()
	require.NoError(s.T(), err)
}

func (s *ValidateSuite) TestBoundVectorTooLong() {
	p := s.base()
	p.RowUpper = []float64{1, 2, 3}
	_, err := p.Validate()
	require.ErrorIs(s.T(), err, vlp.ErrDimensionMismatch)

	p = s.base()
	p.ColLower = []float64{0, 0, 0}
	_, err = p.Validate()
	require.ErrorIs(s.T(), err, vlp.ErrDimensionMismatch)
}

// TestShortBoundVectorPads verifies that entries beyond a short vector's
// length default to the appropriate infinity rather than failing.
func (s *ValidateSuite) TestShortBoundVectorPads() {
	p := s.base()
	p.RowUpper = []float64{2} // row 2 upper defaults to +Inf
	v, err := p.Validate()
	require.NoError(s.T(), err)
	require.Equal(s.T(), math.Inf(1), v.EncodeMemory().RowUpper[1])
}

// TestNoBoundsAtAll verifies that a model without any bound vectors
// still validates, with every row and column free.
func (s *ValidateSuite) TestNoBoundsAtAll() {
	p := vlp.Problem{
		B: mat.NewDense(2, 2, []float64{1, 1, 1, 0}),
		P: mat.NewDense(2, 2, []float64{1, 0, 0, 1}),
	}
	v, err := p.Validate()
	require.NoError(s.T(), err)
	mem := v.EncodeMemory()
	for i := 0; i < mem.M; i++ {
		k, cerr := bound.Classify(mem.RowLower[i], mem.RowUpper[i])
		require.NoError(s.T(), cerr)
		require.Equal(s.T(), bound.Free, k)
	}
}

func (s *ValidateSuite) TestContradictoryBounds() {
	p := s.base()
	p.RowLower = []float64{3, 0}
	p.RowUpper = []float64{2, 1} // row 1: lower > upper
	_, err := p.Validate()
	require.ErrorIs(s.T(), err, bound.ErrInvalidBound)

	p = s.base()
	p.ColLower = []float64{0, math.Inf(1)} // column 2: +Inf == +Inf
	p.ColUpper = []float64{1, math.Inf(1)}
	_, err = p.Validate()
	require.ErrorIs(s.T(), err, bound.ErrInvalidBound)
}

func (s *ValidateSuite) TestConeErrorsPropagate() {
	p := s.base()
	p.Cone = cone.Spec{
		Primal: mat.NewDense(2, 1, []float64{1, 0}),
		Dual:   mat.NewDense(2, 1, []float64{0, 1}),
	}
	_, err := p.Validate()
	require.ErrorIs(s.T(), err, cone.ErrInvalidCone)

	p = s.base()
	p.Cone = cone.Spec{Primal: mat.NewDense(3, 1, []float64{1, 0, 0})}
	_, err = p.Validate()
	require.ErrorIs(s.T(), err, cone.ErrInvalidCone)
}

func (s *ValidateSuite) TestDirection() {
	p := s.base()
	p.Dir = vlp.Maximize
	v, err := p.Validate()
	require.NoError(s.T(), err)
	require.Equal(s.T(), vlp.Maximize, v.Dir())

	p.Dir = vlp.Direction(2)
	_, err = p.Validate()
	require.ErrorIs(s.T(), err, vlp.ErrInvalidDirection)
}

// TestValueReceiverPurity pins Validate as a pure value-receiver method:
// callable directly on an unaddressed Problem value, and resolving the
// zero direction without writing the default back into the builder.
func (s *ValidateSuite) TestValueReceiverPurity() {
	v, err := vlp.Problem{
		B: mat.NewDense(1, 1, []float64{1}),
		P: mat.NewDense(1, 1, []float64{1}),
	}.Validate()
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, v.M())

	p := s.base()
	_, err = p.Validate()
	require.NoError(s.T(), err)
	require.Equal(s.T(), vlp.Direction(0), p.Dir, "Validate must not mutate the builder")
}

// TestFailFastOrder spot-checks that earlier rules win: a problem that
// violates both the column rule and the direction rule reports the
// column mismatch.
func (s *ValidateSuite) TestFailFastOrder() {
	p := s.base()
	p.P = mat.NewDense(1, 3, []float64{1, 0, 0})
	p.Dir = vlp.Direction(7)
	_, err := p.Validate()
	require.ErrorIs(s.T(), err, vlp.ErrDimensionMismatch)
	require.NotErrorIs(s.T(), err, vlp.ErrInvalidDirection)
}

func TestValidateSuite(t *testing.T) {
	suite.Run(t, new(ValidateSuite))
}
