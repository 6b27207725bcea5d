package cspath_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/cspath/cspath"
	"github.com/katalvlaran/cspath/matrix"
)

// ValidationSuite covers input and option checks shared by both strategies.
type ValidationSuite struct {
	suite.Suite
	cost, time *matrix.Dense
}

func (s *ValidationSuite) SetupTest() {
	s.cost = sampleCost(s.T())
	s.time = sampleTime(s.T())
}

func (s *ValidationSuite) TestNilMatrices() {
	_, err := cspath.Solve(nil, s.time)
	require.ErrorIs(s.T(), err, cspath.ErrNilMatrix)

	var typed *matrix.Dense
	_, err = cspath.Solve(s.cost, typed)
	require.ErrorIs(s.T(), err, cspath.ErrNilMatrix)
}

func (s *ValidationSuite) TestShapeMismatch() {
	rect, err := matrix.NewDense(3, 2)
	require.NoError(s.T(), err)
	_, err = cspath.Solve(rect, s.time)
	require.ErrorIs(s.T(), err, cspath.ErrDimensionMismatch)
	require.ErrorIs(s.T(), err, matrix.ErrNonSquare)

	small, err := matrix.NewSquare(2)
	require.NoError(s.T(), err)
	_, err = cspath.Solve(s.cost, small)
	require.ErrorIs(s.T(), err, cspath.ErrDimensionMismatch)
	require.ErrorIs(s.T(), err, matrix.ErrDimensionMismatch)
}

func (s *ValidationSuite) TestNegativeWeight() {
	require.NoError(s.T(), s.time.Set(1, 2, -1))
	_, err := cspath.Solve(s.cost, s.time)
	require.ErrorIs(s.T(), err, cspath.ErrNegativeWeight)
	require.ErrorIs(s.T(), err, matrix.ErrNegativeEntry)
}

func (s *ValidationSuite) TestBadOptions() {
	cases := []struct {
		name string
		opt  cspath.Option
		want error
	}{
		{"zero threshold", cspath.WithInfEdgeThreshold(0), cspath.ErrBadInfThreshold},
		{"unknown strategy", cspath.WithStrategy(cspath.Strategy(9)), cspath.ErrUnknownStrategy},
		{"unknown tie-break", cspath.WithTieBreak(cspath.TieBreak(9)), cspath.ErrUnknownTieBreak},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := cspath.Solve(s.cost, s.time, tc.opt)
			require.ErrorIs(s.T(), err, tc.want)
		})
	}
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationSuite))
}

func TestSolve_Idempotent(t *testing.T) {
	for _, strategy := range []cspath.Strategy{cspath.PairLabel, cspath.Exact} {
		t.Run(strategy.String(), func(t *testing.T) {
			cost, tm := sampleCost(t), sampleTime(t)
			first, err := cspath.Solve(cost, tm, cspath.WithTimeLimit(100), cspath.WithStrategy(strategy))
			require.NoError(t, err)
			second, err := cspath.Solve(cost, tm, cspath.WithTimeLimit(100), cspath.WithStrategy(strategy))
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

func TestSolve_NegativeLimitIsInfeasible(t *testing.T) {
	for _, strategy := range []cspath.Strategy{cspath.PairLabel, cspath.Exact} {
		res, err := cspath.Solve(sampleCost(t), sampleTime(t), cspath.WithTimeLimit(-5), cspath.WithStrategy(strategy))
		require.ErrorIs(t, err, cspath.ErrInfeasible, strategy.String())
		assert.Equal(t, cspath.Infinity, res.Cost)
		assert.Equal(t, cspath.Infinity, res.Time)
	}
}

func TestSolve_DefaultLimitIsUnbounded(t *testing.T) {
	res, err := cspath.Solve(sampleCost(t), sampleTime(t))
	require.NoError(t, err)
	assert.Equal(t, int64(4), res.Cost)
}

func TestSolve_ZeroEntriesAreFreeEdges(t *testing.T) {
	// 0→1→2 is free unless the 1000 markers are treated as missing edges.
	cost := mustDense(t, [][]int64{{0, 0, 5}, {1000, 0, 0}, {1000, 1000, 0}})
	tm := mustDense(t, [][]int64{{0, 0, 1}, {1000, 0, 0}, {1000, 1000, 0}})

	res, err := cspath.Solve(cost, tm)
	require.NoError(t, err)
	assert.Zero(t, res.Cost)

	// Mark 0→1 as missing: the direct edge is the only way left.
	require.NoError(t, cost.Set(0, 1, 1000))
	for _, strategy := range []cspath.Strategy{cspath.PairLabel, cspath.Exact} {
		res, err = cspath.Solve(cost, tm, cspath.WithInfEdgeThreshold(1000), cspath.WithStrategy(strategy))
		require.NoError(t, err)
		assert.Equal(t, int64(5), res.Cost, strategy.String())
		assert.Equal(t, int64(1), res.Time, strategy.String())
	}
}

func TestSolve_SaturatesInsteadOfOverflowing(t *testing.T) {
	big := int64(math.MaxInt64 - 1)
	cost := mustDense(t, [][]int64{{0, big, big}, {big, 0, big}, {big, big, 0}})
	tm := mustDense(t, [][]int64{{0, 1, 1}, {1, 0, 1}, {1, 1, 0}})

	res, err := cspath.Solve(cost, tm, cspath.WithTimeLimit(10))
	require.NoError(t, err)
	assert.Equal(t, big, res.Cost)
	assert.Equal(t, int64(1), res.Time)
}

func TestSolve_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, strategy := range []cspath.Strategy{cspath.PairLabel, cspath.Exact} {
		_, err := cspath.Solve(sampleCost(t), sampleTime(t), cspath.WithContext(ctx), cspath.WithStrategy(strategy))
		require.ErrorIs(t, err, context.Canceled)
	}
}

// sliceMatrix exercises the At-based path for Matrix implementations other than *Dense.
type sliceMatrix [][]int64

func (m sliceMatrix) Rows() int { return len(m) }
func (m sliceMatrix) Cols() int {
	if len(m) == 0 {
		return 0
	}

	return len(m[0])
}
func (m sliceMatrix) At(i, j int) (int64, error) { return m[i][j], nil }
func (m sliceMatrix) Set(i, j int, v int64) error {
	m[i][j] = v

	return nil
}
func (m sliceMatrix) Clone() matrix.Matrix { return nil }

func TestSolve_GenericMatrix(t *testing.T) {
	cost := sliceMatrix{{0, 2, 10}, {2, 0, 2}, {10, 2, 0}}
	tm := sliceMatrix{{0, 1, 5}, {1, 0, 1}, {5, 1, 0}}

	res, err := cspath.Solve(cost, tm, cspath.WithTimeLimit(100))
	require.NoError(t, err)
	assert.Equal(t, int64(4), res.Cost)
	assert.Equal(t, int64(2), res.Time)

	_, err = cspath.Solve(sliceMatrix{}, sliceMatrix{})
	require.ErrorIs(t, err, cspath.ErrEmptyGraph)
}

func TestParseStrategyAndTieBreak(t *testing.T) {
	s, err := cspath.ParseStrategy("exact")
	require.NoError(t, err)
	assert.Equal(t, cspath.Exact, s)
	_, err = cspath.ParseStrategy("dijkstra")
	require.ErrorIs(t, err, cspath.ErrUnknownStrategy)

	tb, err := cspath.ParseTieBreak("first-seen")
	require.NoError(t, err)
	assert.Equal(t, cspath.TieBreakFirstSeen, tb)
	_, err = cspath.ParseTieBreak("random")
	require.ErrorIs(t, err, cspath.ErrUnknownTieBreak)

	assert.Equal(t, "pair-label", cspath.PairLabel.String())
	assert.Equal(t, "min-time", cspath.TieBreakMinTime.String())
}
