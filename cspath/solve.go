// SPDX-License-Identifier: MIT

package cspath

import (
	"fmt"

	"github.com/katalvlaran/cspath/matrix"
)

// source is the fixed start node; the destination is always n-1.
const source = 0

// Solve computes the minimum-cost walk from node 0 to node n-1 whose
// accumulated time stays strictly below Options.TimeLimit after every edge.
// cost and time are the CostMatrix and TimeMatrix of a complete directed
// graph: entry (i, j) describes the edge i→j.
//
// Preconditions and validation (in order):
//  1. cost and time are non-nil (ErrNilMatrix).
//  2. both are square and of equal order n (ErrDimensionMismatch), n ≥ 1 (ErrEmptyGraph).
//  3. no entry is negative (ErrNegativeWeight).
//  4. options are in range (ErrBadInfThreshold,
//     ErrUnknownStrategy, ErrUnknownTieBreak, ErrPathUnsupported).
//
// When no walk is feasible Solve returns the (Infinity, Infinity) sentinel
// Result together with ErrInfeasible.
//
// Complexity (PairLabel):
//   - Time:  O(n³ log n) worst case; each of the n² states can be pushed once
//     per improving update and every expansion scans n neighbours.
//   - Space: O(n²) for the table plus the heap.
func Solve(cost, time matrix.Matrix, opts ...Option) (Result, error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	n, err := validateMatrices(cost, time)
	if err != nil {
		return Result{}, err
	}
	if err = validateOptions(cfg); err != nil {
		return Result{}, err
	}

	// 3) Flatten both matrices once; the runners index plain slices.
	g, err := newDenseGraph(n, cost, time, cfg.InfEdgeThreshold)
	if err != nil {
		return Result{}, err
	}

	// 4) Dispatch.
	var res Result
	switch cfg.Strategy {
	case Exact:
		res, err = newExactRunner(g, cfg).run()
	default:
		res, err = newPairRunner(g, cfg).run()
	}
	if err != nil {
		return Result{}, err
	}
	if !res.Feasible {
		return res, ErrInfeasible
	}

	return res, nil
}

// validateMatrices checks nil, shape and sign; it returns the order n.
func validateMatrices(cost, time matrix.Matrix) (int, error) {
	if matrix.ValidateNotNil(cost) != nil || matrix.ValidateNotNil(time) != nil {
		return 0, ErrNilMatrix
	}
	if err := matrix.ValidateSquare(cost); err != nil {
		return 0, fmt.Errorf("%w: cost: %w", ErrDimensionMismatch, err)
	}
	if err := matrix.ValidateSquare(time); err != nil {
		return 0, fmt.Errorf("%w: time: %w", ErrDimensionMismatch, err)
	}
	if err := matrix.ValidateSameShape(cost, time); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrDimensionMismatch, err)
	}
	n := cost.Rows()
	if n == 0 {
		return 0, ErrEmptyGraph
	}
	if err := matrix.ValidateNonNegative(cost); err != nil {
		return 0, fmt.Errorf("%w: cost: %w", ErrNegativeWeight, err)
	}
	if err := matrix.ValidateNonNegative(time); err != nil {
		return 0, fmt.Errorf("%w: time: %w", ErrNegativeWeight, err)
	}

	return n, nil
}

// validateOptions checks enum ranges and numeric bounds.
func validateOptions(cfg Options) error {
	if cfg.InfEdgeThreshold <= 0 {
		return ErrBadInfThreshold
	}
	switch cfg.Strategy {
	case PairLabel:
		if cfg.ReturnPath {
			return ErrPathUnsupported
		}
	case Exact:
	default:
		return fmt.Errorf("%w: %d", ErrUnknownStrategy, int(cfg.Strategy))
	}
	switch cfg.TieBreak {
	case TieBreakMinTime, TieBreakFirstSeen:
	default:
		return fmt.Errorf("%w: %d", ErrUnknownTieBreak, int(cfg.TieBreak))
	}

	return nil
}

// denseGraph is the flattened, read-only view both runners work on.
// Offsets are row-major: u*n + v is the edge u→v.
type denseGraph struct {
	n       int
	cost    []int64
	time    []int64
	missing []bool // true when the edge exceeds InfEdgeThreshold
}

// newDenseGraph copies cost/time into flat slices, using the Row fast path
// for *matrix.Dense and At otherwise.
func newDenseGraph(n int, cost, time matrix.Matrix, threshold int64) (*denseGraph, error) {
	g := &denseGraph{
		n:       n,
		cost:    make([]int64, n*n),
		time:    make([]int64, n*n),
		missing: make([]bool, n*n),
	}
	if err := flatten(cost, n, g.cost); err != nil {
		return nil, err
	}
	if err := flatten(time, n, g.time); err != nil {
		return nil, err
	}
	for k := range g.missing {
		g.missing[k] = g.cost[k] >= threshold || g.time[k] >= threshold
	}

	return g, nil
}

// flatten copies m into dst row by row.
func flatten(m matrix.Matrix, n int, dst []int64) error {
	var (
		i, j int
		v    int64
		err  error
	)
	if d, ok := m.(*matrix.Dense); ok {
		var row []int64
		for i = 0; i < n; i++ {
			if row, err = d.Row(i); err != nil {
				return err
			}
			copy(dst[i*n:(i+1)*n], row)
		}

		return nil
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return err
			}
			dst[i*n+j] = v
		}
	}

	return nil
}

// addSat adds two non-negative values, saturating at Infinity.
func addSat(a, b int64) int64 {
	if a > Infinity-b {
		return Infinity
	}

	return a + b
}

// interrupted converts a cancelled context into the error Solve returns.
func interrupted(cfg Options) error {
	if err := cfg.Ctx.Err(); err != nil {
		return fmt.Errorf("cspath: search interrupted: %w", err)
	}

	return nil
}
