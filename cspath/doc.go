// Package cspath finds the cheapest way across a small, dense graph when the
// trip must also finish within a time budget.
//
// Overview:
//
//   - The graph is given by two n×n matrices: a CostMatrix and a TimeMatrix.
//     Entry (i, j) of each describes the directed edge i→j; every ordered pair
//     of distinct nodes is an edge unless WithInfEdgeThreshold removes it.
//   - The source is node 0 and the destination node n-1.
//   - A walk is feasible when its accumulated time is strictly below
//     TimeLimit after every edge. Among feasible walks Solve returns the
//     minimum total cost and the time of that walk.
//
// Strategies:
//
//   - PairLabel (default): one best-known (cost, time) per (predecessor, node)
//     pair, expanded in cost order from a lazy-deletion heap. It only keeps the
//     cheapest arrival per pair, so a cheap-but-slow prefix can shadow a
//     costlier prefix that was the only way to reach the destination in time.
//     Use it when results must match the historical table-based behaviour.
//   - Exact: per-node Pareto fronts of (cost, time). Always returns the true
//     optimum; ties on cost resolve to the smaller time.
//
// Input contract:
//
//   - Entries must be non-negative. A zero entry is a free edge, not a missing
//     one: encode non-edges with a large value and pass WithInfEdgeThreshold,
//     otherwise the search will happily use them.
//
// Error handling (sentinel errors):
//
//   - ErrNilMatrix, ErrDimensionMismatch, ErrEmptyGraph, ErrNegativeWeight for
//     bad matrices.
//   - ErrBadInfThreshold, ErrUnknownStrategy,
//     ErrUnknownTieBreak, ErrPathUnsupported for bad options.
//   - ErrInfeasible when no walk fits the time limit. The Result returned with
//     it carries Cost == Time == Infinity so callers that print the raw pair
//     keep the historical output.
//
// API reference:
//
//	func Solve(cost, time matrix.Matrix, opts ...Option) (Result, error)
//
//	  - WithTimeLimit(int64)
//	  - WithStrategy(PairLabel | Exact)
//	  - WithTieBreak(TieBreakMinTime | TieBreakFirstSeen)
//	  - WithInfEdgeThreshold(int64)
//	  - WithReturnPath()            (Exact only)
//	  - WithContext(context.Context)
//
// Thread safety:
//
//   - Solve allocates all search state per call and only reads its inputs, so
//     concurrent calls are safe as long as nobody mutates the matrices meanwhile.
package cspath
