// SPDX-License-Identifier: MIT

// Package cspath defines core types and configuration options for the
// time-bounded minimum-cost path search.
//
// Options:
//
//	– TimeLimit:        strict upper bound on accumulated time along every prefix.
//	– Strategy:         PairLabel (table indexed by predecessor/node) or Exact (Pareto labels).
//	– TieBreak:         destination scan policy for PairLabel.
//	– InfEdgeThreshold: edges whose cost or time is ≥ this threshold are treated as absent.
//	– ReturnPath:       reconstruct the node sequence (Exact only).
//	– Ctx:              cancellation, checked between heap pops.
//
// Errors (sentinel):
//
//	– ErrNilMatrix         if a cost or time matrix is nil.
//	– ErrDimensionMismatch if the matrices are not square or not of the same order.
//	– ErrEmptyGraph        if the matrices have order zero.
//	– ErrNegativeWeight    if any cost or time entry is negative.
//	– ErrBadInfThreshold   if InfEdgeThreshold <= 0.
//	– ErrUnknownStrategy   / ErrUnknownTieBreak for out-of-range enum values.
//	– ErrPathUnsupported   if ReturnPath is combined with PairLabel.
//	– ErrInfeasible        if no walk reaches the destination within TimeLimit.
package cspath

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Infinity marks an unreached state in the best-known table and in an
// infeasible Result.
const Infinity int64 = math.MaxInt64

// Sentinel errors returned by Solve.
var (
	// ErrNilMatrix indicates that a nil cost or time matrix was passed.
	ErrNilMatrix = errors.New("cspath: matrix is nil")

	// ErrDimensionMismatch indicates non-square matrices or matrices of different order.
	ErrDimensionMismatch = errors.New("cspath: cost and time matrices must be square and of equal order")

	// ErrEmptyGraph indicates a graph with zero nodes; it has no source.
	ErrEmptyGraph = errors.New("cspath: graph has no nodes")

	// ErrNegativeWeight indicates that a negative cost or time was detected.
	ErrNegativeWeight = errors.New("cspath: negative edge weight encountered")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat every edge (including zero-weight edges) as absent.
	ErrBadInfThreshold = errors.New("cspath: InfEdgeThreshold must be positive")

	// ErrUnknownStrategy indicates an unsupported Strategy value.
	ErrUnknownStrategy = errors.New("cspath: unknown strategy")

	// ErrUnknownTieBreak indicates an unsupported TieBreak value.
	ErrUnknownTieBreak = errors.New("cspath: unknown tie-break policy")

	// ErrPathUnsupported indicates that path reconstruction was requested from a
	// strategy whose table does not keep stable parent links.
	ErrPathUnsupported = errors.New("cspath: path reconstruction requires the exact strategy")

	// ErrInfeasible indicates that every walk to the destination violates TimeLimit.
	// Solve still returns a Result carrying the (Infinity, Infinity) sentinel pair.
	ErrInfeasible = errors.New("cspath: no path satisfies the time limit")
)

// Strategy selects the search procedure.
type Strategy int

const (
	// PairLabel keeps one (cost, time) label per (predecessor, node) pair and
	// expands them in cost order with lazy deletion. Cost improvements are
	// accepted only when the new time stays below TimeLimit; equal-cost arrivals
	// with a lower time tighten the recorded time without a new heap entry.
	PairLabel Strategy = iota

	// Exact keeps every non-dominated (cost, time) label per node, so a cheap
	// but slow prefix never hides a costlier, faster one. The first destination
	// label popped is the optimum (minimum cost, then minimum time).
	Exact
)

// String returns the configuration spelling of the strategy.
func (s Strategy) String() string {
	switch s {
	case PairLabel:
		return "pair-label"
	case Exact:
		return "exact"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "pair-label" and "exact" to their Strategy values.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "pair-label", "pairlabel", "":
		return PairLabel, nil
	case "exact":
		return Exact, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// TieBreak decides which destination entry wins when several predecessors
// reach the destination with the same minimum cost.
type TieBreak int

const (
	// TieBreakMinTime picks minimum cost, then minimum time.
	TieBreakMinTime TieBreak = iota

	// TieBreakFirstSeen scans predecessors 0..n-1 and replaces the candidate
	// only on a strictly lower cost, so the lowest predecessor index wins a tie
	// whatever its time.
	TieBreakFirstSeen
)

// String returns the configuration spelling of the policy.
func (tb TieBreak) String() string {
	switch tb {
	case TieBreakMinTime:
		return "min-time"
	case TieBreakFirstSeen:
		return "first-seen"
	default:
		return fmt.Sprintf("TieBreak(%d)", int(tb))
	}
}

// ParseTieBreak maps "min-time" and "first-seen" to their TieBreak values.
func ParseTieBreak(s string) (TieBreak, error) {
	switch s {
	case "min-time", "":
		return TieBreakMinTime, nil
	case "first-seen":
		return TieBreakFirstSeen, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownTieBreak, s)
	}
}

// Options configures Solve.
//
// TimeLimit        – a walk is feasible only if its accumulated time is < TimeLimit
//
//	after every edge. Default is math.MaxInt64 (unconstrained).
//
// InfEdgeThreshold – edges with cost ≥ threshold or time ≥ threshold are absent.
//
//	Default is math.MaxInt64 (every ordered pair is an edge).
type Options struct {
	TimeLimit        int64           // strict bound on accumulated time
	Strategy         Strategy        // search procedure
	TieBreak         TieBreak        // destination scan policy (PairLabel)
	InfEdgeThreshold int64           // weight at which an edge counts as missing
	ReturnPath       bool            // reconstruct Result.Path (Exact only)
	Ctx              context.Context // cancellation between heap pops
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithTimeLimit sets the strict time bound. No edge fits a limit ≤ 0, so
// such queries are infeasible unless the graph has a single node.
func WithTimeLimit(limit int64) Option {
	return func(o *Options) {
		o.TimeLimit = limit
	}
}

// WithStrategy selects PairLabel or Exact.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithTieBreak sets the destination scan policy used by PairLabel.
func WithTieBreak(tb TieBreak) Option {
	return func(o *Options) {
		o.TieBreak = tb
	}
}

// WithInfEdgeThreshold defines a weight at or above which an edge is
// considered missing. Zero or negative values make Solve return ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithReturnPath enables reconstruction of Result.Path.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithContext attaches a cancellation context; nil keeps the default.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - TimeLimit:        math.MaxInt64 (no bound).
//   - Strategy:         PairLabel.
//   - TieBreak:         TieBreakMinTime.
//   - InfEdgeThreshold: math.MaxInt64 (no edges removed).
//   - ReturnPath:       false.
//   - Ctx:              context.Background().
func DefaultOptions() Options {
	return Options{
		TimeLimit:        math.MaxInt64,
		Strategy:         PairLabel,
		TieBreak:         TieBreakMinTime,
		InfEdgeThreshold: math.MaxInt64,
		ReturnPath:       false,
		Ctx:              context.Background(),
	}
}

// Stats counts the work done by one Solve call.
type Stats struct {
	Pushes          int // heap insertions
	Pops            int // heap extractions
	StaleSkips      int // popped entries discarded by lazy deletion
	Relaxations     int // candidate (cost, time) pairs evaluated
	TimeTightenings int // equal-cost updates that only lowered the time (PairLabel)
	BoundPrunes     int // extensions cut by the remaining-time bound (Exact)
}

// Result is the answer for one query.
//
// For an infeasible query Cost and Time are both Infinity and Feasible is false.
type Result struct {
	Cost     int64 // minimum total cost from node 0 to node n-1
	Time     int64 // accumulated time of the chosen cheapest walk
	Feasible bool  // false when no walk respects TimeLimit
	Path     []int // node sequence 0..n-1, set only with WithReturnPath
	Stats    Stats // search effort
}

// infeasible returns the sentinel Result.
func infeasible(stats Stats) Result {
	return Result{Cost: Infinity, Time: Infinity, Feasible: false, Stats: stats}
}
