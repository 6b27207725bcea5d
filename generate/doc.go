// Package generate builds random query instances for benchmarks, fuzzing
// and load tests.
//
// Random samples a directed complete graph Erdős–Rényi style: every ordered
// pair (i, j), i ≠ j, is present with probability Density and then draws an
// integer cost and time uniformly from the configured ranges. Absent pairs
// carry the Missing weight, so solvers must run with an InfEdgeThreshold of
// at most Missing to see them as absent. Diagonal entries are 0.
//
// Determinism: for a fixed seed and options the output is identical across
// runs and platforms. Pairs are visited i ascending then j ascending, and each
// pair draws presence, cost, then time in that order.
//
// Errors:
//   - ErrTooFewNodes          if n < 1.
//   - ErrInvalidProbability   if Density ∉ [0,1].
//   - ErrInvalidRange         if a weight range is negative or inverted.
//   - ErrBadLimit             if the time limit is negative.
package generate
