// Package matrix provides the dense integer matrices used to describe a
// complete directed graph: entry (i, j) is the weight of the edge i→j.
//
// Two matrices of the same order describe one instance of the
// time-bounded path problem: a CostMatrix and a TimeMatrix. The package
// offers:
//
//   - Dense: a row-major int64 buffer with error-returning accessors.
//   - FromRows / NewSquare constructors for literal data and decoders.
//   - Validators (ValidateSquare, ValidateSameShape, ValidateNonNegative)
//     that return plain sentinels so callers can wrap them uniformly.
//
// Matrices are a good fit for the small, fully connected graphs this module
// targets: O(n²) memory, O(1) edge lookup, and a flat slice per row for
// cache-friendly scans.
package matrix
