// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors, accessors and validators return these sentinels (possibly
// wrapped with call-site context); tests check them via errors.Is.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." so it is easy to grep in logs.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, they never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrRaggedRows indicates that FromRows received rows of different lengths.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")

	// ErrNegativeEntry signals a negative value where only non-negative
	// weights (costs, durations) are allowed.
	ErrNegativeEntry = errors.New("matrix: negative entry")
)
