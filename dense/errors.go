// SPDX-License-Identifier: MIT
// Package dense: sentinel error set.

package dense

import "errors"

var (
	// ErrBadShape is returned when requested dimensions are non-positive.
	ErrBadShape = errors.New("dense: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("dense: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions.
	ErrDimensionMismatch = errors.New("dense: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("dense: matrix is not square")

	// ErrSingular is returned when the dense LU solve fails or the matrix
	// is too ill-conditioned to trust.
	ErrSingular = errors.New("dense: singular or near-singular matrix")

	// ErrNilMatrix indicates a nil receiver or argument.
	ErrNilMatrix = errors.New("dense: nil matrix")
)
