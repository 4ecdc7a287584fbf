// SPDX-License-Identifier: MIT
// Package triplet: sentinel error set.
// All public entry points return these sentinels (possibly wrapped with
// fmt.Errorf("ctx: %w", ErrX)); tests match them via errors.Is. No public
// operation panics on user-triggered conditions.

package triplet

import "errors"

var (
	// ErrBadDims is returned when a requested shape or capacity is invalid
	// (rows <= 0, cols <= 0, or max <= 0).
	ErrBadDims = errors.New("triplet: invalid dimensions or capacity")

	// ErrOutOfRange indicates a row or column index outside [0, m) x [0, n).
	ErrOutOfRange = errors.New("triplet: index out of range")

	// ErrMatrixFull indicates that Put was called after max entries were
	// already stored. Reset or allocate a larger matrix.
	ErrMatrixFull = errors.New("triplet: all positions already used")

	// ErrNaNInf signals a NaN or ±Inf value where a finite value is required.
	ErrNaNInf = errors.New("triplet: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Matrix receiver or argument was used.
	ErrNilMatrix = errors.New("triplet: nil matrix")

	// ErrDimensionMismatch indicates incompatible vector lengths in MulVec.
	ErrDimensionMismatch = errors.New("triplet: dimension mismatch")
)
