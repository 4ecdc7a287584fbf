// SPDX-License-Identifier: MIT
// Package reorder: sentinel error set.

package reorder

import "errors"

var (
	// ErrNilMatrix indicates a nil matrix argument.
	ErrNilMatrix = errors.New("reorder: nil matrix")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("reorder: matrix is not square")

	// ErrBadPerm indicates a permutation whose length or contents do not
	// match the matrix it is applied to.
	ErrBadPerm = errors.New("reorder: invalid permutation")
)
