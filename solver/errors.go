// SPDX-License-Identifier: MIT
// Package solver: sentinel error set for the LinSolver facade.
// The raw bindings speak Codes; this layer speaks errors. All sentinels
// are matched via errors.Is; fatal backend failures wrap ErrBackend with
// the code string so the verbatim code is never lost.

package solver

import "errors"

var (
	// ErrNilBackend indicates that New was given a nil Backend.
	ErrNilBackend = errors.New("solver: backend is nil")

	// ErrBadDims indicates n < 1 or nnz < 1 at New, or a triplet whose
	// shape/entry count disagrees with the initialized handle.
	ErrBadDims = errors.New("solver: invalid dimensions")

	// ErrNilTriplet indicates a nil *triplet.Matrix argument.
	ErrNilTriplet = errors.New("solver: triplet matrix is nil")

	// ErrInitialize indicates that the backend rejected Initialize; the
	// wrapped message carries the backend code. The handle performed its
	// internal rollback and New may be retried.
	ErrInitialize = errors.New("solver: backend initialization failed")

	// ErrSingular is the recoverable-numerical-issue result: the backend
	// reported a (structurally or numerically) singular matrix during
	// Factorize or Solve.
	ErrSingular = errors.New("solver: matrix is singular")

	// ErrBackend is the fatal result: invalid input, out of memory, or an
	// internal vendor error. The verbatim code is in the wrapping message.
	ErrBackend = errors.New("solver: backend failure")

	// ErrNotFactorized indicates Solve before a successful Factorize.
	// The contract makes this a checked precondition rather than undefined
	// behavior in the vendor library.
	ErrNotFactorized = errors.New("solver: factorize before solve")

	// ErrFreed indicates any operation after Free. Destroyed is terminal.
	ErrFreed = errors.New("solver: handle already freed")

	// ErrDimensionMismatch indicates solution/right-hand-side buffers whose
	// length differs from the system dimension.
	ErrDimensionMismatch = errors.New("solver: dimension mismatch")
)
