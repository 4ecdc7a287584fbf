// SPDX-License-Identifier: MIT
// Package solver: residual verification of a computed solution.

package solver

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvlsparse/triplet"
)

// Verification summarizes how well x solves A·x = rhs. All norms are
// infinity norms (max absolute value).
type Verification struct {
	// MaxAbsA is max |a_ij| over the triplet entries.
	MaxAbsA float64

	// MaxAbsAx is max |(A·x)_i|.
	MaxAbsAx float64

	// MaxAbsDiff is max |(A·x)_i − rhs_i|, the raw residual.
	MaxAbsDiff float64

	// RelativeError is MaxAbsDiff / (MaxAbsA + 1), a dimensionless figure
	// stable even for tiny matrices.
	RelativeError float64
}

// VerifyLinSys computes the residual of x against the triplet matrix and
// right-hand side, multiplying directly in triplet form (duplicates summed
// by accumulation, no conversion needed).
//
// Stage 1 (Validate): t non-nil and square, len(x) == len(rhs) == n.
// Stage 2 (Execute):  ax = A·x, diff = ax − rhs, then the three norms.
// Stage 3 (Finalize): assemble the Verification report.
// Complexity: O(n + nnz).
func VerifyLinSys(t *triplet.Matrix, x, rhs []float64) (Verification, error) {
	if t == nil {
		return Verification{}, ErrNilTriplet
	}
	m, n := t.Dims()
	if m != n {
		return Verification{}, ErrBadDims
	}
	if len(x) != n || len(rhs) != n {
		return Verification{}, ErrDimensionMismatch
	}

	ax := make([]float64, n)
	if err := t.MulVec(ax, x); err != nil {
		return Verification{}, err
	}

	diff := make([]float64, n)
	floats.SubTo(diff, ax, rhs)

	inf := math.Inf(1)
	v := Verification{
		MaxAbsAx:   floats.Norm(ax, inf),
		MaxAbsDiff: floats.Norm(diff, inf),
	}
	if t.Len() > 0 {
		v.MaxAbsA = floats.Norm(t.Values(), inf)
	}
	v.RelativeError = v.MaxAbsDiff / (v.MaxAbsA + 1)

	return v, nil
}
