// SPDX-License-Identifier: MIT
// Package dense: lab helpers — dense solve and vector utilities used to
// cross-check sparse factorizations on small systems.

package dense

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// SolveLinSys solves the dense square system a·x = b by LU factorization
// with partial pivoting and returns a freshly allocated solution vector.
//
// Stage 1 (Validate): a non-nil and square, len(b) == n.
// Stage 2 (Execute):  gonum LU factorize + triangular solves.
// Stage 3 (Finalize): a singular or hopelessly ill-conditioned matrix
// surfaces as ErrSingular (wrapping gonum's condition report).
// Complexity: O(n³) time, O(n²) space.
func SolveLinSys(a *Dense, b []float64) ([]float64, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	if a.r != a.c {
		return nil, ErrNonSquare
	}
	if len(b) != a.r {
		return nil, ErrDimensionMismatch
	}

	var lu mat.LU
	lu.Factorize(a.Mat())

	x := mat.NewVecDense(a.r, nil)
	if err := lu.SolveVecTo(x, false, mat.NewVecDense(a.r, b)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}

	out := make([]float64, a.r)
	copy(out, x.RawVector().Data)

	return out, nil
}

// MatVecMul computes dst = alpha·a·v.
// Stage 1 (Validate): shapes line up with dst and v.
// Stage 2 (Execute): row-major accumulation.
// Complexity: O(r*c).
func MatVecMul(dst []float64, alpha float64, a *Dense, v []float64) error {
	if a == nil {
		return ErrNilMatrix
	}
	if len(v) != a.c || len(dst) != a.r {
		return ErrDimensionMismatch
	}

	var i, j int
	var sum float64
	for i = 0; i < a.r; i++ {
		sum = 0
		for j = 0; j < a.c; j++ {
			sum += a.data[i*a.c+j] * v[j]
		}
		dst[i] = alpha * sum
	}

	return nil
}

// VecScale scales v in place by alpha.
// Complexity: O(n).
func VecScale(v []float64, alpha float64) {
	floats.Scale(alpha, v)
}

// VecMaxDiff returns max |u_i − v_i|, the infinity-norm distance used by
// solver cross-checks.
// Complexity: O(n).
func VecMaxDiff(u, v []float64) (float64, error) {
	if len(u) != len(v) {
		return 0, ErrDimensionMismatch
	}

	return floats.Distance(u, v, math.Inf(1)), nil
}
