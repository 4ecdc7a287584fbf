// Package solver_test contains unit tests for residual verification.
package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsparse/solver"
	"github.com/katalvlaran/lvlsparse/triplet"
)

// TestVerifyLinSys_ExactSolution checks that an exact solution reports a
// zero residual.
func TestVerifyLinSys_ExactSolution(t *testing.T) {
	// A = diag(2, 3), x = [1, 1], rhs = [2, 3].
	tr, err := triplet.New(2, 2, 2)
	require.NoError(t, err)
	require.NoError(t, tr.Put(0, 0, 2))
	require.NoError(t, tr.Put(1, 1, 3))

	v, err := solver.VerifyLinSys(tr, []float64{1, 1}, []float64{2, 3})
	require.NoError(t, err)

	assert.InDelta(t, 3.0, v.MaxAbsA, 1e-15)
	assert.InDelta(t, 3.0, v.MaxAbsAx, 1e-15)
	assert.InDelta(t, 0.0, v.MaxAbsDiff, 1e-15)
	assert.InDelta(t, 0.0, v.RelativeError, 1e-15)
}

// TestVerifyLinSys_Residual checks the normalization with rhs = [0, 0],
// which makes the residual equal A·x itself.
func TestVerifyLinSys_Residual(t *testing.T) {
	tr, err := triplet.New(2, 2, 2)
	require.NoError(t, err)
	require.NoError(t, tr.Put(0, 0, 2))
	require.NoError(t, tr.Put(1, 1, 3))

	v, err := solver.VerifyLinSys(tr, []float64{1, 1}, []float64{0, 0})
	require.NoError(t, err)
	assert.InDelta(t, 3.0, v.MaxAbsDiff, 1e-15)
	assert.InDelta(t, 3.0/4.0, v.RelativeError, 1e-15) // 3 / (maxAbsA + 1)
}

// TestVerifyLinSys_Validation covers nil, non-square and mismatched inputs.
func TestVerifyLinSys_Validation(t *testing.T) {
	_, err := solver.VerifyLinSys(nil, nil, nil)
	assert.ErrorIs(t, err, solver.ErrNilTriplet)

	rect, err := triplet.New(2, 3, 1)
	require.NoError(t, err)
	_, err = solver.VerifyLinSys(rect, make([]float64, 3), make([]float64, 2))
	assert.ErrorIs(t, err, solver.ErrBadDims)

	sq, err := triplet.New(2, 2, 1)
	require.NoError(t, err)
	_, err = solver.VerifyLinSys(sq, make([]float64, 1), make([]float64, 2))
	assert.ErrorIs(t, err, solver.ErrDimensionMismatch)
}
