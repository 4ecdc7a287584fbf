// Package triplet_test contains unit tests for triplet Matrix construction,
// mutation and the multiply surface.
package triplet_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsparse/triplet"
)

// TestNew_BadDims verifies that non-positive shapes or capacities are
// rejected with ErrBadDims before any allocation happens.
func TestNew_BadDims(t *testing.T) {
	for _, tc := range []struct {
		name    string
		m, n, k int
	}{
		{"zero rows", 0, 3, 1},
		{"zero cols", 3, 0, 1},
		{"zero max", 3, 3, 0},
		{"negative rows", -1, 3, 1},
		{"negative max", 3, 3, -5},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := triplet.New(tc.m, tc.n, tc.k)
			assert.ErrorIs(t, err, triplet.ErrBadDims)
		})
	}
}

// TestPut_BoundsAndCapacity exercises the three Put failure modes:
// out-of-range indices, non-finite values, and exhausted capacity.
func TestPut_BoundsAndCapacity(t *testing.T) {
	tr, err := triplet.New(2, 2, 1)
	require.NoError(t, err)

	assert.ErrorIs(t, tr.Put(-1, 0, 1.0), triplet.ErrOutOfRange, "negative row")
	assert.ErrorIs(t, tr.Put(0, 2, 1.0), triplet.ErrOutOfRange, "column == n")
	assert.ErrorIs(t, tr.Put(0, 0, math.NaN()), triplet.ErrNaNInf, "NaN value")
	assert.ErrorIs(t, tr.Put(0, 0, math.Inf(1)), triplet.ErrNaNInf, "+Inf value")

	require.NoError(t, tr.Put(1, 1, 3.5))
	assert.Equal(t, 1, tr.Len())

	assert.ErrorIs(t, tr.Put(0, 0, 1.0), triplet.ErrMatrixFull, "capacity exhausted")
}

// TestReset_ReusesAllocation verifies that Reset forgets entries but keeps
// shape and capacity, so the matrix can be re-assembled.
func TestReset_ReusesAllocation(t *testing.T) {
	tr, err := triplet.New(3, 3, 2)
	require.NoError(t, err)

	require.NoError(t, tr.Put(0, 0, 1))
	require.NoError(t, tr.Put(2, 2, 2))
	require.Equal(t, 2, tr.Len())

	tr.Reset()
	assert.Equal(t, 0, tr.Len())
	assert.Equal(t, 2, tr.Max())

	// After Reset the full capacity is available again, possibly with a
	// different sparsity pattern.
	require.NoError(t, tr.Put(1, 0, 4))
	require.NoError(t, tr.Put(0, 1, 5))
	assert.ErrorIs(t, tr.Put(2, 2, 6), triplet.ErrMatrixFull)
}

// TestMulVec_SumsDuplicates verifies that MulVec accumulates duplicate
// (i, j) entries exactly as if they had been summed beforehand.
func TestMulVec_SumsDuplicates(t *testing.T) {
	// A = [2 0; 0 3], with a22 assembled as 1+2 over two entries.
	tr, err := triplet.New(2, 2, 3)
	require.NoError(t, err)
	require.NoError(t, tr.Put(0, 0, 2))
	require.NoError(t, tr.Put(1, 1, 1))
	require.NoError(t, tr.Put(1, 1, 2))

	dst := make([]float64, 2)
	require.NoError(t, tr.MulVec(dst, []float64{1, 1}))
	assert.InDelta(t, 2.0, dst[0], 1e-15)
	assert.InDelta(t, 3.0, dst[1], 1e-15)
}

// TestMulVec_DimensionMismatch verifies fail-fast validation of vector
// lengths against the matrix shape.
func TestMulVec_DimensionMismatch(t *testing.T) {
	tr, err := triplet.New(2, 3, 1)
	require.NoError(t, err)

	assert.ErrorIs(t, tr.MulVec(make([]float64, 2), make([]float64, 2)), triplet.ErrDimensionMismatch)
	assert.ErrorIs(t, tr.MulVec(make([]float64, 3), make([]float64, 3)), triplet.ErrDimensionMismatch)
}

// TestAccessors_AliasFilledPrefix verifies that RowIndices/ColIndices/Values
// expose exactly the filled prefix.
func TestAccessors_AliasFilledPrefix(t *testing.T) {
	tr, err := triplet.New(4, 4, 8)
	require.NoError(t, err)
	require.NoError(t, tr.Put(3, 1, -1.5))
	require.NoError(t, tr.Put(0, 2, 2.5))

	assert.Equal(t, []int32{3, 0}, tr.RowIndices())
	assert.Equal(t, []int32{1, 2}, tr.ColIndices())
	assert.Equal(t, []float64{-1.5, 2.5}, tr.Values())
}

// TestNilReceiver verifies nil-receiver behavior on the mutation surface.
func TestNilReceiver(t *testing.T) {
	var tr *triplet.Matrix
	assert.ErrorIs(t, tr.Put(0, 0, 1), triplet.ErrNilMatrix)
	assert.ErrorIs(t, tr.MulVec(nil, nil), triplet.ErrNilMatrix)
	_, err := tr.ToCCS()
	assert.ErrorIs(t, err, triplet.ErrNilMatrix)
	tr.Reset() // must not panic
}
