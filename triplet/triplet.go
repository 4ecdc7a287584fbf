// SPDX-License-Identifier: MIT
// Package triplet: the Matrix type (COO storage) and its mutation surface.

package triplet

import "math"

// Matrix is a sparse matrix in triplet (COO) form with a fixed capacity.
// The three parallel slices are allocated exactly once by New and never
// resized; Put appends into the filled prefix [0, pos).
//
// Duplicate (i, j) positions are legal and are summed by ToCCS and MulVec.
// A Matrix is not safe for concurrent use without external locking.
type Matrix struct {
	m, n int       // shape: m rows, n columns
	max  int       // capacity: len(i) == len(j) == len(x) == max
	pos  int       // number of entries stored so far, pos <= max
	i    []int32   // row index per entry
	j    []int32   // column index per entry
	x    []float64 // value per entry
}

// New creates an m×n triplet matrix able to hold up to max entries.
// Stage 1 (Validate): m, n and max must be positive.
// Stage 2 (Prepare): allocate the three parallel slices, sized max.
// Stage 3 (Finalize): return the empty matrix (pos == 0).
// Complexity: O(max) time and memory.
func New(m, n, max int) (*Matrix, error) {
	if m <= 0 || n <= 0 || max <= 0 {
		return nil, ErrBadDims
	}

	return &Matrix{
		m:   m,
		n:   n,
		max: max,
		i:   make([]int32, max),
		j:   make([]int32, max),
		x:   make([]float64, max),
	}, nil
}

// Dims returns the shape (rows, cols).
// Complexity: O(1).
func (t *Matrix) Dims() (m, n int) { return t.m, t.n }

// Len returns the number of entries stored so far.
// Complexity: O(1).
func (t *Matrix) Len() int { return t.pos }

// Max returns the entry capacity fixed at construction.
// Complexity: O(1).
func (t *Matrix) Max() int { return t.max }

// Put appends one (i, j, v) entry. Duplicates at the same position are
// allowed; consumers sum them.
// Stage 1 (Validate): receiver present, indices in range, v finite, room left.
// Stage 2 (Execute): write into the parallel slices at pos and advance pos.
// Complexity: O(1).
func (t *Matrix) Put(i, j int, v float64) error {
	if t == nil {
		return ErrNilMatrix
	}
	if i < 0 || i >= t.m || j < 0 || j >= t.n {
		return ErrOutOfRange
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNaNInf
	}
	if t.pos == t.max {
		return ErrMatrixFull
	}

	t.i[t.pos] = int32(i)
	t.j[t.pos] = int32(j)
	t.x[t.pos] = v
	t.pos++

	return nil
}

// Reset forgets all stored entries while keeping the allocation, so the
// same matrix can be re-assembled (possibly with a different sparsity
// pattern — the shape and capacity stay fixed).
// Complexity: O(1).
func (t *Matrix) Reset() {
	if t == nil {
		return
	}
	t.pos = 0
}

// RowIndices returns the filled prefix of the row-index slice.
// The slice aliases internal storage; callers must not grow it.
// Complexity: O(1).
func (t *Matrix) RowIndices() []int32 { return t.i[:t.pos] }

// ColIndices returns the filled prefix of the column-index slice.
// The slice aliases internal storage; callers must not grow it.
// Complexity: O(1).
func (t *Matrix) ColIndices() []int32 { return t.j[:t.pos] }

// Values returns the filled prefix of the value slice.
// The slice aliases internal storage; callers must not grow it.
// Complexity: O(1).
func (t *Matrix) Values() []float64 { return t.x[:t.pos] }

// MulVec computes dst = A·v directly from the triplet entries, summing
// duplicate positions by construction of the accumulation loop.
// Stage 1 (Validate): receiver present, len(v) == n, len(dst) == m.
// Stage 2 (Execute): zero dst, then accumulate x[k]·v[j[k]] into dst[i[k]].
// Complexity: O(m + nnz).
func (t *Matrix) MulVec(dst, v []float64) error {
	if t == nil {
		return ErrNilMatrix
	}
	if len(v) != t.n || len(dst) != t.m {
		return ErrDimensionMismatch
	}

	for i := range dst {
		dst[i] = 0
	}
	var k int
	for k = 0; k < t.pos; k++ {
		dst[t.i[k]] += t.x[k] * v[t.j[k]]
	}

	return nil
}
