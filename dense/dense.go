// SPDX-License-Identifier: MIT
// Package dense: the row-major Dense type. A flat backing slice keeps the
// layout compatible with gonum's mat.Dense, so Mat() is a zero-copy view.

package dense

import (
	"github.com/katalvlaran/lvlsparse/triplet"
	"gonum.org/v1/gonum/mat"
)

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// New creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func New(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// FromTriplet expands a triplet matrix into dense storage, summing
// duplicate entries exactly as the sparse consumers do.
// Complexity: O(r*c + nnz).
func FromTriplet(t *triplet.Matrix) (*Dense, error) {
	if t == nil {
		return nil, ErrNilMatrix
	}
	m, n := t.Dims()
	d, err := New(m, n)
	if err != nil {
		return nil, err
	}

	ti, tj, tx := t.RowIndices(), t.ColIndices(), t.Values()
	var k int
	for k = 0; k < len(tx); k++ {
		d.data[int(ti[k])*n+int(tj[k])] += tx[k]
	}

	return d, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy, independent of the original.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	copy(cp.data, m.data)

	return cp
}

// Mat returns a gonum view sharing the backing storage (same row-major
// layout, no copy). Mutations through either side are visible to both.
// Complexity: O(1).
func (m *Dense) Mat() *mat.Dense {
	return mat.NewDense(m.r, m.c, m.data)
}
