// SPDX-License-Identifier: MIT
// Package triplet: compressed-column (CCS) form and the triplet→CCS
// conversion with duplicate summing.

package triplet

import "sort"

// CCS is a sparse matrix in compressed-column form: Ap[j]..Ap[j+1] delimits
// column j inside Ai (row indices, sorted ascending, unique per column) and
// Ax (values). len(Ap) == n+1; len(Ai) == len(Ax) == number of distinct
// positions after duplicate summing.
type CCS struct {
	M, N int
	Ap   []int32
	Ai   []int32
	Ax   []float64
}

// Nnz returns the number of stored (distinct) entries.
// Complexity: O(1).
func (c *CCS) Nnz() int { return len(c.Ai) }

// MulVec computes dst = A·v from the compressed form.
// Stage 1 (Validate): receiver present, len(v) == N, len(dst) == M.
// Stage 2 (Execute): column-major accumulation.
// Complexity: O(M + nnz).
func (c *CCS) MulVec(dst, v []float64) error {
	if c == nil {
		return ErrNilMatrix
	}
	if len(v) != c.N || len(dst) != c.M {
		return ErrDimensionMismatch
	}

	for i := range dst {
		dst[i] = 0
	}
	var j int
	var p int32
	for j = 0; j < c.N; j++ {
		for p = c.Ap[j]; p < c.Ap[j+1]; p++ {
			dst[c.Ai[p]] += c.Ax[p] * v[j]
		}
	}

	return nil
}

// colSegment sorts one column's (row, value) pairs in place by row index.
// It implements sort.Interface over a shared slice window so conversion
// avoids allocating a permutation per column.
type colSegment struct {
	ai []int32
	ax []float64
}

func (s colSegment) Len() int           { return len(s.ai) }
func (s colSegment) Less(a, b int) bool { return s.ai[a] < s.ai[b] }
func (s colSegment) Swap(a, b int) {
	s.ai[a], s.ai[b] = s.ai[b], s.ai[a]
	s.ax[a], s.ax[b] = s.ax[b], s.ax[a]
}

// ToCCS converts the triplet into compressed-column form.
// Duplicate (i, j) entries are summed; within each column the surviving row
// indices come out sorted ascending — the layout direct solvers require.
//
// Stage 1 (Validate): receiver present.
// Stage 2 (Count): one pass over entries counting per-column occupancy,
// turned into scatter offsets by prefix sum.
// Stage 3 (Scatter): copy every entry into its column window (rows still
// unsorted, duplicates still present).
// Stage 4 (Compact): sort each column window by row, then merge runs of
// equal rows by summing values; rebuild Ap over the compacted storage.
//
// The result shares no storage with the triplet; converting again after
// further Put calls is always safe (and is exactly what a solver binding
// does on every factorization).
// Complexity: O(nnz + n) plus O(k log k) per column of k raw entries.
func (t *Matrix) ToCCS() (*CCS, error) {
	if t == nil {
		return nil, ErrNilMatrix
	}

	// Count entries per column; count[j+1] holds the raw occupancy of column j.
	count := make([]int32, t.n+1)
	var k int
	for k = 0; k < t.pos; k++ {
		count[t.j[k]+1]++
	}

	// Prefix sum turns counts into the start offset of each column window.
	var j int
	for j = 0; j < t.n; j++ {
		count[j+1] += count[j]
	}

	// Scatter raw entries into their column windows.
	ai := make([]int32, t.pos)
	ax := make([]float64, t.pos)
	next := make([]int32, t.n)
	copy(next, count[:t.n])
	var dst int32
	for k = 0; k < t.pos; k++ {
		dst = next[t.j[k]]
		ai[dst] = t.i[k]
		ax[dst] = t.x[k]
		next[t.j[k]]++
	}

	// Sort each column by row and compact duplicate rows by summing.
	out := &CCS{M: t.m, N: t.n, Ap: make([]int32, t.n+1)}
	var lo, hi, w int32
	var p int32
	for j = 0; j < t.n; j++ {
		lo, hi = count[j], count[j+1]
		sort.Sort(colSegment{ai: ai[lo:hi], ax: ax[lo:hi]})

		out.Ap[j] = w
		for p = lo; p < hi; p++ {
			if p > lo && ai[p] == ai[p-1] {
				// Same position as the previous entry: accumulate.
				ax[w-1] += ax[p]

				continue
			}
			ai[w] = ai[p]
			ax[w] = ax[p]
			w++
		}
	}
	out.Ap[t.n] = w

	out.Ai = append([]int32(nil), ai[:w]...)
	out.Ax = append([]float64(nil), ax[:w]...)

	return out, nil
}
