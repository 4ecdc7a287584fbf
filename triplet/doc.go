// Package triplet implements sparse matrices in triplet (COO) form:
// a list of (row, column, value) entries, duplicates allowed, plus the
// conversion into compressed-column (CCS) form that direct solvers consume.
//
// What & Why:
//
//	Triplet form is the natural assembly format: finite-element and circuit
//	codes emit one entry per contribution, often hitting the same (i, j)
//	position several times. The contract here mirrors what direct solvers
//	expect downstream — duplicate entries are summed when the matrix is
//	converted or multiplied, never rejected.
//
// Core operations:
//
//   - New(m, n, max)   — allocate a triplet with fixed capacity
//   - Put(i, j, v)     — append one entry (bounds- and NaN-checked)
//   - Reset()          — reuse the allocation for a new assembly pass
//   - MulVec(dst, v)   — y = A·v directly from triplet entries
//   - ToCCS()          — compressed-column conversion, duplicates summed,
//     row indices sorted within each column
//
// Index slices are int32 so cgo-backed solver bindings can hand them to a
// C `int` API without copying.
//
// Complexity:
//
//	Put and Reset are O(1). MulVec is O(nnz). ToCCS is O(nnz + n) plus an
//	O(k log k) sort per column of k entries.
package triplet
