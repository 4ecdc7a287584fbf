// SPDX-License-Identifier: MIT

// Package reorder computes fill-reducing row/column permutations for
// sparse matrices in triplet form.
//
// The centerpiece is Rcm, the reverse Cuthill–McKee ordering: a
// breadth-first traversal of the matrix's adjacency structure (the
// pattern of A + Aᵀ), visiting neighbors in increasing degree and
// reversing the visit order. The result is a symmetric permutation that
// tends to concentrate entries near the diagonal, shrinking the
// bandwidth a direct factorization has to sweep.
//
// Backends carry their own native orderings (AMD, METIS, PORD, …);
// Rcm is the pure-Go alternative for callers who want a permutation they
// can inspect, persist, or apply themselves via Apply.
package reorder
