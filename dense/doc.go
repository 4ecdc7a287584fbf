// Package dense provides the small dense-matrix surface the sparse solver
// stack leans on: a row-major Dense type, triplet expansion, and lab-style
// helpers (dense solve, matrix-vector products, vector utilities) backed
// by gonum.
//
// What & Why:
//
//	Direct sparse solvers are verified against dense ground truth on small
//	systems. Dense keeps the bounds-checked, error-returning surface of
//	the rest of the module, while the numerics underneath (LU with partial
//	pivoting for SolveLinSys) come from gonum.org/v1/gonum/mat — there is
//	no reason to hand-roll LAPACK-shaped code here.
//
// Complexity:
//
//	At/Set are O(1) with bounds checking. FromTriplet is O(r·c + nnz).
//	SolveLinSys is O(n³) — strictly a cross-check tool, never the way to
//	solve a large sparse system.
package dense
