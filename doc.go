// Package lvlsparse binds sparse direct linear-solver libraries (UMFPACK,
// MUMPS) to Go, exposing factorization and solve services for large sparse
// systems A·x = b.
//
// 🚀 What is lvlsparse?
//
//	A thin, faithful binding layer plus the supporting sparse plumbing:
//		• triplet/  — sparse matrices in triplet (COO) form + CCS conversion
//		• solver/   — the solver contract: config enums, options, status codes,
//		              structured results, residual verification
//		• umfpack/  — cgo binding to UMFPACK (SuiteSparse)
//		• mumps/    — cgo binding to MUMPS
//		• dense/    — dense cross-check helpers on top of gonum
//		• reorder/  — pure-Go reverse Cuthill–McKee permutations
//		• mmarket/  — Matrix Market file I/O
//		• logger/   — zerolog-backed diagnostics for verbose mode
//
// ✨ Why choose lvlsparse?
//
//   - Faithful – library status codes pass through verbatim; the solver
//     facade translates them into structured errors for ergonomic handling
//   - Explicit lifecycles – every handle allocates once, frees once, in
//     dependency order; double-free is safe
//   - No magic – ordering/scaling/symmetry are closed enums validated at
//     the boundary, never indexed past a table
//
// The heavy lifting (symbolic analysis, elimination ordering, pivoting,
// numeric factorization) stays inside the vendor libraries; this module
// never reimplements it.
//
// Quick sketch:
//
//	t, _ := triplet.New(2, 2, 2)
//	_ = t.Put(0, 0, 2)
//	_ = t.Put(1, 1, 3)
//
//	s := umfpack.New()
//	ls, err := solver.New(s, 2, 2, solver.WithOrdering(solver.OrderingMetis))
//	// ls.Factorize(t), ls.Solve(x, rhs), ls.Free()
//
//	go get github.com/katalvlaran/lvlsparse
package lvlsparse
