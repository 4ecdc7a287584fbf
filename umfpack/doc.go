// Package umfpack binds the UMFPACK sparse direct solver (SuiteSparse)
// as a lvlsparse solver backend.
//
// What & Why:
//
//	UMFPACK performs the actual engineering — elimination ordering,
//	symbolic analysis, pivoting, multifrontal LU factorization. This
//	package is the thin layer on top: it owns one handle per Solver
//	(compressed-column arrays plus the opaque Symbolic and Numeric
//	objects), converts the caller's triplet input through
//	umfpack_di_triplet_to_col on every factorization (duplicate entries
//	summed by the library), and passes UMFPACK's status codes through
//	verbatim.
//
// Lifecycle:
//
//	New → Initialize (arrays allocated once, configuration applied)
//	    → Factorize (repeatable; prior Symbolic/Numeric replaced)
//	    → Solve (any number of times)
//	    → Free (numeric, then symbolic, then arrays; idempotent).
//
// Building requires the SuiteSparse development headers and libumfpack
// (Debian/Ubuntu: libsuitesparse-dev; macOS: brew install suite-sparse).
//
// A Solver is not safe for concurrent use: Factorize mutates the owned
// arrays and opaque states in place, and Solve reads them without copying.
package umfpack
