// Package mumps binds the MUMPS multifrontal sparse direct solver as a
// lvlsparse solver backend.
//
// What & Why:
//
//	MUMPS consumes the assembled matrix directly in triplet form with
//	one-based indices, so unlike the UMFPACK binding there is no
//	compressed-column conversion here: Factorize copies the caller's
//	entries into the handle's one-based C arrays (allocated once at
//	Initialize) and runs analysis plus numeric factorization in a single
//	job. Duplicate (i, j) entries are summed by MUMPS itself — the
//	assembled-format contract matches the triplet contract exactly.
//
//	Status codes are INFOG(1) values passed through verbatim: 0 success,
//	negative errors (−6/−10 singular), positive warnings.
//
// Symmetric modes:
//
//	With SymmetryPosDef or SymmetryGeneral, MUMPS expects only the lower
//	triangle to be supplied. The binding forwards entries as given; the
//	caller owns that contract.
//
// Building requires the sequential MUMPS development files
// (Debian/Ubuntu: libmumps-seq-dev).
//
// A Solver is not safe for concurrent use without external locking.
package mumps
