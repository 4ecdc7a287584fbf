// Package solver defines the contract between sparse-matrix callers and
// direct-solver backends (UMFPACK, MUMPS), plus an ergonomic facade that
// turns backend-native status codes into structured Go errors.
//
// 🚀 What lives here?
//
//   - Closed configuration enums — Symmetry, Ordering, Scaling — validated
//     at the boundary; backends reject selections they do not support
//     instead of indexing past a mapping table.
//   - Code: the backend-native integer status vocabulary, passed through
//     verbatim (0 == OK). Only the vendor library can classify its own
//     codes precisely, so the raw value is always preserved.
//   - Backend: the interface every binding implements. Four lifecycle
//     operations (Initialize, Factorize, Solve, Free) plus the
//     UsedOrdering/UsedScaling queries and the code-classification hooks.
//   - LinSolver: the layer above the raw binding. It enforces the handle
//     state machine (initialized → factorized → solve, Free terminal),
//     translates codes into sentinel errors (ErrSingular for recoverable
//     numerical issues, ErrBackend for fatal ones), and logs verbose-mode
//     diagnostics through lvlsparse/logger.
//   - VerifyLinSys: residual check of a computed solution straight from
//     triplet form.
//
// State machine (per handle):
//
//	Empty → Initialized → Factorized ⟲ → Destroyed
//
// Solve is only valid after a successful Factorize. Re-factorizing replaces
// the numeric (and symbolic) state; the binding redoes triplet conversion
// and symbolic analysis on every call, so supplying a structurally
// different matrix through the same slots is legal as long as the dimension
// and entry count are unchanged. Destroyed is terminal.
//
// Handles are single-threaded: Factorize mutates the owned arrays and
// opaque states in place and Solve reads them without copying. Callers
// needing concurrency must synchronize externally.
package solver
