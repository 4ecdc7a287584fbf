// SPDX-License-Identifier: MIT
// Package solver: closed configuration enums, the backend-native status
// Code, and the structured result Class.

package solver

// Symmetry is the matrix symmetry hint forwarded to the backend.
type Symmetry int

const (
	// SymmetryNo marks an unsymmetric matrix.
	SymmetryNo Symmetry = iota

	// SymmetryPosDef marks a positive-definite symmetric matrix.
	SymmetryPosDef

	// SymmetryGeneral marks a general symmetric matrix.
	SymmetryGeneral

	symmetryEnd // keep last: range sentinel for Valid
)

// String returns a human-readable symmetry name.
func (s Symmetry) String() string {
	switch s {
	case SymmetryNo:
		return "No"
	case SymmetryPosDef:
		return "PosDef"
	case SymmetryGeneral:
		return "General"
	default:
		return "Unknown"
	}
}

// Valid reports whether s is a member of the closed enumeration.
// Complexity: O(1).
func (s Symmetry) Valid() bool { return s >= SymmetryNo && s < symmetryEnd }

// Ordering selects the elimination-ordering heuristic. The set is the
// union of what the supported backends offer; each backend rejects the
// members it cannot honor at Initialize time.
type Ordering int

const (
	// OrderingAuto lets the backend pick (UMFPACK: its default strategy,
	// MUMPS: automatic selection).
	OrderingAuto Ordering = iota

	// OrderingAmd is the approximate minimum degree ordering.
	OrderingAmd

	// OrderingAmf is the approximate minimum fill-in ordering (MUMPS).
	OrderingAmf

	// OrderingBest tries several methods and keeps the best (UMFPACK).
	OrderingBest

	// OrderingCholmod uses AMD for symmetric, COLAMD for unsymmetric, or
	// METIS (UMFPACK).
	OrderingCholmod

	// OrderingMetis is the nested-dissection ordering by Karypis & Kumar.
	OrderingMetis

	// OrderingNo factorizes the matrix as-is, singletons removed (UMFPACK).
	OrderingNo

	// OrderingPord is the ordering by Schulze, University of Paderborn (MUMPS).
	OrderingPord

	// OrderingQamd uses automatic quasi-dense row detection (MUMPS).
	OrderingQamd

	orderingEnd // keep last: range sentinel for Valid
)

// String returns a human-readable ordering name.
func (o Ordering) String() string {
	switch o {
	case OrderingAuto:
		return "Auto"
	case OrderingAmd:
		return "Amd"
	case OrderingAmf:
		return "Amf"
	case OrderingBest:
		return "Best"
	case OrderingCholmod:
		return "Cholmod"
	case OrderingMetis:
		return "Metis"
	case OrderingNo:
		return "No"
	case OrderingPord:
		return "Pord"
	case OrderingQamd:
		return "Qamd"
	default:
		return "Unknown"
	}
}

// Valid reports whether o is a member of the closed enumeration.
// Complexity: O(1).
func (o Ordering) Valid() bool { return o >= OrderingAuto && o < orderingEnd }

// Scaling selects the row/column scaling applied before factorization.
// Like Ordering, the set is the union across backends.
type Scaling int

const (
	// ScalingAuto lets the backend pick.
	ScalingAuto Scaling = iota

	// ScalingColumn scales columns (MUMPS).
	ScalingColumn

	// ScalingDiagonal scales by the diagonal (MUMPS).
	ScalingDiagonal

	// ScalingMax scales rows by their maximum absolute value (UMFPACK).
	ScalingMax

	// ScalingNo disables scaling.
	ScalingNo

	// ScalingRowCol scales rows and columns by infinite norms (MUMPS).
	ScalingRowCol

	// ScalingRowColIter is simultaneous iterative row/column scaling (MUMPS).
	ScalingRowColIter

	// ScalingRowColRig is the rigorous (more expensive) variant of
	// ScalingRowColIter (MUMPS).
	ScalingRowColRig

	// ScalingSum scales rows by the sum of absolute values (UMFPACK).
	ScalingSum

	scalingEnd // keep last: range sentinel for Valid
)

// String returns a human-readable scaling name.
func (s Scaling) String() string {
	switch s {
	case ScalingAuto:
		return "Auto"
	case ScalingColumn:
		return "Column"
	case ScalingDiagonal:
		return "Diagonal"
	case ScalingMax:
		return "Max"
	case ScalingNo:
		return "No"
	case ScalingRowCol:
		return "RowCol"
	case ScalingRowColIter:
		return "RowColIter"
	case ScalingRowColRig:
		return "RowColRig"
	case ScalingSum:
		return "Sum"
	default:
		return "Unknown"
	}
}

// Valid reports whether s is a member of the closed enumeration.
// Complexity: O(1).
func (s Scaling) Valid() bool { return s >= ScalingAuto && s < scalingEnd }

// Code is a backend-native status code passed through verbatim: 0 means
// success, everything else is interpreted only by the backend that
// produced it (Classify/CodeString). Shim-level conditions that occur
// before the vendor library is ever reached use the reserved large values
// below, far outside any vendor vocabulary.
type Code int32

const (
	// CodeOK denotes success in every backend vocabulary.
	CodeOK Code = 0

	// CodeNullPointer reports an operation on an absent (freed or never
	// initialized) handle.
	CodeNullPointer Code = 100000

	// CodeMalloc reports an allocation failure during Initialize; partial
	// allocations from that call were already rolled back.
	CodeMalloc Code = 200000

	// CodeBadConfig reports an enum selection the backend does not support.
	CodeBadConfig Code = 300000

	// CodeBadDims reports dimensions the backend cannot accept (n < 0 or
	// nnz < 0, or a triplet that disagrees with the initialized sizes).
	CodeBadDims Code = 400000
)

// Class is the structured interpretation of a Code, produced by the
// backend that owns the vocabulary. The raw Code is always preserved next
// to it — Class is ergonomics, not a replacement.
type Class int

const (
	// ClassOK: success.
	ClassOK Class = iota

	// ClassWarning: the operation succeeded with a vendor warning
	// (positive MUMPS INFOG(1), UMFPACK warnings). Treated as success by
	// LinSolver, surfaced through the logger in verbose mode.
	ClassWarning

	// ClassNumerical: a recoverable numerical issue — typically a singular
	// or near-singular matrix. Retrying with different ordering/scaling or
	// a fixed matrix is legitimate.
	ClassNumerical

	// ClassFatal: invalid input, out of memory, or an internal vendor
	// error. The handle should be freed.
	ClassFatal
)

// String returns a human-readable class name.
func (c Class) String() string {
	switch c {
	case ClassOK:
		return "OK"
	case ClassWarning:
		return "Warning"
	case ClassNumerical:
		return "Numerical"
	case ClassFatal:
		return "Fatal"
	default:
		return "Unknown"
	}
}
