//go:build cgo

// SPDX-License-Identifier: MIT
// Package mumps: closed mapping tables between the solver enums and the
// ICNTL vocabulary, plus the INFOG(1) status-code rendering. Selections
// outside a table are rejected at the boundary, never indexed past it.

package mumps

/*
#cgo CFLAGS: -I/usr/include/mumps_seq -I/usr/local/include/mumps_seq

#include "dmumps_c.h"
*/
import "C"

import (
	"fmt"

	"github.com/katalvlaran/lvlsparse/solver"
)

// ICNTL(7) ordering selectors, as the MUMPS documentation numbers them.
const (
	icntl7Amd   C.MUMPS_INT = 0
	icntl7Amf   C.MUMPS_INT = 2
	icntl7Pord  C.MUMPS_INT = 4
	icntl7Metis C.MUMPS_INT = 5
	icntl7Qamd  C.MUMPS_INT = 6
	icntl7Auto  C.MUMPS_INT = 7
)

// ICNTL(8) scaling selectors.
const (
	icntl8No         C.MUMPS_INT = 0
	icntl8Diagonal   C.MUMPS_INT = 1
	icntl8Column     C.MUMPS_INT = 3
	icntl8RowCol     C.MUMPS_INT = 4
	icntl8RowColIter C.MUMPS_INT = 7
	icntl8RowColRig  C.MUMPS_INT = 8
	icntl8Auto       C.MUMPS_INT = 77
)

// symmetryOf maps the symmetry hint onto the sym field of the instance.
// MUMPS distinguishes positive-definite (1) from general symmetric (2),
// so the mapping is total.
func symmetryOf(s solver.Symmetry) (C.MUMPS_INT, bool) {
	switch s {
	case solver.SymmetryNo:
		return 0, true
	case solver.SymmetryPosDef:
		return 1, true
	case solver.SymmetryGeneral:
		return 2, true
	default:
		return 0, false
	}
}

// orderingOf maps the requested ordering onto ICNTL(7).
// Best, Cholmod and No belong to UMFPACK and are rejected here.
func orderingOf(o solver.Ordering) (C.MUMPS_INT, bool) {
	switch o {
	case solver.OrderingAuto:
		return icntl7Auto, true
	case solver.OrderingAmd:
		return icntl7Amd, true
	case solver.OrderingAmf:
		return icntl7Amf, true
	case solver.OrderingMetis:
		return icntl7Metis, true
	case solver.OrderingPord:
		return icntl7Pord, true
	case solver.OrderingQamd:
		return icntl7Qamd, true
	default:
		return 0, false
	}
}

// scalingOf maps the requested scaling onto ICNTL(8).
// The UMFPACK-only members (Max, Sum) are rejected here.
func scalingOf(s solver.Scaling) (C.MUMPS_INT, bool) {
	switch s {
	case solver.ScalingAuto:
		return icntl8Auto, true
	case solver.ScalingColumn:
		return icntl8Column, true
	case solver.ScalingDiagonal:
		return icntl8Diagonal, true
	case solver.ScalingNo:
		return icntl8No, true
	case solver.ScalingRowCol:
		return icntl8RowCol, true
	case solver.ScalingRowColIter:
		return icntl8RowColIter, true
	case solver.ScalingRowColRig:
		return icntl8RowColRig, true
	default:
		return 0, false
	}
}

// CodeString renders a status code in the INFOG(1) vocabulary, covering
// the shim-level codes as well. Unknown values keep their number.
func (s *Solver) CodeString(code solver.Code) string {
	switch code {
	case solver.CodeOK:
		return "OK"
	case solver.CodeNullPointer:
		return "handle is absent (freed or not initialized)"
	case solver.CodeMalloc:
		return "allocation failed during initialize"
	case solver.CodeBadConfig:
		return "configuration not supported by MUMPS"
	case solver.CodeBadDims:
		return "dimensions disagree with the initialized handle"
	case -1:
		return "Error(-1): error on some processor"
	case -2:
		return "Error(-2): nnz out of range"
	case -3:
		return "Error(-3): MUMPS called with wrong job"
	case -4:
		return "Error(-4): error in permutation array"
	case -5:
		return "Error(-5): not enough memory for real workspace during analysis"
	case -6:
		return "Error(-6): matrix is singular in structure"
	case -7:
		return "Error(-7): not enough memory for integer workspace during analysis"
	case -8:
		return "Error(-8): integer workarray too small"
	case -9:
		return "Error(-9): real workarray too small"
	case -10:
		return "Error(-10): matrix is numerically singular"
	case -13:
		return "Error(-13): workspace allocation failed during factorization"
	case -16:
		return "Error(-16): n is out of range"
	case -19:
		return "Error(-19): maximum workspace size is too small"
	case -22:
		return "Error(-22): a pointer array is badly provided"
	case 1:
		return "Warning(+1): index out of range in irn or jcn"
	case 2:
		return "Warning(+2): solution max-norm small or iterative refinement diverged"
	case 4:
		return "Warning(+4): not enough memory to compress the matrix"
	case 8:
		return "Warning(+8): iterative refinement hit its iteration cap"
	default:
		return fmt.Sprintf("MUMPS INFOG(1) = %d", int32(code))
	}
}

// Classify maps the INFOG(1) vocabulary onto the structured taxonomy:
// structural (−6) and numerical (−10) singularity are the recoverable
// numerical results, positive codes are warnings, every other negative
// or shim-level code is fatal.
func (s *Solver) Classify(code solver.Code) solver.Class {
	switch {
	case code == solver.CodeOK:
		return solver.ClassOK
	case code == -6 || code == -10:
		return solver.ClassNumerical
	case code > solver.CodeOK && code < solver.CodeNullPointer:
		return solver.ClassWarning
	default:
		return solver.ClassFatal
	}
}
