// Package solver_test contains unit tests for the closed enumerations and
// option constructors.
package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlsparse/solver"
)

// TestEnums_Valid walks every member of each closed enumeration and checks
// membership plus a non-"Unknown" name; out-of-range values must fail both.
func TestEnums_Valid(t *testing.T) {
	for _, s := range []solver.Symmetry{solver.SymmetryNo, solver.SymmetryPosDef, solver.SymmetryGeneral} {
		assert.True(t, s.Valid(), s.String())
		assert.NotEqual(t, "Unknown", s.String())
	}
	assert.False(t, solver.Symmetry(-1).Valid())
	assert.False(t, solver.Symmetry(99).Valid())
	assert.Equal(t, "Unknown", solver.Symmetry(99).String())

	orderings := []solver.Ordering{
		solver.OrderingAuto, solver.OrderingAmd, solver.OrderingAmf,
		solver.OrderingBest, solver.OrderingCholmod, solver.OrderingMetis,
		solver.OrderingNo, solver.OrderingPord, solver.OrderingQamd,
	}
	for _, o := range orderings {
		assert.True(t, o.Valid(), o.String())
		assert.NotEqual(t, "Unknown", o.String())
	}
	assert.False(t, solver.Ordering(-1).Valid())
	assert.False(t, solver.Ordering(99).Valid())

	scalings := []solver.Scaling{
		solver.ScalingAuto, solver.ScalingColumn, solver.ScalingDiagonal,
		solver.ScalingMax, solver.ScalingNo, solver.ScalingRowCol,
		solver.ScalingRowColIter, solver.ScalingRowColRig, solver.ScalingSum,
	}
	for _, s := range scalings {
		assert.True(t, s.Valid(), s.String())
		assert.NotEqual(t, "Unknown", s.String())
	}
	assert.False(t, solver.Scaling(-1).Valid())
	assert.False(t, solver.Scaling(99).Valid())
}

// TestDefaultConfig pins the documented defaults.
func TestDefaultConfig(t *testing.T) {
	cfg := solver.DefaultConfig()
	assert.Equal(t, solver.SymmetryNo, cfg.Symmetry)
	assert.Equal(t, solver.OrderingAuto, cfg.Ordering)
	assert.Equal(t, solver.ScalingAuto, cfg.Scaling)
	assert.False(t, cfg.Verbose)
}

// TestOptions_PanicOnInvalidEnum verifies that WithX constructors reject
// out-of-range selections eagerly (programmer error).
func TestOptions_PanicOnInvalidEnum(t *testing.T) {
	assert.Panics(t, func() { solver.WithSymmetry(solver.Symmetry(42)) })
	assert.Panics(t, func() { solver.WithOrdering(solver.Ordering(-3)) })
	assert.Panics(t, func() { solver.WithScaling(solver.Scaling(42)) })
}

// TestClass_String pins the taxonomy names used in logs.
func TestClass_String(t *testing.T) {
	assert.Equal(t, "OK", solver.ClassOK.String())
	assert.Equal(t, "Warning", solver.ClassWarning.String())
	assert.Equal(t, "Numerical", solver.ClassNumerical.String())
	assert.Equal(t, "Fatal", solver.ClassFatal.String())
	assert.Equal(t, "Unknown", solver.Class(99).String())
}
