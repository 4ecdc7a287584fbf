// SPDX-License-Identifier: MIT

package solver_test

import (
	"fmt"

	"github.com/katalvlaran/lvlsparse/solver"
	"github.com/katalvlaran/lvlsparse/triplet"
)

// ExampleVerifyLinSys checks a candidate solution against its system:
// the residual diagnostics are backend-independent, so they run anywhere.
func ExampleVerifyLinSys() {
	// A = | 2 1 |, x = [1, 2], b = A·x = [4, 8].
	//     | 0 4 |
	tr, _ := triplet.New(2, 2, 3)
	_ = tr.Put(0, 0, 2)
	_ = tr.Put(0, 1, 1)
	_ = tr.Put(1, 1, 4)

	v, _ := solver.VerifyLinSys(tr, []float64{1, 2}, []float64{4, 8})

	fmt.Printf("max|A| = %.0f\n", v.MaxAbsA)
	fmt.Printf("max|A·x - b| = %.0f\n", v.MaxAbsDiff)
	fmt.Printf("relative error = %.0f\n", v.RelativeError)
	// Output:
	// max|A| = 4
	// max|A·x - b| = 0
	// relative error = 0
}

// ExampleWithOrdering shows how functional options shape a configuration
// before it reaches a backend.
func ExampleWithOrdering() {
	cfg := solver.DefaultConfig()
	fmt.Println("default:", cfg.Ordering, cfg.Scaling, cfg.Symmetry)

	// Options are applied by solver.New; they validate on construction.
	opts := []solver.Option{
		solver.WithOrdering(solver.OrderingMetis),
		solver.WithScaling(solver.ScalingNo),
		solver.WithSymmetry(solver.SymmetryGeneral),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	fmt.Println("chosen: ", cfg.Ordering, cfg.Scaling, cfg.Symmetry)
	// Output:
	// default: Auto Auto No
	// chosen:  Metis No General
}
