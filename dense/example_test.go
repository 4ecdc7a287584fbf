// SPDX-License-Identifier: MIT

package dense_test

import (
	"fmt"

	"github.com/katalvlaran/lvlsparse/dense"
	"github.com/katalvlaran/lvlsparse/triplet"
)

// ExampleSolveLinSys expands a small triplet matrix to dense storage and
// solves it by LU, the pattern used to cross-check sparse backends.
func ExampleSolveLinSys() {
	tr, _ := triplet.New(2, 2, 3)
	_ = tr.Put(0, 0, 2)
	_ = tr.Put(1, 1, 4)
	_ = tr.Put(0, 1, 1)

	a, _ := dense.FromTriplet(tr)
	x, _ := dense.SolveLinSys(a, []float64{5, 8})

	fmt.Printf("x = [%.1f %.1f]\n", x[0], x[1])
	// Output:
	// x = [1.5 2.0]
}
