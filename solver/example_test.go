// SPDX-License-Identifier: MIT

package solver_test

import (
	"fmt"
	"io"
	"os"

	"github.com/ASunil-17/ReSolveTesting/device"
	"github.com/ASunil-17/ReSolveTesting/logger"
	"github.com/ASunil-17/ReSolveTesting/matrix"
	"github.com/ASunil-17/ReSolveTesting/memory"
	"github.com/ASunil-17/ReSolveTesting/solver"
	"github.com/ASunil-17/ReSolveTesting/vector"
)

// ExampleHostDirect walks the full host lifecycle on a 3x3 system:
// setup, structural analysis, factorization, and a copying solve.
func ExampleHostDirect() {
	logger.SetOutput(io.Discard) // keep the construction summary out of the example output
	defer logger.SetOutput(os.Stderr)

	// [4 1 0]       [ 6]       [1]
	// [1 5 2] * x = [17]  =>   [2]
	// [0 2 6]       [22]       [3]
	a := matrix.NewCsrFromArrays(3, 3, 7,
		[]int{0, 2, 5, 7},
		[]int{0, 1, 0, 1, 2, 1, 2},
		[]float64{4, 1, 1, 5, 2, 2, 6})

	rhs := vector.New(3)
	_ = rhs.CopyDataFrom([]float64{6, 17, 22}, memory.Host, memory.Host)
	x := vector.New(3)

	s := solver.NewHostDirect()
	s.Setup(a, nil, nil, nil, nil, nil)
	s.Analyze()
	s.Factorize()
	s.SolveInto(rhs, x)

	sol := x.Data(memory.Host)
	fmt.Printf("x = [%.0f %.0f %.0f]\n", sol[0], sol[1], sol[2])
	// Output:
	// x = [1 2 3]
}

// ExampleDeviceRefactor shows the two-stage workflow: one host
// factorization seeds the device handle, after which updated values are
// handled by cheap refactorization instead of a new factorization.
func ExampleDeviceRefactor() {
	logger.SetOutput(io.Discard)
	defer logger.SetOutput(os.Stderr)

	a := matrix.NewCsrFromArrays(3, 3, 7,
		[]int{0, 2, 5, 7},
		[]int{0, 1, 0, 1, 2, 1, 2},
		[]float64{4, 1, 1, 5, 2, 2, 6})

	host := solver.NewHostDirect()
	host.Setup(a, nil, nil, nil, nil, nil)
	host.Analyze()
	host.Factorize()

	ws := device.NewWorkspace(device.NewReference())
	dev := solver.NewDeviceRefactor(ws)
	dev.Setup(a, host.LFactor(), host.UFactor(), host.POrdering(), host.QOrdering(), nil)

	// The matrix values change between steps; the pattern does not.
	vals := a.ValueData(memory.Host)
	for i := range vals {
		vals[i] *= 2
	}
	a.SetUpdated(memory.Host)
	dev.Refactorize()

	rhs := vector.New(3)
	_ = rhs.CopyDataFrom([]float64{12, 34, 44}, memory.Host, memory.Host)
	dev.Solve(rhs)
	_ = rhs.SyncData(memory.Host)

	sol := rhs.Data(memory.Host)
	fmt.Printf("x = [%.0f %.0f %.0f]\n", sol[0], sol[1], sol[2])
	// Output:
	// x = [1 2 3]
}
