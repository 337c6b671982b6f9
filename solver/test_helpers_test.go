// SPDX-License-Identifier: MIT
// Package solver_test contains shared fixtures for the solver backends.
//
// Purpose:
//   - One diagonally dominant 5x5 system with a hand-computed right-hand
//     side, reused by the host and device backends so their solutions
//     are directly comparable.
//   - Small helpers for staging vectors and reading solutions back.

package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ASunil-17/ReSolveTesting/matrix"
	"github.com/ASunil-17/ReSolveTesting/memory"
	"github.com/ASunil-17/ReSolveTesting/vector"
)

// testSolution is the solution of the fixture system.
var testSolution = []float64{1, 2, 3, 4, 5}

// testRhs is A * testSolution for the fixture matrix.
var testRhs = []float64{14, 24, 36, 46, 31}

// newTestMatrix returns the diagonally dominant 5x5 CSR fixture:
//
//	[10 2  .  .  .]
//	[ 3 9  1  .  .]
//	[ . 2  8  2  .]
//	[ . .  1  7  3]
//	[ 1 .  .  .  6]
func newTestMatrix() *matrix.Sparse {
	return matrix.NewCsrFromArrays(5, 5, 13,
		[]int{0, 2, 5, 8, 11, 13},
		[]int{0, 1, 0, 1, 2, 1, 2, 3, 2, 3, 4, 0, 4},
		[]float64{10, 2, 3, 9, 1, 2, 8, 2, 1, 7, 3, 1, 6})
}

// newRhsVector wraps testRhs in a host-fresh vector.
func newRhsVector(t *testing.T) *vector.Vector {
	t.Helper()
	v := vector.New(len(testRhs))
	require.NoError(t, v.CopyDataFrom(testRhs, memory.Host, memory.Host))
	return v
}

// requireSolution syncs v to the host and compares it to want entrywise.
func requireSolution(t *testing.T, v *vector.Vector, want []float64, tol float64) {
	t.Helper()
	require.NoError(t, v.SyncData(memory.Host))
	got := v.Data(memory.Host)
	require.Len(t, got, len(want))
	for i := range want {
		require.InDelta(t, want[i], got[i], tol, "component %d", i)
	}
}

// scaleValues multiplies every host value of a by f and marks the host
// copy fresh, the way a simulation step updates matrix values in place.
func scaleValues(a *matrix.Sparse, f float64) {
	vals := a.ValueData(memory.Host)
	for i := range vals {
		vals[i] *= f
	}
	a.SetUpdated(memory.Host)
}
