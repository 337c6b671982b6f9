// SPDX-License-Identifier: MIT
// Package matrix_test contains shared fixtures for the matrix package.
//
// Purpose:
//   - Provide small, deterministic sparse matrices with hand-checkable
//     kernel results (every row of the square fixture sums to RowSum).
//   - Provide a format-independent triple extraction so conversion tests
//     compare contents, never array layouts.

package matrix_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ASunil-17/ReSolveTesting/matrix"
	"github.com/ASunil-17/ReSolveTesting/memory"
)

// RowSum is the common row sum of the square fixture: its infinity norm,
// and the per-row result of a matvec against the all-ones vector.
const RowSum = 30.0

// newSquareCsr returns a 5x5 CSR matrix whose every row sums to RowSum.
func newSquareCsr() *matrix.Sparse {
	return matrix.NewCsrFromArrays(5, 5, 13,
		[]int{0, 3, 5, 10, 11, 13},
		[]int{0, 2, 4, 1, 3, 0, 1, 2, 3, 4, 3, 2, 4},
		[]float64{10, 10, 10, 15, 15, 6, 6, 6, 6, 6, 30, 15, 15})
}

// newTallCsc returns a 5x3 CSC matrix with distinct counting values.
func newTallCsc() *matrix.Sparse {
	return matrix.NewCscFromArrays(5, 3, 6,
		[]int{0, 2, 4, 6},
		[]int{0, 1, 1, 2, 2, 4},
		[]float64{1, 2, 3, 4, 5, 6})
}

// newWideCsr returns a 3x5 CSR matrix with distinct counting values.
func newWideCsr() *matrix.Sparse {
	return matrix.NewCsrFromArrays(3, 5, 6,
		[]int{0, 2, 4, 6},
		[]int{0, 1, 1, 2, 2, 4},
		[]float64{1, 2, 3, 4, 5, 6})
}

// triple is one nonzero in coordinate form.
type triple struct {
	row, col int
	val      float64
}

// hostTriples extracts the host-resident nonzeros of s in coordinate
// form, sorted by (row, col). Works for CSR and CSC.
func hostTriples(t *testing.T, s *matrix.Sparse) []triple {
	t.Helper()
	ptr := s.PtrData(memory.Host)
	idx := s.IdxData(memory.Host)
	vals := s.ValueData(memory.Host)
	require.NotNil(t, ptr, "fixture must be host-resident")

	out := make([]triple, 0, s.Nnz())
	for maj := 0; maj < len(ptr)-1; maj++ {
		for p := ptr[maj]; p < ptr[maj+1]; p++ {
			switch s.Format() {
			case matrix.CSR:
				out = append(out, triple{row: maj, col: idx[p], val: vals[p]})
			case matrix.CSC:
				out = append(out, triple{row: idx[p], col: maj, val: vals[p]})
			default:
				t.Fatalf("hostTriples: unsupported format %s", s.Format())
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].row != out[j].row {
			return out[i].row < out[j].row
		}
		return out[i].col < out[j].col
	})
	return out
}
