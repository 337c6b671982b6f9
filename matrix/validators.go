// SPDX-License-Identifier: MIT
// Package matrix: canonical precondition checks.
//
// Purpose:
//   - Keep converter and handler entry points minimal by centralizing the
//     assertion-class checks here.
//   - These guard programmer errors (the taxonomy's non-recoverable
//     class), so violations panic instead of returning an error.

package matrix

import "fmt"

// mustNotBeNil panics if s is nil.
func mustNotBeNil(s *Sparse, name string) {
	if s == nil {
		panic(fmt.Sprintf("matrix: %s is nil", name))
	}
}

// mustHaveFormat panics unless s carries the expected format tag.
func mustHaveFormat(s *Sparse, want Format, name string) {
	if s.format != want {
		panic(fmt.Sprintf("matrix: %s must be %s, got %s", name, want, s.format))
	}
}

// mustMatchShape panics unless a and b agree on shape and nonzero count.
func mustMatchShape(a, b *Sparse) {
	if a.rows != b.rows || a.cols != b.cols {
		panic(fmt.Sprintf("matrix: shape mismatch %dx%d vs %dx%d", a.rows, a.cols, b.rows, b.cols))
	}
	if a.nnz != b.nnz {
		panic(fmt.Sprintf("matrix: nnz mismatch %d vs %d", a.nnz, b.nnz))
	}
}

// ValidatePtr checks the CSR/CSC pointer-array invariant on the host copy:
// monotonically non-decreasing, ptr[0] == 0, ptr[last] == nnz. It returns
// false for COO or unallocated matrices. Used by solver analysis, where a
// malformed matrix is a runtime condition, not a programmer error.
func ValidatePtr(s *Sparse) bool {
	if s == nil || s.format == COO || s.ptr == nil {
		return false
	}
	if s.ptr[0] != 0 || s.ptr[len(s.ptr)-1] != s.nnz {
		return false
	}
	for i := 1; i < len(s.ptr); i++ {
		if s.ptr[i] < s.ptr[i-1] {
			return false
		}
	}
	return true
}
