// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the container, the converter and
// the handler. Errors live in errors.go, validation in validators.go, per
// the package conventions.

package matrix

// Format tags the storage scheme of a Sparse matrix.
type Format int

const (
	// CSR stores a row-pointer array of length rows+1, column indices and
	// values per nonzero.
	CSR Format = iota
	// CSC stores a column-pointer array of length cols+1, row indices and
	// values per nonzero.
	CSC
	// COO stores parallel row-index, column-index and value arrays of
	// length nnz. No solver backend accepts COO; it exists for ingestion
	// and is rejected by format switches as "unrecognized".
	COO
)

// String returns the conventional name of the format.
func (f Format) String() string {
	switch f {
	case CSR:
		return "csr"
	case CSC:
		return "csc"
	case COO:
		return "coo"
	default:
		return "invalid"
	}
}

// DeviceMem is the slice of a device workspace the container needs for
// device-side mirrors. *device.Workspace satisfies it.
type DeviceMem interface {
	AllocInts(n int) []int
	AllocFloats(n int) []float64
}
