// SPDX-License-Identifier: MIT

// Package matrix: the backend-dispatching handler facade.
//
// Purpose:
//   - One entry point per kernel (matvec, inf-norm, csc2csr, transpose,
//     addConst), each taking a memory-space tag and returning 0 on
//     success, 1 on failure or unsupported space. No finer status exists.
//   - The host implementation is always present; a device implementation
//     exists only when the handler was constructed with a workspace.
//     Dispatch is a switch over the space tag; asking for the device on a
//     host-only handler is a runtime failure (1 + diagnostic), not a panic.

package matrix

import (
	"github.com/ASunil-17/ReSolveTesting/logger"
	"github.com/ASunil-17/ReSolveTesting/memory"
	"github.com/ASunil-17/ReSolveTesting/vector"
)

// DeviceWorkspace is what the handler needs from a device workspace.
// *device.Workspace satisfies it.
type DeviceWorkspace interface {
	DeviceMem
	Sync() error
	MatvecCsr(rows int, ptr, idx []int, vals, x, y []float64, alpha, beta float64) int
	InfNormCsr(rows int, ptr []int, vals []float64) (float64, int)
	Csc2Csr(rows, cols, nnz int, colPtr, rowIdx []int, cscVals []float64, rowPtr, colIdx []int, csrVals []float64) int
	AddConst(vals []float64, c float64) int
}

// Handler dispatches sparse kernels to the host or a device by memory
// space. It also tracks a values-changed flag per space: set it when a
// matrix's numeric values change without a new setup, so the next matvec
// rebuilds whatever per-matrix state the backend keeps.
type Handler struct {
	host hostKernels
	dev  *deviceKernels
}

// NewHandler creates a host-only handler.
func NewHandler() *Handler { return &Handler{} }

// NewHandlerWithDevice creates a handler with both implementations. The
// host side needs no workspace and is always available.
func NewHandlerWithDevice(ws DeviceWorkspace) *Handler {
	return &Handler{dev: &deviceKernels{ws: ws}}
}

// IsDeviceEnabled reports whether a device implementation is present.
func (h *Handler) IsDeviceEnabled() bool { return h.dev != nil }

// SetValuesChanged flags that matrix values changed in the given space.
// The host backend keeps no per-matrix state, so the host flag is
// recorded but has no effect, matching the device-centric contract.
func (h *Handler) SetValuesChanged(changed bool, space memory.Space) {
	switch space {
	case memory.Host:
		h.host.valuesChanged = changed
	case memory.Device:
		if h.dev != nil {
			h.dev.valuesChanged = changed
		}
	}
}

// Matvec computes result = alpha*A*x + beta*result in the given space.
// A must be CSR with fresh data in that space.
func (h *Handler) Matvec(a *Sparse, x, result *vector.Vector, alpha, beta float64, space memory.Space) int {
	mustNotBeNil(a, "matrix")
	switch space {
	case memory.Host:
		return h.host.matvec(a, x, result, alpha, beta)
	case memory.Device:
		if h.dev == nil {
			logger.Error("matvec requested on device but no device is enabled")
			return 1
		}
		return h.dev.matvec(a, x, result, alpha, beta)
	}
	return 1
}

// MatrixInfNorm computes the maximum absolute row sum of a CSR matrix.
func (h *Handler) MatrixInfNorm(a *Sparse, norm *float64, space memory.Space) int {
	mustNotBeNil(a, "matrix")
	switch space {
	case memory.Host:
		return h.host.infNorm(a, norm)
	case memory.Device:
		if h.dev == nil {
			logger.Error("inf-norm requested on device but no device is enabled")
			return 1
		}
		return h.dev.infNorm(a, norm)
	}
	return 1
}

// Csc2Csr converts a CSC matrix into a preallocated CSR matrix of the
// same shape and nnz in the given space.
func (h *Handler) Csc2Csr(cscA, csrA *Sparse, space memory.Space) int {
	switch space {
	case memory.Host:
		return Csc2Csr(cscA, csrA)
	case memory.Device:
		if h.dev == nil {
			logger.Error("csc2csr requested on device but no device is enabled")
			return 1
		}
		return h.dev.csc2csr(cscA, csrA)
	}
	return 1
}

// Transpose writes the transpose of CSR matrix a into the preallocated
// CSR matrix at (shape swapped, same nnz). A CSR matrix read with its
// axes swapped is the CSC storage of its transpose, so this reuses the
// conversion kernel with no extra work.
func (h *Handler) Transpose(a, at *Sparse, space memory.Space) int {
	mustNotBeNil(a, "matrix")
	mustNotBeNil(at, "transpose destination")
	mustHaveFormat(a, CSR, "matrix")
	mustHaveFormat(at, CSR, "transpose destination")
	if a.rows != at.cols || a.cols != at.rows || a.nnz != at.nnz {
		panic("matrix: transpose destination shape mismatch")
	}
	switch space {
	case memory.Host:
		view := NewCscFromArrays(at.rows, at.cols, a.nnz, a.ptr, a.idx, a.vals)
		return Csc2Csr(view, at)
	case memory.Device:
		if h.dev == nil {
			logger.Error("transpose requested on device but no device is enabled")
			return 1
		}
		return h.dev.transpose(a, at)
	}
	return 1
}

// AddConst adds c to every stored value of a in the given space and
// marks that space fresh.
func (h *Handler) AddConst(a *Sparse, c float64, space memory.Space) int {
	mustNotBeNil(a, "matrix")
	switch space {
	case memory.Host:
		return h.host.addConst(a, c)
	case memory.Device:
		if h.dev == nil {
			logger.Error("addConst requested on device but no device is enabled")
			return 1
		}
		return h.dev.addConst(a, c)
	}
	return 1
}
