// SPDX-License-Identifier: MIT

package device

// Workspace bundles a device with its execution stream. One workspace is
// shared by the matrix handler and the solver backends bound to the same
// device, mirroring how a vendor library handle and its stream are shared
// across kernels.
type Workspace struct {
	dev    Device
	stream Stream
}

// NewWorkspace creates a workspace with a fresh stream on d.
func NewWorkspace(d Device) *Workspace {
	return &Workspace{dev: d, stream: d.NewStream()}
}

// Device returns the underlying backend.
func (w *Workspace) Device() Device { return w.dev }

// Stream returns the workspace's execution stream.
func (w *Workspace) Stream() Stream { return w.stream }

// Sync blocks until all work submitted through the workspace's stream has
// completed.
func (w *Workspace) Sync() error { return w.stream.Synchronize() }

// AllocInts allocates a device-resident integer array of length n.
func (w *Workspace) AllocInts(n int) []int { return w.dev.AllocInts(n) }

// AllocFloats allocates a device-resident float64 array of length n.
func (w *Workspace) AllocFloats(n int) []float64 { return w.dev.AllocFloats(n) }

// MatvecCsr delegates to the device kernel set.
func (w *Workspace) MatvecCsr(rows int, ptr, idx []int, vals, x, y []float64, alpha, beta float64) int {
	return w.dev.MatvecCsr(rows, ptr, idx, vals, x, y, alpha, beta)
}

// InfNormCsr delegates to the device kernel set.
func (w *Workspace) InfNormCsr(rows int, ptr []int, vals []float64) (float64, int) {
	return w.dev.InfNormCsr(rows, ptr, vals)
}

// Csc2Csr delegates to the device kernel set.
func (w *Workspace) Csc2Csr(rows, cols, nnz int, colPtr, rowIdx []int, cscVals []float64, rowPtr, colIdx []int, csrVals []float64) int {
	return w.dev.Csc2Csr(rows, cols, nnz, colPtr, rowIdx, cscVals, rowPtr, colIdx, csrVals)
}

// AddConst delegates to the device kernel set.
func (w *Workspace) AddConst(vals []float64, c float64) int {
	return w.dev.AddConst(vals, c)
}
