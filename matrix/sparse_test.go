// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ASunil-17/ReSolveTesting/device"
	"github.com/ASunil-17/ReSolveTesting/matrix"
	"github.com/ASunil-17/ReSolveTesting/memory"
)

// TestSparse_Accessors checks shape, format and the raw-array getters on
// an adopted-array matrix.
func TestSparse_Accessors(t *testing.T) {
	a := newSquareCsr()

	require.Equal(t, 5, a.Rows())
	require.Equal(t, 5, a.Cols())
	require.Equal(t, 13, a.Nnz())
	require.Equal(t, matrix.CSR, a.Format())
	require.Len(t, a.PtrData(memory.Host), 6)
	require.Len(t, a.IdxData(memory.Host), 13)
	require.Len(t, a.ValueData(memory.Host), 13)
	require.True(t, a.Updated(memory.Host), "adopted arrays must mark host fresh")
	require.False(t, a.Updated(memory.Device))
}

// TestSparse_ConstructorPanics documents the programmer-error class on
// construction: bad shapes and mismatched array lengths panic.
func TestSparse_ConstructorPanics(t *testing.T) {
	require.Panics(t, func() { matrix.NewCsr(0, 3, 1) })
	require.Panics(t, func() { matrix.NewCsc(3, -1, 1) })
	require.Panics(t, func() {
		// ptr length 3 does not match rows+1 = 4.
		matrix.NewCsrFromArrays(3, 3, 2, []int{0, 1, 2}, []int{0, 1}, []float64{1, 2})
	})
}

// TestSparse_DataAccessBeforeAllocation checks that the getters return
// nil for a space that was never allocated instead of failing.
func TestSparse_DataAccessBeforeAllocation(t *testing.T) {
	a := matrix.NewCsr(3, 3, 2)

	require.Nil(t, a.PtrData(memory.Host))
	require.Nil(t, a.ValueData(memory.Device))

	require.NoError(t, a.AllocateData(memory.Host))
	require.NotNil(t, a.PtrData(memory.Host))
	require.False(t, a.Updated(memory.Host), "allocation alone must not mark fresh")
}

// TestSparse_DeviceAllocationRequiresBinding checks the unbound-device
// failure mode.
func TestSparse_DeviceAllocationRequiresBinding(t *testing.T) {
	a := matrix.NewCsr(3, 3, 2)
	require.ErrorIs(t, a.AllocateData(memory.Device), matrix.ErrNoDevice)

	a.BindDevice(device.NewWorkspace(device.NewReference()))
	require.NoError(t, a.AllocateData(memory.Device))
	require.NotNil(t, a.PtrData(memory.Device))
}

// TestSparse_SyncData moves data host -> device -> host through the
// freshness protocol and checks both copies agree.
func TestSparse_SyncData(t *testing.T) {
	ws := device.NewWorkspace(device.NewReference())
	a := newSquareCsr()
	a.BindDevice(ws)

	require.NoError(t, a.SyncData(memory.Device))
	require.True(t, a.Updated(memory.Host))
	require.True(t, a.Updated(memory.Device))
	require.Equal(t, a.ValueData(memory.Host), a.ValueData(memory.Device))

	// Mutate on device, mark it fresh, sync back.
	a.ValueData(memory.Device)[0] = 99
	a.SetUpdated(memory.Device)
	require.False(t, a.Updated(memory.Host))

	require.NoError(t, a.SyncData(memory.Host))
	require.Equal(t, 99.0, a.ValueData(memory.Host)[0])
}

// TestSparse_SyncDataNoFreshCopy checks that syncing a matrix with no
// fresh copy anywhere reports ErrNoFreshCopy.
func TestSparse_SyncDataNoFreshCopy(t *testing.T) {
	a := matrix.NewCsr(3, 3, 2)
	require.ErrorIs(t, a.SyncData(memory.Host), matrix.ErrNoFreshCopy)
}

// TestSparse_SyncDataUnallocatedSource checks that a space flagged
// fresh without ever being allocated cannot serve as a sync source.
func TestSparse_SyncDataUnallocatedSource(t *testing.T) {
	a := matrix.NewCsr(3, 3, 2)
	a.BindDevice(device.NewWorkspace(device.NewReference()))
	a.SetUpdated(memory.Host)

	require.ErrorIs(t, a.SyncData(memory.Device), matrix.ErrNotAllocated)
}

// TestSparse_SyncDataIdempotent checks that syncing an already-fresh
// space is a no-op.
func TestSparse_SyncDataIdempotent(t *testing.T) {
	a := newSquareCsr()
	require.NoError(t, a.SyncData(memory.Host))
	require.True(t, a.Updated(memory.Host))
}

// TestValidatePtr covers the pointer-array invariant: good fixtures
// pass, COO and malformed pointers fail.
func TestValidatePtr(t *testing.T) {
	require.True(t, matrix.ValidatePtr(newSquareCsr()))
	require.True(t, matrix.ValidatePtr(newTallCsc()))

	coo := matrix.NewCooFromArrays(3, 3, 2, []int{0, 1}, []int{1, 2}, []float64{1, 2})
	require.False(t, matrix.ValidatePtr(coo), "COO has no pointer invariant")

	bad := matrix.NewCsrFromArrays(3, 3, 2, []int{0, 2, 1, 2}, []int{0, 1}, []float64{1, 2})
	require.False(t, matrix.ValidatePtr(bad), "non-monotone pointers must fail")

	require.False(t, matrix.ValidatePtr(nil))
	require.False(t, matrix.ValidatePtr(matrix.NewCsr(3, 3, 2)), "unallocated matrix must fail")
}
