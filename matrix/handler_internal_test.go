// SPDX-License-Identifier: MIT

package matrix

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ASunil-17/ReSolveTesting/device"
	"github.com/ASunil-17/ReSolveTesting/memory"
	"github.com/ASunil-17/ReSolveTesting/vector"
)

// TestHandler_ValuesChangedBookkeeping pins the per-space flag protocol:
// SetValuesChanged stores into the addressed backend only, and a matvec
// clears the flag for its space while it rebuilds per-matrix state.
func TestHandler_ValuesChangedBookkeeping(t *testing.T) {
	ws := device.NewWorkspace(device.NewReference())
	h := NewHandlerWithDevice(ws)

	h.SetValuesChanged(true, memory.Host)
	require.True(t, h.host.valuesChanged)
	require.False(t, h.dev.valuesChanged, "host store must not leak to the device flag")

	h.SetValuesChanged(true, memory.Device)
	require.True(t, h.dev.valuesChanged)

	a := NewCsrFromArrays(2, 2, 2, []int{0, 1, 2}, []int{0, 1}, []float64{1, 2})
	a.BindDevice(ws)
	require.NoError(t, a.SyncData(memory.Device))
	x := vector.New(2)
	y := vector.New(2)
	x.BindDevice(ws)
	y.BindDevice(ws)
	require.NoError(t, x.SetToConst(1.0, memory.Host))
	require.NoError(t, y.SetToConst(0.0, memory.Host))

	require.Zero(t, h.Matvec(a, x, y, 1.0, 0.0, memory.Host))
	require.False(t, h.host.valuesChanged, "host matvec must clear the host flag")
	require.True(t, h.dev.valuesChanged, "host matvec must leave the device flag alone")

	require.NoError(t, x.SetToConst(1.0, memory.Device))
	require.NoError(t, y.SetToConst(0.0, memory.Device))
	require.Zero(t, h.Matvec(a, x, y, 1.0, 0.0, memory.Device))
	require.False(t, h.dev.valuesChanged, "device matvec must clear the device flag")

	// A host-only handler records the device flag nowhere; the call is
	// still safe.
	h2 := NewHandler()
	h2.SetValuesChanged(true, memory.Device)
	require.False(t, h2.host.valuesChanged)
}
