// SPDX-License-Identifier: MIT

package vector

import (
	"errors"

	"github.com/ASunil-17/ReSolveTesting/memory"
)

var (
	// ErrNoDevice indicates a device-space operation on a vector that was
	// never bound to a device allocator.
	ErrNoDevice = errors.New("vector: no device bound")

	// ErrNotAllocated indicates the requested space holds no array.
	ErrNotAllocated = errors.New("vector: data not allocated in requested space")

	// ErrNoFreshCopy indicates SyncData found no fresh copy to sync from.
	ErrNoFreshCopy = errors.New("vector: no fresh copy to sync from")

	// ErrBadSpace indicates a memory-space selector outside the enum.
	ErrBadSpace = errors.New("vector: unknown memory space")
)

// DeviceMem is the slice of a device workspace the vector needs.
// *device.Workspace satisfies it.
type DeviceMem interface {
	AllocFloats(n int) []float64
}

// Vector is a dense vector resident on the host, a device, or both.
type Vector struct {
	n     int
	h     []float64
	d     []float64
	fresh [2]bool
	mem   DeviceMem
}

// New creates an unallocated vector of length n.
func New(n int) *Vector {
	if n <= 0 {
		panic("vector: non-positive length")
	}
	return &Vector{n: n}
}

// Size returns the vector length.
func (v *Vector) Size() int { return v.n }

// BindDevice attaches a device allocator for the device-side mirror.
func (v *Vector) BindDevice(mem DeviceMem) { v.mem = mem }

// Allocate allocates the array in the given space if absent.
func (v *Vector) Allocate(space memory.Space) error {
	switch space {
	case memory.Host:
		if v.h == nil {
			v.h = make([]float64, v.n)
		}
		return nil
	case memory.Device:
		if v.mem == nil {
			return ErrNoDevice
		}
		if v.d == nil {
			v.d = v.mem.AllocFloats(v.n)
		}
		return nil
	default:
		return ErrBadSpace
	}
}

// Data returns the array resident in the given space, or nil if absent.
func (v *Vector) Data(space memory.Space) []float64 {
	if space == memory.Device {
		return v.d
	}
	return v.h
}

// SetToConst sets every element in the given space to c and marks that
// space fresh. The space is allocated on demand.
func (v *Vector) SetToConst(c float64, space memory.Space) error {
	if err := v.Allocate(space); err != nil {
		return err
	}
	data := v.Data(space)
	for i := range data {
		data[i] = c
	}
	v.SetDataUpdated(space)
	return nil
}

// CopyDataFrom copies src (resident in fromSpace) into the vector's
// toSpace array, allocating it if needed, and marks toSpace fresh.
func (v *Vector) CopyDataFrom(src []float64, fromSpace, toSpace memory.Space) error {
	if len(src) < v.n {
		return ErrNotAllocated
	}
	if err := v.Allocate(toSpace); err != nil {
		return err
	}
	copy(v.Data(toSpace), src[:v.n])
	v.SetDataUpdated(toSpace)
	return nil
}

// SetDataUpdated marks the given space as holding the freshest copy.
func (v *Vector) SetDataUpdated(space memory.Space) {
	v.fresh[memory.Host] = space == memory.Host
	v.fresh[memory.Device] = space == memory.Device
}

// Updated reports whether the given space holds a fresh copy.
func (v *Vector) Updated(space memory.Space) bool { return v.fresh[space] }

// SyncData makes the given space current by copying from the fresh side.
// Both sides are fresh afterwards. A no-op if the space is already fresh.
func (v *Vector) SyncData(space memory.Space) error {
	if space != memory.Host && space != memory.Device {
		return ErrBadSpace
	}
	if v.fresh[space] {
		return nil
	}
	other := memory.Host
	if space == memory.Host {
		other = memory.Device
	}
	if !v.fresh[other] {
		return ErrNoFreshCopy
	}
	if err := v.Allocate(space); err != nil {
		return err
	}
	copy(v.Data(space), v.Data(other))
	v.fresh[space] = true
	return nil
}
