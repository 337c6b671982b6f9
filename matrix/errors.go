// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// matrix package. Container methods return these sentinels and tests check
// them via errors.Is. Panics are reserved for programmer errors (shape and
// format preconditions on the converter and handler entry points).

package matrix

import "errors"

var (
	// ErrNotAllocated indicates a copy found a space flagged fresh whose
	// arrays were never allocated.
	ErrNotAllocated = errors.New("matrix: data not allocated in requested space")

	// ErrNoDevice indicates a device-space operation on a matrix that was
	// never bound to a device allocator.
	ErrNoDevice = errors.New("matrix: no device bound")

	// ErrNoFreshCopy indicates SyncData found no space holding a fresh copy
	// to synchronize from.
	ErrNoFreshCopy = errors.New("matrix: no fresh copy to sync from")

	// ErrBadSpace indicates a memory-space selector outside the enum.
	ErrBadSpace = errors.New("matrix: unknown memory space")
)
