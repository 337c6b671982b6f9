// SPDX-License-Identifier: MIT

// Package vector provides a dense vector with dual host/device residency,
// the right-hand-side and solution carrier for the solver backends.
//
// The residency model mirrors the sparse container: one array per memory
// space, a per-space freshness flag, explicit SyncData to move data
// toward the stale side, and raw accessors parameterized by space.
package vector
