// SPDX-License-Identifier: MIT

// Package memory defines the memory-space selector shared by the sparse
// containers, the matrix handler and the solver backends.
//
// Purpose:
//   - Name the two residency targets (Host, Device) once, so every API that
//     is parameterized by residency speaks the same vocabulary.
//   - Keep the selector a closed enum: dispatch sites switch over it and
//     treat any other value as an unsupported space (status 1), never as a
//     silent default.
package memory
