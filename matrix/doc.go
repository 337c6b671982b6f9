// SPDX-License-Identifier: MIT

// Package matrix provides the sparse containers, the CSC↔CSR format
// converter and the backend-dispatching matrix handler.
//
// Purpose:
//   - Sparse is a data holder: three parallel arrays (pointer, index,
//     value) under a format tag, each independently resident on the host,
//     on a device, or both, with a per-space freshness flag. It computes
//     nothing; solvers and the handler read and write through its raw
//     accessors.
//   - Csc2Csr/Csr2Csc is the one nontrivial algorithm owned by this
//     package: a three-pass counting-sort transposition, O(n + nnz),
//     stable within each destination row. Destination indices within a
//     row are NOT sorted; callers must not assume sorted order.
//   - Handler dispatches matvec, infinity norm, conversion, transpose and
//     addConst to a host kernel set or to a device workspace, selected by
//     a memory-space tag per call. Status codes are 0/1, nothing finer.
//
// Error policy (matches the module-wide taxonomy):
//   - Precondition violations — nil matrices, mismatched shapes or nnz,
//     wrong formats on the converter — are programmer errors and panic.
//   - Runtime failures — unsupported space, missing residency — return
//     status 1 and report details through the logger.
//   - Container plumbing (allocation, synchronization) returns sentinel
//     errors from errors.go, matched with errors.Is.
//
// Concurrency: a Sparse and a Handler belong to one caller goroutine.
package matrix
