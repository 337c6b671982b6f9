// SPDX-License-Identifier: MIT

// Package matrix: CSC↔CSR format transposition.
//
// The conversion is a three-pass counting sort over the nonzeros:
// histogram per destination row, exclusive prefix sum to turn counts into
// offsets, then a scatter that advances a cursor per destination row and
// leaves the pointer array shifted one row ahead, undone by the final
// un-shift pass. O(n + nnz); stable within each destination row with
// respect to source major order. Destination index order within a row is
// whatever the scatter produced — never assume it is sorted.

package matrix

import "github.com/ASunil-17/ReSolveTesting/memory"

// Csc2Csr populates dst (CSR, allocated, uninitialized) from src (CSC,
// host-fresh). dst must have the same shape and nonzero count as src;
// violations are programmer errors and panic. On return dst's host copy
// is fresh. Always returns 0.
func Csc2Csr(src, dst *Sparse) int {
	mustNotBeNil(src, "source")
	mustNotBeNil(dst, "destination")
	mustHaveFormat(src, CSC, "source")
	mustHaveFormat(dst, CSR, "destination")
	mustMatchShape(src, dst)

	if err := dst.AllocateData(memory.Host); err != nil {
		panic(err) // host allocation cannot fail for valid shapes
	}

	convertArrays(dst.rows, src.cols, src.nnz,
		src.ptr, src.idx, src.vals,
		dst.ptr, dst.idx, dst.vals)

	dst.SetUpdated(memory.Host)
	return 0
}

// Csr2Csc populates dst (CSC) from src (CSR). The algorithm is Csc2Csr's
// mirror: a CSR matrix read with its two axes swapped is the CSC storage
// of the transpose, so the same counting sort applies with rows and
// columns exchanged.
func Csr2Csc(src, dst *Sparse) int {
	mustNotBeNil(src, "source")
	mustNotBeNil(dst, "destination")
	mustHaveFormat(src, CSR, "source")
	mustHaveFormat(dst, CSC, "destination")
	mustMatchShape(src, dst)

	if err := dst.AllocateData(memory.Host); err != nil {
		panic(err)
	}

	convertArrays(dst.cols, src.rows, src.nnz,
		src.ptr, src.idx, src.vals,
		dst.ptr, dst.idx, dst.vals)

	dst.SetUpdated(memory.Host)
	return 0
}

// convertArrays transposes compressed storage on raw arrays: the source's
// major-axis pointer array (srcPtr, length srcMajor+1) with minor indices
// srcIdx becomes the destination's major-axis pointers over dstMajor
// segments with the source major index as the new minor index.
func convertArrays(dstMajor, srcMajor, nnz int,
	srcPtr, srcIdx []int, srcVals []float64,
	dstPtr, dstIdx []int, dstVals []float64) {

	// Pass 0: clear the destination.
	for i := 0; i <= dstMajor; i++ {
		dstPtr[i] = 0
	}
	for i := 0; i < nnz; i++ {
		dstIdx[i] = 0
		dstVals[i] = 0.0
	}

	// Pass 1: histogram of nonzeros per destination segment.
	for i := 0; i < nnz; i++ {
		dstPtr[srcIdx[i]]++
	}

	// Pass 2: exclusive prefix sum, counts become starting offsets.
	sum := 0
	for seg := 0; seg < dstMajor; seg++ {
		count := dstPtr[seg]
		dstPtr[seg] = sum
		sum += count
	}
	dstPtr[dstMajor] = nnz

	// Pass 3: scatter. Each write advances the destination segment's
	// cursor, so dstPtr drifts one segment ahead as a side effect.
	for maj := 0; maj < srcMajor; maj++ {
		for p := srcPtr[maj]; p < srcPtr[maj+1]; p++ {
			seg := srcIdx[p]
			pos := dstPtr[seg]
			dstIdx[pos] = maj
			dstVals[pos] = srcVals[p]
			dstPtr[seg]++
		}
	}

	// Pass 4: un-shift. Every cursor now holds the next segment's start;
	// shift right by one and restore 0 at the front.
	last := 0
	for seg := 0; seg <= dstMajor; seg++ {
		dstPtr[seg], last = last, dstPtr[seg]
	}
}
