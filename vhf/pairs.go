// Copyright 2025 The go-vhf Authors. SPDX-License-Identifier: Apache-2.0

package vhf

import "math"

// PairCount returns the number of distinct lower-triangular index pairs
// (i, j) with 0 <= j <= i < n, i.e. n*(n+1)/2.
func PairCount(n int) int {
	return n * (n + 1) / 2
}

// PairIndex linearizes a lower-triangular index pair. It requires i >= j
// and returns i*(i+1)/2 + j.
func PairIndex(i, j int) int {
	return i*(i+1)/2 + j
}

// pairDecodeEps guards the float fast path in DecodePairIndex against
// round-off just below a triangular-number boundary.
const pairDecodeEps = 1e-7

// DecodePairIndex is the inverse of PairIndex: given ij it returns the
// unique (i, j) with i >= j >= 0 and i*(i+1)/2 + j == ij.
//
// The float inversion i = floor(sqrt(2*ij+0.25) - 0.5 + eps) is used as a
// fast initial guess and then corrected with integer arithmetic, so the
// result is exact for every non-negative ij regardless of where sqrt
// rounds. ij must be >= 0.
func DecodePairIndex(ij int) (i, j int) {
	i = int(math.Sqrt(2*float64(ij)+0.25) - 0.5 + pairDecodeEps)
	for i > 0 && i*(i+1)/2 > ij {
		i--
	}
	for (i+1)*(i+2)/2 <= ij {
		i++
	}
	return i, ij - i*(i+1)/2
}

// DecodeSquareIndex splits a linear index over a full n x n enumeration
// into its (row, column) pair.
func DecodeSquareIndex(ij, n int) (i, j int) {
	i = ij / n
	return i, ij - i*n
}
