// Copyright 2025 The go-vhf Authors. SPDX-License-Identifier: Apache-2.0

package dot

// Dot64 computes the dot product of two float64 slices: Σ a[i]*b[i].
//
// If the slices have different lengths, the computation uses the minimum
// length. Returns 0 if either slice is empty.
func Dot64(a, b []float64) float64 {
	n := min(len(a), len(b))
	a = a[:n]
	b = b[:n]

	// Four independent accumulators keep the FMA chain pipelined.
	var s0, s1, s2, s3 float64
	i := 0
	for ; i+4 <= n; i += 4 {
		s0 += a[i] * b[i]
		s1 += a[i+1] * b[i+1]
		s2 += a[i+2] * b[i+2]
		s3 += a[i+3] * b[i+3]
	}
	for ; i < n; i++ {
		s0 += a[i] * b[i]
	}
	return (s0 + s1) + (s2 + s3)
}

// Dot32 computes the dot product of two float32 slices: Σ a[i]*b[i].
//
// Accumulation is done in float64 to limit round-off growth, matching
// the usual sdot-with-double-accumulator convention.
func Dot32(a, b []float32) float32 {
	n := min(len(a), len(b))
	a = a[:n]
	b = b[:n]

	var s0, s1, s2, s3 float64
	i := 0
	for ; i+4 <= n; i += 4 {
		s0 += float64(a[i]) * float64(b[i])
		s1 += float64(a[i+1]) * float64(b[i+1])
		s2 += float64(a[i+2]) * float64(b[i+2])
		s3 += float64(a[i+3]) * float64(b[i+3])
	}
	for ; i < n; i++ {
		s0 += float64(a[i]) * float64(b[i])
	}
	return float32((s0 + s1) + (s2 + s3))
}

// Axpy64 computes y += alpha * x over min(len(x), len(y)) elements.
func Axpy64(alpha float64, x, y []float64) {
	n := min(len(x), len(y))
	x = x[:n]
	y = y[:n]

	i := 0
	for ; i+4 <= n; i += 4 {
		y[i] += alpha * x[i]
		y[i+1] += alpha * x[i+1]
		y[i+2] += alpha * x[i+2]
		y[i+3] += alpha * x[i+3]
	}
	for ; i < n; i++ {
		y[i] += alpha * x[i]
	}
}

// Axpy32 computes y += alpha * x over min(len(x), len(y)) elements.
func Axpy32(alpha float32, x, y []float32) {
	n := min(len(x), len(y))
	x = x[:n]
	y = y[:n]

	i := 0
	for ; i+4 <= n; i += 4 {
		y[i] += alpha * x[i]
		y[i+1] += alpha * x[i+1]
		y[i+2] += alpha * x[i+2]
		y[i+3] += alpha * x[i+3]
	}
	for ; i < n; i++ {
		y[i] += alpha * x[i]
	}
}
