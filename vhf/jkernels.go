// Copyright 2025 The go-vhf Authors. SPDX-License-Identifier: Apache-2.0

package vhf

import "github.com/ajroetker/go-vhf/vhf/dot"

// J (Coulomb) kernels. Each kernel consumes the integral block of one
// outer pair (ic, jc) and adds its contribution into vj. Naming follows
// <packing><matrix>Kernel<contracted pair>: for example S8JKernelIJ
// contracts the block against dm over the (i, j) indices.
//
// Kernels never zero vj; the driver owns zeroing. All kernels treat eri
// as a view that starts at the (ic, jc) block. None of them validate
// their inputs (see the package documentation for the preconditions).

// S8JKernelIJ contracts an 8-fold packed block over (i, j):
//
//	vj[k,l] += eri[kl] * (dm[ic,jc] + dm[jc,ic])    for k > l
//	vj[ic,jc] += eri[kl] * (dm[k,l] + dm[l,k])
//
// with the usual halving on the diagonals (ic==jc, k==l). Only the lower
// triangle of vj is written; mirror it afterwards when a full square
// matrix is needed. Calls with ic < jc return immediately.
func S8JKernelIJ(eri, dm, vj []float64, n, ic, jc int) {
	var dmIJ float64
	switch {
	case ic > jc:
		dmIJ = dm[ic*n+jc] + dm[jc*n+ic]
	case ic == jc:
		dmIJ = dm[ic*n+ic]
	default:
		return
	}

	var vjIJ float64
	ij := 0
	for i := 0; i < ic; i++ {
		for j := 0; j < i; j++ {
			vjIJ += eri[ij] * (dm[i*n+j] + dm[j*n+i])
			vj[i*n+j] += eri[ij] * dmIJ
			ij++
		}
		vjIJ += eri[ij] * dm[i*n+i]
		vj[i*n+i] += eri[ij] * dmIJ
		ij++
	}
	// i == ic
	for j := 0; j < jc; j++ {
		vjIJ += eri[ij] * (dm[ic*n+j] + dm[j*n+ic])
		vj[ic*n+j] += eri[ij] * dmIJ
		ij++
	}
	vjIJ += eri[ij] * dmIJ
	vj[ic*n+jc] += vjIJ
}

// S8JKernelTriDM is S8JKernelIJ with a pre-folded density: triDM must be
// the lower-triangular fold produced by pack.FoldTrilDM, i.e.
// triDM[i*(i+1)/2+j] = dm[i,j]+dm[j,i] for i > j and dm[i,i] on the
// diagonal. Folding once per contraction call saves the per-block
// doubling of S8JKernelIJ.
func S8JKernelTriDM(eri, triDM, vj []float64, n, ic, jc int) {
	dmIJ := triDM[ic*(ic+1)/2+jc]

	var vjIJ float64
	ij := 0
	for i := 0; i < ic; i++ {
		for j := 0; j <= i; j++ {
			vjIJ += eri[ij] * triDM[ij]
			vj[i*n+j] += eri[ij] * dmIJ
			ij++
		}
	}
	// i == ic
	for j := 0; j < jc; j++ {
		vjIJ += eri[ij] * triDM[ij]
		vj[ic*n+j] += eri[ij] * dmIJ
		ij++
	}
	vjIJ += eri[ij] * dmIJ
	vj[ic*n+jc] += vjIJ
}

// S4JKernelIJ contracts a 4-fold packed block over (i, j). The block
// holds the full lower triangle of (k, l), so only the folded density
// element scales it:
//
//	vj[k,l] += eri[kl] * (dm[ic,jc] + dm[jc,ic])    for all k >= l
//
// Only the lower triangle of vj is written. Calls with ic < jc return
// immediately.
func S4JKernelIJ(eri, dm, vj []float64, n, ic, jc int) {
	var dmIJ float64
	switch {
	case ic > jc:
		dmIJ = dm[ic*n+jc] + dm[jc*n+ic]
	case ic == jc:
		dmIJ = dm[ic*n+ic]
	default:
		return
	}

	ij := 0
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			vj[i*n+j] += eri[ij] * dmIJ
			ij++
		}
	}
}

// S4JKernelKL contracts a 4-fold packed block over (k, l), producing the
// single element vj[ic,jc]. Calls with ic < jc return immediately.
func S4JKernelKL(eri, dm, vj []float64, n, ic, jc int) {
	if ic < jc {
		return
	}
	S2klJKernelKL(eri, dm, vj, n, ic, jc)
}

// S2ijJKernelIJ contracts an s2ij block (dense n*n inner square) over
// (i, j), scaling the whole block by the folded density element. The
// full square of vj is written. Calls with ic < jc return immediately.
func S2ijJKernelIJ(eri, dm, vj []float64, n, ic, jc int) {
	var dmIJ float64
	switch {
	case ic > jc:
		dmIJ = dm[ic*n+jc] + dm[jc*n+ic]
	case ic == jc:
		dmIJ = dm[ic*n+ic]
	default:
		return
	}

	dot.Axpy64(dmIJ, eri[:n*n], vj)
}

// S2ijJKernelKL contracts an s2ij block over (k, l) into vj[ic,jc].
// Calls with ic < jc return immediately.
func S2ijJKernelKL(eri, dm, vj []float64, n, ic, jc int) {
	if ic < jc {
		return
	}
	S1JKernelKL(eri, dm, vj, n, ic, jc)
}

// S2klJKernelIJ contracts an s2kl block (lower-triangular inner pairs)
// over (i, j). The outer enumeration covers the full square, so no
// density folding applies. Only the lower triangle of vj is written.
func S2klJKernelIJ(eri, dm, vj []float64, n, ic, jc int) {
	dmIJ := dm[ic*n+jc]
	ij := 0
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			vj[i*n+j] += eri[ij] * dmIJ
			ij++
		}
	}
}

// S2klJKernelKL contracts an s2kl block over its triangular (k, l) pairs
// into vj[ic,jc], folding the off-diagonal density elements.
func S2klJKernelKL(eri, dm, vj []float64, n, ic, jc int) {
	var sum float64
	ij := 0
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			sum += eri[ij] * (dm[i*n+j] + dm[j*n+i])
			ij++
		}
		sum += eri[ij] * dm[i*n+i]
		ij++
	}
	vj[ic*n+jc] += sum
}

// S1JKernelIJ contracts a dense block over (i, j): the whole n*n block
// scaled by dm[ic,jc] is accumulated into the full square of vj.
func S1JKernelIJ(eri, dm, vj []float64, n, ic, jc int) {
	dot.Axpy64(dm[ic*n+jc], eri[:n*n], vj)
}

// S1JKernelKL contracts a dense block over (k, l): a single dot product
// of the block against the density, accumulated into vj[ic,jc].
func S1JKernelKL(eri, dm, vj []float64, n, ic, jc int) {
	vj[ic*n+jc] += dot.Dot64(eri[:n*n], dm)
}
