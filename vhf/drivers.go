// Copyright 2025 The go-vhf Authors. SPDX-License-Identifier: Apache-2.0

package vhf

import (
	"sync"
	"sync/atomic"

	"github.com/ajroetker/go-vhf/vhf/workerpool"
)

// Kernel is the shared signature of all J and K contraction kernels:
// consume the integral block starting at eri, contract it against dm for
// outer pair (ic, jc) and add the result into out (n x n, row-major).
type Kernel func(eri, dm, out []float64, n, ic, jc int)

// blockChunk is the number of outer-pair blocks a worker steals per
// atomic grab. Late blocks of a triangular enumeration are much larger
// than early ones, so scheduling must stay dynamic; small chunks keep
// the tail balanced while amortizing the atomic increment.
const blockChunk = 4

// contract is the shared driver body: zero the outputs, walk all
// nblocks outer pairs with dynamic chunked work stealing, apply fvj/fvk
// against per-worker private accumulators, and merge the privates into
// vj/vk under a mutex. block maps a linear block index to the element
// offset of its integral block and the decoded (ic, jc).
//
// A nil pool runs the enumeration sequentially, writing straight into
// vj and vk.
func contract(pool *workerpool.Pool, nblocks int,
	eri, dmj, dmk, vj, vk []float64, n int,
	fvj, fvk Kernel, block func(ij int) (off, ic, jc int)) {

	vj = vj[:n*n]
	vk = vk[:n*n]
	clear(vj)
	clear(vk)

	run := func(vjAcc, vkAcc []float64, start, end int) {
		for ij := start; ij < end; ij++ {
			off, ic, jc := block(ij)
			fvj(eri[off:], dmj, vjAcc, n, ic, jc)
			fvk(eri[off:], dmk, vkAcc, n, ic, jc)
		}
	}

	workers := 1
	if pool != nil {
		workers = min(pool.NumWorkers(), (nblocks+blockChunk-1)/blockChunk)
	}
	if workers <= 1 {
		run(vj, vk, 0, nblocks)
		return
	}

	var next atomic.Int64
	var mu sync.Mutex
	// One task per worker; each task owns a private accumulator pair for
	// its whole lifetime and steals chunks until the block range is
	// exhausted, then folds its privates into the shared outputs.
	pool.ParallelFor(workers, func(_, _ int) {
		vjPriv := make([]float64, n*n)
		vkPriv := make([]float64, n*n)

		for {
			start := int(next.Add(blockChunk)) - blockChunk
			if start >= nblocks {
				break
			}
			run(vjPriv, vkPriv, start, min(start+blockChunk, nblocks))
		}

		mu.Lock()
		for i := range vj {
			vj[i] += vjPriv[i]
			vk[i] += vkPriv[i]
		}
		mu.Unlock()
	})
}

// ContractS8 drives a contraction over an 8-fold packed eri
// (npair*(npair+1)/2 elements). It zeroes vj and vk, enumerates the
// triangular outer pairs 0 <= jc <= ic < n, positions each kernel at
// block offset pair(ij)*(pair(ij)+1)/2 and reduces the per-worker
// partials into vj and vk.
//
// fvj and fvk must be s8 kernels; pairing any other packing's kernel
// with this driver silently computes garbage (the layout is trusted,
// never validated). A nil pool runs sequentially.
func ContractS8(pool *workerpool.Pool, eri, dmj, dmk, vj, vk []float64, n int, fvj, fvk Kernel) {
	assertPacked(S8, eri, n)
	contract(pool, PairCount(n), eri, dmj, dmk, vj, vk, n, fvj, fvk,
		func(ij int) (int, int, int) {
			ic, jc := DecodePairIndex(ij)
			return ij * (ij + 1) / 2, ic, jc
		})
}

// ContractS4 drives a contraction over a 4-fold packed eri
// (npair*npair elements); block offset is pair(ij)*npair.
func ContractS4(pool *workerpool.Pool, eri, dmj, dmk, vj, vk []float64, n int, fvj, fvk Kernel) {
	assertPacked(S4, eri, n)
	npair := PairCount(n)
	contract(pool, npair, eri, dmj, dmk, vj, vk, n, fvj, fvk,
		func(ij int) (int, int, int) {
			ic, jc := DecodePairIndex(ij)
			return ij * npair, ic, jc
		})
}

// ContractS2ij drives a contraction over an s2ij packed eri
// (npair*n*n elements); block offset is pair(ij)*n*n.
func ContractS2ij(pool *workerpool.Pool, eri, dmj, dmk, vj, vk []float64, n int, fvj, fvk Kernel) {
	assertPacked(S2ij, eri, n)
	contract(pool, PairCount(n), eri, dmj, dmk, vj, vk, n, fvj, fvk,
		func(ij int) (int, int, int) {
			ic, jc := DecodePairIndex(ij)
			return ij * n * n, ic, jc
		})
}

// ContractS2kl drives a contraction over an s2kl packed eri
// (n*n*npair elements). The outer pair is not symmetric here, so the
// enumeration covers the full square; block offset is (ic*n+jc)*npair.
func ContractS2kl(pool *workerpool.Pool, eri, dmj, dmk, vj, vk []float64, n int, fvj, fvk Kernel) {
	assertPacked(S2kl, eri, n)
	npair := PairCount(n)
	contract(pool, n*n, eri, dmj, dmk, vj, vk, n, fvj, fvk,
		func(ij int) (int, int, int) {
			ic, jc := DecodeSquareIndex(ij, n)
			return ij * npair, ic, jc
		})
}

// ContractS1 drives a contraction over a dense eri (n^4 elements) with
// no symmetry assumptions; block offset is (ic*n+jc)*n*n.
func ContractS1(pool *workerpool.Pool, eri, dmj, dmk, vj, vk []float64, n int, fvj, fvk Kernel) {
	assertPacked(S1, eri, n)
	contract(pool, n*n, eri, dmj, dmk, vj, vk, n, fvj, fvk,
		func(ij int) (int, int, int) {
			ic, jc := DecodeSquareIndex(ij, n)
			return ij * n * n, ic, jc
		})
}

// Contract dispatches to the driver matching p. The kernel pair must
// match p as well; see the per-driver documentation.
func Contract(pool *workerpool.Pool, p Packing, eri, dmj, dmk, vj, vk []float64, n int, fvj, fvk Kernel) {
	switch p {
	case S8:
		ContractS8(pool, eri, dmj, dmk, vj, vk, n, fvj, fvk)
	case S4:
		ContractS4(pool, eri, dmj, dmk, vj, vk, n, fvj, fvk)
	case S2ij:
		ContractS2ij(pool, eri, dmj, dmk, vj, vk, n, fvj, fvk)
	case S2kl:
		ContractS2kl(pool, eri, dmj, dmk, vj, vk, n, fvj, fvk)
	default:
		ContractS1(pool, eri, dmj, dmk, vj, vk, n, fvj, fvk)
	}
}
