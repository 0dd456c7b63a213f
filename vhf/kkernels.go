// Copyright 2025 The go-vhf Authors. SPDX-License-Identifier: Apache-2.0

package vhf

// K (exchange) kernels. The exchange contraction couples the bra indices
// to the ket indices (vk[i,l] += eri * dm[j,k] and its transposes), so
// each kernel must unfold exactly the index permutations that its
// packing scheme stores implicitly. Off-diagonal regimes (ic > jc,
// k != l) carry the implicit multiplicity; diagonal collisions drop it.
//
// Kernels whose name ends in Tril write only the lower triangle of vk
// and require a Hermitian density; the Full/plain variants accept any
// density and write the full square. Kernels never zero vk.

// S8KKernelJK contracts an 8-fold packed block, writing the full square
// of vk. For every stored (k, l) with pair(kl) <= pair(ic jc) it updates
// all eight permutation images not covered by the storage:
//
//	vk[j,l] += eri * dm[i,k]   and the (i<->j), (k<->l), (ij<->kl)
//	                           transposed combinations
//
// dm may be non-Hermitian; vk is generally non-Hermitian then.
func S8KKernelJK(eri, dm, vk []float64, n, ic, jc int) {
	switch {
	case ic > jc:
		kl := 0
		for k := 0; k < ic; k++ {
			for l := 0; l < k; l++ {
				vk[jc*n+l] += eri[kl] * dm[ic*n+k]
				vk[ic*n+l] += eri[kl] * dm[jc*n+k]
				vk[jc*n+k] += eri[kl] * dm[ic*n+l]
				vk[ic*n+k] += eri[kl] * dm[jc*n+l]
				vk[l*n+jc] += eri[kl] * dm[k*n+ic]
				vk[k*n+jc] += eri[kl] * dm[l*n+ic]
				vk[l*n+ic] += eri[kl] * dm[k*n+jc]
				vk[k*n+ic] += eri[kl] * dm[l*n+jc]
				kl++
			}
			// k == l
			vk[jc*n+k] += eri[kl] * dm[ic*n+k]
			vk[ic*n+k] += eri[kl] * dm[jc*n+k]
			vk[k*n+jc] += eri[kl] * dm[k*n+ic]
			vk[k*n+ic] += eri[kl] * dm[k*n+jc]
			kl++
		}
		k := ic
		for l := 0; l < jc; l++ { // l < k
			vk[jc*n+l] += eri[kl] * dm[ic*n+k]
			vk[ic*n+l] += eri[kl] * dm[jc*n+k]
			vk[jc*n+k] += eri[kl] * dm[ic*n+l]
			vk[ic*n+k] += eri[kl] * dm[jc*n+l]
			vk[l*n+jc] += eri[kl] * dm[k*n+ic]
			vk[k*n+jc] += eri[kl] * dm[l*n+ic]
			vk[l*n+ic] += eri[kl] * dm[k*n+jc]
			vk[k*n+ic] += eri[kl] * dm[l*n+jc]
			kl++
		}
		// k == ic, l == jc
		vk[jc*n+jc] += eri[kl] * dm[ic*n+ic]
		vk[ic*n+jc] += eri[kl] * dm[jc*n+ic]
		vk[jc*n+ic] += eri[kl] * dm[ic*n+jc]
		vk[ic*n+ic] += eri[kl] * dm[jc*n+jc]

	case ic == jc:
		kl := 0
		for k := 0; k < ic; k++ {
			for l := 0; l < k; l++ {
				vk[ic*n+l] += eri[kl] * dm[ic*n+k]
				vk[ic*n+k] += eri[kl] * dm[ic*n+l]
				vk[l*n+ic] += eri[kl] * dm[k*n+ic]
				vk[k*n+ic] += eri[kl] * dm[l*n+ic]
				kl++
			}
			vk[ic*n+k] += eri[kl] * dm[ic*n+k]
			vk[k*n+ic] += eri[kl] * dm[k*n+ic]
			kl++
		}
		k := ic
		for l := 0; l < k; l++ { // l < k
			vk[ic*n+l] += eri[kl] * dm[ic*n+ic]
			vk[ic*n+ic] += eri[kl] * dm[ic*n+l]
			vk[l*n+ic] += eri[kl] * dm[ic*n+ic]
			vk[ic*n+ic] += eri[kl] * dm[l*n+ic]
			kl++
		}
		// ic == jc == k == l
		vk[ic*n+ic] += eri[kl] * dm[ic*n+ic]
	}
}

// S8KKernelJKTril is the Hermitian-density variant of S8KKernelJK: it
// writes only the lower triangle of vk and folds the transposed updates
// into it, so it does roughly half the work. The density must satisfy
// dm[i,j] == dm[j,i]; mirror vk afterwards for the full square.
func S8KKernelJKTril(eri, dm, vk []float64, n, ic, jc int) {
	e := eri
	switch {
	case ic > jc:
		// k < jc
		for k := 0; k < jc; k++ {
			for l := 0; l < k; l++ {
				vk[jc*n+l] += e[l] * dm[ic*n+k]
				vk[jc*n+k] += e[l] * dm[ic*n+l]
				vk[ic*n+l] += e[l] * dm[jc*n+k]
				vk[ic*n+k] += e[l] * dm[jc*n+l]
			}
			// l == k
			vk[jc*n+k] += e[k] * dm[ic*n+k]
			vk[ic*n+k] += e[k] * dm[jc*n+k]
			e = e[k+1:]
		}
		// k == jc
		for l := 0; l < jc; l++ {
			vk[jc*n+l] += e[l] * dm[ic*n+jc]
			vk[jc*n+jc] += e[l] * (dm[ic*n+l] + dm[l*n+ic])
			vk[ic*n+l] += e[l] * dm[jc*n+jc]
			vk[ic*n+jc] += e[l] * dm[jc*n+l]
		}
		// l == k == jc
		vk[jc*n+jc] += e[jc] * (dm[ic*n+jc] + dm[jc*n+ic])
		vk[ic*n+jc] += e[jc] * dm[jc*n+jc]
		e = e[jc+1:]
		// jc < k < ic
		for k := jc + 1; k < ic; k++ {
			for l := 0; l < jc; l++ {
				vk[jc*n+l] += e[l] * dm[ic*n+k]
				vk[ic*n+l] += e[l] * dm[jc*n+k]
				vk[ic*n+k] += e[l] * dm[jc*n+l]
				vk[k*n+jc] += e[l] * dm[l*n+ic]
			}
			// l == jc
			vk[jc*n+jc] += e[jc] * (dm[ic*n+k] + dm[k*n+ic])
			vk[ic*n+jc] += e[jc] * dm[jc*n+k]
			vk[ic*n+k] += e[jc] * dm[jc*n+jc]
			vk[k*n+jc] += e[jc] * dm[jc*n+ic]
			// jc < l < k
			for l := jc + 1; l < k; l++ {
				vk[ic*n+l] += e[l] * dm[jc*n+k]
				vk[ic*n+k] += e[l] * dm[jc*n+l]
				vk[l*n+jc] += e[l] * dm[k*n+ic]
				vk[k*n+jc] += e[l] * dm[l*n+ic]
			}
			// l == k
			vk[jc*n+k] += e[k] * dm[ic*n+k]
			vk[ic*n+k] += e[k] * dm[jc*n+k]
			vk[k*n+jc] += e[k] * dm[k*n+ic]
			e = e[k+1:]
		}
		// k == ic
		for l := 0; l < jc; l++ {
			vk[jc*n+l] += e[l] * dm[ic*n+ic]
			vk[ic*n+l] += e[l] * dm[jc*n+ic]
			vk[ic*n+ic] += e[l] * (dm[jc*n+l] + dm[l*n+jc])
			vk[ic*n+jc] += e[l] * dm[l*n+ic]
		}
		// k == ic, l == jc
		vk[jc*n+jc] += e[jc] * dm[ic*n+ic]
		vk[ic*n+jc] += e[jc] * dm[jc*n+ic]
		vk[ic*n+ic] += e[jc] * dm[jc*n+jc]

	case ic == jc:
		for k := 0; k < ic; k++ {
			for l := 0; l < k; l++ {
				vk[ic*n+l] += e[l] * dm[ic*n+k]
				vk[ic*n+k] += e[l] * dm[ic*n+l]
			}
			vk[ic*n+k] += e[k] * dm[ic*n+k]
			e = e[k+1:]
		}
		// k == ic
		for l := 0; l < ic; l++ {
			vk[ic*n+l] += e[l] * dm[ic*n+ic]
			vk[ic*n+ic] += e[l] * (dm[ic*n+l] + dm[l*n+ic])
		}
		// ic == jc == k == l
		vk[ic*n+ic] += e[ic] * dm[ic*n+ic]
	}
}

// S4KKernelJK contracts a 4-fold packed block over (j, k), writing the
// full square row pair (ic, jc) of vk. The block holds the complete
// lower triangle of (k, l); the kernel unfolds the (i<->j) and (k<->l)
// swaps the storage leaves implicit. dm may be non-Hermitian.
func S4KKernelJK(eri, dm, vk []float64, n, ic, jc int) {
	switch {
	case ic > jc:
		kl := 0
		for k := 0; k < n; k++ {
			for l := 0; l < k; l++ {
				vk[jc*n+l] += eri[kl] * dm[ic*n+k]
				vk[jc*n+k] += eri[kl] * dm[ic*n+l]
				vk[ic*n+l] += eri[kl] * dm[jc*n+k]
				vk[ic*n+k] += eri[kl] * dm[jc*n+l]
				kl++
			}
			vk[jc*n+k] += eri[kl] * dm[ic*n+k]
			vk[ic*n+k] += eri[kl] * dm[jc*n+k]
			kl++
		}
	case ic == jc:
		kl := 0
		for k := 0; k < n; k++ {
			for l := 0; l < k; l++ {
				vk[ic*n+l] += eri[kl] * dm[ic*n+k]
				vk[ic*n+k] += eri[kl] * dm[ic*n+l]
				kl++
			}
			vk[ic*n+k] += eri[kl] * dm[ic*n+k]
			kl++
		}
	}
}

// S4KKernelIL contracts over (i, l) instead of (j, k). Under 4-fold
// storage the two contractions coincide, so this simply forwards to
// S4KKernelJK.
func S4KKernelIL(eri, dm, vk []float64, n, ic, jc int) {
	S4KKernelJK(eri, dm, vk, n, ic, jc)
}

// S4KKernelJKTril is the Hermitian-density variant of S4KKernelJK,
// writing only the lower triangle of vk.
func S4KKernelJKTril(eri, dm, vk []float64, n, ic, jc int) {
	switch {
	case ic > jc:
		kl := 0
		for k := 0; k <= jc; k++ {
			for l := 0; l < k; l++ {
				vk[jc*n+l] += eri[kl] * dm[ic*n+k]
				vk[jc*n+k] += eri[kl] * dm[ic*n+l]
				vk[ic*n+l] += eri[kl] * dm[jc*n+k]
				vk[ic*n+k] += eri[kl] * dm[jc*n+l]
				kl++
			}
			vk[jc*n+k] += eri[kl] * dm[ic*n+k]
			vk[ic*n+k] += eri[kl] * dm[jc*n+k]
			kl++
		}
		for k := jc + 1; k <= ic; k++ {
			for l := 0; l <= jc; l++ {
				vk[jc*n+l] += eri[kl] * dm[ic*n+k]
				vk[ic*n+l] += eri[kl] * dm[jc*n+k]
				vk[ic*n+k] += eri[kl] * dm[jc*n+l]
				kl++
			}
			for l := jc + 1; l < k; l++ {
				vk[ic*n+l] += eri[kl] * dm[jc*n+k]
				vk[ic*n+k] += eri[kl] * dm[jc*n+l]
				kl++
			}
			vk[ic*n+k] += eri[kl] * dm[jc*n+k]
			kl++
		}
		for k := ic + 1; k < n; k++ {
			kl = k * (k + 1) / 2
			for l := 0; l <= jc; l++ {
				vk[jc*n+l] += eri[kl] * dm[ic*n+k]
				vk[ic*n+l] += eri[kl] * dm[jc*n+k]
				kl++
			}
			for l := jc + 1; l <= ic; l++ {
				vk[ic*n+l] += eri[kl] * dm[jc*n+k]
				kl++
			}
		}
	case ic == jc:
		kl := 0
		for k := 0; k <= ic; k++ {
			for l := 0; l < k; l++ {
				vk[ic*n+l] += eri[kl] * dm[ic*n+k]
				vk[ic*n+k] += eri[kl] * dm[ic*n+l]
				kl++
			}
			vk[ic*n+k] += eri[kl] * dm[ic*n+k]
			kl++
		}
		for k := ic + 1; k < n; k++ {
			kl = k * (k + 1) / 2
			for l := 0; l <= ic; l++ {
				vk[ic*n+l] += eri[kl] * dm[ic*n+k]
				kl++
			}
		}
	}
}

// S4KKernelILTril forwards to S4KKernelJKTril; see S4KKernelIL.
func S4KKernelILTril(eri, dm, vk []float64, n, ic, jc int) {
	S4KKernelJKTril(eri, dm, vk, n, ic, jc)
}

// S2ijKKernelJK contracts an s2ij block (dense inner square) over
// (j, k), unfolding the implicit (ic, jc) swap.
func S2ijKKernelJK(eri, dm, vk []float64, n, ic, jc int) {
	switch {
	case ic > jc:
		kl := 0
		for k := 0; k < n; k++ {
			for l := 0; l < n; l++ {
				vk[jc*n+l] += eri[kl] * dm[ic*n+k]
				vk[ic*n+l] += eri[kl] * dm[jc*n+k]
				kl++
			}
		}
	case ic == jc:
		kl := 0
		for k := 0; k < n; k++ {
			for l := 0; l < n; l++ {
				vk[ic*n+l] += eri[kl] * dm[ic*n+k]
				kl++
			}
		}
	}
}

// S2ijKKernelIL contracts an s2ij block over (i, l), unfolding the
// implicit (ic, jc) swap.
func S2ijKKernelIL(eri, dm, vk []float64, n, ic, jc int) {
	switch {
	case ic > jc:
		kl := 0
		for k := 0; k < n; k++ {
			for l := 0; l < n; l++ {
				vk[jc*n+k] += eri[kl] * dm[ic*n+l]
				vk[ic*n+k] += eri[kl] * dm[jc*n+l]
				kl++
			}
		}
	case ic == jc:
		kl := 0
		for k := 0; k < n; k++ {
			for l := 0; l < n; l++ {
				vk[ic*n+k] += eri[kl] * dm[ic*n+l]
				kl++
			}
		}
	}
}

// S2klKKernelJK contracts an s2kl block (triangular inner pairs) over
// (j, k), unfolding the implicit (k, l) swap.
func S2klKKernelJK(eri, dm, vk []float64, n, ic, jc int) {
	kl := 0
	for k := 0; k < n; k++ {
		for l := 0; l < k; l++ {
			vk[ic*n+l] += eri[kl] * dm[jc*n+k]
			vk[ic*n+k] += eri[kl] * dm[jc*n+l]
			kl++
		}
		vk[ic*n+k] += eri[kl] * dm[jc*n+k]
		kl++
	}
}

// S2klKKernelIL contracts an s2kl block over (i, l), unfolding the
// implicit (k, l) swap.
func S2klKKernelIL(eri, dm, vk []float64, n, ic, jc int) {
	kl := 0
	for k := 0; k < n; k++ {
		for l := 0; l < k; l++ {
			vk[jc*n+l] += eri[kl] * dm[ic*n+k]
			vk[jc*n+k] += eri[kl] * dm[ic*n+l]
			kl++
		}
		vk[jc*n+k] += eri[kl] * dm[ic*n+k]
		kl++
	}
}

// S1KKernelJK contracts a dense block over (j, k) with no symmetry
// assumptions: vk[ic,l] += eri[k,l] * dm[jc,k] over the full square.
func S1KKernelJK(eri, dm, vk []float64, n, ic, jc int) {
	kl := 0
	for k := 0; k < n; k++ {
		for l := 0; l < n; l++ {
			vk[ic*n+l] += eri[kl] * dm[jc*n+k]
			kl++
		}
	}
}

// S1KKernelIL contracts a dense block over (i, l) with no symmetry
// assumptions: vk[jc,k] += eri[k,l] * dm[ic,l] over the full square.
func S1KKernelIL(eri, dm, vk []float64, n, ic, jc int) {
	kl := 0
	for k := 0; k < n; k++ {
		for l := 0; l < n; l++ {
			vk[jc*n+k] += eri[kl] * dm[ic*n+l]
			kl++
		}
	}
}
