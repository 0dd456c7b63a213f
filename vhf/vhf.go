// Copyright 2025 The go-vhf Authors. SPDX-License-Identifier: Apache-2.0

package vhf

import (
	"github.com/ajroetker/go-vhf/vhf/pack"
	"github.com/ajroetker/go-vhf/vhf/workerpool"
)

// JK computes the Coulomb and exchange matrices for an eri array packed
// with scheme p, using the standard kernel pairing for that scheme:
// the folded-density tridm J path for s8, the full-output (s1il) K
// kernels everywhere so that a non-Hermitian dmk is handled correctly.
//
// vj and vk are freshly allocated n x n matrices. vj is completed to a
// full symmetric square for the schemes whose J kernel writes only the
// lower triangle. A nil pool runs sequentially.
func JK(pool *workerpool.Pool, p Packing, eri, dmj, dmk []float64, n int) (vj, vk []float64) {
	vj = make([]float64, n*n)
	vk = make([]float64, n*n)

	switch p {
	case S8:
		triDM := pack.FoldTrilDM(dmj, n)
		ContractS8(pool, eri, triDM, dmk, vj, vk, n, S8JKernelTriDM, S8KKernelJK)
		pack.SymmTriu(vj, n)
	case S4:
		ContractS4(pool, eri, dmj, dmk, vj, vk, n, S4JKernelIJ, S4KKernelJK)
		pack.SymmTriu(vj, n)
	case S2ij:
		ContractS2ij(pool, eri, dmj, dmk, vj, vk, n, S2ijJKernelIJ, S2ijKKernelJK)
	case S2kl:
		ContractS2kl(pool, eri, dmj, dmk, vj, vk, n, S2klJKernelIJ, S2klKKernelJK)
		pack.SymmTriu(vj, n)
	default:
		ContractS1(pool, eri, dmj, dmk, vj, vk, n, S1JKernelIJ, S1KKernelJK)
	}
	return vj, vk
}

// JKernelFor returns the standard J kernel for scheme p, the one JK
// pairs with the matching driver. For S8 this is S8JKernelIJ, which
// takes the plain density; use S8JKernelTriDM with a pack.FoldTrilDM
// density to skip the per-block folding.
func JKernelFor(p Packing) Kernel {
	switch p {
	case S8:
		return S8JKernelIJ
	case S4:
		return S4JKernelIJ
	case S2ij:
		return S2ijJKernelIJ
	case S2kl:
		return S2klJKernelIJ
	default:
		return S1JKernelIJ
	}
}

// KKernelFor returns the standard full-output K kernel for scheme p.
func KKernelFor(p Packing) Kernel {
	switch p {
	case S8:
		return S8KKernelJK
	case S4:
		return S4KKernelJK
	case S2ij:
		return S2ijKKernelJK
	case S2kl:
		return S2klKKernelJK
	default:
		return S1KKernelJK
	}
}
