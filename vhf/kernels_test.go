// Copyright 2025 The go-vhf Authors. SPDX-License-Identifier: Apache-2.0

package vhf

import (
	"math/rand"
	"testing"

	"github.com/ajroetker/go-vhf/vhf/pack"
)

const kernelTol = 1e-10

// runPacked packs the dense tensor for p, runs the matching driver
// sequentially with the given kernel pair and returns (vj, vk).
func runPacked(t *testing.T, p Packing, dense []float64, n int, dmj, dmk []float64, fvj, fvk Kernel) ([]float64, []float64) {
	t.Helper()

	var eri []float64
	switch p {
	case S8:
		eri = pack.PackS8(dense, n)
	case S4:
		eri = pack.PackS4(dense, n)
	case S2ij:
		eri = pack.PackS2ij(dense, n)
	case S2kl:
		eri = pack.PackS2kl(dense, n)
	default:
		eri = dense
	}

	vj := make([]float64, n*n)
	vk := make([]float64, n*n)
	Contract(nil, p, eri, dmj, dmk, vj, vk, n, fvj, fvk)
	return vj, vk
}

func TestS1KernelsMatchBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, n := range []int{1, 2, 3, 5, 8} {
		dense := randTensor8(rng, n)
		dm := randMatrix(rng, n)

		vj, vk := runPacked(t, S1, dense, n, dm, dm, S1JKernelIJ, S1KKernelJK)
		if d := maxAbsDiff(vj, refJ(dense, dm, n)); d > kernelTol {
			t.Errorf("n=%d: s1 ij kernel deviates from brute force by %g", n, d)
		}
		if d := maxAbsDiff(vk, refK(dense, dm, n)); d > kernelTol {
			t.Errorf("n=%d: s1 jk kernel deviates from brute force by %g", n, d)
		}

		vj, vk = runPacked(t, S1, dense, n, dm, dm, S1JKernelKL, S1KKernelIL)
		if d := maxAbsDiff(vj, refJ(dense, dm, n)); d > kernelTol {
			t.Errorf("n=%d: s1 kl kernel deviates from brute force by %g", n, d)
		}
		if d := maxAbsDiff(vk, refKIL(dense, dm, n)); d > kernelTol {
			t.Errorf("n=%d: s1 il kernel deviates from brute force by %g", n, d)
		}
	}
}

func TestPackedJKernelsMatchS1(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	cases := []struct {
		name string
		p    Packing
		fvj  Kernel
		tril bool // kernel writes only the lower triangle of vj
	}{
		{"s8 ij", S8, S8JKernelIJ, true},
		{"s4 ij", S4, S4JKernelIJ, true},
		{"s4 kl", S4, S4JKernelKL, true},
		{"s2ij ij", S2ij, S2ijJKernelIJ, false},
		{"s2ij kl", S2ij, S2ijJKernelKL, true},
		{"s2kl ij", S2kl, S2klJKernelIJ, true},
		{"s2kl kl", S2kl, S2klJKernelKL, false},
	}

	for _, n := range []int{1, 2, 3, 6, 9} {
		dense := randTensor8(rng, n)
		dm := randMatrix(rng, n) // J kernels must cope with non-Hermitian densities
		want := refJ(dense, dm, n)

		for _, c := range cases {
			vj, _ := runPacked(t, c.p, dense, n, dm, dm, c.fvj, KKernelFor(c.p))
			if c.tril {
				pack.SymmTriu(vj, n)
			}
			if d := maxAbsDiff(vj, want); d > kernelTol {
				t.Errorf("n=%d: %s deviates from s1 reference by %g", n, c.name, d)
			}
		}
	}
}

func TestS8TriDMKernelMatchesPlain(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	for _, n := range []int{1, 2, 4, 7} {
		dense := randTensor8(rng, n)
		dm := randMatrix(rng, n)
		eri := pack.PackS8(dense, n)

		vjPlain := make([]float64, n*n)
		vk := make([]float64, n*n)
		ContractS8(nil, eri, dm, dm, vjPlain, vk, n, S8JKernelIJ, S8KKernelJK)

		triDM := pack.FoldTrilDM(dm, n)
		vjTri := make([]float64, n*n)
		ContractS8(nil, eri, triDM, dm, vjTri, vk, n, S8JKernelTriDM, S8KKernelJK)

		if d := maxAbsDiff(vjPlain, vjTri); d > kernelTol {
			t.Errorf("n=%d: tridm J path deviates from plain path by %g", n, d)
		}
	}
}

func TestPackedKKernelsMatchS1(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	cases := []struct {
		name string
		p    Packing
		fvk  Kernel
		il   bool // contracts (i,l) instead of (j,k)
	}{
		{"s8 jk", S8, S8KKernelJK, false},
		{"s4 jk", S4, S4KKernelJK, false},
		{"s4 il", S4, S4KKernelIL, true},
		{"s2ij jk", S2ij, S2ijKKernelJK, false},
		{"s2ij il", S2ij, S2ijKKernelIL, true},
		{"s2kl jk", S2kl, S2klKKernelJK, false},
		{"s2kl il", S2kl, S2klKKernelIL, true},
	}

	for _, n := range []int{1, 2, 3, 6, 9} {
		dense := randTensor8(rng, n)
		dm := randMatrix(rng, n) // deliberately non-Hermitian
		wantJK := refK(dense, dm, n)
		wantIL := refKIL(dense, dm, n)

		for _, c := range cases {
			_, vk := runPacked(t, c.p, dense, n, dm, dm, JKernelFor(c.p), c.fvk)
			want := wantJK
			if c.il {
				want = wantIL
			}
			if d := maxAbsDiff(vk, want); d > kernelTol {
				t.Errorf("n=%d: %s deviates from s1 reference by %g", n, c.name, d)
			}
		}
	}
}

func TestTrilKKernelsHermitianDensity(t *testing.T) {
	rng := rand.New(rand.NewSource(19))
	cases := []struct {
		name string
		p    Packing
		fvk  Kernel
	}{
		{"s8 jk tril", S8, S8KKernelJKTril},
		{"s4 jk tril", S4, S4KKernelJKTril},
		{"s4 il tril", S4, S4KKernelILTril},
	}

	for _, n := range []int{1, 2, 3, 6, 9} {
		dense := randTensor8(rng, n)
		dm := symMatrix(rng, n) // tril K kernels require a Hermitian density
		want := refK(dense, dm, n)

		for _, c := range cases {
			_, vk := runPacked(t, c.p, dense, n, dm, dm, JKernelFor(c.p), c.fvk)
			pack.SymmTriu(vk, n)
			if d := maxAbsDiff(vk, want); d > kernelTol {
				t.Errorf("n=%d: %s deviates from s1 reference by %g", n, c.name, d)
			}
		}
	}
}

func TestLowerTriangleKernelsSkipUpperPairs(t *testing.T) {
	// Kernels over ij-triangular packings must be strict no-ops when
	// called with ic < jc: no reads past the block, no writes at all.
	n := 4
	eri := make([]float64, S4.Size(n))
	for i := range eri {
		eri[i] = 1
	}
	dm := make([]float64, n*n)
	for i := range dm {
		dm[i] = 1
	}

	kernels := []struct {
		name string
		f    Kernel
	}{
		{"S8JKernelIJ", S8JKernelIJ},
		{"S4JKernelIJ", S4JKernelIJ},
		{"S4JKernelKL", S4JKernelKL},
		{"S2ijJKernelIJ", S2ijJKernelIJ},
		{"S2ijJKernelKL", S2ijJKernelKL},
		{"S8KKernelJK", S8KKernelJK},
		{"S8KKernelJKTril", S8KKernelJKTril},
		{"S4KKernelJK", S4KKernelJK},
		{"S4KKernelJKTril", S4KKernelJKTril},
		{"S2ijKKernelJK", S2ijKKernelJK},
		{"S2ijKKernelIL", S2ijKKernelIL},
	}
	for _, k := range kernels {
		out := make([]float64, n*n)
		k.f(eri, dm, out, n, 1, 2) // ic < jc
		for i, v := range out {
			if v != 0 {
				t.Errorf("%s wrote out[%d] = %v for ic < jc", k.name, i, v)
				break
			}
		}
	}
}
