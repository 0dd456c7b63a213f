// Copyright 2025 The go-vhf Authors. SPDX-License-Identifier: Apache-2.0

package vhf

import (
	"math"
	"math/rand"

	"github.com/ajroetker/go-vhf/vhf/pack"
)

// randMatrix returns a random (generally non-Hermitian) n x n matrix.
func randMatrix(rng *rand.Rand, n int) []float64 {
	m := make([]float64, n*n)
	for i := range m {
		m[i] = rng.NormFloat64()
	}
	return m
}

// symMatrix returns a random exactly symmetric n x n matrix.
func symMatrix(rng *rand.Rand, n int) []float64 {
	m := randMatrix(rng, n)
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			m[j*n+i] = m[i*n+j]
		}
	}
	return m
}

// randTensor8 returns a random dense n^4 tensor carrying the full
// 8-fold physical permutation symmetry.
func randTensor8(rng *rand.Rand, n int) []float64 {
	t := make([]float64, n*n*n*n)
	for i := range t {
		t[i] = rng.NormFloat64()
	}
	pack.Symmetrize8(t, n)
	return t
}

// refJ is the brute-force Coulomb contraction:
// vj[k,l] = Σ_ij dense[i,j,k,l] * dm[i,j].
func refJ(dense, dm []float64, n int) []float64 {
	vj := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d := dm[i*n+j]
			block := dense[(i*n+j)*n*n : (i*n+j+1)*n*n]
			for kl := 0; kl < n * n; kl++ {
				vj[kl] += block[kl] * d
			}
		}
	}
	return vj
}

// refK is the brute-force exchange contraction:
// vk[i,l] = Σ_jk dense[i,j,k,l] * dm[j,k].
func refK(dense, dm []float64, n int) []float64 {
	vk := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				d := dm[j*n+k]
				for l := 0; l < n; l++ {
					vk[i*n+l] += dense[((i*n+j)*n+k)*n+l] * d
				}
			}
		}
	}
	return vk
}

// refKIL is the transposed exchange contraction:
// vk[j,k] = Σ_il dense[i,j,k,l] * dm[i,l].
func refKIL(dense, dm []float64, n int) []float64 {
	vk := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				for l := 0; l < n; l++ {
					vk[j*n+k] += dense[((i*n+j)*n+k)*n+l] * dm[i*n+l]
				}
			}
		}
	}
	return vk
}

func maxAbsDiff(a, b []float64) float64 {
	var d float64
	for i := range a {
		d = math.Max(d, math.Abs(a[i]-b[i]))
	}
	return d
}
