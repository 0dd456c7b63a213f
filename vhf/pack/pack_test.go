// Copyright 2025 The go-vhf Authors. SPDX-License-Identifier: Apache-2.0

package pack

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackUnpackTrilRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, n := range []int{1, 2, 5, 17} {
		a := make([]float64, n*n)
		for i := 0; i < n; i++ {
			for j := 0; j <= i; j++ {
				v := rng.NormFloat64()
				a[i*n+j] = v
				a[j*n+i] = v
			}
		}

		tril := PackTril(a, n)
		require.Len(t, tril, TrilSize(n))
		require.Equal(t, a, UnpackTril(tril, n), "n=%d round trip", n)
	}
}

func TestSymmTriu(t *testing.T) {
	n := 3
	a := []float64{
		1, 99, 99,
		2, 3, 99,
		4, 5, 6,
	}
	SymmTriu(a, n)
	require.Equal(t, []float64{
		1, 2, 4,
		2, 3, 5,
		4, 5, 6,
	}, a)
}

func TestFoldTrilDM(t *testing.T) {
	n := 2
	dm := []float64{
		1, 2,
		3, 4,
	}
	tri := FoldTrilDM(dm, n)
	// Off-diagonal entries are folded (dm[i,j]+dm[j,i]), diagonal kept.
	require.Equal(t, []float64{1, 5, 4}, tri)
}

func TestSymmetrize8(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	n := 4
	eri := make([]float64, n*n*n*n)
	for i := range eri {
		eri[i] = rng.NormFloat64()
	}

	Symmetrize8(eri, n)

	at := func(i, j, k, l int) float64 {
		return eri[((i*n+j)*n+k)*n+l]
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				for l := 0; l < n; l++ {
					v := at(i, j, k, l)
					require.Equal(t, v, at(j, i, k, l), "(%d%d|%d%d) ij swap", i, j, k, l)
					require.Equal(t, v, at(i, j, l, k), "(%d%d|%d%d) kl swap", i, j, k, l)
					require.Equal(t, v, at(k, l, i, j), "(%d%d|%d%d) bra-ket swap", i, j, k, l)
				}
			}
		}
	}
}

func TestSymmetrize8Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	n := 3
	eri := make([]float64, n*n*n*n)
	for i := range eri {
		eri[i] = rng.NormFloat64()
	}

	Symmetrize8(eri, n)
	again := append([]float64(nil), eri...)
	Symmetrize8(again, n)

	require.InDeltaSlice(t, eri, again, 1e-15)
}

func TestPackersSelectCorrectElements(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	n := 3
	npair := TrilSize(n)
	eri := make([]float64, n*n*n*n)
	for i := range eri {
		eri[i] = rng.NormFloat64()
	}
	Symmetrize8(eri, n)

	at := func(i, j, k, l int) float64 {
		return eri[((i*n+j)*n+k)*n+l]
	}

	s8 := PackS8(eri, n)
	require.Len(t, s8, npair*(npair+1)/2)
	s4 := PackS4(eri, n)
	require.Len(t, s4, npair*npair)
	s2ij := PackS2ij(eri, n)
	require.Len(t, s2ij, npair*n*n)
	s2kl := PackS2kl(eri, n)
	require.Len(t, s2kl, n*n*npair)

	ij := 0
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			kl := 0
			for k := 0; k < n; k++ {
				for l := 0; l <= k; l++ {
					if kl <= ij {
						require.Equal(t, at(i, j, k, l), s8[ij*(ij+1)/2+kl],
							"s8 (%d%d|%d%d)", i, j, k, l)
					}
					require.Equal(t, at(i, j, k, l), s4[ij*npair+kl],
						"s4 (%d%d|%d%d)", i, j, k, l)
					require.Equal(t, at(i, j, k, l), s2kl[(i*n+j)*npair+kl],
						"s2kl (%d%d|%d%d)", i, j, k, l)
					kl++
				}
			}
			for k := 0; k < n; k++ {
				for l := 0; l < n; l++ {
					require.Equal(t, at(i, j, k, l), s2ij[(ij*n+k)*n+l],
						"s2ij (%d%d|%d%d)", i, j, k, l)
				}
			}
			ij++
		}
	}
}
