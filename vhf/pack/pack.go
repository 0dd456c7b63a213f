// Copyright 2025 The go-vhf Authors. SPDX-License-Identifier: Apache-2.0

package pack

// TrilSize returns the packed lower-triangle length for an n x n matrix.
func TrilSize(n int) int {
	return n * (n + 1) / 2
}

// PackTril packs the lower triangle of the n x n row-major matrix a into
// a new slice of length TrilSize(n).
func PackTril(a []float64, n int) []float64 {
	tril := make([]float64, TrilSize(n))
	ij := 0
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			tril[ij] = a[i*n+j]
			ij++
		}
	}
	return tril
}

// UnpackTril expands a packed lower triangle into a full symmetric
// n x n row-major matrix.
func UnpackTril(tril []float64, n int) []float64 {
	a := make([]float64, n*n)
	ij := 0
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			a[i*n+j] = tril[ij]
			a[j*n+i] = tril[ij]
			ij++
		}
	}
	return a
}

// SymmTriu mirrors the lower triangle of the n x n matrix a onto its
// upper triangle in place. Contraction kernels with tril output only
// fill i >= j; this completes the square.
func SymmTriu(a []float64, n int) {
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			a[j*n+i] = a[i*n+j]
		}
	}
}

// FoldTrilDM folds a density matrix into the lower-triangular form the
// tridm J kernel consumes:
//
//	tri[i*(i+1)/2+j] = dm[i,j] + dm[j,i]   for i > j
//	tri[i*(i+1)/2+i] = dm[i,i]
//
// The fold bakes the off-diagonal pair multiplicity into the density
// once per contraction call instead of once per block.
func FoldTrilDM(dm []float64, n int) []float64 {
	tri := make([]float64, TrilSize(n))
	ij := 0
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			tri[ij] = dm[i*n+j] + dm[j*n+i]
			ij++
		}
		tri[ij] = dm[i*n+i]
		ij++
	}
	return tri
}

// Symmetrize8 averages a dense n^4 tensor over the eight index
// permutations (ij|kl) = (ji|kl) = (ij|lk) = (ji|lk) = (kl|ij) = ...
// in place, leaving a tensor with full physical permutation symmetry.
func Symmetrize8(eri []float64, n int) {
	at := func(i, j, k, l int) int {
		return ((i*n+j)*n+k)*n + l
	}
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			for k := 0; k < n; k++ {
				for l := 0; l <= k; l++ {
					if k*(k+1)/2+l > i*(i+1)/2+j {
						continue
					}
					avg := (eri[at(i, j, k, l)] + eri[at(j, i, k, l)] +
						eri[at(i, j, l, k)] + eri[at(j, i, l, k)] +
						eri[at(k, l, i, j)] + eri[at(l, k, i, j)] +
						eri[at(k, l, j, i)] + eri[at(l, k, j, i)]) / 8
					eri[at(i, j, k, l)] = avg
					eri[at(j, i, k, l)] = avg
					eri[at(i, j, l, k)] = avg
					eri[at(j, i, l, k)] = avg
					eri[at(k, l, i, j)] = avg
					eri[at(l, k, i, j)] = avg
					eri[at(k, l, j, i)] = avg
					eri[at(l, k, j, i)] = avg
				}
			}
		}
	}
}

// PackS8 sub-samples a dense, physically symmetric n^4 tensor into the
// 8-fold packed layout: for pair(ij) >= pair(kl),
// out[pair(ij)*(pair(ij)+1)/2 + pair(kl)] = eri[i,j,k,l].
func PackS8(dense []float64, n int) []float64 {
	npair := TrilSize(n)
	out := make([]float64, npair*(npair+1)/2)
	ij := 0
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			base := ij * (ij + 1) / 2
			kl := 0
		block:
			for k := 0; k < n; k++ {
				for l := 0; l <= k; l++ {
					if kl > ij {
						break block
					}
					out[base+kl] = dense[((i*n+j)*n+k)*n+l]
					kl++
				}
			}
			ij++
		}
	}
	return out
}

// PackS4 sub-samples a dense, physically symmetric tensor into the
// 4-fold packed layout: out[pair(ij)*npair + pair(kl)] = eri[i,j,k,l]
// for i >= j and k >= l.
func PackS4(dense []float64, n int) []float64 {
	npair := TrilSize(n)
	out := make([]float64, npair*npair)
	ij := 0
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			kl := 0
			for k := 0; k < n; k++ {
				for l := 0; l <= k; l++ {
					out[ij*npair+kl] = dense[((i*n+j)*n+k)*n+l]
					kl++
				}
			}
			ij++
		}
	}
	return out
}

// PackS2ij sub-samples a dense tensor symmetric in (i, j) into the s2ij
// layout: out[pair(ij)*n*n + k*n + l] = eri[i,j,k,l] for i >= j.
func PackS2ij(dense []float64, n int) []float64 {
	npair := TrilSize(n)
	out := make([]float64, npair*n*n)
	ij := 0
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			copy(out[ij*n*n:(ij+1)*n*n], dense[(i*n+j)*n*n:(i*n+j+1)*n*n])
			ij++
		}
	}
	return out
}

// PackS2kl sub-samples a dense tensor symmetric in (k, l) into the s2kl
// layout: out[(i*n+j)*npair + pair(kl)] = eri[i,j,k,l] for k >= l, with
// (i, j) running over the full square.
func PackS2kl(dense []float64, n int) []float64 {
	npair := TrilSize(n)
	out := make([]float64, n*n*npair)
	for ij := 0; ij < n * n; ij++ {
		kl := 0
		for k := 0; k < n; k++ {
			for l := 0; l <= k; l++ {
				out[ij*npair+kl] = dense[(ij*n+k)*n+l]
				kl++
			}
		}
	}
	return out
}
