// Copyright 2025 The go-vhf Authors. SPDX-License-Identifier: Apache-2.0

package vhf

import "fmt"

// Packing identifies which of the two-electron integral tensor's eight
// physical index permutation symmetries are exploited by the storage
// layout of an eri array.
//
// Fewer exploited symmetries mean a larger array and simpler kernels:
//
//	S8    i>=j, k>=l, pair(ij)>=pair(kl)   npair*(npair+1)/2 elements
//	S4    i>=j, k>=l                       npair*npair
//	S2ij  i>=j                             npair*n*n
//	S2kl  k>=l                             n*n*npair
//	S1    none                             n*n*n*n
//
// where npair = n*(n+1)/2.
type Packing uint8

const (
	S8 Packing = iota
	S4
	S2ij
	S2kl
	S1
)

// String returns the conventional lowercase name of the packing scheme.
func (p Packing) String() string {
	switch p {
	case S8:
		return "s8"
	case S4:
		return "s4"
	case S2ij:
		return "s2ij"
	case S2kl:
		return "s2kl"
	case S1:
		return "s1"
	}
	return fmt.Sprintf("Packing(%d)", uint8(p))
}

// ParsePacking converts a scheme name ("s8", "s4", "s2ij", "s2kl", "s1")
// into its Packing value.
func ParsePacking(s string) (Packing, error) {
	switch s {
	case "s8":
		return S8, nil
	case "s4":
		return S4, nil
	case "s2ij":
		return S2ij, nil
	case "s2kl":
		return S2kl, nil
	case "s1":
		return S1, nil
	}
	return 0, fmt.Errorf("unknown packing scheme %q", s)
}

// Size returns the number of float64 elements an eri array packed with
// scheme p holds for basis dimension n.
func (p Packing) Size(n int) int {
	npair := PairCount(n)
	switch p {
	case S8:
		return npair * (npair + 1) / 2
	case S4:
		return npair * npair
	case S2ij:
		return npair * n * n
	case S2kl:
		return n * n * npair
	default:
		return n * n * n * n
	}
}

// NumBlocks returns how many outer (ic, jc) blocks the contraction driver
// enumerates for scheme p: the triangular pair count for the ij-symmetric
// schemes, the full square for the rest.
func (p Packing) NumBlocks(n int) int {
	switch p {
	case S8, S4, S2ij:
		return PairCount(n)
	default:
		return n * n
	}
}
