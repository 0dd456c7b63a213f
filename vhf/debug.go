// Copyright 2025 The go-vhf Authors. SPDX-License-Identifier: Apache-2.0

//go:build vhfdebug

package vhf

import "fmt"

// With the vhfdebug build tag the drivers verify that the eri array is
// at least as large as the declared packing requires. The hot path
// carries no checks by default; preconditions are documented instead.
func assertPacked(p Packing, eri []float64, n int) {
	if want := p.Size(n); len(eri) < want {
		panic(fmt.Sprintf("vhf: %s eri has %d elements, need %d for n=%d",
			p, len(eri), want, n))
	}
}
