// Copyright 2025 The go-vhf Authors. SPDX-License-Identifier: Apache-2.0

// Package vhf builds Coulomb (J) and exchange (K) matrices from a packed
// two-electron integral tensor and density matrices, exploiting the
// tensor's permutational symmetries to skip redundant storage and
// arithmetic.
//
// # Layout
//
// An integral tensor (ij|kl) over n basis functions carries an 8-fold
// physical symmetry. The Packing constants (S8, S4, S2ij, S2kl, S1) name
// how much of it a stored eri array exploits; Packing.Size gives the
// array length for each. All matrices are dense row-major []float64.
//
// # Kernels and drivers
//
// A Kernel consumes the integral block of one outer pair (ic, jc) and
// adds its contribution into an n x n output. The Contract* drivers
// enumerate all blocks for one packing, hand each to a J and a K kernel,
// and run the enumeration on a workerpool.Pool with per-worker private
// accumulators that are summed into the caller's vj/vk at the end. JK
// wraps the standard kernel pairing for each packing.
//
// # Contract
//
// This is a hot inner-loop library and performs no runtime validation.
// The caller must pick a (packing, J kernel, K kernel) triple that
// matches how eri was produced; a mismatch silently yields wrong
// numbers. eri, dmj and dmk are read-only during a call and may be
// shared freely; vj and vk are zeroed by the driver before any kernel
// runs, so drivers never leak state between calls. Builds with the
// vhfdebug tag add size assertions on the driver entry points.
package vhf
