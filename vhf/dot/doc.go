// Copyright 2025 The go-vhf Authors. SPDX-License-Identifier: Apache-2.0

// Package dot provides the small BLAS-like primitives the contraction
// kernels are built on: dot products and scaled vector accumulation.
//
// The implementations are scalar Go with multi-accumulator unrolling,
// which keeps the loops pipelined without committing to a particular
// SIMD instruction set. Both float64 (the contraction precision) and
// float32 variants are provided.
package dot
