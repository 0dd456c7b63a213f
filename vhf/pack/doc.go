// Copyright 2025 The go-vhf Authors. SPDX-License-Identifier: Apache-2.0

// Package pack converts between dense and symmetry-packed layouts of
// matrices and two-electron integral tensors.
//
// Square symmetric matrices are packed as lower triangles linearized by
// ij = i*(i+1)/2 + j. The four-index tensor packers (PackS8, PackS4,
// PackS2ij, PackS2kl) sub-sample a dense n^4 tensor that carries the
// full 8-fold physical symmetry into the layout each contraction driver
// expects; Symmetrize8 imposes that symmetry on an arbitrary dense
// tensor by averaging its permutation images.
package pack
