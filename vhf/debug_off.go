// Copyright 2025 The go-vhf Authors. SPDX-License-Identifier: Apache-2.0

//go:build !vhfdebug

package vhf

// Release builds skip all precondition checks; see debug.go.
func assertPacked(Packing, []float64, int) {}
