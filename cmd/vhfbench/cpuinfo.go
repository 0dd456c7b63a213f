// Copyright 2025 The go-vhf Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sys/cpu"
)

// printArchFeatures reports the vector and FMA capabilities of the host.
// The contraction kernels are scalar Go, so these only bound what the
// compiler's auto-vectorization and future asm kernels could reach.
func printArchFeatures(w io.Writer) {
	switch runtime.GOARCH {
	case "amd64":
		fmt.Fprintln(w, "=== golang.org/x/sys/cpu.X86 ===")
		fmt.Fprintf(w, "  HasSSE2:     %v\n", cpu.X86.HasSSE2)
		fmt.Fprintf(w, "  HasSSE41:    %v\n", cpu.X86.HasSSE41)
		fmt.Fprintf(w, "  HasSSE42:    %v\n", cpu.X86.HasSSE42)
		fmt.Fprintf(w, "  HasAVX:      %v\n", cpu.X86.HasAVX)
		fmt.Fprintf(w, "  HasAVX2:     %v\n", cpu.X86.HasAVX2)
		fmt.Fprintf(w, "  HasFMA:      %v\n", cpu.X86.HasFMA)
		fmt.Fprintf(w, "  HasAVX512F:  %v\n", cpu.X86.HasAVX512F)
		fmt.Fprintf(w, "  HasAVX512BW: %v\n", cpu.X86.HasAVX512BW)
		fmt.Fprintf(w, "  HasAVX512VL: %v\n", cpu.X86.HasAVX512VL)
	case "arm64":
		fmt.Fprintln(w, "=== golang.org/x/sys/cpu.ARM64 ===")
		fmt.Fprintf(w, "  HasASIMD:    %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
		fmt.Fprintf(w, "  HasFP:       %v (Floating point)\n", cpu.ARM64.HasFP)
		fmt.Fprintf(w, "  HasASIMDFHM: %v (FP16 FMA, ARMv8.4-A)\n", cpu.ARM64.HasASIMDFHM)
		fmt.Fprintf(w, "  HasSVE:      %v (Scalable Vector Extension)\n", cpu.ARM64.HasSVE)
		fmt.Fprintf(w, "  HasSVE2:     %v (SVE2)\n", cpu.ARM64.HasSVE2)
	default:
		fmt.Fprintf(w, "no feature report for GOARCH %s\n", runtime.GOARCH)
	}
}
