// Copyright 2025 The go-vhf Authors. SPDX-License-Identifier: Apache-2.0

// vhfbench measures J/K contraction throughput for the packed integral
// layouts and reports per-scheme timings, either human-readable or as
// JSON. A YAML case file can describe a whole sweep.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-vhf/vhf"
	"github.com/ajroetker/go-vhf/vhf/workerpool"
)

// Case is one benchmark configuration.
type Case struct {
	N       int    `yaml:"n" json:"n"`
	Packing string `yaml:"packing" json:"packing"`
	Iters   int    `yaml:"iters" json:"iters"`
}

// CaseFile is the YAML document accepted by --cases.
type CaseFile struct {
	Cases []Case `yaml:"cases"`
}

// Result is the measured outcome of one case.
type Result struct {
	Case    Case    `json:"case"`
	Workers int     `json:"workers"`
	EriMB   float64 `json:"eri_mb"`
	Seconds float64 `json:"seconds_per_iter"`
	GFLOPS  float64 `json:"dense_equiv_gflops"`
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		n         int
		packing   string
		iters     int
		workers   int
		seed      int64
		casesPath string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:           "vhfbench",
		Short:         "benchmark J/K contractions over packed integral tensors",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cases := []Case{{N: n, Packing: packing, Iters: iters}}
			if casesPath != "" {
				var err error
				cases, err = loadCases(casesPath)
				if err != nil {
					return err
				}
			}

			pool := workerpool.New(workers)
			defer pool.Close()

			results := make([]Result, 0, len(cases))
			for _, c := range cases {
				r, err := runCase(c, pool, seed)
				if err != nil {
					return err
				}
				results = append(results, r)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}
			for _, r := range results {
				fmt.Fprintf(cmd.OutOrStdout(),
					"%-5s n=%-5d eri=%8.1f MB  %10.3f ms/iter  %8.2f dense-equiv GFLOP/s\n",
					r.Case.Packing, r.Case.N, r.EriMB, r.Seconds*1e3, r.GFLOPS)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&n, "n", "n", 32, "basis dimension")
	cmd.Flags().StringVarP(&packing, "packing", "p", "s8", "packing scheme (s8, s4, s2ij, s2kl, s1)")
	cmd.Flags().IntVarP(&iters, "iters", "i", 5, "iterations per case")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "pool workers (0 = GOMAXPROCS)")
	cmd.Flags().Int64Var(&seed, "seed", 42, "random seed for tensor and density generation")
	cmd.Flags().StringVar(&casesPath, "cases", "", "YAML file with a list of cases")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit results as JSON")

	cmd.AddCommand(newCPUInfoCmd())
	return cmd
}

func loadCases(path string) ([]Case, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading case file: %w", err)
	}
	var f CaseFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parsing case file %s: %w", path, err)
	}
	if len(f.Cases) == 0 {
		return nil, fmt.Errorf("case file %s lists no cases", path)
	}
	for i := range f.Cases {
		if f.Cases[i].Iters <= 0 {
			f.Cases[i].Iters = 5
		}
	}
	return f.Cases, nil
}

func runCase(c Case, pool *workerpool.Pool, seed int64) (Result, error) {
	p, err := vhf.ParsePacking(c.Packing)
	if err != nil {
		return Result{}, err
	}
	if c.N <= 0 {
		return Result{}, fmt.Errorf("invalid basis dimension %d", c.N)
	}

	rng := rand.New(rand.NewSource(seed))
	// Timing does not care about the tensor's physical symmetry, so the
	// packed array is filled directly instead of symmetrizing an n^4
	// dense tensor first.
	eri := make([]float64, p.Size(c.N))
	for i := range eri {
		eri[i] = rng.NormFloat64()
	}
	dm := make([]float64, c.N*c.N)
	for i := range dm {
		dm[i] = rng.NormFloat64()
	}

	// Warm up once so page faults and pool spin-up stay out of the
	// measured iterations.
	vhf.JK(pool, p, eri, dm, dm, c.N)

	start := time.Now()
	for rangeIdx162 := 0; rangeIdx162 < c.Iters; rangeIdx162++ {
		vhf.JK(pool, p, eri, dm, dm, c.N)
	}
	perIter := time.Since(start).Seconds() / float64(c.Iters)

	nf := float64(c.N)
	return Result{
		Case:    c,
		Workers: pool.NumWorkers(),
		EriMB:   float64(len(eri)) * 8 / (1 << 20),
		Seconds: perIter,
		// A dense no-symmetry J+K pass does 4*n^4 floating point ops;
		// reporting against that baseline makes schemes comparable.
		GFLOPS: 4 * nf * nf * nf * nf / perIter / 1e9,
	}, nil
}

func newCPUInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cpuinfo",
		Short: "print the CPU features relevant to contraction throughput",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "GOOS: %s\n", runtime.GOOS)
			fmt.Fprintf(out, "GOARCH: %s\n", runtime.GOARCH)
			fmt.Fprintf(out, "NumCPU: %d\n", runtime.NumCPU())
			fmt.Fprintf(out, "GOMAXPROCS: %d\n", runtime.GOMAXPROCS(0))
			fmt.Fprintln(out)
			printArchFeatures(out)
		},
	}
}
