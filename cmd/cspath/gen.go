// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cspath/generate"
	"github.com/katalvlaran/cspath/instance"
	"github.com/katalvlaran/cspath/internal/logging"
)

type genFlags struct {
	nodes   int
	count   int
	limit   int64
	seed    int64
	density float64
	maxCost int64
	maxTime int64
	missing int64
}

func (a *app) newGenCmd() *cobra.Command {
	var f genFlags
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Write random records in the solve input format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runGen(cmd, f)
		},
	}

	fs := cmd.Flags()
	fs.IntVarP(&f.nodes, "nodes", "n", 10, "nodes per record")
	fs.IntVarP(&f.count, "count", "c", 1, "number of records")
	fs.Int64Var(&f.limit, "limit", 100, "time limit written in each header")
	fs.Int64Var(&f.seed, "seed", generate.DefaultSeed, "RNG seed; 0 selects the default")
	fs.Float64Var(&f.density, "density", generate.DefaultDensity, "probability that an edge is present")
	fs.Int64Var(&f.maxCost, "max-cost", generate.DefaultMaxCost, "costs are drawn from [0,max-cost]")
	fs.Int64Var(&f.maxTime, "max-time", generate.DefaultMaxTime, "times are drawn from [1,max-time]")
	fs.Int64Var(&f.missing, "missing", generate.DefaultMissing, "weight written for absent edges")

	return cmd
}

func (a *app) runGen(cmd *cobra.Command, f genFlags) error {
	ctx, log := logging.WithRunLogger(cmd.Context(), a.log)
	if f.count < 0 {
		return fmt.Errorf("gen: count=%d must be non-negative", f.count)
	}

	// One generator across records; a shared seed would repeat them.
	if f.seed == 0 {
		f.seed = generate.DefaultSeed
	}
	rng := rand.New(rand.NewSource(f.seed))
	opts := []generate.Option{
		generate.WithRand(rng),
		generate.WithDensity(f.density),
		generate.WithCostRange(0, f.maxCost),
		generate.WithTimeRange(1, f.maxTime),
		generate.WithMissing(f.missing),
	}

	w := instance.NewWriter(cmd.OutOrStdout())
	for k := 0; k < f.count; k++ {
		in, err := generate.Random(f.nodes, f.limit, opts...)
		if err != nil {
			return err
		}
		if err = w.Write(in); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}
	log.Info(ctx, "generated",
		logging.Int("records", f.count),
		logging.Int("nodes", f.nodes),
		logging.Int64("seed", f.seed),
	)

	return nil
}
