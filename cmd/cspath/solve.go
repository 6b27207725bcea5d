// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cspath/cspath"
	"github.com/katalvlaran/cspath/instance"
	"github.com/katalvlaran/cspath/internal/logging"
	"github.com/katalvlaran/cspath/internal/metrics"
)

type solveFlags struct {
	input       string
	strategy    string
	tieBreak    string
	infeasible  string
	threshold   int64
	maxNodes    int
	metricsFile string
	strict      bool
}

func (a *app) newSolveCmd() *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Read records until \"0 0\" and print \"cost time\" for each",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.applySolveFlags(cmd, f); err != nil {
				return err
			}

			return a.runSolve(cmd, f.input)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&f.input, "input", "i", "-", "input file, - for stdin")
	fs.StringVar(&f.strategy, "strategy", "", "search strategy: pair-label or exact")
	fs.StringVar(&f.tieBreak, "tie-break", "", "equal-cost rule at the destination: min-time or first-seen")
	fs.StringVar(&f.infeasible, "infeasible", "", "infeasible answers: sentinel or error")
	fs.Int64Var(&f.threshold, "inf-edge-threshold", 0, "treat entries >= N as missing edges (0 disables)")
	fs.IntVar(&f.maxNodes, "max-nodes", 0, "reject records with more nodes")
	fs.StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics to this file on exit")
	fs.BoolVar(&f.strict, "strict", false, "require the 0 0 terminator")

	return cmd
}

// applySolveFlags overlays explicitly set flags on the loaded configuration.
func (a *app) applySolveFlags(cmd *cobra.Command, f solveFlags) error {
	fs := cmd.Flags()
	if fs.Changed("strategy") {
		a.cfg.Solver.Strategy = f.strategy
	}
	if fs.Changed("tie-break") {
		a.cfg.Solver.TieBreak = f.tieBreak
	}
	if fs.Changed("infeasible") {
		a.cfg.Output.Infeasible = f.infeasible
	}
	if fs.Changed("inf-edge-threshold") {
		a.cfg.Solver.InfEdgeThreshold = f.threshold
	}
	if fs.Changed("max-nodes") {
		a.cfg.Solver.MaxNodes = f.maxNodes
	}
	if fs.Changed("metrics-file") {
		a.cfg.Metrics.File = f.metricsFile
	}
	if fs.Changed("strict") {
		a.cfg.Solver.StrictSentinel = f.strict
	}

	return a.cfg.Validate()
}

func (a *app) runSolve(cmd *cobra.Command, input string) (err error) {
	ctx, log := logging.WithRunLogger(cmd.Context(), a.log)

	in := cmd.InOrStdin()
	if input != "" && input != "-" {
		file, err := os.Open(input)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer file.Close()
		in = file
	}

	opts, err := a.cfg.Solver.Options()
	if err != nil {
		return err
	}
	strategy, _ := cspath.ParseStrategy(a.cfg.Solver.Strategy)
	policy, err := instance.ParseInfeasiblePolicy(a.cfg.Output.Infeasible)
	if err != nil {
		return err
	}

	decOpts := []instance.DecoderOption{instance.WithMaxNodes(a.cfg.Solver.MaxNodes)}
	if a.cfg.Solver.StrictSentinel {
		decOpts = append(decOpts, instance.WithStrictSentinel())
	}
	dec := instance.NewDecoder(in, decOpts...)
	enc := instance.NewEncoder(cmd.OutOrStdout(),
		instance.WithInfeasiblePolicy(policy),
		instance.WithSentinel(a.cfg.Output.Sentinel),
	)
	rec := metrics.New()

	defer func() {
		if ferr := enc.Flush(); err == nil {
			err = ferr
		}
		if path := a.cfg.Metrics.File; path != "" {
			if werr := rec.WriteTextfile(path); werr != nil && err == nil {
				err = fmt.Errorf("write metrics: %w", werr)
			}
		}
	}()

	log.Debug(ctx, "solving",
		logging.String("strategy", strategy.String()),
		logging.String("tie_break", a.cfg.Solver.TieBreak),
		logging.String("infeasible", policy.String()),
	)
	count, err := solveStream(ctx, log, dec, enc, rec, strategy, opts)
	if err != nil {
		log.Error(ctx, "stopped", logging.Int("records", count), logging.Err(err))

		return err
	}
	log.Info(ctx, "done", logging.Int("records", count))

	return nil
}

// solveStream answers records in order until the decoder is exhausted or a
// record fails. It returns the number of records answered.
func solveStream(
	ctx context.Context,
	log logging.Logger,
	dec *instance.Decoder,
	enc *instance.Encoder,
	rec *metrics.Recorder,
	strategy cspath.Strategy,
	opts []cspath.Option,
) (int, error) {
	base := opts[:len(opts):len(opts)]
	count := 0
	for {
		in, err := dec.Next()
		if errors.Is(err, io.EOF) {
			return count, nil
		}
		if err != nil {
			return count, fmt.Errorf("decode: %w", err)
		}

		start := time.Now()
		res, err := cspath.Solve(in.Cost, in.Time,
			append(base, cspath.WithTimeLimit(in.TimeLimit), cspath.WithContext(ctx))...)
		elapsed := time.Since(start)
		rec.Observe(strategy, res, err, elapsed)
		if err != nil && !errors.Is(err, cspath.ErrInfeasible) {
			return count, fmt.Errorf("record %d: %w", in.Index, err)
		}
		log.Debug(ctx, "record solved",
			logging.Int("record", in.Index),
			logging.Int("nodes", in.Nodes()),
			logging.Int64("limit", in.TimeLimit),
			logging.Bool("feasible", res.Feasible),
			logging.Int("pushes", res.Stats.Pushes),
			logging.Duration("elapsed", elapsed),
		)

		if err = enc.Encode(res); err != nil {
			return count, fmt.Errorf("record %d: %w", in.Index, err)
		}
		count++
	}
}
