// SPDX-License-Identifier: MIT

package generate

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/cspath/instance"
	"github.com/katalvlaran/cspath/matrix"
)

// Sentinel errors.
var (
	ErrTooFewNodes        = errors.New("generate: need at least one node")
	ErrInvalidProbability = errors.New("generate: density must lie in [0,1]")
	ErrInvalidRange       = errors.New("generate: weight range must satisfy 0 ≤ min ≤ max")
	ErrBadLimit           = errors.New("generate: time limit must be non-negative")
)

// Defaults.
const (
	DefaultSeed    int64   = 1 // used when the seed is 0
	DefaultDensity float64 = 1
	DefaultMaxCost int64   = 100
	DefaultMaxTime int64   = 20
	DefaultMissing int64   = 1_000_000
)

// WeightFn draws one non-negative integer weight.
type WeightFn func(rng *rand.Rand) int64

// Uniform returns a WeightFn sampling [lo, hi] inclusive. The caller
// guarantees 0 ≤ lo ≤ hi; Random validates its own ranges.
func Uniform(lo, hi int64) WeightFn {
	return func(rng *rand.Rand) int64 {
		span := hi - lo
		switch {
		case span == 0:
			return lo
		case span == math.MaxInt64:
			return lo + rng.Int63()
		}

		return lo + rng.Int63n(span+1)
	}
}

// Options configures Random.
type Options struct {
	Seed    int64
	Density float64
	CostMin int64
	CostMax int64
	TimeMin int64
	TimeMax int64
	Missing int64
	rng     *rand.Rand
	costFn  WeightFn
	timeFn  WeightFn
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a dense instance with costs in [0,100] and times in
// [1,20].
func DefaultOptions() Options {
	return Options{
		Seed:    DefaultSeed,
		Density: DefaultDensity,
		CostMin: 0,
		CostMax: DefaultMaxCost,
		TimeMin: 1,
		TimeMax: DefaultMaxTime,
		Missing: DefaultMissing,
	}
}

// WithSeed sets the RNG seed; 0 selects DefaultSeed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand shares an RNG across calls, e.g. to draw a stream of distinct
// instances from one seed. A nil r is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.rng = r
		}
	}
}

// WithDensity sets the probability that an off-diagonal pair is present.
func WithDensity(p float64) Option {
	return func(o *Options) {
		o.Density = p
	}
}

// WithCostRange sets the inclusive cost range of present edges.
func WithCostRange(lo, hi int64) Option {
	return func(o *Options) {
		o.CostMin, o.CostMax = lo, hi
	}
}

// WithTimeRange sets the inclusive time range of present edges.
func WithTimeRange(lo, hi int64) Option {
	return func(o *Options) {
		o.TimeMin, o.TimeMax = lo, hi
	}
}

// WithMissing sets the weight written for absent pairs.
func WithMissing(w int64) Option {
	return func(o *Options) {
		o.Missing = w
	}
}

// WithWeightFns replaces the uniform cost and time draws. Nil functions
// keep the uniform default for that resource.
func WithWeightFns(cost, time WeightFn) Option {
	return func(o *Options) {
		o.costFn, o.timeFn = cost, time
	}
}

func (o *Options) validate(n int, limit int64) error {
	if n < 1 {
		return fmt.Errorf("Random: n=%d: %w", n, ErrTooFewNodes)
	}
	if o.Density < 0 || o.Density > 1 {
		return fmt.Errorf("Random: density=%g: %w", o.Density, ErrInvalidProbability)
	}
	if o.CostMin < 0 || o.CostMax < o.CostMin {
		return fmt.Errorf("Random: cost [%d,%d]: %w", o.CostMin, o.CostMax, ErrInvalidRange)
	}
	if o.TimeMin < 0 || o.TimeMax < o.TimeMin {
		return fmt.Errorf("Random: time [%d,%d]: %w", o.TimeMin, o.TimeMax, ErrInvalidRange)
	}
	if o.Missing < 0 {
		return fmt.Errorf("Random: missing=%d: %w", o.Missing, ErrInvalidRange)
	}
	if limit < 0 {
		return fmt.Errorf("Random: limit=%d: %w", limit, ErrBadLimit)
	}

	return nil
}

// Random returns an n-node instance with the given time limit.
//
// Complexity: O(n²) time and space.
func Random(n int, limit int64, opts ...Option) (*instance.Instance, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(n, limit); err != nil {
		return nil, err
	}

	rng := o.rng
	if rng == nil {
		seed := o.Seed
		if seed == 0 {
			seed = DefaultSeed
		}
		rng = rand.New(rand.NewSource(seed))
	}
	costFn, timeFn := o.costFn, o.timeFn
	if costFn == nil {
		costFn = Uniform(o.CostMin, o.CostMax)
	}
	if timeFn == nil {
		timeFn = Uniform(o.TimeMin, o.TimeMax)
	}

	cost, err := matrix.NewSquare(n)
	if err != nil {
		return nil, err
	}
	tm, err := matrix.NewSquare(n)
	if err != nil {
		return nil, err
	}

	var (
		i, j int
		c, t int64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			c, t = o.Missing, o.Missing
			if rng.Float64() < o.Density {
				c, t = costFn(rng), timeFn(rng)
			}
			if err = cost.Set(i, j, c); err != nil {
				return nil, err
			}
			if err = tm.Set(i, j, t); err != nil {
				return nil, err
			}
		}
	}

	return &instance.Instance{TimeLimit: limit, Time: tm, Cost: cost}, nil
}
