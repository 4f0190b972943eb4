// Package batch runs many severance calculations concurrently. Each
// calculation is a pure function of its input, so the only coordination
// needed is a bound on in-flight work; results come back in input order.
package batch

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/landquant/severance/internal/engine"
	"github.com/landquant/severance/internal/parcel"
)

// Concurrency bounds.
const (
	// DefaultConcurrency is the number of calculations run in parallel when
	// the caller does not pick one.
	DefaultConcurrency = 4

	// MaxConcurrency caps the worker count; calculations are sub-millisecond
	// so more parallelism only adds scheduling overhead.
	MaxConcurrency = 32
)

// ErrInvalidConcurrency rejects a worker count outside [1, MaxConcurrency].
var ErrInvalidConcurrency = errors.New("concurrency must be between 1 and 32")

// Result pairs one input with its calculation outcome. Exactly one of
// Summary and Err is set.
type Result struct {
	// Index is the position of the input in the submitted slice.
	Index   int
	Summary *engine.Summary
	Err     error
}

// Runner fans calculations out across a bounded worker pool.
type Runner struct {
	eng         *engine.Engine
	concurrency int
}

// NewRunner wraps eng with a pool of the given size.
func NewRunner(eng *engine.Engine, concurrency int) (*Runner, error) {
	if concurrency < 1 || concurrency > MaxConcurrency {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidConcurrency, concurrency)
	}
	return &Runner{eng: eng, concurrency: concurrency}, nil
}

// Run calculates every input and returns one Result per input, in input
// order. Individual failures (validation, rate lookup) land in their
// Result.Err rather than aborting the batch; only context cancellation stops
// the run early.
func (r *Runner) Run(ctx context.Context, inputs []*parcel.Input) ([]Result, error) {
	results := make([]Result, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			summary, err := r.eng.Calculate(ctx, in)
			results[i] = Result{Index: i, Summary: summary, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
