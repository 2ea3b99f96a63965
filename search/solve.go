// Package search - the parallel driver.
//
// Solve fans the configured start positions out across goroutines via
// errgroup, optionally capped by Options.Workers. Each worker owns its
// whole search state; workers interact only through the Recorder, so
// no ordering between them is required or assumed. There is no
// cancellation inside an attempt - once a start position begins, every
// attempt runs to its budget or full exhaustion; the context only
// gates whether the next start position launches at all.
package search

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/knighttour/board"
)

// Solve validates opts and runs the whole search, reporting every
// completion through rec. It returns the aggregate totals (also
// available from rec) and the first error, if any: either a
// validation sentinel before any work, or a propagated sink failure.
func Solve(ctx context.Context, opts Options, rec *Recorder) (Totals, error) {
	if err := opts.Validate(); err != nil {
		return Totals{}, err
	}

	starts := opts.Starts
	if len(starts) == 0 {
		starts = deriveStarts(opts)
	}

	g, ctx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}

	for i, start := range starts {
		i, start := i, start
		g.Go(func() error {
			// A failed sibling or cancelled parent stops unstarted
			// units; running units are never interrupted.
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			return runStart(opts, start, streamRNG(opts.Seed, uint64(i)), rec)
		})
	}

	err := g.Wait()

	return rec.Totals(), err
}

// deriveStarts generates StartCount start cells deterministically from
// the seed, on a stream disjoint from every worker stream. Duplicates
// are allowed - the reference explores repeated starts too, and tours
// are not deduplicated anyway.
func deriveStarts(opts Options) []board.Cell {
	rng := streamRNG(opts.Seed, startStream)
	starts := make([]board.Cell, opts.StartCount)

	var i int
	for i = range starts {
		starts[i] = board.Cell{X: rng.Intn(opts.Width), Y: rng.Intn(opts.Height)}
	}

	return starts
}
