// Package search - result aggregation.
//
// The Recorder is the single shared-mutation point of a run: workers
// call Report under its mutex on every full-depth completion, a
// low-frequency event next to the millions of move tries around it,
// so contention stays negligible.
package search

import (
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/knighttour/board"
)

// Recorder aggregates completion counters and appends each closed tour
// to the output sink. Safe for concurrent use; pass one instance by
// reference to every worker.
type Recorder struct {
	mu     sync.Mutex
	sink   io.Writer
	log    zerolog.Logger
	totals Totals
}

// NewRecorder builds a Recorder writing closed tours to sink. A nil
// sink keeps counters only (useful for dry runs and tests). Use
// zerolog.Nop() to silence per-find logging.
func NewRecorder(sink io.Writer, log zerolog.Logger) *Recorder {
	return &Recorder{sink: sink, log: log}
}

// Report registers one full-depth completion: bumps Found and the
// Closed/Opened split, and serializes closed tours to the sink. The
// board must still hold the completed tour when called. A sink failure
// is returned to the caller - silently losing a discovered tour is
// unacceptable - and leaves the counters already incremented.
func (r *Recorder) Report(b *board.Board, closed bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.totals.Found++
	if !closed {
		r.totals.Opened++
		r.log.Debug().Uint64("found", r.totals.Found).Msg("open-tour-found")

		return nil
	}

	r.totals.Closed++
	r.log.Info().Uint64("found", r.totals.Found).Uint64("closed", r.totals.Closed).Msg("closed-tour-found")
	if r.sink != nil {
		if err := b.WriteBlock(r.sink); err != nil {
			return fmt.Errorf("search: recording closed tour: %w", err)
		}
	}

	return nil
}

// Totals returns a consistent snapshot of the aggregate counters.
func (r *Recorder) Totals() Totals {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.totals
}
