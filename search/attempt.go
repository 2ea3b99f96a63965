// Package search - the per-start attempt driver.
package search

import (
	"math/rand"

	"github.com/katalvlaran/knighttour/board"
	"github.com/katalvlaran/knighttour/knight"
)

// runStart explores one start position: Patterns independent attempts,
// each over a freshly reshuffled move table and a reset board. The
// board, track, and move table live on this worker alone; attempts
// share nothing but the Recorder. Only a Report (sink) failure is an
// error - unproductive attempts are ordinary.
func runStart(o Options, start board.Cell, rng *rand.Rand, rec *Recorder) error {
	brd, err := board.New(o.Width, o.Height)
	if err != nil {
		return err
	}

	moves := knight.Moves()
	eng := newEngine(brd, &moves, o.MaxTries, rec)

	var p int
	for p = 0; p < o.Patterns; p++ {
		knight.Shuffle(&moves, o.ShuffleSwaps, rng)
		if _, err = eng.run(start); err != nil {
			return err
		}
	}

	return nil
}
