// Package search - core types, options, and sentinel errors.
package search

import (
	"errors"
	"math"
	"runtime"

	"github.com/katalvlaran/knighttour/board"
	"github.com/katalvlaran/knighttour/knight"
)

// Sentinel errors for search configuration and execution.
var (
	// ErrBadDimensions indicates a board dimension smaller than 1.
	ErrBadDimensions = errors.New("search: board dimensions must be at least 1×1")
	// ErrBadBudget indicates a non-positive move-try budget.
	ErrBadBudget = errors.New("search: move-try budget must be at least 1")
	// ErrBudgetTooLarge indicates MaxTries is not smaller than the
	// theoretical count of all move sequences, 8^(width×height).
	// Such a budget is meaningless and the run aborts before any work.
	ErrBudgetTooLarge = errors.New("search: move-try budget must be smaller than 8^(width×height)")
	// ErrBadPatternCount indicates a non-positive number of shuffle attempts.
	ErrBadPatternCount = errors.New("search: pattern attempts per start must be at least 1")
	// ErrBadSwapCount indicates a negative shuffle swap count.
	ErrBadSwapCount = errors.New("search: shuffle swap count must not be negative")
	// ErrBadWorkerCount indicates a negative worker cap.
	ErrBadWorkerCount = errors.New("search: worker count must not be negative")
	// ErrNoStartPositions indicates neither Starts nor StartCount yields a start.
	ErrNoStartPositions = errors.New("search: at least one start position is required")
	// ErrStartOutOfBounds indicates an explicit start cell outside the board.
	ErrStartOutOfBounds = errors.New("search: start position out of board bounds")
)

// Outcome tells how a single (start, shuffle) attempt terminated.
// Neither value is an error: an unproductive attempt is ordinary.
type Outcome int

const (
	// OutcomeBudgetExhausted - the attempt spent its whole move-try
	// budget; the unexplored remainder of the subtree is discarded.
	OutcomeBudgetExhausted Outcome = iota
	// OutcomeSpaceExhausted - backtracking cascaded past the start
	// cell; this start/shuffle search space is fully explored.
	OutcomeSpaceExhausted
)

// String renders the outcome for logs and diagnostics.
func (o Outcome) String() string {
	switch o {
	case OutcomeSpaceExhausted:
		return "space-exhausted"
	default:
		return "budget-exhausted"
	}
}

// Totals are the aggregate counters of a run. Found counts every
// full-depth completion; Closed and Opened split it by classification.
// Found == Closed + Opened always holds after a run.
type Totals struct {
	Found  uint64
	Closed uint64
	Opened uint64
}

// Options holds the whole run configuration, fixed before a run begins.
type Options struct {
	// Width, Height are the board dimensions. Their product should be
	// even for closed tours to be mathematically possible; see
	// ClosedPossible. An odd product is permitted (open tours may
	// still be found), so Validate does not reject it.
	Width, Height int

	// Starts are the explicit start positions, one search unit each.
	// When empty, StartCount positions are derived deterministically
	// from Seed.
	Starts []board.Cell

	// StartCount is the number of derived start positions used when
	// Starts is empty.
	StartCount int

	// Patterns is the number of independent shuffle attempts per start.
	Patterns int

	// MaxTries is the per-attempt move-try budget. Must be smaller
	// than 8^(Width×Height).
	MaxTries uint64

	// ShuffleSwaps is the number of random pairwise swaps applied to
	// the move table before each attempt.
	ShuffleSwaps int

	// Seed drives all randomness. 0 selects a fixed default so runs
	// are reproducible out of the box.
	Seed int64

	// Workers caps concurrent start positions. 0 means no cap (one
	// goroutine per start, scheduling left to the runtime).
	Workers int
}

// DefaultOptions mirrors the reference run configuration: a 6×6 board,
// 5 start positions, 4 shuffle attempts each, a 2×10⁸ move-try budget,
// and 10 shuffle swaps.
func DefaultOptions() Options {
	return Options{
		Width:        6,
		Height:       6,
		StartCount:   5,
		Patterns:     4,
		MaxTries:     200_000_000,
		ShuffleSwaps: 10,
		Seed:         0,
		Workers:      runtime.NumCPU(),
	}
}

// Validate checks the configuration once, before any work starts.
// Returns the first violated sentinel; a valid Options returns nil.
// Complexity: O(len(Starts)).
func (o Options) Validate() error {
	if o.Width < 1 || o.Height < 1 {
		return ErrBadDimensions
	}
	if o.MaxTries < 1 {
		return ErrBadBudget
	}
	// 8^(W×H) overflows integers quickly; compare in float space like
	// the theoretical bound itself. +Inf for big boards admits any
	// finite budget.
	if float64(o.MaxTries) >= math.Pow(knight.MoveCount, float64(o.Width*o.Height)) {
		return ErrBudgetTooLarge
	}
	if o.Patterns < 1 {
		return ErrBadPatternCount
	}
	if o.ShuffleSwaps < 0 {
		return ErrBadSwapCount
	}
	if o.Workers < 0 {
		return ErrBadWorkerCount
	}
	if len(o.Starts) == 0 && o.StartCount < 1 {
		return ErrNoStartPositions
	}

	var c board.Cell
	for _, c = range o.Starts {
		if c.X < 0 || c.X >= o.Width || c.Y < 0 || c.Y >= o.Height {
			return ErrStartOutOfBounds
		}
	}

	return nil
}

// ClosedPossible reports whether a closed tour can exist at all on the
// configured board: the cell count must be even (parity argument - a
// knight alternates square colors every move). Callers surface this as
// a warning, not an error; open tours remain possible either way.
func (o Options) ClosedPossible() bool {
	return (o.Width*o.Height)%2 == 0
}
