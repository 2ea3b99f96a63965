package search_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/knighttour/board"
	"github.com/katalvlaran/knighttour/search"
)

// BenchmarkSolve_6x6 measures one budget-bounded attempt batch on the
// reference 6×6 board, single worker, counters only.
func BenchmarkSolve_6x6(b *testing.B) {
	opts := search.Options{
		Width:        6,
		Height:       6,
		Starts:       []board.Cell{{X: 5, Y: 5}},
		Patterns:     1,
		MaxTries:     100_000,
		ShuffleSwaps: 10,
		Seed:         42,
		Workers:      1,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.Solve(context.Background(), opts, search.NewRecorder(nil, zerolog.Nop())); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_Parallel measures the fan-out over several starts.
func BenchmarkSolve_Parallel(b *testing.B) {
	opts := search.Options{
		Width:        6,
		Height:       6,
		StartCount:   8,
		Patterns:     1,
		MaxTries:     50_000,
		ShuffleSwaps: 10,
		Seed:         42,
		Workers:      0, // one goroutine per start
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.Solve(context.Background(), opts, search.NewRecorder(nil, zerolog.Nop())); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}
