package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knighttour/board"
	"github.com/katalvlaran/knighttour/search"
)

// valid returns a small configuration that passes Validate.
func valid() search.Options {
	o := search.DefaultOptions()
	o.Width, o.Height = 4, 4
	o.MaxTries = 1_000_000
	o.StartCount = 2

	return o
}

// TestOptions_Validate covers the full validation table.
func TestOptions_Validate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*search.Options)
		err    error
	}{
		{"Defaults", func(o *search.Options) {}, nil},
		{"ZeroWidth", func(o *search.Options) { o.Width = 0 }, search.ErrBadDimensions},
		{"NegativeHeight", func(o *search.Options) { o.Height = -2 }, search.ErrBadDimensions},
		{"ZeroBudget", func(o *search.Options) { o.MaxTries = 0 }, search.ErrBadBudget},
		{"ZeroPatterns", func(o *search.Options) { o.Patterns = 0 }, search.ErrBadPatternCount},
		{"NegativeSwaps", func(o *search.Options) { o.ShuffleSwaps = -1 }, search.ErrBadSwapCount},
		{"NegativeWorkers", func(o *search.Options) { o.Workers = -1 }, search.ErrBadWorkerCount},
		{"NoStarts", func(o *search.Options) { o.StartCount = 0 }, search.ErrNoStartPositions},
		{
			"ExplicitStartsOverrideCount",
			func(o *search.Options) { o.StartCount = 0; o.Starts = []board.Cell{{X: 1, Y: 1}} },
			nil,
		},
		{
			"StartOutOfBounds",
			func(o *search.Options) { o.Starts = []board.Cell{{X: 4, Y: 0}} },
			search.ErrStartOutOfBounds,
		},
		{
			"NegativeStart",
			func(o *search.Options) { o.Starts = []board.Cell{{X: 0, Y: -1}} },
			search.ErrStartOutOfBounds,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := valid()
			tc.mutate(&o)
			err := o.Validate()
			if tc.err == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.err)
			}
		})
	}
}

// TestOptions_BudgetGuard pins the 8^(W×H) boundary on a 2×2 board,
// where the theoretical search-space size is exactly 8^4 = 4096.
func TestOptions_BudgetGuard(t *testing.T) {
	o := valid()
	o.Width, o.Height = 2, 2

	o.MaxTries = 4096
	require.ErrorIs(t, o.Validate(), search.ErrBudgetTooLarge)

	o.MaxTries = 4095
	require.NoError(t, o.Validate())
}

// TestOptions_ClosedPossible checks the parity predicate.
func TestOptions_ClosedPossible(t *testing.T) {
	o := valid()
	require.True(t, o.ClosedPossible(), "4×4 has an even cell count")

	o.Width, o.Height = 5, 5
	require.False(t, o.ClosedPossible(), "5×5 has an odd cell count")
}

// TestDefaultOptions_AreValid keeps the shipped defaults runnable.
func TestDefaultOptions_AreValid(t *testing.T) {
	require.NoError(t, search.DefaultOptions().Validate())
}
