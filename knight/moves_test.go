package knight_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knighttour/board"
	"github.com/katalvlaran/knighttour/knight"
)

// canonical returns a sorted copy of m, usable as a multiset fingerprint.
func canonical(m [knight.MoveCount]knight.Offset) []knight.Offset {
	s := m[:]
	out := make([]knight.Offset, len(s))
	copy(out, s)
	sort.Slice(out, func(i, j int) bool {
		if out[i].DX != out[j].DX {
			return out[i].DX < out[j].DX
		}

		return out[i].DY < out[j].DY
	})

	return out
}

// TestMoves_Set verifies the canonical table is exactly the 8 knight offsets.
func TestMoves_Set(t *testing.T) {
	want := []knight.Offset{
		{DX: -2, DY: -1}, {DX: -2, DY: 1},
		{DX: -1, DY: -2}, {DX: -1, DY: 2},
		{DX: 1, DY: -2}, {DX: 1, DY: 2},
		{DX: 2, DY: -1}, {DX: 2, DY: 1},
	}
	require.Equal(t, want, canonical(knight.Moves()))
}

// TestShuffle_PreservesMultiset verifies that any swap count under any
// seed yields a permutation of the same 8 offsets.
func TestShuffle_PreservesMultiset(t *testing.T) {
	want := canonical(knight.Moves())

	var seed int64
	for seed = 1; seed <= 20; seed++ {
		for _, swaps := range []int{0, 1, 10, 100} {
			m := knight.Moves()
			knight.Shuffle(&m, swaps, rand.New(rand.NewSource(seed)))
			require.Equal(t, want, canonical(m), "seed=%d swaps=%d", seed, swaps)
		}
	}
}

// TestShuffle_ZeroSwapsIsIdentity verifies a zero swap count leaves the
// table order untouched.
func TestShuffle_ZeroSwapsIsIdentity(t *testing.T) {
	m := knight.Moves()
	knight.Shuffle(&m, 0, rand.New(rand.NewSource(1)))
	require.Equal(t, knight.Moves(), m)
}

// TestApply verifies offset application.
func TestApply(t *testing.T) {
	c := knight.Apply(board.Cell{X: 3, Y: 4}, knight.Offset{DX: -2, DY: 1})
	require.Equal(t, board.Cell{X: 1, Y: 5}, c)
}

// TestCloses covers the classification table, including the 6×6
// examples: start (5,5), last (4,3) is closed; last (0,0) is open.
func TestCloses(t *testing.T) {
	cases := []struct {
		name  string
		a, b  board.Cell
		close bool
	}{
		{"Closed_1_2", board.Cell{X: 4, Y: 3}, board.Cell{X: 5, Y: 5}, true},
		{"Closed_2_1", board.Cell{X: 3, Y: 4}, board.Cell{X: 5, Y: 5}, true},
		{"Open_FarCorner", board.Cell{X: 0, Y: 0}, board.Cell{X: 5, Y: 5}, false},
		{"Open_SameCell", board.Cell{X: 2, Y: 2}, board.Cell{X: 2, Y: 2}, false},
		{"Open_Orthogonal", board.Cell{X: 2, Y: 2}, board.Cell{X: 2, Y: 4}, false},
		{"Open_Diagonal_2_2", board.Cell{X: 0, Y: 0}, board.Cell{X: 2, Y: 2}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.close, knight.Closes(tc.a, tc.b))
			require.Equal(t, tc.close, knight.Closes(tc.b, tc.a), "symmetry")
		})
	}
}
