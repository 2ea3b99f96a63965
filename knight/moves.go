package knight

import (
	"math/rand"

	"github.com/katalvlaran/knighttour/board"
)

// MoveCount is the number of knight offsets; a move cursor equal to
// MoveCount means every alternative at that step has been exhausted.
const MoveCount = 8

// Offset is one knight move: the coordinate delta applied to a cell.
type Offset struct {
	DX, DY int
}

// Moves returns the canonical knight move table. Returned by value so
// each search attempt owns and reorders its private copy.
func Moves() [MoveCount]Offset {
	return [MoveCount]Offset{
		{DX: -2, DY: -1}, {DX: -2, DY: 1},
		{DX: -1, DY: -2}, {DX: -1, DY: 2},
		{DX: 1, DY: -2}, {DX: 1, DY: 2},
		{DX: 2, DY: -1}, {DX: 2, DY: 1},
	}
}

// Apply returns the cell reached by following o from c. The result may
// lie off the board; feasibility is the caller's concern.
// Complexity: O(1).
func Apply(c board.Cell, o Offset) board.Cell {
	return board.Cell{X: c.X + o.DX, Y: c.Y + o.DY}
}

// Shuffle reorders m in place by exactly swaps random pairwise swaps
// drawn from rng. The result is always a permutation of the same 8
// offsets; uniformity over all permutations is not guaranteed and not
// needed - the table order only steers which tours are found first.
// Complexity: O(swaps).
func Shuffle(m *[MoveCount]Offset, swaps int, rng *rand.Rand) {
	var i, a, b int
	for i = 0; i < swaps; i++ {
		a = rng.Intn(MoveCount)
		b = rng.Intn(MoveCount)
		m[a], m[b] = m[b], m[a]
	}
}

// Closes reports whether a and b are a single knight's move apart:
// the unordered pair of absolute coordinate differences is {1,2}.
// A completed path whose last cell Closes with its start is a closed
// tour. Complexity: O(1).
func Closes(a, b board.Cell) bool {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)

	return (dx == 1 && dy == 2) || (dx == 2 && dy == 1)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
