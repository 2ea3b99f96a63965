package board

// New constructs an all-unvisited width×height Board.
// Returns ErrEmptyBoard if either dimension is smaller than 1.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Board, error) {
	if width < 1 || height < 1 {
		return nil, ErrEmptyBoard
	}

	return &Board{
		width:  width,
		height: height,
		steps:  make([]int, width*height),
	}, nil
}

// Width returns the horizontal dimension of the board.
func (b *Board) Width() int { return b.width }

// Height returns the vertical dimension of the board.
func (b *Board) Height() int { return b.height }

// Cells returns the total number of cells (width×height), i.e. the
// length of a complete tour.
func (b *Board) Cells() int { return len(b.steps) }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (b *Board) InBounds(c Cell) bool {
	return 0 <= c.X && c.X < b.width && 0 <= c.Y && c.Y < b.height
}

// Visited reports whether the path has already claimed c.
// Precondition: InBounds(c); violating it panics on the index check.
// Complexity: O(1).
func (b *Board) Visited(c Cell) bool {
	return b.steps[c.Y*b.width+c.X] != Unvisited
}

// Mark records that c was visited at 1-based step.
// Precondition: InBounds(c); violating it panics on the index check.
// Complexity: O(1).
func (b *Board) Mark(c Cell, step int) {
	b.steps[c.Y*b.width+c.X] = step
}

// Unmark returns c to the unvisited state. Exact inverse of Mark.
// Precondition: InBounds(c); violating it panics on the index check.
// Complexity: O(1).
func (b *Board) Unmark(c Cell) {
	b.steps[c.Y*b.width+c.X] = Unvisited
}

// StepAt returns the 1-based step recorded at c, or Unvisited for a
// cell the path has not reached. Returns ErrCellOutOfBounds when c
// lies outside the grid; intended for callers outside the hot path.
// Complexity: O(1).
func (b *Board) StepAt(c Cell) (int, error) {
	if !b.InBounds(c) {
		return 0, ErrCellOutOfBounds
	}

	return b.steps[c.Y*b.width+c.X], nil
}

// Reset returns every cell to the unvisited state, whatever the prior
// content. Called between independent search attempts.
// Complexity: O(W×H).
func (b *Board) Reset() {
	for i := range b.steps {
		b.steps[i] = Unvisited
	}
}
