// Package board defines the core types and sentinel errors of the
// occupancy grid used by the knight's-tour search.
package board

import "errors"

// Sentinel errors for board operations.
var (
	// ErrEmptyBoard indicates a requested dimension smaller than one cell.
	ErrEmptyBoard = errors.New("board: width and height must be at least 1")
	// ErrCellOutOfBounds indicates an access outside the grid boundaries.
	ErrCellOutOfBounds = errors.New("board: cell out of bounds")
)

// Unvisited is the step value of a cell the path has not reached.
const Unvisited = 0

// Cell is a grid coordinate: 0 ≤ X < Width, 0 ≤ Y < Height.
type Cell struct {
	X, Y int
}

// Board is a width×height grid of 1-based step indices.
// Zero means unvisited. Storage is flat row-major (y*width + x) so the
// grid can be sized from run-time configuration; every public accessor
// is bounds-checked, either explicitly or via Go's slice index checks.
type Board struct {
	width, height int
	steps         []int
}
