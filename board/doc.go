// Package board models the occupancy grid of a knight's-tour search:
// a rectangular width×height grid whose cells record the 1-based step
// at which the path visited them (0 = unvisited).
//
// What:
//
//   - Board wraps a run-time-sized grid of step indices with bounds-checked access.
//   - Mark/Unmark maintain the visit record as a path grows and backtracks.
//   - Reset returns the grid to the all-unvisited state between attempts.
//   - WriteBlock serializes a finished tour as one text block for the result sink.
//
// Why:
//
//   - The search engine needs an O(1) "was this cell visited?" predicate.
//   - Discovered tours must be rendered in visit order for the output file.
//
// Invariant:
//
//   - For a path of depth d, exactly the values {1..d} appear on the board,
//     each exactly once, in bijection with the first d path steps.
//
// Complexity:
//
//   - InBounds/Visited/Mark/Unmark/StepAt: O(1).
//   - Reset: O(W×H).  WriteBlock/String: O(W×H).
//
// Errors:
//
//   - ErrEmptyBoard: a dimension is smaller than one cell.
//   - ErrCellOutOfBounds: StepAt was asked about a cell outside the grid.
package board
