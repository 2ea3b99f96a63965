// Package search - the try/accept/backtrace automaton.
//
// The engine walks one Board with an explicit frame stack: frame d
// holds the cell occupied at path step d and the cursor into the move
// table recording which alternative to try next from there. Cursor 8
// means every alternative at that step is exhausted. Recursion is
// expressed as an iterative loop over the stack, preserving the exact
// branch-exploration order of cursor-ascending depth-first search.
package search

import (
	"github.com/katalvlaran/knighttour/board"
	"github.com/katalvlaran/knighttour/knight"
)

// frame is one step of the in-progress path.
type frame struct {
	cell board.Cell // cell occupied at this step
	next int        // next move-table index to try from here; 8 = exhausted
}

// engine holds the search state of one attempt. It is exclusively
// owned by a single worker; nothing here is shared or synchronized.
type engine struct {
	brd    *board.Board
	moves  *[knight.MoveCount]knight.Offset
	track  []frame
	depth  int
	tries  uint64 // move-try counter, reset per attempt
	budget uint64
	rec    *Recorder
}

// newEngine builds an engine bound to one board, move table, and
// recorder. The track is sized once to the cell count and reused
// across attempts.
func newEngine(brd *board.Board, moves *[knight.MoveCount]knight.Offset, budget uint64, rec *Recorder) *engine {
	return &engine{
		brd:    brd,
		moves:  moves,
		track:  make([]frame, brd.Cells()),
		budget: budget,
		rec:    rec,
	}
}

// tryMove reports whether the move under the current frame's cursor
// leads to an in-bounds, unvisited cell. Pure predicate, no mutation.
// Complexity: O(1).
func (e *engine) tryMove() bool {
	f := &e.track[e.depth]
	cand := knight.Apply(f.cell, e.moves[f.next])

	return e.brd.InBounds(cand) && !e.brd.Visited(cand)
}

// acceptMove commits the move under the current cursor: the candidate
// becomes the next frame with cursor 0, the board records it at the
// 1-based step depth+2, and depth advances. Structural inverse of
// backTrace. Complexity: O(1).
func (e *engine) acceptMove() {
	f := &e.track[e.depth]
	cand := knight.Apply(f.cell, e.moves[f.next])
	e.depth++
	e.track[e.depth] = frame{cell: cand, next: 0}
	e.brd.Mark(cand, e.depth+1)
}

// backTrace undoes the current step: unmarks its cell, retreats depth,
// and advances the ancestor's cursor past the move just withdrawn.
// Precondition: depth > 0. Complexity: O(1).
func (e *engine) backTrace() {
	e.brd.Unmark(e.track[e.depth].cell)
	e.depth--
	e.track[e.depth].next++
}

// run executes one attempt from start: board and track are reset, the
// start cell becomes step 1, and the automaton explores until the
// move-try budget is spent or the whole subtree under this shuffle is
// exhausted. Every tryMove and acceptMove costs one unit of budget.
//
// On reaching full depth the tour is classified (closed iff the last
// cell is a knight's move from start) and reported; the engine then
// backtraces and RESUMES searching inside the same budget, so one
// attempt may report several completions. A Report error aborts the
// attempt immediately; the outcome is meaningful only when err is nil.
func (e *engine) run(start board.Cell) (Outcome, error) {
	e.brd.Reset()
	e.brd.Mark(start, 1)
	e.track[0] = frame{cell: start, next: 0}
	e.depth = 0
	e.tries = 0

	last := e.brd.Cells() - 1
	for e.tries < e.budget {
		// Advance the cursor to the first feasible move, unwinding
		// frames whose alternatives ran out along the way.
		for !e.tryMove() {
			e.tries++
			e.track[e.depth].next++
			for e.track[e.depth].next == knight.MoveCount {
				if e.depth == 0 {
					return OutcomeSpaceExhausted, nil
				}
				e.backTrace()
			}
			if e.tries >= e.budget {
				return OutcomeBudgetExhausted, nil
			}
		}
		e.tries++
		e.acceptMove()

		if e.depth == last {
			closed := knight.Closes(e.track[last].cell, start)
			if err := e.rec.Report(e.brd, closed); err != nil {
				return OutcomeBudgetExhausted, err
			}
			// Keep searching for further completions: withdraw the
			// final step and unwind any exhausted ancestors.
			e.backTrace()
			for e.track[e.depth].next == knight.MoveCount {
				if e.depth == 0 {
					return OutcomeSpaceExhausted, nil
				}
				e.backTrace()
			}
		}
	}

	return OutcomeBudgetExhausted, nil
}
