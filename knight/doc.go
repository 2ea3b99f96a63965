// Package knight holds the move vocabulary of the tour search: the
// fixed table of 8 knight offsets, swap-based shuffling of that table,
// and the closed-tour predicate.
//
// What:
//
//   - Moves returns the canonical 8-entry offset table by value.
//   - Shuffle applies a configured number of random pairwise swaps,
//     diversifying the order in which the engine tries moves.
//   - Closes reports whether two cells are one knight's move apart,
//     which classifies a completed tour as closed or open.
//
// Why:
//
//   - Move order is a search heuristic, never a correctness invariant:
//     a shuffle must permute the table yet preserve the offset multiset.
//
// Complexity:
//
//   - Moves/Closes/Apply: O(1).  Shuffle: O(swaps).
package knight
