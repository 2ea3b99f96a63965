// Package search implements the bounded, randomized, parallel
// backtracking search for closed knight's tours.
//
// What:
//
//   - An iterative try/accept/backtrace automaton explores paths over a
//     private Board with an explicit per-depth frame stack, giving up
//     once a per-attempt move-try budget is spent.
//   - An attempt driver reruns the automaton over freshly shuffled move
//     tables; a parallel driver fans independent start positions out
//     across goroutines.
//   - A mutex-guarded Recorder aggregates counters and appends each
//     closed tour to the output sink; it is the only shared-mutation
//     point of the whole run.
//
// Why:
//
//   - Exhaustive enumeration of knight's tours is hopeless beyond toy
//     boards; bounded randomized restarts find tours cheaply instead.
//
// Determinism:
//
//   - Same Options (including Seed) ⇒ identical totals, single- or
//     multi-worker: each start position derives its own RNG stream from
//     (Seed, start index), so scheduling never leaks into results.
//
// Options:
//
//   - Width, Height: board dimensions, fixed for the run.
//   - Starts / StartCount: explicit start cells, or how many to derive.
//   - Patterns: shuffle attempts per start position.
//   - MaxTries: per-attempt move-try budget.
//   - ShuffleSwaps: pairwise swaps applied to the move table per attempt.
//   - Seed: RNG seed (0 ⇒ fixed default for reproducibility).
//   - Workers: concurrency cap (0 ⇒ one goroutine per start).
//
// Errors:
//
//   - ErrBudgetTooLarge: MaxTries is not smaller than 8^(W×H).
//   - ErrBadDimensions, ErrBadBudget, ErrBadPatternCount,
//     ErrBadSwapCount, ErrBadWorkerCount, ErrNoStartPositions,
//     ErrStartOutOfBounds: configuration validation.
//   - Sink write failures propagate out of Solve wrapped; discovered
//     tours must never be lost silently.
//
// Note: tours are NOT deduplicated - different starts or shuffles may
// rediscover the same tour, and every rediscovery is counted.
package search
