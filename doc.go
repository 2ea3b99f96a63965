// Package knighttour hunts for closed knight's tours — Hamiltonian
// knight paths that end one knight's move from where they began —
// using bounded, randomized, parallel backtracking.
//
// 🚀 What is knighttour?
//
//	A small, focused module that brings together:
//		• board/  — the occupancy grid: visit steps, reset, tour serialization
//		• knight/ — the 8-offset move table, swap shuffling, closed-tour test
//		• search/ — the core automaton (try/accept/backtrace), per-start
//		  attempt driver, errgroup fan-out, and the synchronized Recorder
//		• cmd/knighttour — cobra+viper CLI appending tours to a text file
//
// ✨ Why this shape?
//
//   - Bounded search – every attempt stops at its move-try budget, so
//     unproductive branches never hold the run hostage
//   - Deterministic – all randomness derives from one seed; the same
//     configuration reproduces the same totals at any worker count
//   - Honest concurrency – each worker owns its board and track; the
//     only shared mutation is the Recorder's critical section
//
// Not goals: exhaustive enumeration, deduplication of rediscovered
// tours, resizing a board mid-run, or resuming a search across process
// restarts. Each run is independent and the result file is append-only.
//
//	go get github.com/katalvlaran/knighttour
package knighttour
