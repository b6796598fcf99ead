// Package crossing is a small toolbox for solving bridge-and-lantern
// crossing puzzles optimally — the classic "four travelers, one lantern,
// seventeen minutes" riddle and every sized variant of it.
//
// 🌉 What is crossing?
//
//	A focused, dependency-light library that brings together:
//		• Domain model: travelers, bitmask bank sets, immutable States
//		• Successor generation: single and paired moves, slower-member pacing
//		• Optimal search: cost-ordered (uniform-cost) exploration with
//		  configuration-level deduplication and full path reconstruction
//		• Scenario files: YAML descriptions of parties and cost bounds
//		• A CLI that prints the optimal plan step by step
//
// ✨ Why choose crossing?
//
//   - Guaranteed optimal – cheapest-first frontier, provably minimal total cost
//   - Honest edge cases – empty parties, unreachable bounds, single travelers
//   - Pure Go core – the solver itself has no third-party dependencies
//   - Deterministic – equal-cost ties break by discovery order, every run alike
//
// Everything is organized under four subpackages and one binary:
//
//	puzzle/   — travelers, parties, States, goal test & successor generation
//	solve/    — the search engine, Plans, Steps and the lower-bound check
//	scenario/ — YAML scenario loading and the built-in classic scenario
//	examples/ — runnable walkthroughs
//	cmd/      — the `crossing` command-line solver
//
// Quick ASCII picture of the classic scenario:
//
//	 {1 2 3 4} 🏮                         start: everyone left, lantern left
//	 ═════════════  bridge  ═════════════
//	                              {1 2 3 4} 🏮   goal: everyone right
//
// The optimal plan costs 17: pair across, single back, pair across,
// single back, pair across.
//
//	go get github.com/lanternkit/crossing
package crossing
