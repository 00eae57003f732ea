// Package gridpath is a small toolkit for minimum-cost path search over
// weighted 2D cell grids — ASCII maps with walls, open floor, marked
// targets and terrain of varying traversal cost.
//
// 🚀 What is gridpath?
//
//	A focused library that brings together:
//		• gridmap  — rectangular grid parsing, terrain classification and
//		             pluggable edge-cost models (uniform or terrain-blended)
//		• pathfind — best-first search engines: uninformed nearest-target
//		             search (uniform-cost expansion) and goal-directed A*
//		             with an admissible heuristic, plus a parallel sweep
//		             that probes every free start cell
//
// ✨ Why choose gridpath?
//
//   - Deterministic – stable FIFO tie-breaking, reproducible paths
//   - Rock-solid guarantees – optimal paths under non-negative costs,
//     sentinel errors for every invalid input
//   - Lean core – the library packages carry no runtime dependencies;
//     the demo commands add YAML scenarios, zap logging and a Gio viewer
//
// Quick ASCII example:
//
//	#########
//	#.......#
//	#.....T.#
//	#.......#
//	#########
//
//	parses into a 9×5 grid; a nearest-target search from any floor cell
//	returns the cheapest path to the 'T'.
//
// Dive into gridmap and pathfind for the full contracts, and cmd/gridpath
// for a scenario-driven demo.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
