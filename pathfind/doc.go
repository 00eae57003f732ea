// Package pathfind provides deterministic best-first shortest-path search
// over weighted 2D grids.
//
// Overview:
//
//   - Nearest computes a minimum-cost path from a start cell to the
//     cheapest-to-reach cell satisfying a predicate (uninformed,
//     uniform-cost expansion).
//   - Goal computes a minimum-cost path from a start cell to a fixed goal
//     cell (informed, A*-style expansion under an admissible heuristic).
//   - NearestAll sweeps every free cell of a grid as an independent start,
//     fanned out over a worker pool.
//
// When to use:
//
//   - "Find the closest X": nearest resource, exit, tree, charging station.
//   - "Route to a known destination": fixed-goal navigation on terrain
//     where each step has a non-negative cost.
//
// Key features:
//
//   - Functional options tune the cost model, heuristic and parallelism
//     without changing the API signature.
//   - One open-list entry per cell with true decrease-key replacement:
//     a strictly better rediscovery replaces the stale frontier entry.
//   - Stable FIFO tie-breaking: equal-rank candidates pop in first-found
//     order, so two runs over identical inputs return identical paths.
//   - Unreachable targets are a normal nil-path result, never an error;
//     errors are reserved for invalid inputs.
//
// Performance and complexity:
//
//   - Time:  O(N log N), N = cells explored (each cell enters the open
//     list at most once; heap operations cost O(log N)).
//   - Space: O(N) for the visited set, parent back-pointers, and frontier.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:      nil *gridmap.Grid.
//   - ErrNilPredicate: nil termination predicate (Nearest/NearestAll).
//   - ErrInvalidStart: blocked or out-of-bounds start cell.
//   - ErrInvalidGoal:  blocked or out-of-bounds goal cell.
//   - ErrNegativeCost: the cost model produced a negative edge cost.
//   - ErrBadWorkers:   worker count below 1 (panics in WithWorkers).
//
// Thread safety:
//
//   - A search owns its frontier and visited set exclusively. Any number
//     of searches may run concurrently over one immutable Grid and one
//     side-effect-free cost model; no locking is required under that
//     discipline. A single search never spawns internal parallelism.
package pathfind
