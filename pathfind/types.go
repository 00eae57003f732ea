// Package pathfind defines core types and configuration options
// for best-first path search over gridmap grids.
//
// Two engines share one skeleton — an open list ranked ascending, a visited
// set, incremental cost accumulation, and back-pointer path reconstruction:
//
//   - Nearest: uninformed search to the cheapest cell matching a predicate.
//   - Goal:    A*-style search to a fixed goal cell under an admissible heuristic.
//
// Complexity:
//
//	– Time:  O(N log N)   where N = number of reachable cells
//	   • Each cell enters the open list at most once (one entry per cell).
//	   • Each heap operation (push/pop/fix) costs O(log N).
//	– Space: O(N)
//	   • O(N) for the visited set, parent map, and open-list index.
//
// Options:
//
//	– WithCost:      per-edge cost model (default uniform DefaultMoveCost).
//	– WithHeuristic: remaining-cost estimate for Goal (default Manhattan).
//	– WithWorkers:   goroutine count for NearestAll sweeps.
//
// Errors (sentinel):
//
//	– ErrNilGrid      if the provided grid pointer is nil.
//	– ErrNilPredicate if the target predicate is nil.
//	– ErrInvalidStart if the start cell is blocked or out of bounds.
//	– ErrInvalidGoal  if the goal cell is blocked or out of bounds.
//	– ErrNegativeCost if the cost model produces a negative edge cost.
//	– ErrBadWorkers   if the worker count is below 1.
package pathfind

import (
	"errors"
	"runtime"

	"github.com/katalvlaran/gridpath/gridmap"
)

// Sentinel errors returned by the search engines.
var (
	// ErrNilGrid indicates that a nil *gridmap.Grid was passed to a search.
	ErrNilGrid = errors.New("pathfind: grid is nil")

	// ErrNilPredicate indicates that the target predicate is nil.
	ErrNilPredicate = errors.New("pathfind: target predicate is nil")

	// ErrInvalidStart indicates that the start cell is blocked or out of bounds.
	// Searches validate and fail fast rather than silently exploring.
	ErrInvalidStart = errors.New("pathfind: start cell is blocked or out of bounds")

	// ErrInvalidGoal indicates that the goal cell is blocked or out of bounds.
	ErrInvalidGoal = errors.New("pathfind: goal cell is blocked or out of bounds")

	// ErrNegativeCost indicates that the cost model returned a negative edge
	// cost. Negative costs break the best-first optimality guarantee.
	ErrNegativeCost = errors.New("pathfind: negative edge cost encountered")

	// ErrBadWorkers indicates a worker count below 1 for NearestAll.
	ErrBadWorkers = errors.New("pathfind: worker count must be at least 1")
)

// Path is an ordered sequence of cells from start to destination, inclusive.
// A found path always contains at least the start cell; a nil Path means
// "not found".
type Path []gridmap.Cell

// Predicate is the termination criterion of a nearest-target search:
// it reports whether a popped cell satisfies the search.
type Predicate func(gridmap.Cell) bool

// Heuristic estimates the remaining cost from one cell to another.
// For Goal searches it must be admissible (never overestimate) to keep
// the result optimal.
type Heuristic func(from, to gridmap.Cell) int64

// Manhattan returns |dx| + |dy|, the classic admissible grid heuristic
// for 4-connected movement with per-step cost ≥ 1.
func Manhattan(from, to gridmap.Cell) int64 {
	dx := int64(from.X - to.X)
	if dx < 0 {
		dx = -dx
	}
	dy := int64(from.Y - to.Y)
	if dy < 0 {
		dy = -dy
	}

	return dx + dy
}

// Zero is the null heuristic. Goal search with Zero degenerates to
// uniform-cost search and still returns a minimum-cost path.
func Zero(_, _ gridmap.Cell) int64 { return 0 }

// Options configures the behavior of the search engines.
//
// Cost      – per-edge cost model; must be non-negative for every edge.
// Heuristic – remaining-cost estimate used by Goal; ignored by Nearest.
// Workers   – number of goroutines used by NearestAll.
type Options struct {
	Cost      gridmap.CostFunc // Edge-cost model consulted per expansion
	Heuristic Heuristic        // Admissible remaining-cost estimate (Goal only)
	Workers   int              // Parallelism of NearestAll sweeps
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithCost sets the per-edge cost model.
// Passing nil panics: a search without a cost model is meaningless.
func WithCost(fn gridmap.CostFunc) Option {
	return func(o *Options) {
		if fn == nil {
			panic("pathfind: WithCost requires a non-nil cost function")
		}
		o.Cost = fn
	}
}

// WithHeuristic sets the heuristic used by Goal searches.
// Use Zero to degenerate A* into uniform-cost search.
// Passing nil panics; use Zero instead of nil.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			panic("pathfind: WithHeuristic requires a non-nil heuristic; use Zero")
		}
		o.Heuristic = h
	}
}

// WithWorkers sets the goroutine count for NearestAll.
// Must pass a positive value; zero or negative cause ErrBadWorkers.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadWorkers.Error())
		}
		o.Workers = n
	}
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults. Use this as a starting point for further functional-options
// overrides.
//
// Defaults:
//   - Cost:      gridmap.UniformCost(gridmap.DefaultMoveCost).
//   - Heuristic: Manhattan.
//   - Workers:   runtime.NumCPU().
func DefaultOptions() Options {
	return Options{
		Cost:      gridmap.UniformCost(gridmap.DefaultMoveCost),
		Heuristic: Manhattan,
		Workers:   runtime.NumCPU(),
	}
}
