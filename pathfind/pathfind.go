// Package pathfind implements best-first shortest-path search over
// gridmap grids: an uninformed nearest-target engine and a goal-directed
// A* engine sharing one expansion skeleton.
//
// Notes on implementation choices:
//
//   - Both modes run the same engine, parametrized by a termination
//     predicate and a per-cell remaining-cost estimate (zero in the
//     uninformed mode).
//   - The open list is an indexed binary heap with one entry per cell and
//     true decrease-key replacement (heap.Fix), not lazy duplicates.
//   - Ties are broken by insertion order (FIFO), so results are
//     deterministic and reproducible.
//   - Paths are reconstructed from per-cell back-pointers after
//     termination instead of cloning a path prefix into every node.
package pathfind

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridmap"
)

// Nearest finds a minimum-cost path from start to the nearest cell
// satisfying isTarget, where "nearest" means lowest accumulated cost, not
// hop count. Movement is 4-connected; each neighbor is charged by the
// configured cost model (uniform DefaultMoveCost unless WithCost is given).
//
// Returns:
//
//   - path: ordered cells from start to the matched cell, inclusive.
//     If start itself matches, path is exactly [start] with cost 0.
//     nil if no reachable cell matches — that is a normal result, not
//     an error.
//   - cost: accumulated cost along path (sum of edge costs).
//   - err:  validation failure (ErrNilGrid, ErrNilPredicate,
//     ErrInvalidStart) or ErrNegativeCost from the cost model.
//
// The termination test runs on pop, after the cell's cost is final, so the
// returned match is guaranteed cheapest among all matching cells.
//
// Complexity: O(N log N) time, O(N) memory, N = reachable cells.
func Nearest(g *gridmap.Grid, start gridmap.Cell, isTarget Predicate, opts ...Option) (Path, int64, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs, fail fast.
	if g == nil {
		return nil, 0, ErrNilGrid
	}
	if isTarget == nil {
		return nil, 0, ErrNilPredicate
	}
	if g.IsBlocked(start) {
		return nil, 0, fmt.Errorf("%w: (%d,%d)", ErrInvalidStart, start.X, start.Y)
	}

	// 3) Run the engine uninformed: zero estimate, predicate termination.
	r := newRunner(g, cfg)

	return r.search(start, isTarget, func(gridmap.Cell) int64 { return 0 })
}

// Goal finds a minimum-cost path from start to goal using A*-style
// best-first search ranked by cost-so-far plus heuristic. The default
// heuristic is Manhattan distance; substitute Zero via WithHeuristic to
// degenerate into uniform-cost search.
//
// Returns:
//
//   - path: ordered cells from start to goal, inclusive.
//     If start == goal, path is exactly [start] with cost 0.
//     nil if goal is unreachable — a normal result, not an error.
//   - cost: accumulated cost along path.
//   - err:  validation failure (ErrNilGrid, ErrInvalidStart,
//     ErrInvalidGoal) or ErrNegativeCost from the cost model.
//
// With an admissible, consistent heuristic the returned path has minimum
// total cost. Equal-rank candidates keep first-found order, so results
// are deterministic.
//
// Complexity: O(N log N) time, O(N) memory, N = explored cells.
func Goal(g *gridmap.Grid, start, goal gridmap.Cell, opts ...Option) (Path, int64, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs, fail fast.
	if g == nil {
		return nil, 0, ErrNilGrid
	}
	if g.IsBlocked(start) {
		return nil, 0, fmt.Errorf("%w: (%d,%d)", ErrInvalidStart, start.X, start.Y)
	}
	if g.IsBlocked(goal) {
		return nil, 0, fmt.Errorf("%w: (%d,%d)", ErrInvalidGoal, goal.X, goal.Y)
	}

	// 3) Run the engine informed: heuristic estimate, fixed-goal termination.
	r := newRunner(g, cfg)
	done := func(c gridmap.Cell) bool { return c == goal }
	estimate := func(c gridmap.Cell) int64 { return cfg.Heuristic(c, goal) }

	return r.search(start, done, estimate)
}

// runner holds the mutable state of a single search invocation. All
// structures are created per call and discarded when the search returns;
// nothing is shared between invocations.
type runner struct {
	grid    *gridmap.Grid
	cost    gridmap.CostFunc
	open    *openList
	visited map[gridmap.Cell]bool
	parent  map[gridmap.Cell]gridmap.Cell
}

// newRunner allocates fresh per-search state.
func newRunner(g *gridmap.Grid, cfg Options) *runner {
	return &runner{
		grid:    g,
		cost:    cfg.Cost,
		open:    newOpenList(16),
		visited: make(map[gridmap.Cell]bool),
		parent:  make(map[gridmap.Cell]gridmap.Cell),
	}
}

// search is the shared engine: best-first expansion ranked by cost-so-far
// plus estimate, cells finalized on pop, decrease-key replacement of
// strictly worse frontier entries. The two public modes differ only in
// the termination predicate and the estimate function.
func (r *runner) search(start gridmap.Cell, done Predicate, estimate func(gridmap.Cell) int64) (Path, int64, error) {
	// 1) Seed the frontier with the start.
	r.open.PushCell(start, 0, estimate(start))

	// 2) Expand best-ranked-first until a match pops or the frontier drains.
	for !r.open.Empty() {
		cur := r.open.PopMin()
		r.visited[cur.cell] = true

		// The termination test runs after popping, so the start is checked
		// first and a matched cell's cost is already final.
		if done(cur.cell) {
			return r.reconstruct(start, cur.cell), cur.g, nil
		}

		// 3) Relax the 4 neighbors in their fixed generation order.
		for _, nb := range r.grid.Neighbors(cur.cell) {
			if r.grid.IsBlocked(nb) || r.visited[nb] {
				continue
			}
			w := r.cost(cur.cell, nb)
			if w < 0 {
				return nil, 0, fmt.Errorf("%w: (%d,%d)→(%d,%d) cost=%d",
					ErrNegativeCost, cur.cell.X, cur.cell.Y, nb.X, nb.Y, w)
			}
			ng := cur.g + w
			nh := estimate(nb)

			// 4) Decrease-key policy: keep an existing entry that ranks at
			//    least as well; replace a strictly worse one.
			if it, inOpen := r.open.Get(nb); inOpen {
				if it.rank() <= ng+nh {
					continue
				}
				r.parent[nb] = cur.cell
				r.open.Update(it, ng, nh)

				continue
			}

			r.parent[nb] = cur.cell
			r.open.PushCell(nb, ng, nh)
		}
	}

	// 5) Frontier exhausted: nothing reachable matches. Normal result.
	return nil, 0, nil
}

// reconstruct walks back-pointers from end to start and returns the path
// ordered start→end inclusive.
func (r *runner) reconstruct(start, end gridmap.Cell) Path {
	path := Path{end}
	for cur := end; cur != start; {
		cur = r.parent[cur]
		path = append(path, cur)
	}
	// Reverse in place: back-pointers yield end→start order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
