// Package scenario turns configured scenarios into grids and finished
// search results for the commands to log, export, or replay.
package scenario

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/pathfind"
)

// Result is one finished search: where it started, the path it found,
// and the accumulated cost.
type Result struct {
	Start gridmap.Cell
	Path  pathfind.Path
	Cost  int64
}

// Build parses the scenario grid and selects its cost function.
func Build(sc *config.Scenario) (*gridmap.Grid, gridmap.CostFunc, error) {
	opts := gridmap.DefaultGridOptions()
	if sc.Scale > 0 {
		opts.Scale = sc.Scale
	}

	g, err := gridmap.Parse(sc.Grid, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("scenario: %w", err)
	}

	cost := gridmap.UniformCost(gridmap.DefaultMoveCost)
	if sc.Cost == config.CostTerrain {
		cost = gridmap.TerrainCost(g)
	}

	return g, cost, nil
}

// Run executes the scenario and returns its grid and results in
// deterministic start order. Starts without a path are omitted.
// Configured cells name addressable coordinates; on scaled grids a
// missing start sweeps the logical cell centers.
func Run(ctx context.Context, sc *config.Scenario, workers int) (*gridmap.Grid, []Result, error) {
	g, cost, err := Build(sc)
	if err != nil {
		return nil, nil, err
	}

	opts := []pathfind.Option{pathfind.WithCost(cost)}
	if workers > 0 {
		opts = append(opts, pathfind.WithWorkers(workers))
	}

	var results []Result
	if sc.Mode == config.ModeGoal {
		results, err = runGoal(g, sc, opts)
	} else {
		results, err = runNearest(ctx, g, sc, cost, opts)
	}
	if err != nil {
		return nil, nil, err
	}

	return g, results, nil
}

// runGoal routes each start toward the configured goal cell.
func runGoal(g *gridmap.Grid, sc *config.Scenario, opts []pathfind.Option) ([]Result, error) {
	goal := gridmap.Cell{X: sc.Goal.X, Y: sc.Goal.Y}

	starts := g.FreeCells()
	if sc.Start != nil {
		starts = []gridmap.Cell{{X: sc.Start.X, Y: sc.Start.Y}}
	}

	results := make([]Result, 0, len(starts))
	for _, s := range starts {
		if s == goal {
			continue
		}
		path, c, err := pathfind.Goal(g, s, goal, opts...)
		if err != nil {
			return nil, fmt.Errorf("scenario: goal search from (%d,%d): %w", s.X, s.Y, err)
		}
		if path == nil {
			continue
		}
		results = append(results, Result{Start: s, Path: path, Cost: c})
	}

	return results, nil
}

// runNearest probes one start, or sweeps every free cell in parallel.
func runNearest(ctx context.Context, g *gridmap.Grid, sc *config.Scenario, cost gridmap.CostFunc, opts []pathfind.Option) ([]Result, error) {
	if sc.Start != nil {
		s := gridmap.Cell{X: sc.Start.X, Y: sc.Start.Y}
		path, c, err := pathfind.Nearest(g, s, g.IsTarget, opts...)
		if err != nil {
			return nil, fmt.Errorf("scenario: nearest search from (%d,%d): %w", s.X, s.Y, err)
		}
		if path == nil {
			return nil, nil
		}

		return []Result{{Start: s, Path: path, Cost: c}}, nil
	}

	paths, err := pathfind.NearestAll(ctx, g, g.IsTarget, opts...)
	if err != nil {
		return nil, fmt.Errorf("scenario: sweep: %w", err)
	}

	// FreeCells order keeps the sweep output deterministic.
	free := g.FreeCells()
	results := make([]Result, 0, len(paths))
	for _, s := range free {
		path, ok := paths[s]
		if !ok {
			continue
		}
		results = append(results, Result{Start: s, Path: path, Cost: pathCost(cost, path)})
	}

	return results, nil
}

// pathCost re-accumulates the edge costs along a finished path.
func pathCost(cost gridmap.CostFunc, path pathfind.Path) int64 {
	var total int64
	for i := 1; i < len(path); i++ {
		total += cost(path[i-1], path[i])
	}

	return total
}
