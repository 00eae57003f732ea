package scenario

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/internal/config"
)

var orchardGrid = []string{
	"#########",
	"#.......#",
	"#.....T.#",
	"#.......#",
	"#########",
}

func TestBuild(t *testing.T) {
	sc := &config.Scenario{Grid: orchardGrid, Cost: config.CostUniform}

	g, cost, err := Build(sc)
	require.NoError(t, err)
	assert.Equal(t, 9, g.Width())
	assert.Equal(t, 5, g.Height())

	// Uniform cost ignores terrain.
	c := cost(gridmap.Cell{X: 1, Y: 1}, gridmap.Cell{X: 2, Y: 1})
	assert.Equal(t, gridmap.DefaultMoveCost, c)
}

func TestBuild_TerrainCost(t *testing.T) {
	sc := &config.Scenario{
		Grid: []string{"#13T#"},
		Cost: config.CostTerrain,
	}

	_, cost, err := Build(sc)
	require.NoError(t, err)

	// grass(1) to water(9) blends to 5.
	c := cost(gridmap.Cell{X: 1, Y: 0}, gridmap.Cell{X: 2, Y: 0})
	assert.Equal(t, int64(5), c)
}

func TestBuild_BadGrid(t *testing.T) {
	sc := &config.Scenario{Grid: []string{"##", "#"}}

	_, _, err := Build(sc)
	assert.ErrorIs(t, err, gridmap.ErrNonRectangular)
}

func TestRun_NearestSingleStart(t *testing.T) {
	sc := &config.Scenario{
		Grid:  orchardGrid,
		Mode:  config.ModeNearest,
		Start: &config.Cell{X: 1, Y: 2},
	}

	_, results, err := Run(context.Background(), sc, 0)
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, gridmap.Cell{X: 1, Y: 2}, r.Start)
	assert.Equal(t, int64(50), r.Cost)
	assert.Len(t, r.Path, 6)
}

func TestRun_NearestSweep(t *testing.T) {
	sc := &config.Scenario{
		Grid: orchardGrid,
		Mode: config.ModeNearest,
	}

	g, results, err := Run(context.Background(), sc, 4)
	require.NoError(t, err)

	// All 21 free cells reach the target, in FreeCells order.
	free := g.FreeCells()
	require.Len(t, results, len(free))
	for i, r := range results {
		assert.Equal(t, free[i], r.Start)
		assert.True(t, g.IsTarget(r.Path[len(r.Path)-1]))
	}

	// Sweep costs match what the engine reports.
	for _, r := range results {
		assert.Equal(t, int64(10*(len(r.Path)-1)), r.Cost)
	}
}

func TestRun_GoalSweep(t *testing.T) {
	sc := &config.Scenario{
		Grid: []string{
			"#####",
			"#...#",
			"#####",
		},
		Mode: config.ModeGoal,
		Goal: &config.Cell{X: 3, Y: 1},
	}

	_, results, err := Run(context.Background(), sc, 0)
	require.NoError(t, err)

	// The goal cell itself is skipped; the two other free cells route to it.
	require.Len(t, results, 2)
	assert.Equal(t, gridmap.Cell{X: 1, Y: 1}, results[0].Start)
	assert.Equal(t, int64(20), results[0].Cost)
	assert.Equal(t, gridmap.Cell{X: 2, Y: 1}, results[1].Start)
	assert.Equal(t, int64(10), results[1].Cost)
}

func TestRun_GoalSingleStart(t *testing.T) {
	sc := &config.Scenario{
		Grid: []string{
			"#####",
			"#...#",
			"#####",
		},
		Mode:  config.ModeGoal,
		Start: &config.Cell{X: 1, Y: 1},
		Goal:  &config.Cell{X: 3, Y: 1},
	}

	_, results, err := Run(context.Background(), sc, 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, int64(20), results[0].Cost)
	assert.Len(t, results[0].Path, 3)
}

func TestRun_UnreachableOmitted(t *testing.T) {
	sc := &config.Scenario{
		Grid: []string{
			"#######",
			"#.T#..#",
			"#######",
		},
		Mode: config.ModeNearest,
	}

	_, results, err := Run(context.Background(), sc, 0)
	require.NoError(t, err)

	// The sealed pocket on the right produces no results.
	assert.Len(t, results, 2)
	for _, r := range results {
		assert.Less(t, r.Start.X, 3)
	}
}

func TestRun_Canceled(t *testing.T) {
	sc := &config.Scenario{Grid: orchardGrid, Mode: config.ModeNearest}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := Run(ctx, sc, 0)
	assert.ErrorIs(t, err, context.Canceled)
}
