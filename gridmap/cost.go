package gridmap

// CostFunc reports the non-negative cost of moving from one cell to an
// adjacent cell. The pair is ordered and the function is not assumed
// symmetric: terrain-blended models weigh both endpoints, simpler models
// may ignore the destination entirely.
type CostFunc func(from, to Cell) int64

// DefaultMoveCost is the per-step cost of the uniform model used by the
// plain floor maps.
const DefaultMoveCost int64 = 10

// Terrain weights for the blended cost model. Floor and Target count as
// the cheapest ground so that marker cells never repel a search.
const (
	grassWeight int64 = 1
	sandWeight  int64 = 3
	waterWeight int64 = 9
)

// UniformCost returns a CostFunc charging a constant step cost for every
// move, regardless of terrain. The destination argument is ignored.
func UniformCost(step int64) CostFunc {
	return func(_, _ Cell) int64 {
		return step
	}
}

// terrainWeight maps a Terrain kind to its traversal weight.
func terrainWeight(t Terrain) int64 {
	switch t {
	case Sand:
		return sandWeight
	case Water:
		return waterWeight
	default:
		// Grass, Floor and Target all count as cheapest ground.
		return grassWeight
	}
}

// TerrainCost returns a CostFunc blending the terrain weights of both
// endpoints: (weight(from) + weight(to)) / 2, integer-truncated.
// Grass weighs 1, sand 3, water 9; a grass→grass step costs 1,
// grass→sand costs 2, water→water costs 9.
func TerrainCost(g *Grid) CostFunc {
	return func(from, to Cell) int64 {
		return (terrainWeight(g.Classify(from)) + terrainWeight(g.Classify(to))) / 2
	}
}
