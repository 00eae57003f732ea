// Package gridmap defines core types, options, and sentinel errors
// for the gridmap subpackage of github.com/katalvlaran/gridpath.
package gridmap

import (
	"errors"
)

// Sentinel errors for gridmap operations.
var (
	// ErrEmptyGrid indicates input rows have no rows or no columns.
	ErrEmptyGrid = errors.New("gridmap: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridmap: all rows must have the same length")
	// ErrUnknownSymbol indicates a rune outside the map alphabet.
	ErrUnknownSymbol = errors.New("gridmap: unknown map symbol")
	// ErrBadScale indicates a non-positive scale factor.
	ErrBadScale = errors.New("gridmap: scale must be at least 1")
)

// Terrain classifies a single grid cell.
type Terrain int

const (
	// Wall blocks traversal entirely.
	Wall Terrain = iota
	// Floor is open, uniformly traversable ground.
	Floor
	// Grass is cheap terrain (weight 1).
	Grass
	// Sand is moderate terrain (weight 3).
	Sand
	// Water is expensive terrain (weight 9).
	Water
	// Target marks a cell that nearest-target searches look for.
	Target
)

// String returns the human-readable terrain name.
func (t Terrain) String() string {
	switch t {
	case Wall:
		return "Wall"
	case Floor:
		return "Floor"
	case Grass:
		return "Grass"
	case Sand:
		return "Sand"
	case Water:
		return "Water"
	case Target:
		return "Target"
	default:
		return "Unknown"
	}
}

// Cell identifies a grid position by its (X, Y) coordinates.
// Cells are value types, comparable and usable as map keys.
type Cell struct {
	X, Y int
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// Scale multiplies every logical map cell into Scale×Scale addressable
	// cells. All classification queries divide coordinates back down, so a
	// scaled grid behaves like a finer-grained copy of the logical map.
	Scale int
}

// DefaultGridOptions returns a GridOptions with default settings:
// Scale=1 (addressable cells coincide with logical map cells).
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Scale: 1,
	}
}

// Map symbol alphabet, one rune per Terrain kind.
const (
	symWall   = '#'
	symFloor  = '.'
	symGrass  = '1'
	symSand   = '2'
	symWater  = '3'
	symTarget = 'T'
)

// terrainOf maps a map symbol to its Terrain kind.
// The boolean reports whether the symbol belongs to the alphabet.
func terrainOf(r rune) (Terrain, bool) {
	switch r {
	case symWall:
		return Wall, true
	case symFloor:
		return Floor, true
	case symGrass:
		return Grass, true
	case symSand:
		return Sand, true
	case symWater:
		return Water, true
	case symTarget:
		return Target, true
	default:
		return Wall, false
	}
}
