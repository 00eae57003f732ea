// Package gridmap provides a rectangular ASCII-map grid with terrain
// classification, adjacency queries, and pluggable edge-cost models. It is
// the map collaborator for the search engines in package pathfind:
//
//   - Four-connected adjacency in a fixed left/right/up/down order
//   - Blocking queries that treat walls and out-of-bounds alike
//   - Optional coordinate scaling (one logical cell → Scale×Scale cells)
//
// A Grid is immutable once built, so any number of concurrent searches may
// share it without locking.
package gridmap

import (
	"fmt"
)

// Grid is a fixed-size 2D terrain classification parsed from ASCII rows.
// It is immutable once built; all queries are read-only.
type Grid struct {
	cols, rows int // logical dimensions, before scaling
	scale      int
	cells      [][]Terrain // cells[y][x], logical coordinates
}

// Parse constructs a Grid from a non-empty, rectangular slice of map rows.
// Recognized symbols: '#' wall, '.' floor, 'T' target, '1' grass,
// '2' sand, '3' water.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrUnknownSymbol for any rune outside the alphabet,
// ErrBadScale if opts.Scale < 1.
// Complexity: O(W×H) time and memory.
func Parse(rows []string, opts GridOptions) (*Grid, error) {
	if opts.Scale < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadScale, opts.Scale)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h := len(rows)
	w := len([]rune(rows[0]))
	cells := make([][]Terrain, h)
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != w {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrNonRectangular, y, len(runes), w)
		}
		cells[y] = make([]Terrain, w)
		for x, r := range runes {
			t, ok := terrainOf(r)
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownSymbol, r, x, y)
			}
			cells[y][x] = t
		}
	}

	return &Grid{cols: w, rows: h, scale: opts.Scale, cells: cells}, nil
}

// Width returns the number of addressable columns (logical columns × scale).
func (g *Grid) Width() int { return g.cols * g.scale }

// Height returns the number of addressable rows (logical rows × scale).
func (g *Grid) Height() int { return g.rows * g.scale }

// Scale returns the coordinate scale factor (≥ 1).
func (g *Grid) Scale() int { return g.scale }

// InBounds reports whether c lies within the addressable grid area.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Width() && c.Y >= 0 && c.Y < g.Height()
}

// Classify returns the Terrain kind at c. Out-of-bounds cells classify
// as Wall, so callers may probe neighbors without bounds checks.
// Complexity: O(1).
func (g *Grid) Classify(c Cell) Terrain {
	if !g.InBounds(c) {
		return Wall
	}

	return g.cells[c.Y/g.scale][c.X/g.scale]
}

// IsBlocked reports whether c is impassable: a wall or out of bounds.
// Complexity: O(1).
func (g *Grid) IsBlocked(c Cell) bool {
	return g.Classify(c) == Wall
}

// IsFree reports whether c is a traversable in-bounds cell.
func (g *Grid) IsFree(c Cell) bool {
	return !g.IsBlocked(c)
}

// IsTarget reports whether c carries a target marker.
func (g *Grid) IsTarget(c Cell) bool {
	return g.Classify(c) == Target
}

// Neighbors returns the 4-connected candidates of c in a fixed order:
// left, right, up, down. Candidates may be blocked or out of bounds;
// filter with IsBlocked. The fixed order keeps search tie-breaking
// deterministic.
// Complexity: O(1).
func (g *Grid) Neighbors(c Cell) [4]Cell {
	return [4]Cell{
		{c.X - 1, c.Y},
		{c.X + 1, c.Y},
		{c.X, c.Y - 1},
		{c.X, c.Y + 1},
	}
}

// center maps a logical cell (lx, ly) to its addressable center cell,
// the representative start position used by FreeCells and TargetCells.
func (g *Grid) center(lx, ly int) Cell {
	return Cell{lx*g.scale + g.scale/2, ly*g.scale + g.scale/2}
}

// FreeCells returns the centers of all traversable logical cells in
// row-major order. These are the natural probe starts for a sweep over
// the whole map.
// Complexity: O(W×H).
func (g *Grid) FreeCells() []Cell {
	var out []Cell
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			if g.cells[y][x] != Wall {
				out = append(out, g.center(x, y))
			}
		}
	}

	return out
}

// TargetCells returns the centers of all target-marked logical cells in
// row-major order.
// Complexity: O(W×H).
func (g *Grid) TargetCells() []Cell {
	var out []Cell
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			if g.cells[y][x] == Target {
				out = append(out, g.center(x, y))
			}
		}
	}

	return out
}
